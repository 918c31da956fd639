package schemafile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit"
)

// Load parses one document into its named schemas. The yaml node API is used
// instead of plain unmarshaling because Go maps would scramble field order,
// and field order is evaluation order.
func Load(r io.Reader) (map[string]*formkit.Schema, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrFailedToRead, err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, ErrNoSchemas
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must map schema names to fields", ErrInvalidStructure)
	}

	schemas := make(map[string]*formkit.Schema, len(doc.Content)/2)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		name := doc.Content[i].Value
		schema, err := parseSchema(name, doc.Content[i+1])
		if err != nil {
			return nil, err
		}
		schemas[name] = schema
	}
	if len(schemas) == 0 {
		return nil, ErrNoSchemas
	}
	return schemas, nil
}

// LoadFile loads a .yaml, .yml or .json document from disk.
func LoadFile(path string) (map[string]*formkit.Schema, error) {
	if err := checkExt(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToRead, err)
	}
	defer f.Close()
	return Load(f)
}

// LoadFS loads every supported document under dir and merges the results.
// A schema name declared in two files is a configuration error.
func LoadFS(fsys fs.FS, dir string) (map[string]*formkit.Schema, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToRead, err)
	}

	schemas := make(map[string]*formkit.Schema)
	for _, entry := range entries {
		if entry.IsDir() || checkExt(entry.Name()) != nil {
			continue
		}
		f, err := fsys.Open(path.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Join(ErrFailedToRead, err)
		}
		loaded, err := Load(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		for name, schema := range loaded {
			if _, dup := schemas[name]; dup {
				return nil, fmt.Errorf("%w: schema %q declared twice", ErrInvalidStructure, name)
			}
			schemas[name] = schema
		}
	}
	if len(schemas) == 0 {
		return nil, ErrNoSchemas
	}
	return schemas, nil
}

func checkExt(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedExt, path)
	}
}

func parseSchema(name string, node *yaml.Node) (*formkit.Schema, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: schema %q must map fields to rule lists", ErrInvalidStructure, name)
	}

	schema := formkit.NewSchema(name)
	for i := 0; i+1 < len(node.Content); i += 2 {
		field := node.Content[i].Value
		refs, err := parseChain(name, field, node.Content[i+1])
		if err != nil {
			return nil, err
		}
		schema.Field(field, refs...)
	}
	return schema, nil
}

func parseChain(schema, field string, node *yaml.Node) ([]formkit.Ref, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: field %s.%s must hold a rule list", ErrInvalidStructure, schema, field)
	}

	refs := make([]formkit.Ref, 0, len(node.Content))
	for _, entry := range node.Content {
		ref, err := parseRule(schema, field, entry)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// parseRule accepts a bare rule name or a single-key map binding parameters,
// where the value is one scalar or a sequence of them.
func parseRule(schema, field string, node *yaml.Node) (formkit.Ref, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return formkit.Named(node.Value), nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return formkit.Ref{}, fmt.Errorf("%w: rule entry in %s.%s must bind exactly one rule", ErrInvalidStructure, schema, field)
		}
		name := node.Content[0].Value
		params, err := parseParams(node.Content[1])
		if err != nil {
			return formkit.Ref{}, fmt.Errorf("%w: rule %q in %s.%s: %v", ErrInvalidStructure, name, schema, field, err)
		}
		return formkit.Named(name, params...), nil
	default:
		return formkit.Ref{}, fmt.Errorf("%w: rule entry in %s.%s must be a name or a name-to-params map", ErrInvalidStructure, schema, field)
	}
}

func parseParams(node *yaml.Node) ([]any, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return []any{v}, nil
	case yaml.SequenceNode:
		var vs []any
		if err := node.Decode(&vs); err != nil {
			return nil, err
		}
		return vs, nil
	default:
		return nil, errors.New("parameters must be a scalar or a list")
	}
}
