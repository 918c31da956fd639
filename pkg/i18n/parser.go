package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser decodes one translation document into per-language catalogs. The
// top level of a document maps language codes to nested message catalogs.
type Parser interface {
	Parse(data []byte) (map[string]map[string]any, error)
	Supports(ext string) bool
}

// JSONParser parses JSON translation documents.
type JSONParser struct{}

func (JSONParser) Parse(data []byte) (map[string]map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}
	return splitByLanguage(raw)
}

func (JSONParser) Supports(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

// YAMLParser parses YAML translation documents.
type YAMLParser struct{}

func (YAMLParser) Parse(data []byte) (map[string]map[string]any, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}
	return splitByLanguage(raw)
}

func (YAMLParser) Supports(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

func splitByLanguage(raw map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(raw))
	for lang, val := range raw {
		catalog, ok := asStringMap(val)
		if !ok {
			return nil, fmt.Errorf("%w: language %q must map to a catalog, got %T", ErrInvalidStructure, lang, val)
		}
		result[lang] = catalog
	}
	if len(result) == 0 {
		return nil, ErrNoTranslations
	}
	return result, nil
}
