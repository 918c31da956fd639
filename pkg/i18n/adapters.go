package i18n

import (
	"context"
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
)

// Adapter loads per-language catalogs from some source.
type Adapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from an in-memory map. Tests and small
// embedded catalogs use it directly.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads a single translation document.
type FileAdapter struct {
	parser Parser
	path   string
}

func NewFileAdapter(parser Parser, path string) *FileAdapter {
	return &FileAdapter{parser: parser, path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.parser == nil {
		return nil, ErrNilParser
	}
	if a.path == "" {
		return nil, ErrEmptyPath
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToRead, err)
	}
	return a.parser.Parse(data)
}

// FSAdapter loads every supported document under dir in an fs.FS, merging the
// catalogs language by language. It covers embed.FS, os.DirFS, and test
// fstest.MapFS sources alike.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// NewDirAdapter loads every supported document from a directory on disk.
func NewDirAdapter(parser Parser, dir string) *FSAdapter {
	return &FSAdapter{parser: parser, fsys: os.DirFS(dir), dir: "."}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.parser == nil {
		return nil, ErrNilParser
	}
	if a.fsys == nil || a.dir == "" {
		return nil, ErrEmptyPath
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToRead, err)
	}

	all := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() || !a.parser.Supports(filepath.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := fs.ReadFile(a.fsys, filepath.Join(a.dir, entry.Name()))
		if err != nil {
			return nil, errors.Join(ErrFailedToRead, err)
		}
		parsed, err := a.parser.Parse(data)
		if err != nil {
			return nil, err
		}
		for lang, catalog := range parsed {
			if all[lang] == nil {
				all[lang] = make(map[string]any)
			}
			maps.Copy(all[lang], catalog)
		}
	}

	if len(all) == 0 {
		return nil, ErrNoTranslations
	}
	return all, nil
}
