package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"

	"github.com/dmitrymomot/i18nliner/pkg/logger"
)

// TranslationAdapter loads a catalog keyed by locale.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves an in-memory catalog.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads a single catalog file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter returns nil for an empty path. A nil parser is picked from
// the file extension.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if path == "" {
		return nil
	}
	if parser == nil {
		parser = NewParserForFile(path)
	}
	return &FileAdapter{parser: parser, path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, a.path)
	}

	content, err := readWithContext(ctx, func() ([]byte, error) { return os.ReadFile(a.path) })
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, a.path)
	}

	translations, err := a.parser.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return translations, nil
}

// FSAdapter loads every supported file in one directory of an fs.FS and
// merges them. Files that fail to load are logged and skipped.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
	logger *slog.Logger
}

// NewFSAdapter returns nil when fsys is nil. A nil parser means DefaultParsers.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if fsys == nil {
		return nil
	}
	if parser == nil {
		parser = DefaultParsers()
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir, logger: logger.Discard()}
}

// NewDirectoryAdapter is NewFSAdapter over a directory on disk.
func NewDirectoryAdapter(parser Parser, dir string) *FSAdapter {
	if dir == "" {
		return nil
	}
	return NewFSAdapter(parser, os.DirFS(dir), ".")
}

// WithLogger sets the logger used to report skipped files.
func (a *FSAdapter) WithLogger(l *slog.Logger) *FSAdapter {
	if l != nil {
		a.logger = l
	}
	return a
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	all := make(map[string]map[string]any)
	loaded := 0
	var failures []error

	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := path.Join(a.dir, entry.Name())
		translations, err := a.loadFile(ctx, name)
		if err != nil {
			a.logger.WarnContext(ctx, "skipping translation file", logger.Source(name), logger.Error(err))
			failures = append(failures, err)
			continue
		}
		mergeCatalog(all, translations)
		loaded++
	}

	if loaded == 0 {
		return nil, errors.Join(append([]error{fmt.Errorf("%w in %q", ErrNoTranslations, a.dir)}, failures...)...)
	}
	return all, nil
}

func (a *FSAdapter) loadFile(ctx context.Context, name string) (map[string]map[string]any, error) {
	content, err := fs.ReadFile(a.fsys, name)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, name)
	}

	var translations map[string]map[string]any
	if mp, ok := a.parser.(MultiParser); ok {
		translations, err = mp.ParseFile(ctx, name, content)
	} else {
		translations, err = a.parser.Parse(ctx, content)
	}
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return translations, nil
}

// readWithContext runs read in a goroutine so a cancelled context does not
// wait on slow storage.
func readWithContext(ctx context.Context, read func() ([]byte, error)) ([]byte, error) {
	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = read()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadFile, readErr)
	}
	return content, nil
}

// mergeCatalog deep-merges src into dst; later files win on conflicting leaves.
func mergeCatalog(dst, src map[string]map[string]any) {
	for lang, tree := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(tree))
		}
		mergeTree(dst[lang], tree)
	}
}

func mergeTree(dst, src map[string]any) {
	for k, v := range src {
		srcChild, srcIsMap := v.(map[string]any)
		dstChild, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeTree(dstChild, srcChild)
			continue
		}
		dst[k] = v
	}
}
