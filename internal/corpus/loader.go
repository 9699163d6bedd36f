package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

var (
	// ErrNoDocuments is returned when the supplied paths yield no readable documents.
	ErrNoDocuments = errors.New("no documents found")
	// ErrFileTooLarge is returned when a file exceeds the loader's size limit.
	ErrFileTooLarge = errors.New("file exceeds size limit")
)

// Document is a single text loaded from disk.
type Document struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Text string `json:"-"`
}

// Loader reads documents from a file system.
type Loader struct {
	fs         afero.Fs
	extensions map[string]struct{}
	recursive  bool
	maxBytes   int64
}

// Option configures a Loader.
type Option func(*Loader)

// WithExtensions restricts directory walks to files with the given extensions.
// Matching is case-insensitive; a missing leading dot is added.
func WithExtensions(exts ...string) Option {
	return func(l *Loader) {
		l.extensions = make(map[string]struct{}, len(exts))
		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			l.extensions[ext] = struct{}{}
		}
	}
}

// WithRecursive controls whether subdirectories are walked.
func WithRecursive(recursive bool) Option {
	return func(l *Loader) {
		l.recursive = recursive
	}
}

// WithMaxBytes sets the largest file the loader accepts. Zero or negative disables the limit.
func WithMaxBytes(limit int64) Option {
	return func(l *Loader) {
		l.maxBytes = limit
	}
}

// NewLoader constructs a Loader over fsys. A nil fsys uses the OS file system.
func NewLoader(fsys afero.Fs, opts ...Option) *Loader {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	l := &Loader{fs: fsys, recursive: true}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads every document reachable from paths. Duplicates are dropped and
// the result is sorted by Name. Names are unique: documents whose names
// collide across arguments are named by their cleaned path instead.
func (l *Loader) Load(paths ...string) ([]Document, error) {
	seen := make(map[string]struct{})
	var docs []Document

	add := func(name, path string) error {
		clean := filepath.Clean(path)
		if _, ok := seen[clean]; ok {
			return nil
		}
		text, err := l.readFile(clean)
		if err != nil {
			return err
		}
		seen[clean] = struct{}{}
		docs = append(docs, Document{Name: name, Path: clean, Text: text})
		return nil
	}

	for _, root := range paths {
		root = strings.TrimSpace(root)
		if root == "" {
			continue
		}
		info, err := l.fs.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}
		if !info.IsDir() {
			if err := add(filepath.Base(root), root); err != nil {
				return nil, err
			}
			continue
		}
		if err := l.walk(root, add); err != nil {
			return nil, err
		}
	}

	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}
	disambiguateNames(docs)

	slices.SortFunc(docs, func(a, b Document) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})
	return docs, nil
}

// disambiguateNames renames colliding documents to their paths until every
// name is unique. Paths are unique after de-duplication, so this terminates.
func disambiguateNames(docs []Document) {
	for {
		counts := make(map[string]int, len(docs))
		for _, doc := range docs {
			counts[doc.Name]++
		}
		changed := false
		for i := range docs {
			path := filepath.ToSlash(docs[i].Path)
			if counts[docs[i].Name] > 1 && docs[i].Name != path {
				docs[i].Name = path
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

func (l *Loader) walk(root string, add func(name, path string) error) error {
	root = filepath.Clean(root)
	return afero.Walk(l.fs, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("walk %s: %w", path, err)
		}
		if path == root {
			return nil
		}
		if isHidden(info.Name()) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			if !l.recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() || !l.accepts(path) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = info.Name()
		}
		return add(filepath.ToSlash(rel), path)
	})
}

func (l *Loader) accepts(path string) bool {
	if len(l.extensions) == 0 {
		return true
	}
	_, ok := l.extensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

func (l *Loader) readFile(path string) (string, error) {
	info, err := l.fs.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if l.maxBytes > 0 && info.Size() > l.maxBytes {
		return "", fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrFileTooLarge, path, info.Size(), l.maxBytes)
	}
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// ReadTemplate returns the contents of the template file at path. An empty
// path means no template and yields an empty string.
func (l *Loader) ReadTemplate(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	return l.readFile(filepath.Clean(path))
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
