// Package fonts provides the named font faces text widgets draw with.
//
// A Registry maps short names such as "7x13" or "inconsolata" to faces. It
// starts out with a few fonts compiled into the binary and can load more
// from TrueType, OpenType or Plan 9 font files.
package fonts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/inconsolata"

	"github.com/gogpu/indiepixel/internal/logger"
)

// DefaultFont is the name of the font used when none is given.
const DefaultFont = "7x13"

// Registry is a concurrency-safe set of named faces.
type Registry struct {
	mu    sync.RWMutex
	faces map[string]*Face
}

// NewRegistry returns a registry holding the built-in fonts:
// "7x13", "inconsolata", "inconsolata-bold" and "gomono".
func NewRegistry() *Registry {
	r := &Registry{faces: make(map[string]*Face)}
	r.Register(NewFace(DefaultFont, basicfont.Face7x13))
	r.Register(NewFace("inconsolata", inconsolata.Regular8x16))
	r.Register(NewFace("inconsolata-bold", inconsolata.Bold8x16))

	mono, err := ParseOpenType("gomono", gomono.TTF)
	if err != nil {
		// The data is compiled in; a failure here is a broken build.
		panic(err)
	}
	r.Register(mono)
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns a process-wide registry with only the built-in fonts.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register adds f under f.Name(), replacing any face with the same name.
func (r *Registry) Register(f *Face) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.faces[f.Name()] = f
}

// Face returns the face registered as name. The empty name selects
// DefaultFont. Unknown names yield an *UnknownFontError.
func (r *Registry) Face(name string) (*Face, error) {
	if name == "" {
		name = DefaultFont
	}
	r.mu.RLock()
	f, ok := r.faces[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &UnknownFontError{Name: name, Known: r.Names()}
	}
	return f, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.faces))
	for name := range r.faces {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LoadFile loads one font file and registers it under its file name without
// the extension. Supported extensions are .ttf, .otf and .font (Plan 9).
func (r *Registry) LoadFile(path string, opts ...LoadOption) (*Face, error) {
	data, err := os.ReadFile(path) //nolint:gosec // font paths come from configuration
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var f *Face
	switch ext {
	case ".ttf", ".otf":
		f, err = ParseOpenType(name, data, opts...)
	case ".font":
		dir := filepath.Dir(path)
		f, err = ParsePlan9(name, data, func(sub string) ([]byte, error) {
			return os.ReadFile(filepath.Join(dir, sub)) //nolint:gosec // relative to the font file
		})
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFont, path)
	}
	if err != nil {
		return nil, err
	}

	r.Register(f)
	logger.Get().Debug("font loaded", "name", name, "family", f.Family(), "path", path)
	return f, nil
}

// LoadDir loads every supported font file directly inside dir. Files with
// other extensions are skipped. It returns the names it registered.
func (r *Registry) LoadDir(dir string, opts ...LoadOption) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var (
		names []string
		errs  []error
	)
	for _, e := range entries {
		if e.IsDir() || !supported(e) {
			continue
		}
		f, err := r.LoadFile(filepath.Join(dir, e.Name()), opts...)
		if err != nil {
			logger.Get().Warn("font skipped", "file", e.Name(), "error", err)
			errs = append(errs, err)
			continue
		}
		names = append(names, f.Name())
	}
	return names, errors.Join(errs...)
}

func supported(e fs.DirEntry) bool {
	switch strings.ToLower(filepath.Ext(e.Name())) {
	case ".ttf", ".otf", ".font":
		return true
	}
	return false
}
