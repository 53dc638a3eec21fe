package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"

	"github.com/gogpu/indiepixel"
	"github.com/gogpu/indiepixel/tree"
)

// ErrNotFound is returned for names that are not in the catalog.
var ErrNotFound = errors.New("server: widget not found")

// entry is one definition file and the result of parsing it.
type entry struct {
	path string
	node *tree.Node
	err  error
}

// Catalog is the set of widget definitions served, keyed by file stem. It is
// either a single file or every definition file directly inside a directory.
// Parsed definitions are cached until Watch sees the file change.
type Catalog struct {
	root string
	dir  bool

	mu      sync.RWMutex
	entries map[string]*entry
	assets  *tree.AssetCache
	logger  *log.Entry
}

// NewCatalog loads the definition file or directory at path.
func NewCatalog(path string) (*Catalog, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if _, err := tree.FormatOf(abs); err != nil {
			return nil, err
		}
	}

	c := &Catalog{
		root:    abs,
		dir:     info.IsDir(),
		entries: make(map[string]*entry),
		assets:  tree.NewAssetCache(64),
		logger:  log.WithField("component", "catalog"),
	}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// stem returns the catalog name of a definition file.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Reload rereads every definition file. Files that fail to parse stay in the
// catalog and report their error when requested.
func (c *Catalog) Reload() error {
	paths := []string{c.root}
	if c.dir {
		des, err := os.ReadDir(c.root)
		if err != nil {
			return err
		}
		paths = paths[:0]
		for _, de := range des {
			if de.IsDir() || !isDefinition(de.Name()) {
				continue
			}
			paths = append(paths, filepath.Join(c.root, de.Name()))
		}
	}

	entries := make(map[string]*entry, len(paths))
	for _, p := range paths {
		e := load(p)
		if prev, ok := entries[stem(p)]; ok {
			c.logger.Warnf("Both %s and %s define %q, using the first", prev.path, p, stem(p))
			continue
		}
		entries[stem(p)] = e
	}

	c.mu.Lock()
	c.entries = entries
	c.mu.Unlock()
	c.logger.Debugf("Loaded %d widget definitions from %s", len(entries), c.root)
	return nil
}

func isDefinition(name string) bool {
	return slices.Contains(tree.Extensions, strings.ToLower(filepath.Ext(name)))
}

func load(path string) *entry {
	n, err := tree.LoadFile(path)
	return &entry{path: path, node: n, err: err}
}

// Names returns the catalog names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Node returns the parsed definition of name.
func (c *Catalog) Node(name string) (*tree.Node, error) {
	e, err := c.lookup(name)
	if err != nil {
		return nil, err
	}
	return e.node, nil
}

func (c *Catalog) lookup(name string) (*entry, error) {
	c.mu.RLock()
	e, ok := c.entries[name]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if e.err != nil {
		return nil, e.err
	}
	return e, nil
}

// Build builds a fresh widget tree for name. Relative image paths resolve
// against the definition's directory.
func (c *Catalog) Build(name string, opts ...tree.EnvOption) (indiepixel.Widget, error) {
	e, err := c.lookup(name)
	if err != nil {
		return nil, err
	}
	opts = append(opts[:len(opts):len(opts)], tree.WithBaseDir(filepath.Dir(e.path)), tree.WithAssetCache(c.assets))
	return e.node.Build(tree.NewEnv(opts...))
}

// refresh reloads or drops the entry for one changed file.
func (c *Catalog) refresh(path string) {
	if !isDefinition(path) {
		return
	}
	if !c.dir && path != c.root {
		return
	}

	name := stem(path)
	if _, err := os.Stat(path); err != nil {
		c.mu.Lock()
		if e, ok := c.entries[name]; ok && e.path == path {
			delete(c.entries, name)
		}
		c.mu.Unlock()
		c.logger.Infof("Removed %s", name)
		return
	}

	e := load(path)
	c.mu.Lock()
	c.entries[name] = e
	c.mu.Unlock()
	if e.err != nil {
		c.logger.WithError(e.err).Warnf("Reloaded %s with errors", name)
	} else {
		c.logger.Infof("Reloaded %s", name)
	}
}

// Watch keeps the catalog in sync with the file system until ctx is done.
func (c *Catalog) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() {
		_ = w.Close()
	}()

	dir := c.root
	if !c.dir {
		// Editors often replace files, so watch the directory.
		dir = filepath.Dir(c.root)
	}
	if err := w.Add(dir); err != nil {
		return err
	}
	c.logger.Debugf("Watching %s", dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				c.refresh(event.Name)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			c.logger.WithError(err).Warn("Watcher error")
		}
	}
}
