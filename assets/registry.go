package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	trimesh "github.com/MOZGIII/go-trimesh"
	"github.com/MOZGIII/go-trimesh/core"
	"github.com/MOZGIII/go-trimesh/mesh"
)

// Entry is one cached collider builder and its bookkeeping.
type Entry struct {
	ID       uuid.UUID
	Path     string
	Builder  *trimesh.CachedTriMeshBuilder
	LoadedAt time.Time
}

// Registry hands out cached trimesh builders for mesh assets on disk.
// A builder is created the first time its asset is requested and kept
// until the file changes on disk, at which point the entry is dropped
// and the next request reloads it.
type Registry struct {
	config *Config

	mutex   sync.RWMutex
	entries map[string]*Entry

	fsnotify *fsnotify.Watcher
	done     chan struct{}
	isClosed bool
}

// NewRegistry creates a registry for the configured root directory and
// starts watching it for changes.
func NewRegistry(config *Config) (*Registry, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	r := &Registry{
		config:   config,
		entries:  make(map[string]*Entry),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}

	go r.start()

	if err := r.watchRecursive(config.Root); err != nil {
		r.Close()
		return nil, err
	}

	return r, nil
}

// Builder returns the cached builder for the given asset path, loading
// the mesh and paying the extraction cost if it is not cached yet.
func (r *Registry) Builder(path string) (*trimesh.CachedTriMeshBuilder, error) {
	if !r.accepts(path) {
		return nil, fmt.Errorf("not a registered mesh asset extension: %q", path)
	}

	r.mutex.RLock()
	entry, exists := r.entries[path]
	r.mutex.RUnlock()
	if exists {
		return entry.Builder, nil
	}

	m, err := mesh.LoadOBJ(path)
	if err != nil {
		return nil, err
	}
	builder, err := trimesh.NewCachedTriMeshBuilder(m)
	if err != nil {
		return nil, fmt.Errorf("build collider cache for %q: %w", path, err)
	}

	entry = &Entry{
		ID:       uuid.New(),
		Path:     path,
		Builder:  builder,
		LoadedAt: time.Now(),
	}

	r.mutex.Lock()
	r.entries[path] = entry
	r.mutex.Unlock()

	core.LogDebug("cached collider geometry for %s (%s): %d vertices, %d triangles",
		path, entry.ID, len(builder.Vertices), len(builder.Indices))
	return builder, nil
}

// Entry returns the bookkeeping record for a cached asset path.
func (r *Registry) Entry(path string) (*Entry, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	entry, ok := r.entries[path]
	return entry, ok
}

// Invalidate drops the cached builder for the given path, if any. The
// next Builder call for the path reloads it from disk.
func (r *Registry) Invalidate(path string) {
	r.mutex.Lock()
	_, existed := r.entries[path]
	delete(r.entries, path)
	r.mutex.Unlock()

	if existed {
		core.LogDebug("invalidated collider cache for %s", path)
	}
}

// Close stops the watcher and releases the registry's resources.
func (r *Registry) Close() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.isClosed {
		return errors.New("registry already closed")
	}
	r.isClosed = true
	close(r.done)
	return nil
}

func (r *Registry) accepts(path string) bool {
	return slices.Contains(r.config.Extensions, filepath.Ext(path))
}

func (r *Registry) start() {
	for {
		select {
		case e := <-r.fsnotify.Events:
			if e.Op&fsnotify.Create != 0 {
				s, err := os.Stat(e.Name)
				if err == nil && s.IsDir() {
					if err := r.watchRecursive(e.Name); err != nil {
						core.LogError("watch %s: %s", e.Name, err)
					}
					continue
				}
			}
			if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				r.Invalidate(e.Name)
			}
			if e.Op&fsnotify.Remove != 0 {
				r.fsnotify.Remove(e.Name)
			}

		case e := <-r.fsnotify.Errors:
			core.LogError("asset watcher: %s", e.Error())

		case <-r.done:
			r.fsnotify.Close()
			return
		}
	}
}

// watchRecursive adds the directory and all sub-directories to the
// watch list.
func (r *Registry) watchRecursive(root string) error {
	return filepath.Walk(root, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return r.fsnotify.Add(walkPath)
		}
		return nil
	})
}
