package assets

import (
	"context"
	"fmt"
	"image/png"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Loader decodes every PNG below a directory into a Cache
type Loader struct {
	FS    fs.FS
	Cache *Cache
	// Workers bounds concurrent decodes; 0 means one per CPU
	Workers int
}

// NewLoader creates a loader reading from dir
func NewLoader(dir string, cache *Cache) *Loader {
	return &Loader{FS: os.DirFS(dir), Cache: cache}
}

// KeyFor turns a slash path relative to the asset root into an image key
func KeyFor(rel string) string {
	rel = filepath.ToSlash(rel)
	return strings.TrimSuffix(rel, path.Ext(rel))
}

// Load decodes every PNG and stores it in the cache. Files that fail to
// decode are skipped with a warning. Only a failure to walk the tree is
// returned.
func (l *Loader) Load(ctx context.Context) error {
	var files []string
	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(path.Ext(p), ".png") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking assets: %w", err)
	}

	workers := l.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for _, p := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := l.decode(p); err != nil {
				log.Printf("Warning: skipping %s: %v", p, err)
			}
			return nil
		})
	}
	return eg.Wait()
}

// LoadAsync runs Load in the background. The channel receives its result
// once and is then closed.
func (l *Loader) LoadAsync(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- l.Load(ctx)
	}()
	return done
}

func (l *Loader) decode(p string) error {
	f, err := l.FS.Open(p)
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return err
	}
	l.Cache.Put(KeyFor(p), img)
	return nil
}
