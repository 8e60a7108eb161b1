package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/pulsenet/internal/compiler"
	"github.com/aretw0/pulsenet/pkg/domain"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce groups the burst of events editors produce on save.
const DefaultDebounce = 100 * time.Millisecond

// Loader implements ports.NetworkLoader and ports.Watchable for a single file.
// Files ending in .yaml or .yml use the structured format, anything else the line format.
type Loader struct {
	Path     string
	Debounce time.Duration
}

// New creates a loader for path.
func New(path string) *Loader {
	return &Loader{Path: path, Debounce: DefaultDebounce}
}

// Name returns the file name without directories.
func (l *Loader) Name() string {
	return filepath.Base(l.Path)
}

// IsYAML reports whether the file uses the structured format.
func (l *Loader) IsYAML() bool {
	ext := strings.ToLower(filepath.Ext(l.Path))
	return ext == ".yaml" || ext == ".yml"
}

// Load reads and parses the file.
func (l *Loader) Load(ctx context.Context) ([]domain.Declaration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read network file: %w", err)
	}

	p := compiler.NewParser()
	if l.IsYAML() {
		return p.ParseYAML(data)
	}
	return p.Parse(string(data))
}

// Watch implements ports.Watchable.
// It watches the parent directory so atomic-rename saves are seen, and filters on the file name.
func (l *Loader) Watch(ctx context.Context) (<-chan string, error) {
	abs, err := filepath.Abs(l.Path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to start watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	ch := make(chan string, 1)

	go func() {
		defer close(ch)
		defer w.Close()

		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != abs {
					continue
				}
				if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) && !evt.Has(fsnotify.Rename) {
					continue
				}
				fire = time.After(l.Debounce)
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			case <-fire:
				fire = nil
				select {
				case ch <- l.Name():
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}
