package shaders

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to shader files in a directory.
type Watcher struct {
	watcher *fsnotify.Watcher
}

func Watch(dir string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %q: %w", dir, err)
	}

	slog.Info("Watching shaders", slog.String("dir", dir))

	return &Watcher{watcher: watcher}, nil
}

// Changed returns the names of all shaders that changed since the last call.
// It never blocks.
func (w *Watcher) Changed() []string {
	var changed []string

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return changed
			}

			name, relevant := relevantEvent(event)
			if relevant && !slices.Contains(changed, name) {
				slog.Info("Shader changed", slog.String("shader", name), slog.String("op", event.Op.String()))
				changed = append(changed, name)
			}

		case err, ok := <-w.watcher.Errors:
			if ok {
				slog.Warn("Shader watcher failed", slog.Any("err", err))
			}

		default:
			return changed
		}
	}
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func relevantEvent(event fsnotify.Event) (string, bool) {
	if filepath.Ext(event.Name) != ".wgsl" {
		return "", false
	}

	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return "", false
	}

	return filepath.Base(event.Name), true
}
