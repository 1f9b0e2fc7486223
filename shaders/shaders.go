// Package shaders holds the wgsl sources. Sources are embedded into the binary
// and can be overridden by files in a directory on disk.
package shaders

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	Quad     = "quad.wgsl"
	Geometry = "geometry.wgsl"
	Overlay  = "overlay.wgsl"
)

//go:embed *.wgsl
var embedded embed.FS

// Library resolves shader sources by name.
type Library struct {
	// optional directory with sources taking precedence over the embedded ones
	dir string
}

func NewLibrary(dir string) *Library {
	return &Library{dir: dir}
}

// Embedded returns a library that only serves the embedded sources.
func Embedded() *Library {
	return &Library{}
}

// Load returns the source of the named shader.
func (l *Library) Load(name string) (string, error) {
	if l.dir != "" {
		buf, err := os.ReadFile(filepath.Join(l.dir, name))
		switch {
		case err == nil:
			slog.Debug("Load shader from disk", slog.String("shader", name), slog.String("dir", l.dir))
			return string(buf), nil

		case !errors.Is(err, fs.ErrNotExist):
			return "", fmt.Errorf("read shader %q: %w", name, err)
		}
	}

	buf, err := embedded.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("unknown shader %q: %w", name, err)
	}

	return string(buf), nil
}

// MustLoad is Load for the embedded sources, which always exist.
func (l *Library) MustLoad(name string) string {
	source, err := l.Load(name)
	if err != nil {
		panic(err)
	}

	return source
}

// Names lists the names of all embedded shaders.
func Names() []string {
	entries, _ := fs.Glob(embedded, "*.wgsl")
	return entries
}
