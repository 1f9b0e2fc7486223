package pulse

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// ShaderError is returned if a shader could not be compiled. Diagnostics
// holds the compiler output.
type ShaderError struct {
	Name        string
	Diagnostics string
	Err         error
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("compile shader %q: %s", e.Name, e.Diagnostics)
}

func (e *ShaderError) Unwrap() error {
	return e.Err
}

var reEntryPoint = regexp.MustCompile(`@(vertex|fragment|compute)(?:\s+@workgroup_size\([^)]*\))?\s+fn\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(`)

// EntryPoints lists the names of all functions annotated as shader stage entry
// points in the given wgsl source.
func EntryPoints(source string) []string {
	var names []string

	for _, match := range reEntryPoint.FindAllStringSubmatch(source, -1) {
		names = append(names, match[2])
	}

	return names
}

// CheckEntryPoints verifies that the source declares all the given entry points.
func CheckEntryPoints(name, source string, required ...string) error {
	declared := EntryPoints(source)

	var missing []string
	for _, entryPoint := range required {
		if !slices.Contains(declared, entryPoint) {
			missing = append(missing, entryPoint)
		}
	}

	if len(missing) > 0 {
		return &ShaderError{
			Name:        name,
			Diagnostics: "missing entry point " + strings.Join(missing, ", "),
		}
	}

	return nil
}

// CompileShader creates a shader module from wgsl source. Compiler
// failures are returned as *ShaderError.
func CompileShader(dev *wgpu.Device, name, source string, entryPoints ...string) (*wgpu.ShaderModule, error) {
	if err := CheckEntryPoints(name, source, entryPoints...); err != nil {
		slog.Error("Shader is invalid", slog.String("shader", name), slog.Any("err", err))
		return nil, err
	}

	module, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:      name,
		WGSLSource: &wgpu.ShaderSourceWGSL{Code: source},
	})

	if err != nil {
		shaderErr := &ShaderError{Name: name, Diagnostics: err.Error(), Err: err}
		slog.Error("Shader compilation failed",
			slog.String("shader", name),
			slog.String("diagnostics", shaderErr.Diagnostics),
		)

		return nil, shaderErr
	}

	slog.Debug("Shader compiled", slog.String("shader", name))

	return module, nil
}
