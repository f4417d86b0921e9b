package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Faultbox/logforge/internal/surface"
	"github.com/Faultbox/logforge/pkg/mesh"
)

// Artifacts lists the files written for one log.
type Artifacts struct {
	Scene       string
	MaterialLib string
	Interchange string
}

// Exporter writes one artifact set per log under its two output
// directories, {name}.obj and {name}.mtl in SceneDir and {name}.stl in
// InterchangeDir. Directories are created on demand.
type Exporter struct {
	SceneDir       string
	InterchangeDir string
}

// Export writes the scene pair and the interchange file for one log.
// Failures surface as *surface.ExternalResourceError naming the path.
func (e *Exporter) Export(log *mesh.Log, s surface.Surfacing) (Artifacts, error) {
	if err := os.MkdirAll(e.SceneDir, 0o755); err != nil {
		return Artifacts{}, &surface.ExternalResourceError{Path: e.SceneDir, Err: err}
	}
	if err := os.MkdirAll(e.InterchangeDir, 0o755); err != nil {
		return Artifacts{}, &surface.ExternalResourceError{Path: e.InterchangeDir, Err: err}
	}

	a := Artifacts{
		Scene:       filepath.Join(e.SceneDir, log.Name+".obj"),
		MaterialLib: filepath.Join(e.SceneDir, log.Name+".mtl"),
		Interchange: filepath.Join(e.InterchangeDir, log.Name+".stl"),
	}

	if err := writeFile(a.Scene, func(f *os.File) error {
		return WriteOBJ(f, log, s, filepath.Base(a.MaterialLib))
	}); err != nil {
		return Artifacts{}, err
	}
	if err := writeFile(a.MaterialLib, func(f *os.File) error {
		return WriteMTL(f, s)
	}); err != nil {
		return Artifacts{}, err
	}
	if err := WriteSTL(a.Interchange, log); err != nil {
		return Artifacts{}, &surface.ExternalResourceError{Path: a.Interchange, Err: err}
	}
	return a, nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return &surface.ExternalResourceError{Path: path, Err: err}
	}
	if err := write(f); err != nil {
		f.Close()
		return &surface.ExternalResourceError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &surface.ExternalResourceError{Path: path, Err: fmt.Errorf("closing: %w", err)}
	}
	return nil
}
