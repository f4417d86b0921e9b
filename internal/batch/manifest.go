package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one processed record in the output manifest.
type ManifestEntry struct {
	Name        string `json:"name"`
	ParamFile   string `json:"param_file"`
	Scene       string `json:"scene,omitempty"`
	MaterialLib string `json:"material_lib,omitempty"`
	Interchange string `json:"interchange,omitempty"`
	Error       string `json:"error,omitempty"`
}

// WriteManifest writes manifest.json describing every batch result,
// successes with their artifact paths and failures with the error text.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Name:        r.Name,
			ParamFile:   filepath.Base(r.File),
			Scene:       r.Artifacts.Scene,
			MaterialLib: r.Artifacts.MaterialLib,
			Interchange: r.Artifacts.Interchange,
		}
		if r.Err != nil {
			entries[i].Error = r.Err.Error()
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
