package render

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cookrun/cookrun/internal/model"
	"gopkg.in/yaml.v3"
)

// Renderer materializes run reports for callers and files.
type Renderer struct{}

// NewRenderer creates a new renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderJSON renders a run report as JSON.
func (r *Renderer) RenderJSON(report *model.RunReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}

// RenderYAML renders a run report as YAML.
func (r *Renderer) RenderYAML(report *model.RunReport) ([]byte, error) {
	return yaml.Marshal(report)
}

// WriteReport writes a run report to a file, choosing JSON or YAML from the
// file extension (JSON by default).
func (r *Renderer) WriteReport(report *model.RunReport, path string) error {
	var data []byte
	var err error

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		data, err = r.RenderYAML(report)
	default:
		data, err = r.RenderJSON(report)
	}
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}

	return nil
}
