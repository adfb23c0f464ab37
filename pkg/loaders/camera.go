package loaders

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/df07/go-cubemap-raytracer/pkg/renderer"
)

// LoadCameraConfig reads and validates a JSON camera description
func LoadCameraConfig(filename string) (renderer.CameraConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return renderer.CameraConfig{}, fmt.Errorf("failed to read camera config: %w", err)
	}

	var config renderer.CameraConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return renderer.CameraConfig{}, fmt.Errorf("failed to parse camera config %s: %w", filename, err)
	}
	if err := config.Validate(); err != nil {
		return renderer.CameraConfig{}, fmt.Errorf("invalid camera config %s: %w", filename, err)
	}

	return config, nil
}
