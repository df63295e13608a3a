package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader loads configuration from JSON/YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadPhysics loads physics.json on top of DefaultPhysics
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "physics.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read physics.json: %w", err)
	}

	cfg := DefaultPhysics()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse physics.json: %w", err)
	}

	return cfg, nil
}

// LoadLevel loads levels/<name>.json, falling back to levels/<name>.yaml
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	var cfg LevelConfig

	jsonPath := "levels/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, jsonPath)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		data, err = fs.ReadFile(l.fsys, "levels/"+name+".yaml")
		if err != nil {
			return nil, fmt.Errorf("failed to read level %s: %w", name, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse level %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("failed to read level %s: %w", name, err)
	}

	if cfg.ID == "" {
		cfg.ID = name
	}
	return &cfg, nil
}
