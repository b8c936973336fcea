// Package config loads the optional application config file. Unlike the
// user data document, the config is operator-owned, so a malformed file is
// an error rather than something to silently repair.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"daylog/internal/app"
)

type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Autosave AutosaveConfig `yaml:"autosave"`
	Export   ExportConfig   `yaml:"export"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

type AutosaveConfig struct {
	DelayMS int `yaml:"delay_ms"`
}

type ExportConfig struct {
	Dir string `yaml:"dir"`
}

func Default() (Config, error) {
	dataPath, err := app.DefaultDataPath()
	if err != nil {
		return Config{}, err
	}
	return Config{
		Storage:  StorageConfig{Path: dataPath},
		Autosave: AutosaveConfig{DelayMS: 800},
		Export:   ExportConfig{Dir: "."},
	}, nil
}

// Load reads the config at path, filling unset fields from defaults. A
// missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var loaded Config
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if loaded.Storage.Path != "" {
		cfg.Storage.Path = loaded.Storage.Path
	}
	if loaded.Autosave.DelayMS > 0 {
		cfg.Autosave.DelayMS = loaded.Autosave.DelayMS
	}
	if loaded.Export.Dir != "" {
		cfg.Export.Dir = loaded.Export.Dir
	}
	return cfg, nil
}

// AutosaveDelay returns the debounce delay as a duration.
func (c Config) AutosaveDelay() time.Duration {
	return time.Duration(c.Autosave.DelayMS) * time.Millisecond
}
