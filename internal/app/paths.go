package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName     = "daylog"
	dataFileName   = "daylog.json"
	configFileName = "config.yaml"
)

func DefaultDataPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, dataFileName), nil
}

func DefaultConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, configFileName), nil
}
