package config

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

var configDir string

func init() {
	home, _ := homedir.Dir()
	configDir = filepath.Join(home, ".greeter")
}

// GetConfigDir returns the greeter config directory
func GetConfigDir() string {
	return configDir
}
