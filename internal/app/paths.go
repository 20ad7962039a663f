// Package app provides the application initialization and wiring.
package app

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultDataDir returns the default data directory path.
// Uses ~/.pkgvault for user installations, /var/lib/pkgvault as fallback.
func DefaultDataDir() string {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".pkgvault")
	}
	return "/var/lib/pkgvault"
}

// ConfigureViper sets up viper with standard config file search paths.
// Config file: pkgvault.toml
// Search paths (in order): /etc/pkgvault, ~/.config/pkgvault, current directory
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.SetConfigName("pkgvault")
	v.SetConfigType("toml")
	v.AddConfigPath("/etc/pkgvault")
	v.AddConfigPath("$HOME/.config/pkgvault")
	v.AddConfigPath(".")
}

func resolveDataDir(dataDir string) string {
	if dataDir == "" {
		return DefaultDataDir()
	}
	return dataDir
}
