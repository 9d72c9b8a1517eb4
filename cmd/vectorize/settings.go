package main

import (
	"os"
	"path/filepath"

	vectorize "github.com/dalefugier/Vectorize"
)

const defaultSettingsHint = "$XDG_CONFIG_HOME/vectorize/settings.toml"

func settingsPath() (string, error) {
	if settingsFile != "" {
		return settingsFile, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "vectorize", "settings.toml"), nil
}

// loadSettings returns the settings store and the parameters saved in it,
// on top of the defaults.
func loadSettings() (*vectorize.FileStore, vectorize.Params, error) {
	p := vectorize.DefaultParams()
	path, err := settingsPath()
	if err != nil {
		return nil, p, err
	}
	fs, err := vectorize.OpenFileStore(path)
	if err != nil {
		return nil, p, err
	}
	p.Load(fs)
	vectorize.Logger().Debug("loaded settings", "path", path, "params", p)
	return fs, p, nil
}

func saveSettings(fs *vectorize.FileStore, p vectorize.Params) error {
	p.Save(fs)
	if err := fs.Flush(); err != nil {
		return err
	}
	vectorize.Logger().Info("saved settings", "path", fs.Path())
	return nil
}
