package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// LoadSettings reads settings.toml from dir. A missing file is created from
// the commented template and the defaults are returned. Keys absent from an
// existing file keep their default values.
func LoadSettings(dir string) (*Settings, error) {
	cfg := DefaultSettings()
	settingsPath := GetSettingsFilePath(dir)

	if !FileExists(settingsPath) {
		if err := CreateDefaultSettings(dir); err != nil {
			return nil, errors.Wrap(err, "failed to create settings")
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(settingsPath, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", settingsPath)
	}

	return cfg, nil
}

// CreateDefaultSettings writes the settings template if no settings file exists.
func CreateDefaultSettings(dir string) error {
	if err := EnsureDir(dir); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	settingsPath := GetSettingsFilePath(dir)
	if FileExists(settingsPath) {
		return nil
	}

	if err := os.WriteFile(settingsPath, []byte(GenerateSettingsTemplate()), 0600); err != nil {
		return errors.Wrap(err, "failed to write settings")
	}

	return nil
}
