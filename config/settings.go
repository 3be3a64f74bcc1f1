package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings mirrors the optional settings.yaml file read once at startup.
// Zero fields leave the compiled-in defaults untouched.
type Settings struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	LevelPath    string `yaml:"level"`
	ScriptDir    string `yaml:"scripts"`
	WatchScripts *bool  `yaml:"watch_scripts"`
	SkipMenu     bool   `yaml:"skip_menu"`
}

// LoadSettings reads a settings file. A missing file is not an error;
// nil is returned so the caller keeps the defaults.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ApplySettings merges a loaded settings file over the defaults.
func ApplySettings(s *Settings) {
	if s == nil {
		return
	}
	if s.Width > 0 {
		C.Width = s.Width
	}
	if s.Height > 0 {
		C.Height = s.Height
	}
	if s.LevelPath != "" {
		C.LevelPath = s.LevelPath
	}
	if s.ScriptDir != "" {
		C.ScriptDir = s.ScriptDir
	}
	if s.WatchScripts != nil {
		C.WatchScripts = *s.WatchScripts
	}
	if s.SkipMenu {
		Debug.SkipMenu = true
	}
}
