package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/match.yaml
var defaultMatchYAML []byte

// FileName is the name looked up in the user and local config dirs.
const FileName = "match.yaml"

// Default returns the embedded default configuration with environment
// overrides applied.
func Default() (File, error) {
	var f File
	if err := yaml.Unmarshal(defaultMatchYAML, &f); err != nil {
		return f, fmt.Errorf("config: parse embedded default: %w", err)
	}
	if err := cleanenv.ReadEnv(&f); err != nil {
		return f, fmt.Errorf("config: read environment: %w", err)
	}
	return f, nil
}

// Load reads the match configuration and applies REVERSI_* environment
// overrides.
// Search order: customPath -> ~/.reversi/match.yaml -> ./configs/match.yaml -> embedded default.
// Only a broken customPath is an error; unreadable files further down
// the list are skipped.
func Load(customPath string) (File, error) {
	if customPath != "" {
		return readFile(customPath)
	}

	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if f, err := readFile(userCfgPath); err == nil {
			return f, nil
		}
	}

	if f, err := readFile(filepath.Join("configs", FileName)); err == nil {
		return f, nil
	}

	return Default()
}

// Source reports which file Load would read, or "embedded" when none.
func Source(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, p := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if p == "" {
			continue
		}
		if _, err := readFile(p); err == nil {
			return p
		}
	}
	return "embedded"
}

func readFile(path string) (File, error) {
	var f File
	if err := cleanenv.ReadConfig(path, &f); err != nil {
		return File{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return f, nil
}

// userConfigPath returns the path to the user config file, or empty if
// home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".reversi", filename)
}
