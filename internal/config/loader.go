package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const siegeFile = "siege.yaml"

// LoadSiege loads the simulation configuration.
// Search order: customPath -> ~/.siege/configs/siege.yaml -> ./configs/siege.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides the
// keys it sets.
func LoadSiege(customPath string) (SiegeConfig, error) {
	cfg := embeddedSiege()

	// Custom path errors are reported; the other locations are optional
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(siegeFile), filepath.Join("configs", siegeFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := embeddedSiege()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if candidate.Validate() == nil {
			return candidate, nil
		}
	}

	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg SiegeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// embeddedSiege decodes the embedded YAML, falling back to the hard-coded
// defaults if it is unreadable.
func embeddedSiege() SiegeConfig {
	var cfg SiegeConfig
	if err := yaml.Unmarshal(defaultSiegeYAML, &cfg); err != nil {
		return DefaultSiegeConfig()
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".siege", "configs", filename)
}
