package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultCompetition is the active competition before any has been chosen.
const DefaultCompetition = "default"

type Config struct {
	DefaultCompetition string `json:"default_competition"`
}

// Load reads the config file. A missing file yields the default config.
// Competition names are folded to lower case on the way in.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{DefaultCompetition: DefaultCompetition}, nil
	}
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("could not parse config file %s: %v", path, err)
	}

	if config.DefaultCompetition == "" {
		config.DefaultCompetition = DefaultCompetition
	}
	config.DefaultCompetition = strings.ToLower(config.DefaultCompetition)

	return &config, nil
}

func (c *Config) Save(path string) error {
	c.DefaultCompetition = strings.ToLower(c.DefaultCompetition)

	data, err := json.Marshal(c)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("make config dir: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
