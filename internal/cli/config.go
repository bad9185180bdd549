package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the taskhive.yaml configuration structure
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`

	Database struct {
		URL            string `yaml:"url"`
		MaxConnections int    `yaml:"max_connections"`
	} `yaml:"database"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// LoadConfig reads the yaml config, applying defaults for anything
// unset. A missing file is not an error when no path was given; the
// defaults and environment take over.
func LoadConfig(path string) (*Config, error) {
	var config Config

	if path == "" {
		locations := []string{"taskhive.yaml", "taskhive.yml", ".taskhive.yaml"}
		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if v := os.Getenv("TASKHIVE_ADDR"); v != "" {
		config.Server.Addr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.Database.URL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		config.Log.Level = v
	}

	if config.Server.Addr == "" {
		config.Server.Addr = ":8080"
	}
	if config.Database.MaxConnections == 0 {
		config.Database.MaxConnections = 25
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}

	return &config, nil
}
