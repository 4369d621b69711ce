package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSONFromEnv resolves pathEnvVar to a file path and decodes that file
// into a *Config. An unset variable or a path that does not point at a
// regular file yields an empty config: both files are optional by contract.
func parseJSONFromEnv(pathEnvVar string) (*Config, error) {
	path := os.Getenv(pathEnvVar)
	if path == "" || !isFile(path) {
		return &Config{}, nil
	}

	return parseJSON(path)
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var cfg Config
	if err := json.NewDecoder(jsonFile).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &cfg, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
