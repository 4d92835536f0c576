package cmd

import (
	"os"

	"github.com/sortxml/sortxml/internal/config"
)

// defaultConfigFile is picked up from the working directory when --config is
// not given.
const defaultConfigFile = ".sortxml.yaml"

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return config.LoadFromFile(defaultConfigFile)
	}
	return config.Default(), nil
}
