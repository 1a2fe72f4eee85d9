package cli

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/lithium/internal/model"
)

// loadConfig builds the active configuration: built-in defaults, overlaid
// with the YAML config file if one was found, overlaid with environment
// variables and flags bound through viper.
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if path := viper.ConfigFileUsed(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if viper.IsSet("passing_score") {
		cfg.Scoring.PassingScore = viper.GetFloat64("passing_score")
	}
	if viper.IsSet("concurrency") {
		cfg.Batch.Concurrency = viper.GetInt("concurrency")
	}
	if viper.IsSet("no_cache") && viper.GetBool("no_cache") {
		cfg.Cache.Enabled = false
	}

	return cfg, nil
}

// readSources reads each source file, returning its full text as one
// source entry. "-" is not valid here; sources are files.
func readSources(paths []string) ([]string, error) {
	sources := make([]string, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read source %s: %w", path, err)
		}
		sources = append(sources, string(data))
	}
	return sources, nil
}
