package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"pokerhandcensus/internal/util"
)

// Config provides configuration for the poker hand census
type Config struct {
	loaded bool

	// OutputDir is where the three datasets are written
	OutputDir string `yaml:"outputDir" envconfig:"output_dir"`

	// dataset file names within OutputDir
	HandsFile   string `yaml:"handsFile" envconfig:"hands_file"`
	TotalsFile  string `yaml:"totalsFile" envconfig:"totals_file"`
	PreflopFile string `yaml:"preflopFile" envconfig:"preflop_file"`

	// ProgressInterval is how many hands between progress log lines
	ProgressInterval int `yaml:"progressInterval" envconfig:"progress_interval"`

	Log struct {
		Level string `yaml:"level"`
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	cfg := Config{
		OutputDir:        "csv",
		HandsFile:        "all_5card_hands_full_enumeration.csv",
		TotalsFile:       "category_totals.csv",
		PreflopFile:      "preflop_169_heatmap.csv",
		ProgressInterval: 100000,
	}
	cfg.Log.Level = "info"

	return cfg
}

// HandsPath returns the full path of the per-hand dataset
func (c Config) HandsPath() string {
	return c.join(c.HandsFile)
}

// TotalsPath returns the full path of the category totals dataset
func (c Config) TotalsPath() string {
	return c.join(c.TotalsFile)
}

// PreflopPath returns the full path of the preflop grid dataset
func (c Config) PreflopPath() string {
	return c.join(c.PreflopFile)
}

func (c Config) join(name string) string {
	if c.OutputDir == "" {
		return name
	}

	return filepath.Join(c.OutputDir, name)
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. The YAML file is optional unless
// CENSUS_CONFIG_FILE names one explicitly; environment variables with the
// "census" prefix override file values.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("CENSUS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return fmt.Errorf("could not parse %s: %w", configFile, err)
		}
	} else if !os.IsNotExist(err) || os.Getenv("CENSUS_CONFIG_FILE") != "" {
		return err
	}

	if err := envconfig.Process("census", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
