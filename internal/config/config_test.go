package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := setEnv("CENSUS_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := setEnv("CENSUS_TOTALS_FILE", "totals-override.csv")
	defer clear2()
	config.loaded = false

	a := assert.New(t)
	cfg := Instance()
	a.Equal("/tmp/census-test", cfg.OutputDir)
	a.Equal("hands.csv", cfg.HandsFile)
	a.Equal("totals-override.csv", cfg.TotalsFile)
	a.Equal(50000, cfg.ProgressInterval)
	a.Equal("debug", cfg.Log.Level)

	// defaults survive when neither file nor env sets them
	a.Equal("preflop_169_heatmap.csv", cfg.PreflopFile)

	// ensure that it's only loaded once
	_ = os.Setenv("CENSUS_TOTALS_FILE", "totals-override-2.csv")
	// ensure we aren't using a pointer
	cfg.TotalsFile = "bad"
	cfg = Instance()
	a.Equal("totals-override.csv", cfg.TotalsFile)
}

func TestDefaults(t *testing.T) {
	clear1 := setEnv("CENSUS_CONFIG_FILE", "")
	defer clear1()
	config.loaded = false

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, "csv", cfg.OutputDir)
	assert.Equal(t, "all_5card_hands_full_enumeration.csv", cfg.HandsFile)
	assert.Equal(t, "category_totals.csv", cfg.TotalsFile)
	assert.Equal(t, 100000, cfg.ProgressInterval)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_missingExplicitFile(t *testing.T) {
	clear1 := setEnv("CENSUS_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear1()
	config.loaded = false

	assert.Error(t, Load())
}

func TestConfig_paths(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join("csv", "all_5card_hands_full_enumeration.csv"), cfg.HandsPath())
	assert.Equal(t, filepath.Join("csv", "category_totals.csv"), cfg.TotalsPath())
	assert.Equal(t, filepath.Join("csv", "preflop_169_heatmap.csv"), cfg.PreflopPath())

	cfg.OutputDir = ""
	assert.Equal(t, "category_totals.csv", cfg.TotalsPath())
}

func setEnv(key, val string) func() {
	orig := os.Getenv(key)
	if val == "" {
		_ = os.Unsetenv(key)
	} else {
		_ = os.Setenv(key, val)
	}
	return func() {
		if orig == "" {
			_ = os.Unsetenv(key)
		} else {
			_ = os.Setenv(key, orig)
		}
	}
}
