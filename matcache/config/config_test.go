package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	internal "github.com/ZanzyTHEbar/matcache/matcache"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ConfigTestSuite tests the config package functionality
type ConfigTestSuite struct {
	suite.Suite
	tempDir string
	origDir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) SetupTest() {
	// The package shares module-level viper state; start each test clean.
	viper.Reset()

	var err error
	suite.origDir, err = os.Getwd()
	require.NoError(suite.T(), err)

	tempDir, err := os.MkdirTemp("", "matcache-config-test-*")
	require.NoError(suite.T(), err)
	suite.tempDir = tempDir

	err = os.Chdir(tempDir)
	require.NoError(suite.T(), err)
}

func (suite *ConfigTestSuite) TearDownTest() {
	if suite.origDir != "" {
		os.Chdir(suite.origDir)
	}
	if suite.tempDir != "" {
		os.RemoveAll(suite.tempDir)
	}
}

func (suite *ConfigTestSuite) TestLoadConfigWithDefaults() {
	cfg, err := LoadConfig("")

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), cfg)

	assert.Equal(suite.T(), internal.DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(suite.T(), internal.DefaultLogFormat, cfg.Logging.Format)
	assert.True(suite.T(), cfg.Solver.Instrument)
	assert.Equal(suite.T(), internal.DefaultConditionTolerance, cfg.Solver.ConditionTolerance)
}

func (suite *ConfigTestSuite) TestLoadConfigWithFile() {
	configContent := `
logging:
  level: "debug"
  format: "json"
solver:
  instrument: false
  condition_tolerance: 1000000
`
	err := os.WriteFile(filepath.Join(suite.tempDir, "config.yaml"), []byte(configContent), 0o644)
	require.NoError(suite.T(), err)

	cfg, err := LoadConfig("")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "debug", cfg.Logging.Level)
	assert.Equal(suite.T(), "json", cfg.Logging.Format)
	assert.False(suite.T(), cfg.Solver.Instrument)
	assert.Equal(suite.T(), float64(1000000), cfg.Solver.ConditionTolerance)
}

func (suite *ConfigTestSuite) TestLoadConfigWithExplicitPath() {
	configContent := `
logging:
  level: "warn"
`
	path := filepath.Join(suite.tempDir, "custom.yaml")
	err := os.WriteFile(path, []byte(configContent), 0o644)
	require.NoError(suite.T(), err)

	cfg, err := LoadConfig(path)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "warn", cfg.Logging.Level)
	// Untouched sections keep their defaults.
	assert.True(suite.T(), cfg.Solver.Instrument)
}

func (suite *ConfigTestSuite) TestLoadConfigEnvOverride() {
	suite.T().Setenv("LOGGING_LEVEL", "trace")
	suite.T().Setenv("SOLVER_INSTRUMENT", "false")

	cfg, err := LoadConfig("")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "trace", cfg.Logging.Level)
	assert.False(suite.T(), cfg.Solver.Instrument)
}

func (suite *ConfigTestSuite) TestWatchConfigReloadsOnFileChange() {
	path := filepath.Join(suite.tempDir, "config.yaml")
	err := os.WriteFile(path, []byte("logging:\n  level: \"info\"\n"), 0o644)
	require.NoError(suite.T(), err)

	cfg, err := LoadConfig(path)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "info", cfg.Logging.Level)

	// A write may fire more than one fsnotify event; drain until the
	// refreshed value shows up.
	changed := make(chan string, 4)
	WatchConfig(func(c *Config) {
		select {
		case changed <- c.Logging.Level:
		default:
		}
	})

	err = os.WriteFile(path, []byte("logging:\n  level: \"debug\"\n"), 0o644)
	require.NoError(suite.T(), err)

	deadline := time.After(5 * time.Second)
	for {
		select {
		case level := <-changed:
			if level == "debug" {
				assert.Equal(suite.T(), "debug", AppConfig.Logging.Level)
				return
			}
		case <-deadline:
			suite.T().Fatal("config change callback never delivered the refreshed value")
		}
	}
}

func (suite *ConfigTestSuite) TestLoadConfigBadFile() {
	path := filepath.Join(suite.tempDir, "broken.yaml")
	err := os.WriteFile(path, []byte("logging: [not: valid"), 0o644)
	require.NoError(suite.T(), err)

	_, err = LoadConfig(path)
	assert.Error(suite.T(), err)
}
