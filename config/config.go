package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug               = "debug"
	ConfigRackSize            = "rack-size"
	ConfigMaxLiteral          = "max-literal"
	ConfigTolerance           = "tolerance"
	ConfigParallelScan        = "parallel-scan"
	ConfigValidationCacheSize = "validation-cache-size"
	ConfigDistributionPath    = "distribution-path"
	ConfigHistoryFile         = "history-file"
	ConfigCPUProfile          = "cpu-profile"
	ConfigConfigFile          = "config-file"
)

// Config wraps a viper instance. Settings come, in increasing priority,
// from defaults, an optional amath.yaml file, AMATH_* environment variables
// and command-line flags.
type Config struct {
	*viper.Viper
	args []string
}

// DefaultConfig returns a config with only the defaults set. It is mostly
// useful for tests.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigRackSize, 8)
	c.SetDefault(ConfigMaxLiteral, 999)
	c.SetDefault(ConfigTolerance, 1e-4)
	c.SetDefault(ConfigParallelScan, false)
	c.SetDefault(ConfigValidationCacheSize, 0)
	c.SetDefault(ConfigDistributionPath, "")
	c.SetDefault(ConfigHistoryFile, "/tmp/amath-history.tmp")
	c.SetDefault(ConfigCPUProfile, "")
}

// Load loads the config from the passed-in args, the environment and, if it
// exists, a config file.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	c.setDefaults()

	fs := pflag.NewFlagSet("amath", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Int(ConfigRackSize, 8, "number of tiles in each tray")
	fs.Float64(ConfigMaxLiteral, 999, "the largest number literal an equation may contain")
	fs.Float64(ConfigTolerance, 1e-4, "how close both sides of an equation must be")
	fs.Bool(ConfigParallelScan, false, "scan rows and columns concurrently")
	fs.Int(ConfigValidationCacheSize, 0, "how many validated runs to remember; 0 sizes the cache from system memory")
	fs.String(ConfigDistributionPath, "", "path to a tile distribution csv; the built-in A-Math distribution is used if empty")
	fs.String(ConfigHistoryFile, "/tmp/amath-history.tmp", "readline history file for the shell")
	fs.String(ConfigCPUProfile, "", "write a cpu profile to this path")
	fs.String(ConfigConfigFile, "", "path to a config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("amath")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if cf := c.GetString(ConfigConfigFile); cf != "" {
		c.SetConfigFile(cf)
	} else {
		c.SetConfigName("amath")
		c.SetConfigType("yaml")
		c.AddConfigPath(".")
		if home, err := os.UserConfigDir(); err == nil {
			c.AddConfigPath(filepath.Join(home, "amath"))
		}
	}
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

// AdjustRelativePaths makes relative data paths relative to the given
// base directory, usually the directory of the executable.
func (c *Config) AdjustRelativePaths(basepath string) {
	p := c.GetString(ConfigDistributionPath)
	if p != "" && !filepath.IsAbs(p) {
		c.Set(ConfigDistributionPath, filepath.Join(basepath, p))
	}
}

// Args returns the positional (non-flag) arguments left over after Load.
func (c *Config) Args() []string {
	return c.args
}

// SanitizedSettings returns the settings for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
