package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

const (
	defaultLogLevel  = "warn"
	defaultLogFormat = "console"
)

// fileConfig is the on-disk settings file; command-line flags take precedence.
type fileConfig struct {
	SkipFrontMatter bool   `toml:"skip_front_matter"`
	LogLevel        string `toml:"log_level"`
	LogFormat       string `toml:"log_format"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "embedtoggle", "config.toml")
}

// loadConfig reads path over the defaults. A missing file is only an error
// when the path was given explicitly.
func loadConfig(path string, explicit bool) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}
	path = normalizePath(path)
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return defaultFileConfig(), nil
		}
		return defaultFileConfig(), fmt.Errorf("%s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return defaultFileConfig(), fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

func (c *fileConfig) applyFlags(flags *pflag.FlagSet, f cliFlags) {
	if flags.Changed("skip-front-matter") {
		c.SkipFrontMatter = f.skipFrontMatter
	}
	if flags.Changed("log-level") {
		c.LogLevel = f.logLevel
	}
	if flags.Changed("log-format") {
		c.LogFormat = f.logFormat
	}
}
