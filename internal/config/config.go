package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"capacity/internal/dirs"
	"capacity/pkg/capacity"
)

// Config is the effective configuration after merging flags, environment
// and the config file.
type Config struct {
	Verbose   bool               `mapstructure:"verbose"`
	Lenient   bool               `mapstructure:"lenient"`
	Comma     bool               `mapstructure:"comma"`
	WarnAbove capacity.ByteCount `mapstructure:"warn_above"`
}

// flagKeys maps persistent flag names to Viper keys.
var flagKeys = map[string]string{
	"verbose":    "verbose",
	"lenient":    "lenient",
	"comma":      "comma",
	"warn-above": "warn_above",
}

// AddFlags registers the persistent flags backed by configuration.
func AddFlags(fs *pflag.FlagSet) {
	var warnAbove capacity.ByteCount
	fs.String("config", "", "Config file (default is config.yaml in the user config dir)")
	fs.BoolP("verbose", "v", false, "Enable debug logging")
	fs.Bool("lenient", false, "Accept decimal magnitudes such as 1.5K when parsing")
	fs.Bool("comma", false, "Group the digits of byte counts with commas")
	fs.Var(&warnAbove, "warn-above", "Warn about values larger than this size; 0 disables")
}

// Init wires Viper with config paths, env, defaults, and flag bindings.
// A missing config file is not an error unless it was named explicitly.
func Init(v *viper.Viper, fs *pflag.FlagSet) error {
	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
	} else {
		if cfgDir, err := dirs.ConfigDir(); err == nil {
			v.AddConfigPath(cfgDir)
		}
		v.SetConfigName("config") // supports config.{yaml|yml|json|toml}
	}

	v.SetDefault("verbose", false)
	v.SetDefault("lenient", false)
	v.SetDefault("comma", false)
	v.SetDefault("warn_above", "0")

	// Environment variables: CAPACITY_*
	v.SetEnvPrefix("CAPACITY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// Load decodes the merged settings into a Config. Size values may be
// written as "4K" or "1.5G" as well as plain integers.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// WriteDefault writes the effective settings to path, or to the default
// config file when path is empty, and returns the path written. An existing
// file is left untouched and reported as an error.
func WriteDefault(v *viper.Viper, path string) (string, error) {
	if path == "" {
		p, err := dirs.ConfigFile()
		if err != nil {
			return "", err
		}
		path = p
	}
	cfg, err := Load(v)
	if err != nil {
		return "", err
	}
	if err := dirs.Ensure(filepath.Dir(path)); err != nil {
		return "", err
	}
	out := viper.New()
	out.Set("verbose", cfg.Verbose)
	out.Set("lenient", cfg.Lenient)
	out.Set("comma", cfg.Comma)
	out.Set("warn_above", cfg.WarnAbove.String())
	if err := out.SafeWriteConfigAs(path); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
