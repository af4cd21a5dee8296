// Package config loads ringmix CLI settings from an optional config file,
// RINGMIX_* environment variables and built-in defaults, in that order of
// precedence below command-line flags.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. RINGMIX_INPUT_DIR.
const EnvPrefix = "RINGMIX"

// DefaultFileName is looked up in the home directory when no path is given.
const DefaultFileName = ".ringmix.yaml"

// Config keys.
const (
	KeyInputDir = "input_dir"
	KeyJump     = "jump"
	KeyOutput   = "output"
	KeyLogDebug = "log.debug"
	KeyLogColor = "log.color"
	KeyLogDir   = "log.dir"
	KeyHideTime = "log.hide_time"
	KeyHidePath = "log.hide_path"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Colour modes.
const (
	ColorAlways = "always"
	ColorNever  = "never"
)

// Log holds logging settings.
type Log struct {
	Debug    bool   `mapstructure:"debug"`
	Color    string `mapstructure:"color"`
	Dir      string `mapstructure:"dir"`
	HideTime bool   `mapstructure:"hide_time"`
	HidePath bool   `mapstructure:"hide_path"`
}

// Config is the resolved CLI configuration.
type Config struct {
	// InputDir is searched for <day><part>.txt when no input file is given.
	InputDir string `mapstructure:"input_dir"`
	// Jump is the ring stride; 0 means automatic.
	Jump int `mapstructure:"jump"`
	// Output is one of text, json, yaml.
	Output string `mapstructure:"output"`
	Log    Log    `mapstructure:"log"`
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyInputDir, "./input")
	v.SetDefault(KeyJump, 0)
	v.SetDefault(KeyOutput, OutputText)
	v.SetDefault(KeyLogDebug, false)
	v.SetDefault(KeyLogColor, ColorAlways)
	v.SetDefault(KeyLogDir, "")
	v.SetDefault(KeyHideTime, false)
	v.SetDefault(KeyHidePath, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// DefaultPath returns $HOME/.ringmix.yaml, or "" when home is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, DefaultFileName)
}

// Load reads path into v. A missing file at the default location is not an
// error; a missing explicit path is.
func Load(v *viper.Viper, path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return nil
		}
	}
	if _, err := os.Stat(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to stat config %s", path)
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config %s", path)
	}

	return nil
}

// Decode resolves v into a Config and validates enumerated values.
func Decode(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return errors.Errorf("output must be one of %s, %s, %s, got %q", OutputText, OutputJSON, OutputYAML, c.Output)
	}
	switch c.Log.Color {
	case ColorAlways, ColorNever:
	default:
		return errors.Errorf("log color must be %s or %s, got %q", ColorAlways, ColorNever, c.Log.Color)
	}
	if c.Jump < 0 {
		return errors.Errorf("jump must not be negative, got %d", c.Jump)
	}

	return nil
}
