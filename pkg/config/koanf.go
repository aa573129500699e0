package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/pkgls/pkg/errors"
	"github.com/arthur-debert/pkgls/pkg/logging"
	"github.com/arthur-debert/pkgls/pkg/packagelist"
	"github.com/arthur-debert/pkgls/pkg/paths"
)

const (
	// EnvPrefix is stripped from environment variables mapped onto config keys.
	EnvPrefix = "PKGLS_"
	// EnvConfigFile points at a config file, replacing the XDG lookup.
	EnvConfigFile = "PKGLS_CONFIG"
)

// Override keys accepted by Load.
const (
	KeyManager      = "manager"
	KeyColor        = "color"
	KeyOutputFormat = "output.format"
	KeyStyles       = "styles"
)

var envKeys = map[string]string{
	"manager":       KeyManager,
	"color":         KeyColor,
	"output_format": KeyOutputFormat,
	"styles":        KeyStyles,
}

// OutputConfig controls how listings are written to files.
type OutputConfig struct {
	Format string `koanf:"format"`
}

// Config is the resolved pkgls configuration.
type Config struct {
	Manager string       `koanf:"manager"`
	Color   bool         `koanf:"color"`
	Output  OutputConfig `koanf:"output"`
	// Styles is an optional YAML file replacing the built-in terminal styles.
	Styles  string       `koanf:"styles"`
}

// Load resolves the configuration from all layers. Overrides are flat koanf
// keys (see KeyManager and friends) and win over everything else.
func Load(overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")
	log := logging.GetLogger("config")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	path, err := UserConfigPath()
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
				WithDetail("path", path)
		}
		log.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return envKeys[strings.ToLower(strings.TrimPrefix(s, EnvPrefix))]
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Command-line overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if os.Getenv("NO_COLOR") != "" {
		cfg.Color = false
	}
	cfg.Manager = strings.TrimSpace(cfg.Manager)
	cfg.Styles = paths.ExpandHome(cfg.Styles)

	if cfg.Output.Format != "" {
		if _, ok := packagelist.ParseFormat(cfg.Output.Format); !ok {
			return nil, errors.Newf(errors.ErrConfigParse, "invalid output format '%s'", cfg.Output.Format).
				WithDetail("format", cfg.Output.Format)
		}
	}

	return &cfg, nil
}

// UserConfigPath returns the config file to load, or "" when there is none.
// A path named by PKGLS_CONFIG must exist.
func UserConfigPath() (string, error) {
	if path := paths.ExpandHome(os.Getenv(EnvConfigFile)); path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s is not readable", path).
				WithDetail("path", path)
		}
		return path, nil
	}

	for _, path := range paths.ConfigFiles() {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// OutputFormat returns the configured output format, if any.
func (c *Config) OutputFormat() (packagelist.Format, bool) {
	if c.Output.Format == "" {
		return "", false
	}
	return packagelist.ParseFormat(c.Output.Format)
}
