package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/graphinsight/pkg/errors"
	"github.com/matzehuels/graphinsight/pkg/io"
	"github.com/matzehuels/graphinsight/pkg/schema"
)

// Config holds user defaults read from config.toml. Command-line flags
// override every value.
//
//	[validation]
//	shape = "auto"      # auto, flat or tree
//	strict = false
//	max_depth = 1000    # 0 selects the default, -1 disables the limit
//
//	[output]
//	pretty = true
type Config struct {
	Validation ValidationConfig `toml:"validation"`
	Output     OutputConfig     `toml:"output"`
}

// ValidationConfig configures the import pipeline.
type ValidationConfig struct {
	Shape    string `toml:"shape"`
	Strict   bool   `toml:"strict"`
	MaxDepth int    `toml:"max_depth"`
}

// OutputConfig configures JSON output.
type OutputConfig struct {
	Pretty bool `toml:"pretty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Validation: ValidationConfig{Shape: "auto", MaxDepth: schema.DefaultMaxDepth},
		Output:     OutputConfig{Pretty: true},
	}
}

// LoadConfig reads a TOML config file on top of the defaults.
// Unknown keys are returned so callers can warn about typos.
func LoadConfig(path string) (Config, []string, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return cfg, nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
	}
	if _, err := schema.ParseShape(cfg.Validation.Shape); err != nil {
		return cfg, nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s: validation.shape", path)
	}

	var unknown []string
	for _, k := range md.Undecoded() {
		unknown = append(unknown, k.String())
	}
	return cfg, unknown, nil
}

// loadConfig loads --config when given, otherwise the default config file
// if it exists.
func (c *CLI) loadConfig() error {
	path := c.configPath
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(dir, configFile)
		if _, err := os.Stat(path); err != nil {
			c.Logger.Debug("no config file", "path", path)
			return nil
		}
	}

	cfg, unknown, err := LoadConfig(path)
	if err != nil {
		return err
	}
	if len(unknown) > 0 {
		c.Logger.Warn("unknown config keys", "path", path, "keys", strings.Join(unknown, ", "))
	}
	c.Logger.Debug("loaded config", "path", path)
	c.Config = cfg
	return nil
}

// importFlags are the validation flags shared by every command that reads
// a document.
type importFlags struct {
	shape    string
	strict   bool
	maxDepth int
}

// options merges config defaults with any flags the user set.
func (f importFlags) options(cfg Config, changed func(string) bool) (io.Options, error) {
	shapeName := cfg.Validation.Shape
	if changed("shape") {
		shapeName = f.shape
	}
	shape, err := schema.ParseShape(shapeName)
	if err != nil {
		return io.Options{}, err
	}

	opts := io.Options{
		Shape:    shape,
		Strict:   cfg.Validation.Strict,
		MaxDepth: cfg.Validation.MaxDepth,
	}
	if changed("strict") {
		opts.Strict = f.strict
	}
	if changed("max-depth") {
		opts.MaxDepth = f.maxDepth
	}
	return opts, nil
}
