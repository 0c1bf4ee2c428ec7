package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	errs "github.com/matzehuels/metriclines/pkg/errors"
)

// Config holds defaults read from the TOML config file. Flags given on the
// command line take precedence.
//
//	lines          = "closure"   # or "collinear"
//	format         = "graph6"    # or "sparse6"
//	workers        = 4
//	extended       = false
//	header         = false
//	pair_dist      = "1:2"
//	universal_dist = "2:"
//	cache_size     = 65536
//	no_cache       = false
//	verbose        = false
//	quiet          = false
type Config struct {
	Lines     string `toml:"lines"`
	Format    string `toml:"format"`
	Workers   int    `toml:"workers"`
	Extended  bool   `toml:"extended"`
	Header    bool   `toml:"header"`
	PairDist  string `toml:"pair_dist"`
	UnivDist  string `toml:"universal_dist"`
	CacheSize int    `toml:"cache_size"`
	NoCache   bool   `toml:"no_cache"`
	Verbose   bool   `toml:"verbose"`
	Quiet     bool   `toml:"quiet"`
}

// configFile returns the config path using the XDG standard
// (~/.config/metriclines/config.toml).
func configFile() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// readConfig decodes the config file at path. A missing file is only an
// error when the path was given explicitly. Unknown keys are rejected.
func readConfig(path string, explicit bool) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, errs.Wrap(errs.ErrCodeUsage, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errs.New(errs.ErrCodeUsage, "config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// loadConfig reads the config file and applies it to every flag of cmd that
// was not set on the command line.
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	path, explicit := c.configPath, c.configPath != ""
	if !explicit {
		p, err := configFile()
		if err != nil {
			return nil
		}
		path = p
	}
	cfg, err := readConfig(path, explicit)
	if err != nil {
		return err
	}
	if cfg != (Config{}) {
		c.Logger.Debug("loaded config", "path", path)
	}
	return applyConfig(cmd.Flags(), cfg)
}

// applyConfig sets unchanged flags from cfg. Flags not defined on flags are
// ignored, so one config serves every subcommand.
func applyConfig(flags *pflag.FlagSet, cfg Config) error {
	values := map[string]string{}
	if cfg.Lines != "" {
		values["lines"] = cfg.Lines
	}
	if cfg.Format != "" {
		values["format"] = cfg.Format
	}
	if cfg.Workers != 0 {
		values["workers"] = strconv.Itoa(cfg.Workers)
	}
	if cfg.Extended {
		values["extended"] = "true"
	}
	if cfg.Header {
		values["header"] = "true"
	}
	if cfg.PairDist != "" {
		values["pair-dist"] = cfg.PairDist
	}
	if cfg.UnivDist != "" {
		values["universal-dist"] = cfg.UnivDist
	}
	if cfg.CacheSize != 0 {
		values["cache-size"] = strconv.Itoa(cfg.CacheSize)
	}
	if cfg.NoCache {
		values["no-cache"] = "true"
	}
	if cfg.Verbose {
		values["verbose"] = "true"
	}
	if cfg.Quiet {
		values["quiet"] = "true"
	}

	for name, value := range values {
		f := flags.Lookup(name)
		if f == nil || f.Changed {
			continue
		}
		if err := f.Value.Set(value); err != nil {
			return errs.Wrap(errs.ErrCodeUsage, err, "config key for --%s", name)
		}
	}
	return nil
}
