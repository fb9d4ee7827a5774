package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/jarindex/pkg/errors"
)

// fileConfig is the on-disk configuration. Every field is optional; flags
// given on the command line take precedence.
//
//	missing    = "empty"
//	file_eol   = "crlf"
//	stdout_eol = "lf"
//	report     = "/tmp/jarindex-report.json"
//	verbose    = true
type fileConfig struct {
	Missing   string `toml:"missing"`
	FileEOL   string `toml:"file_eol"`
	StdoutEOL string `toml:"stdout_eol"`
	Report    string `toml:"report"`
	Verbose   bool   `toml:"verbose"`

	path string // file the config was read from, empty if none
}

// loadConfig reads the config file. An explicit path must exist; the
// default path is read only when present.
func loadConfig(explicit string) (fileConfig, error) {
	path := explicit
	if path == "" {
		p, err := defaultConfigPath()
		if err != nil {
			return fileConfig{}, nil
		}
		if _, err := os.Stat(p); err != nil {
			return fileConfig{}, nil
		}
		path = p
	}

	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fileConfig{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	cfg.path = path
	return cfg, nil
}

// configCommand creates the config management command.
func (c *CLI) configCommand(opts *scanOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the jarindex configuration",
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.config.path
			if path == "" {
				p, err := defaultConfigPath()
				if err != nil {
					return fmt.Errorf("get config path: %w", err)
				}
				path = p
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			cfg := opts.config
			source := cfg.path
			if source == "" {
				source = "(defaults)"
			}
			printKeyValue(w, "source", source)
			printKeyValue(w, "missing", valueOr(cfg.Missing, "skip"))
			printKeyValue(w, "file_eol", valueOr(cfg.FileEOL, "crlf"))
			printKeyValue(w, "stdout_eol", valueOr(cfg.StdoutEOL, "native"))
			printKeyValue(w, "report", valueOr(cfg.Report, "-"))
			printKeyValue(w, "verbose", fmt.Sprint(cfg.Verbose))
			return nil
		},
	})

	return cmd
}

func valueOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
