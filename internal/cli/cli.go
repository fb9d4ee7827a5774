// Package cli implements the jarindex command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/jarindex/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "jarindex"

	// configFile is the config file name inside the config directory.
	configFile = "config.toml"

	// configEnv overrides the config file location.
	configEnv = "JARINDEX_CONFIG"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command. The root command itself runs
// the scan; completion and config are registered as subcommands.
func (c *CLI) RootCommand() *cobra.Command {
	opts := scanOpts{}

	root := &cobra.Command{
		Use:   "jarindex <search-dir> [output-file]",
		Short: "Jarindex lists the classes of every jar in a Maven tree",
		Long: `Jarindex walks a directory tree twice. The first pass reads every *.pom file
and records its groupId, artifactId and version under the pom's base name.
The second pass opens every *.jar file, lists its top-level classes and prints
one tab-separated line per class:

  groupId<TAB>artifactId<TAB>version<TAB>fully.qualified.ClassName

With an output file the lines are appended to it (CRLF terminated) and a
summary is printed when the scan completes. Without one they go to stdout.

Examples:
  jarindex ~/.m2/repository                      # print to stdout
  jarindex ~/.m2/repository classes.tsv          # append to classes.tsv
  jarindex --missing empty ./libs                # keep jars without a pom`,
		Version:           buildinfo.Version,
		Args:              scanArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.preRun(&opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, &opts, args)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default "+defaultConfigHint()+")")
	root.Flags().StringVar(&opts.missing, "missing", "skip", "policy for jars without a pom: skip or empty")
	root.Flags().StringVar(&opts.eol, "eol", "", "line ending: crlf, lf or native (default crlf for files, native for stdout)")
	root.Flags().StringVar(&opts.report, "report", "", "write the run report as JSON to this path")

	root.AddCommand(c.configCommand(&opts))
	root.AddCommand(c.completionCommand())

	return root
}

// preRun loads the config file, applies the log level and attaches the
// logger to the command context.
func (c *CLI) preRun(opts *scanOpts) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(opts.configPath)
		if err != nil {
			return err
		}
		opts.config = cfg

		if opts.verbose || cfg.Verbose {
			c.SetLogLevel(LogDebug)
		}
		if cfg.path != "" {
			c.Logger.Debug("Loaded config", "path", cfg.path)
		}
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/jarindex/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// defaultConfigPath returns the config file path used when --config is not
// given. JARINDEX_CONFIG takes precedence over the XDG location.
func defaultConfigPath() (string, error) {
	if p := os.Getenv(configEnv); p != "" {
		return p, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

func defaultConfigHint() string {
	return "$XDG_CONFIG_HOME/" + appName + "/" + configFile
}
