package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/twguide/catalog"
	"github.com/grovetools/twguide/config"
	"github.com/grovetools/twguide/logging"
	"github.com/grovetools/twguide/tui/theme"
)

// CommandOptions holds the persistent flags shared by every command.
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a command with the standard twguide flags and
// styled help.
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to twguide.yml config file")

	SetStyledHelp(cmd)

	return cmd
}

// GetOptions extracts the standard flags from a command.
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// GetLogger returns the CLI logger, at debug level when --verbose is set.
func GetLogger(cmd *cobra.Command) *logrus.Entry {
	entry := logging.NewLogger("cli")
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		entry.Logger.SetLevel(logrus.DebugLevel)
	}
	return entry
}

// LoadConfig loads the effective configuration for cmd. An explicit
// --config file must exist; otherwise the global and project files are
// merged and a missing file just means defaults.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	opts := GetOptions(cmd)
	if opts.ConfigFile != "" {
		return config.Load(opts.ConfigFile)
	}
	return config.LoadDefault()
}

// Runtime is what a command needs once flags and config are resolved.
type Runtime struct {
	Options CommandOptions
	Config  *config.Config
	Catalog *catalog.Catalog
	Logger  *logrus.Entry
}

// Bootstrap loads the config, points logging and the theme at it and
// loads the catalog it names (the built-in one by default).
func Bootstrap(cmd *cobra.Command) (*Runtime, error) {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logging.SetConfig(cfg)
	theme.Configure(cfg)

	logger := GetLogger(cmd)
	cat, err := LoadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	stats := cat.Stats()
	logger.WithFields(logrus.Fields{
		"source":     catalogSource(cfg),
		"categories": stats.Categories,
		"entries":    stats.Entries,
	}).Debug("Catalog loaded")

	return &Runtime{
		Options: GetOptions(cmd),
		Config:  cfg,
		Catalog: cat,
		Logger:  logger,
	}, nil
}

// LoadCatalog returns the catalog configured in cfg.
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg == nil || cfg.Catalog == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(cfg.Catalog)
}

func catalogSource(cfg *config.Config) string {
	if cfg == nil || cfg.Catalog == "" {
		return "built-in"
	}
	return cfg.Catalog
}
