package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/arcanaland/cardsmith/internal/config"
	"github.com/spf13/cobra"
)

var (
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardsmith",
	Short: "Generate themed playing cards and serve random draws",
	Long: `Cardsmith renders themed decks of playing cards as images, assembles
contact sheets and draw sheets from them, and serves random draws through
a Discord bot command.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		c, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}
		cfg = c
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadPresets reads the presets file named in the config. When the file does
// not exist and required is false the built-in presets are used.
func loadPresets(required bool) (config.Presets, error) {
	if _, err := os.Stat(cfg.PresetsFile); os.IsNotExist(err) {
		if required {
			return nil, fmt.Errorf("presets file not found: %s (run 'cardsmith deck init' to create it)", cfg.PresetsFile)
		}
		logger.Debug("presets file not found, using built-in presets", "path", cfg.PresetsFile)
		return config.DefaultPresets(), nil
	}
	return config.LoadPresets(cfg.PresetsFile)
}
