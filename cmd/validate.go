package cmd

import (
	"fmt"

	"github.com/arcanaland/cardsmith/internal/validator"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [cards_dir]",
	Short: "Check generated decks and presets",
	Long: `Validate checks that every species with a preset has all 13 card files,
that all cards share one size, and that every preset names a known suit,
a resolvable color and existing face artwork. The cards directory defaults
to the one in the config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cardsDir := cfg.CardsDir
		if len(args) == 1 {
			cardsDir = args[0]
		}

		presets, err := loadPresets(false)
		if err != nil {
			return err
		}

		v := validator.NewValidator(cardsDir, cfg.AssetsDir, presets)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if results.Valid() {
			colorize.Green("✅ Cards in '%s' are valid.", cardsDir)
		} else {
			colorize.Red("❌ Cards in '%s' have %d validation errors:", cardsDir, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			colorize.Yellow("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		if !results.Valid() {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}
