package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/cardsmith/internal/card"
	"github.com/arcanaland/cardsmith/internal/config"
	"github.com/arcanaland/cardsmith/internal/deck"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage species decks and presets",
	Long:  `Commands for listing generated decks, creating the presets file and choosing the default species.`,
}

// deckListCmd represents the deck list command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List species and how many of their cards are generated",
	RunE: func(cmd *cobra.Command, args []string) error {
		presets, err := loadPresets(false)
		if err != nil {
			return err
		}

		decks := map[card.Species]*deck.Deck{}
		if _, err := os.Stat(cfg.CardsDir); err == nil {
			if decks, err = deck.List(cfg.CardsDir); err != nil {
				return err
			}
		}

		total := len(card.AllRanks())
		for _, sp := range card.AllSpecies() {
			have := 0
			if d, ok := decks[sp]; ok {
				have = len(d.Cards)
			}

			style := "no preset"
			if p, ok := presets[sp]; ok {
				style = fmt.Sprintf("%s %s", p.Color, p.Suit)
			}

			if string(sp) == cfg.DefaultSpecies {
				fmt.Printf("* %-9s %2d/%d cards (%s) [DEFAULT]\n", sp, have, total, style)
			} else {
				fmt.Printf("  %-9s %2d/%d cards (%s)\n", sp, have, total, style)
			}
		}

		if len(decks) == 0 {
			fmt.Println("\nNo cards generated yet. Run 'cardsmith generate all' to render them.")
		}
		return nil
	},
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [species]",
	Short: "Set the species used when none is given",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sp, err := card.ParseSpecies(args[0])
		if err != nil {
			return err
		}

		if err := config.SetDefaultSpecies(string(sp)); err != nil {
			return fmt.Errorf("error setting default species: %v", err)
		}

		fmt.Printf("Default species set to: %s\n", sp)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the cards directory and a presets file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(cfg.CardsDir, 0755); err != nil {
			return fmt.Errorf("error creating cards directory: %v", err)
		}
		fmt.Println("Cards directory:", cfg.CardsDir)

		if _, err := os.Stat(cfg.PresetsFile); os.IsNotExist(err) {
			if err := config.WritePresets(cfg.PresetsFile, config.DefaultPresets()); err != nil {
				return err
			}
			fmt.Println("Presets file created at:", cfg.PresetsFile)
		} else {
			fmt.Println("Presets file already exists at:", cfg.PresetsFile)
		}

		fmt.Println("Config file:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)
}
