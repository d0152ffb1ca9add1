package cmd

import (
	"fmt"

	"github.com/arcanaland/cardsmith/internal/card"
	"github.com/arcanaland/cardsmith/internal/deck"
	"github.com/arcanaland/cardsmith/internal/render"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [rank|all]",
	Short: "Render one card, or every card of every species",
	Long: `Generate renders playing cards into the cards directory.

With a rank (1-10, A, J, Q or K) a single card is rendered for the chosen
species; suit and color default to the species preset. With "all" the
13 cards of every species are rendered from the presets file, stopping at
the first failure. Without an argument the 10 of the default species is
rendered.

Examples:
  cardsmith generate
  cardsmith generate Q --species zombie
  cardsmith generate 7 --suit spade --color "#ff8800"
  cardsmith generate all`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arg := "10"
		if len(args) == 1 {
			arg = args[0]
		}

		presets, err := loadPresets(arg == "all")
		if err != nil {
			return err
		}

		compositor, err := render.NewCompositor(cfg.AssetsDir, cfg.CardsDir, cfg.FontFile, presets)
		if err != nil {
			return fmt.Errorf("error creating compositor: %v", err)
		}
		defer compositor.Close()

		gen := deck.NewGenerator(compositor, presets, logger)

		if arg == "all" {
			paths, err := gen.GenerateAll()
			if err != nil {
				return err
			}
			fmt.Printf("Generated %d cards in %s\n", len(paths), cfg.CardsDir)
			return nil
		}

		speciesFlag, _ := cmd.Flags().GetString("species")
		suitFlag, _ := cmd.Flags().GetString("suit")
		colorFlag, _ := cmd.Flags().GetString("color")

		if speciesFlag == "" {
			speciesFlag = cfg.DefaultSpecies
		}
		species, err := card.ParseSpecies(speciesFlag)
		if err != nil {
			return err
		}

		var suit card.Suit
		if suitFlag != "" {
			if suit, err = card.ParseSuit(suitFlag); err != nil {
				return err
			}
		}

		path, err := gen.Generate(card.ParseRank(arg), species, suit, colorFlag)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("species", "s", "", "Species to render (defaults to the configured default species)")
	generateCmd.Flags().String("suit", "", "Suit icon to use (heart, diamond, spade, club)")
	generateCmd.Flags().StringP("color", "c", "", "Icon and label color, a CSS name or #hex")
}
