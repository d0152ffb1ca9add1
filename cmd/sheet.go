package cmd

import (
	"fmt"

	"github.com/arcanaland/cardsmith/internal/card"
	"github.com/arcanaland/cardsmith/internal/sheet"
	"github.com/spf13/cobra"
)

var sheetCmd = &cobra.Command{
	Use:   "sheet [species...]",
	Short: "Assemble a contact sheet per species",
	Long: `Sheet lays out every generated card of a species in two rows on a gray
background and writes it to the cards directory as asheet_{species}.png.
Without arguments a sheet is written for each species that has cards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var species []card.Species
		for _, arg := range args {
			sp, err := card.ParseSpecies(arg)
			if err != nil {
				return err
			}
			species = append(species, sp)
		}

		written, err := sheet.ContactSheets(cfg.CardsDir, species...)
		for _, path := range written {
			logger.Info("wrote contact sheet", "path", path)
			fmt.Println(path)
		}
		return err
	},
}

func init() {
	RootCmd.AddCommand(sheetCmd)
}
