package cmd

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strconv"

	"github.com/arcanaland/cardsmith/internal/draw"
	"github.com/spf13/cobra"
)

var drawCmd = &cobra.Command{
	Use:   "draw [n]",
	Short: "Draw random cards into a sheet",
	Long: `Draw picks n cards (default 1) at random, with replacement, from the cards
directory and lays them out on a draw sheet. The path of the sheet is
printed; the file is kept.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n := 1
		if len(args) == 1 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 1 {
				return fmt.Errorf("invalid card count: %s", args[0])
			}
			n = v
		}

		var rng *rand.Rand
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetUint64("seed")
			rng = draw.NewSeeded(seed)
		}

		svc := draw.NewService(cfg.CardsDir, cfg.SheetDir, rng)
		path, drawn, err := svc.Draw(n)
		if err != nil {
			return err
		}

		for _, c := range drawn {
			logger.Debug("drew card", "card", filepath.Base(c))
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(drawCmd)

	drawCmd.Flags().Uint64("seed", 0, "Seed the draw for a reproducible result")
}
