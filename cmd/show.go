package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/arcanaland/cardsmith/internal/card"
	"github.com/arcanaland/cardsmith/internal/config"
	"github.com/arcanaland/cardsmith/internal/icon"
	"github.com/arcanaland/cardsmith/internal/preview"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [species] [rank]",
	Short: "Preview a generated card in the terminal",
	Long: `Show renders a generated card as ANSI art next to its details.
The species defaults to the configured default species.

Examples:
  cardsmith show cyber A
  cardsmith show zombie Q
  cardsmith show 7`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		speciesArg, rankArg := cfg.DefaultSpecies, args[0]
		if len(args) == 2 {
			speciesArg, rankArg = args[0], args[1]
		}

		sp, err := card.ParseSpecies(speciesArg)
		if err != nil {
			return err
		}
		rank := card.ParseRank(rankArg)
		if rank.Kind() == card.Unrecognized {
			return fmt.Errorf("unknown rank: %s", rankArg)
		}

		c := card.Card{Species: sp, Rank: rank}
		path := filepath.Join(cfg.CardsDir, c.Filename())
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("card not generated: %s (run 'cardsmith generate %s --species %s')", path, rank, sp)
		}

		presets, err := loadPresets(false)
		if err != nil {
			return err
		}

		height, _ := cmd.Flags().GetInt("height")
		art, err := preview.Cached(filepath.Join(config.GetCacheDir(), "ansi_cache"), path, height)
		if err != nil {
			return fmt.Errorf("error rendering preview: %v", err)
		}

		displayCard(c, path, presets, art)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().Int("height", 24, "Height of the preview in terminal rows")
}

// rankName spells out a rank for the info panel
func rankName(r card.Rank) string {
	switch r.Label() {
	case "A":
		return "Ace"
	case "J":
		return "Jack"
	case "Q":
		return "Queen"
	case "K":
		return "King"
	}
	return r.Label()
}

func suitSymbol(suit string) string {
	switch card.Suit(suit) {
	case card.Heart:
		return "♥"
	case card.Diamond:
		return "♦"
	case card.Spade:
		return "♠"
	case card.Club:
		return "♣"
	default:
		return "•"
	}
}

// displayCard prints the ANSI art with the card details beside it
func displayCard(c card.Card, path string, presets config.Presets, art string) {
	artLines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	artWidth := 0
	for _, line := range artLines {
		artWidth = max(artWidth, preview.VisibleWidth(line))
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	label := colorize.New(colorize.FgCyan).SprintFunc()
	value := colorize.New(colorize.FgHiWhite).SprintfFunc()

	info := []string{
		label("Card:    ") + value("%s of %s", rankName(c.Rank), c.Species),
		label("Species: ") + value("%s", c.Species),
		label("Rank:    ") + value("%s", c.Rank),
	}
	if p, ok := presets[c.Species]; ok {
		info = append(info, label("Suit:    ")+value("%s %s", p.Suit, suitSymbol(p.Suit)))
		if tint, err := icon.ParseColor(p.Color); err == nil {
			info = append(info, label("Color:   ")+value("%s ", p.Color)+preview.Swatch(tint, 2))
		}
		if file, ok := p.FaceArt(c.Rank); ok {
			info = append(info, label("Art:     ")+value("%s", file))
		}
	}
	info = append(info, label("File:    ")+value("%s", path))

	spacing := 4
	infoStart := artWidth + spacing
	if width < infoStart+20 {
		// too narrow to sit side by side
		for _, line := range artLines {
			fmt.Println("  " + line)
		}
		fmt.Println()
		for _, line := range info {
			fmt.Println("  " + line)
		}
		return
	}

	fmt.Println()
	for i := 0; i < max(len(artLines), len(info)); i++ {
		fmt.Print("  ")
		if i < len(artLines) {
			fmt.Print(artLines[i])
			fmt.Print(strings.Repeat(" ", infoStart-preview.VisibleWidth(artLines[i])))
		} else {
			fmt.Print(strings.Repeat(" ", infoStart))
		}
		if i < len(info) {
			fmt.Print(info[i])
		}
		fmt.Println()
	}
	fmt.Println()
}
