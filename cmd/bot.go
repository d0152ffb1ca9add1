package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/arcanaland/cardsmith/internal/bot"
	"github.com/arcanaland/cardsmith/internal/config"
	"github.com/arcanaland/cardsmith/internal/draw"
	"github.com/spf13/cobra"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Serve random draws as a Discord bot",
	Long: `Bot connects to Discord and answers the draw command (default "/draw").
"/draw 3" replies with a sheet of three random cards; counts above five,
below one or not a number draw a single card.

The bot token is read from the ` + config.TokenKey + ` environment variable,
or from the token file named in the config (default .env).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := config.LoadToken(cfg.TokenFile)
		if err != nil {
			return err
		}

		svc := draw.NewService(cfg.CardsDir, cfg.SheetDir, nil)
		b, err := bot.New(token, svc, cfg.BotCommand, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return b.Run(ctx)
	},
}

func init() {
	RootCmd.AddCommand(botCmd)
}
