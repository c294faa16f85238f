package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/prologistix/backend/bot"
	"github.com/prologistix/backend/vtc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var botCommand = cobra.Command{
	Use:   "bot",
	Short: "runs the discord bot",
	Long:  `Connects the slash-command front-end to the discord gateway and blocks until interrupted`,
	Run: func(cmd *cobra.Command, args []string) {
		mustValidConfig()
		if LoadedConfig.Discord == nil || LoadedConfig.Discord.Token == "" {
			TopLevelLogger.Fatal("discord.token is required for the bot")
		}
		snapshotSource := vtc.NewClient(LoadedConfig.VTC, TopLevelLogger.Named("vtc_client"))
		b, err := bot.New(
			LoadedConfig.Discord.Token,
			snapshotSource,
			TopLevelLogger.Named("bot"),
		)
		if err != nil {
			TopLevelLogger.Fatal("Failed to create bot", zap.Error(err))
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := b.Run(ctx); err != nil {
			TopLevelLogger.Fatal("Bot stopped with error", zap.Error(err))
		}
		TopLevelLogger.Info("Shutdown complete")
	},
}
