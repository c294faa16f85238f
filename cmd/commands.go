package cmd

import (
	"github.com/prologistix/backend/bot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var commandsCommand = cobra.Command{
	Use:   "commands",
	Short: "manages the registered guild slash commands",
}

func mustDiscordConfig() {
	if LoadedConfig == nil ||
		LoadedConfig.Discord == nil ||
		LoadedConfig.Discord.Token == "" ||
		LoadedConfig.Discord.AppID == "" ||
		LoadedConfig.Discord.GuildID == "" {
		TopLevelLogger.Fatal("discord.token, discord.app-id and discord.guild-id are required")
	}
}

var deployCommandsCommand = cobra.Command{
	Use:   "deploy",
	Short: "registers the guild slash commands",
	Run: func(cmd *cobra.Command, args []string) {
		mustDiscordConfig()
		if err := bot.DeployCommands(LoadedConfig.Discord, TopLevelLogger.Named("bot")); err != nil {
			TopLevelLogger.Fatal("Failed to register slash commands", zap.Error(err))
		}
	},
}

var resetCommandsCommand = cobra.Command{
	Use:   "reset",
	Short: "deletes all guild slash commands",
	Run: func(cmd *cobra.Command, args []string) {
		mustDiscordConfig()
		if err := bot.ResetCommands(LoadedConfig.Discord, TopLevelLogger.Named("bot")); err != nil {
			TopLevelLogger.Fatal("Failed to delete slash commands", zap.Error(err))
		}
	},
}
