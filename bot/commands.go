package bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/prologistix/backend/config"
	"go.uber.org/zap"
)

func commandDefinitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "ping",
			Description: "Replies with Pong!",
		},
		{
			Name:        "stats",
			Description: "Shows the current company statistics",
		},
		{
			Name:        "drivers",
			Description: "Shows the current driver roster",
		},
	}
}

// DeployCommands registers the guild scoped slash commands, overwriting
// whatever set was registered before
func DeployCommands(cfg *config.DiscordConfiguration, log *zap.Logger) error {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return err
	}
	commands := commandDefinitions()
	_, err = session.ApplicationCommandBulkOverwrite(cfg.AppID, cfg.GuildID, commands)
	if err != nil {
		return err
	}
	log.Info("guild slash commands registered", zap.Int("count", len(commands)))
	return nil
}

// ResetCommands deletes all guild scoped slash commands
func ResetCommands(cfg *config.DiscordConfiguration, log *zap.Logger) error {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return err
	}
	_, err = session.ApplicationCommandBulkOverwrite(cfg.AppID, cfg.GuildID, []*discordgo.ApplicationCommand{})
	if err != nil {
		return err
	}
	log.Info("all guild slash commands deleted")
	return nil
}
