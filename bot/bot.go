// Package bot is the chat front-end mirroring the community statistics
// through slash commands. It renders the same vtc snapshot the JSON
// endpoints serve, just as discord embeds.
package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/prologistix/backend/vtc"
	"go.uber.org/zap"
)

// SnapshotSource provides the normalized community statistics
type SnapshotSource interface {
	Snapshot(ctx context.Context) (*vtc.Snapshot, error)
}

type Bot struct {
	session   *discordgo.Session
	snapshots SnapshotSource
	log       *zap.Logger
}

func New(
	token string,
	snapshots SnapshotSource,
	log *zap.Logger,
) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	session.Identify.Intents = discordgo.IntentsGuilds
	b := &Bot{
		session:   session,
		snapshots: snapshots,
		log:       log,
	}
	session.AddHandler(b.ready)
	session.AddHandler(b.interactionCreate)
	return b, nil
}

// Run opens the gateway session and blocks until the context is done
func (b *Bot) Run(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return err
	}
	b.log.Info("bot connected")
	<-ctx.Done()
	b.log.Info("bot shutting down")
	return b.session.Close()
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	b.log.Info("bot ready", zap.String("username", r.User.Username))
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	switch i.ApplicationCommandData().Name {
	case "ping":
		b.respondContent(s, i, "Pong!")
	case "stats":
		b.respondSnapshot(s, i, statsEmbed)
	case "drivers":
		b.respondSnapshot(s, i, driversEmbed)
	}
}

func (b *Bot) respondContent(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
	if err != nil {
		b.log.Error("unable to respond to interaction", zap.Error(err))
	}
}

func (b *Bot) respondSnapshot(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	render func(*vtc.Snapshot) *discordgo.MessageEmbed,
) {
	snapshot, err := b.snapshots.Snapshot(context.Background())
	if err != nil {
		b.log.Error("unable to fetch snapshot for interaction", zap.Error(err))
		b.respondContent(s, i, "Failed to fetch stats, try again later")
		return
	}
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{render(snapshot)},
		},
	})
	if err != nil {
		b.log.Error("unable to respond to interaction", zap.Error(err))
	}
}
