package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/prologistix/backend/vtc"
)

const embedColor = 0xe67e22

// rosterLimit caps the drivers embed, discord cuts descriptions off at
// 4096 characters anyway
const rosterLimit = 30

func statsEmbed(s *vtc.Snapshot) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "PROLOGISTIX Stats",
		Color: embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Drivers",
				Value:  fmt.Sprintf("%d", s.Drivers),
				Inline: true,
			},
			{
				Name:   "Distance",
				Value:  fmt.Sprintf("%d km", s.Distance),
				Inline: true,
			},
			{
				Name:   "Convoys",
				Value:  fmt.Sprintf("%d", s.Convoys),
				Inline: true,
			},
		},
	}
}

func driversEmbed(s *vtc.Snapshot) *discordgo.MessageEmbed {
	var sb strings.Builder
	count := len(s.Members)
	shown := count
	if shown > rosterLimit {
		shown = rosterLimit
	}
	for _, m := range s.Members[:shown] {
		sb.WriteString(fmt.Sprintf("**%s** (%s)\n", m.Name, m.Role))
	}
	if count > shown {
		sb.WriteString(fmt.Sprintf("… and %d more", count-shown))
	}
	if count == 0 {
		sb.WriteString("No drivers on the roster yet")
	}
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("PROLOGISTIX Drivers (%d)", count),
		Color:       embedColor,
		Description: sb.String(),
	}
}
