package bot

import (
	"fmt"
	"strings"
	"testing"

	"github.com/prologistix/backend/vtc"
	"github.com/stretchr/testify/assert"
)

func TestStatsEmbed(t *testing.T) {
	embed := statsEmbed(&vtc.Snapshot{
		Drivers:  42,
		Distance: 125000,
		Convoys:  12,
	})
	assert.Equal(t, "PROLOGISTIX Stats", embed.Title)
	if assert.Len(t, embed.Fields, 3) {
		assert.Equal(t, "Drivers", embed.Fields[0].Name)
		assert.Equal(t, "42", embed.Fields[0].Value)
		assert.Equal(t, "Distance", embed.Fields[1].Name)
		assert.Equal(t, "125000 km", embed.Fields[1].Value)
		assert.Equal(t, "Convoys", embed.Fields[2].Name)
		assert.Equal(t, "12", embed.Fields[2].Value)
	}
}

func TestDriversEmbed(t *testing.T) {
	embed := driversEmbed(&vtc.Snapshot{
		Members: []vtc.Member{
			{Name: "Alice", Role: "Owner"},
			{Name: "Bob", Role: "Driver"},
		},
	})
	assert.Equal(t, "PROLOGISTIX Drivers (2)", embed.Title)
	assert.Contains(t, embed.Description, "Alice")
	assert.Contains(t, embed.Description, "Owner")
	assert.Contains(t, embed.Description, "Bob")
}

func TestDriversEmbedEmptyRoster(t *testing.T) {
	embed := driversEmbed(&vtc.Snapshot{})
	assert.Equal(t, "PROLOGISTIX Drivers (0)", embed.Title)
	assert.Contains(t, embed.Description, "No drivers on the roster yet")
}

func TestDriversEmbedCapsTheRoster(t *testing.T) {
	members := make([]vtc.Member, rosterLimit+5)
	for i := range members {
		members[i] = vtc.Member{Name: fmt.Sprintf("Driver%d", i), Role: "Driver"}
	}
	embed := driversEmbed(&vtc.Snapshot{Members: members})
	assert.Equal(t, rosterLimit, strings.Count(embed.Description, "**Driver"))
	assert.Contains(t, embed.Description, "and 5 more")
}
