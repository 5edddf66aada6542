// Package modembed renders moderation embeds with an ordered field list
package modembed

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/lucasb-eyer/go-colorful"
)

// Embed colours, matching the palette of common moderation bots
const (
	ColorRed          = 0xe74c3c
	ColorDarkOrange   = 0xa84300
	ColorOrange       = 0xe67e22
	ColorYellow       = 0xf1c40f
	ColorGreen        = 0x2ecc71
	ColorBlurple      = 0x5865f2
	ColorAnnouncement = 0xe8312a
)

// FooterText is appended to every rendered embed
const FooterText = "warden"

// Field is one (label, value) pair of an embed, rendered in declaration order
type Field struct {
	Label  string
	Value  string
	Inline bool
}

// New renders an embed with given title, colour and ordered fields
func New(title string, colour int, fields []Field) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:     title,
		Color:     colour,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: FooterText,
		},
	}

	for _, f := range fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Label,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}

	return embed
}

// ParseColor parses a hex colour like "#e8312a" or "e8312a" into an embed
// colour value
func ParseColor(raw string) (int, error) {
	if !strings.HasPrefix(raw, "#") {
		raw = "#" + raw
	}

	c, err := colorful.Hex(strings.ToLower(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid colour %q: %w", raw, err)
	}

	r, g, b := c.RGB255()

	return int(r)<<16 | int(g)<<8 | int(b), nil
}
