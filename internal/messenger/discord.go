package messenger

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// Discord sends notifications to Discord channels. Recipient addresses
// are channel ids.
type Discord struct {
	session *discordgo.Session
}

// NewDiscord creates a Discord dispatcher and opens the gateway session.
func NewDiscord(token string) (*Discord, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	if err = session.Open(); err != nil {
		return nil, fmt.Errorf("failed to open discord session: %w", err)
	}
	return &Discord{session: session}, nil
}

// Send delivers one text message to a channel.
func (d *Discord) Send(recipient, message string) error {
	if _, err := d.session.ChannelMessageSend(recipient, message); err != nil {
		return fmt.Errorf("discord send to channel %s failed: %w", recipient, err)
	}
	slog.Debug("notification sent", "channel_id", recipient)
	return nil
}

// Close shuts the gateway session down.
func (d *Discord) Close() error {
	return d.session.Close()
}
