package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/event-reminder-bot/internal/domain/entity"
)

var (
	ErrChannelNotFound = errors.New("channel not found")
	ErrRoleNotFound    = errors.New("role not found")
)

// DiscordSession is the subset of *discordgo.Session the messenger needs
type DiscordSession interface {
	Channel(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type DiscordMessenger struct {
	session   DiscordSession
	channelID string
	roleID    string
}

func NewDiscordMessenger(session DiscordSession, channelID, roleID string) *DiscordMessenger {
	return &DiscordMessenger{
		session:   session,
		channelID: channelID,
		roleID:    roleID,
	}
}

// Send posts the reminder as an embed, mentioning the configured role.
func (m *DiscordMessenger) Send(ctx context.Context, reminder entity.Reminder) error {
	channel, err := m.session.Channel(m.channelID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrChannelNotFound, m.channelID, err)
	}

	mention, err := m.roleMention(ctx, channel.GuildID)
	if err != nil {
		return err
	}

	_, err = m.session.ChannelMessageSendComplex(m.channelID, &discordgo.MessageSend{
		Content: mention + " 🔔",
		Embeds:  []*discordgo.MessageEmbed{buildEmbed(reminder)},
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Roles: []string{m.roleID},
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send discord message: %w", err)
	}

	return nil
}

func (m *DiscordMessenger) roleMention(ctx context.Context, guildID string) (string, error) {
	roles, err := m.session.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to get guild roles: %w", err)
	}

	for _, role := range roles {
		if role.ID == m.roleID {
			return role.Mention(), nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrRoleNotFound, m.roleID)
}

func buildEmbed(reminder entity.Reminder) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       reminder.Title,
		Description: reminder.Description,
		Color:       reminder.Color,
	}
	if reminder.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: reminder.ImageURL}
	}
	if !reminder.Timestamp.IsZero() {
		embed.Timestamp = reminder.Timestamp.Format(time.RFC3339)
	}
	return embed
}
