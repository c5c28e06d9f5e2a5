package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/diegoclair/event-reminder-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// SlackClient is the subset of *slack.Client the messenger needs
type SlackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

type SlackMessenger struct {
	client    SlackClient
	channelID string
	groupID   string
}

// NewSlackMessenger posts to channelID and mentions the user group groupID.
func NewSlackMessenger(client SlackClient, channelID, groupID string) *SlackMessenger {
	return &SlackMessenger{
		client:    client,
		channelID: channelID,
		groupID:   groupID,
	}
}

func (m *SlackMessenger) Send(ctx context.Context, reminder entity.Reminder) error {
	_, _, err := m.client.PostMessageContext(ctx,
		m.channelID,
		slack.MsgOptionText(fmt.Sprintf("<!subteam^%s> 🔔", m.groupID), false),
		slack.MsgOptionAttachments(buildAttachment(reminder)),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	return nil
}

func buildAttachment(reminder entity.Reminder) slack.Attachment {
	attachment := slack.Attachment{
		Color:      fmt.Sprintf("#%06x", reminder.Color),
		Title:      reminder.Title,
		Text:       toSlackMarkdown(reminder.Description),
		ImageURL:   reminder.ImageURL,
		MarkdownIn: []string{"text"},
	}
	if !reminder.Timestamp.IsZero() {
		attachment.Ts = json.Number(strconv.FormatInt(reminder.Timestamp.Unix(), 10))
	}
	return attachment
}

// toSlackMarkdown converts **bold** to Slack's *bold*.
func toSlackMarkdown(text string) string {
	return strings.ReplaceAll(text, "**", "*")
}
