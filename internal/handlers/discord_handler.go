package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/event-reminder-bot/internal/commands"
	"go.uber.org/zap"
)

type DiscordHandler struct {
	responder *Responder
	prefix    string
	gameName  string
	log       *zap.Logger
}

func NewDiscordHandler(responder *Responder, prefix, gameName string, log *zap.Logger) *DiscordHandler {
	return &DiscordHandler{
		responder: responder,
		prefix:    prefix,
		gameName:  gameName,
		log:       log.Named("discord"),
	}
}

// HandleReady sets the bot presence once the gateway session is up.
func (h *DiscordHandler) HandleReady(s *discordgo.Session, r *discordgo.Ready) {
	h.log.Info("bot online", zap.String("user", r.User.Username), zap.Int("guilds", len(r.Guilds)))

	if h.gameName == "" {
		return
	}
	if err := s.UpdateGameStatus(0, h.gameName); err != nil {
		h.log.Warn("failed to update presence", zap.Error(err))
	}
}

// HandleMessageCreate answers prefixed commands in any channel the bot reads.
func (h *DiscordHandler) HandleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	reply, ok := h.Reply(context.Background(), m.Content)
	if !ok {
		return
	}

	if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
		h.log.Error("failed to reply to command",
			zap.String("channel_id", m.ChannelID),
			zap.Error(err))
	}
}

// Reply returns the answer to content, or false when content is not a
// command for this bot.
func (h *DiscordHandler) Reply(ctx context.Context, content string) (string, bool) {
	if !strings.HasPrefix(content, h.prefix) {
		return "", false
	}

	cmd, err := commands.ParseCommand(strings.TrimPrefix(content, h.prefix))
	if err != nil {
		if errors.Is(err, commands.ErrUnknownCommand) {
			h.log.Debug("ignoring unknown command", zap.String("content", content))
			return "", false
		}
		return createErrorText(err.Error()), true
	}

	text, _ := h.responder.Respond(ctx, cmd, h.prefix)
	return text, true
}
