package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/diegoclair/event-reminder-bot/internal/commands"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type SlackHandler struct {
	responder     *Responder
	signingSecret string
	log           *zap.Logger
}

func NewSlackHandler(responder *Responder, signingSecret string, log *zap.Logger) *SlackHandler {
	return &SlackHandler{
		responder:     responder,
		signingSecret: signingSecret,
		log:           log.Named("slack"),
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn("rejected slash command with invalid signature", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := commands.ParseCommand(s.Text)
	if err != nil {
		h.respond(w, &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         createErrorText(err.Error()),
		})
		return
	}

	text, public := h.responder.Respond(r.Context(), cmd, s.Command+" ")

	responseType := slack.ResponseTypeEphemeral
	if public {
		responseType = slack.ResponseTypeInChannel
	}

	h.respond(w, &slack.Msg{
		ResponseType: responseType,
		Text:         text,
	})
}

func (h *SlackHandler) respond(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		h.log.Error("failed to write slack response", zap.Error(err))
	}
}
