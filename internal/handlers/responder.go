package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/event-reminder-bot/internal/commands"
	"github.com/diegoclair/event-reminder-bot/internal/domain"
	"github.com/diegoclair/event-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/event-reminder-bot/internal/domain/entity"
	"go.uber.org/zap"
)

// Responder turns a parsed command into reply text. It is shared by the
// Discord and Slack command surfaces.
type Responder struct {
	reminderService contract.ReminderService
	log             *zap.Logger
}

func NewResponder(reminderService contract.ReminderService, log *zap.Logger) *Responder {
	return &Responder{
		reminderService: reminderService,
		log:             log.Named("commands"),
	}
}

// Respond returns the reply text and whether it should be visible to the
// whole channel. prefix is used to render the help text.
func (r *Responder) Respond(ctx context.Context, cmd *commands.Command, prefix string) (string, bool) {
	switch cmd.Type {
	case commands.CmdSchedule:
		return r.handleSchedule(ctx), true
	case commands.CmdTest:
		return r.handleTest(ctx)
	case commands.CmdHistory:
		return r.handleHistory(ctx, cmd.Limit), false
	case commands.CmdHelp:
		return commands.GetHelpText(prefix), false
	default:
		return createErrorText("Unrecognized command"), false
	}
}

func (r *Responder) handleSchedule(ctx context.Context) string {
	upcoming := r.reminderService.UpcomingToday(ctx)
	if len(upcoming) == 0 {
		return "No more events today."
	}

	var list strings.Builder
	list.WriteString("📅 *Today's remaining events:*\n")
	for _, u := range upcoming {
		list.WriteString(fmt.Sprintf("`%s` %s %s (reminder at %s)\n",
			u.At.Format(domain.ClockLayout),
			u.Emoji,
			u.EventName,
			u.At.Add(-domain.ReminderLead).Format(domain.ClockLayout)))
	}

	return list.String()
}

func (r *Responder) handleTest(ctx context.Context) (string, bool) {
	test, err := r.reminderService.SendTest(ctx)
	if err != nil {
		r.log.Error("test notification failed", zap.Error(err))
		return createErrorText(fmt.Sprintf("Failed to send test notification: %v", err)), false
	}

	return fmt.Sprintf("✅ Test notification sent! (%s at %s)", test.EventName, test.At.Format(domain.ClockLayout)), true
}

func (r *Responder) handleHistory(ctx context.Context, limit int) string {
	reminders, err := r.reminderService.History(ctx, limit)
	if err != nil {
		r.log.Error("failed to load history", zap.Error(err))
		return createErrorText("Failed to load reminder history")
	}

	if len(reminders) == 0 {
		return "No reminders sent yet."
	}

	var list strings.Builder
	list.WriteString("📜 *Recent reminders:*\n")
	for _, sent := range reminders {
		list.WriteString(formatSentReminder(sent))
		list.WriteString("\n")
	}

	return list.String()
}

func formatSentReminder(sent *entity.SentReminder) string {
	line := fmt.Sprintf("`%s %02d:%02d` %s - %s", sent.EventDate, sent.Hour, sent.Minute, sent.EventName, sent.Status)
	if sent.Status == entity.SentReminderStatusFailed && sent.Error != "" {
		line += fmt.Sprintf(" (%s)", sent.Error)
	}
	return line
}

func createErrorText(message string) string {
	return fmt.Sprintf("❌ %s", message)
}
