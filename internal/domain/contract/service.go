//go:generate mockgen -source=service.go -destination=../../../mocks/mock_service.go -package=mocks

package contract

import (
	"context"

	"github.com/diegoclair/event-reminder-bot/internal/domain/entity"
)

type ReminderService interface {
	UpcomingToday(ctx context.Context) []entity.UpcomingOccurrence
	SendTest(ctx context.Context) (entity.UpcomingOccurrence, error)
	History(ctx context.Context, limit int) ([]*entity.SentReminder, error)
	Occurrences() []entity.Occurrence
}
