//go:generate mockgen -source=repo.go -destination=../../../mocks/mock_repo.go -package=mocks

package contract

import (
	"context"

	"github.com/diegoclair/event-reminder-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	SentReminder() SentReminderRepo
}

// SentReminderRepo defines the contract for the sent reminders log
type SentReminderRepo interface {
	// Create inserts a new row and sets its ID. Returns domain.ErrAlreadySent
	// when the occurrence was already recorded for the same event date.
	Create(ctx context.Context, reminder *entity.SentReminder) error
	MarkFailed(ctx context.Context, id int64, reason string) error
	ListSince(ctx context.Context, eventDate string) ([]*entity.SentReminder, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.SentReminder, error)
}
