//go:generate mockgen -source=chat.go -destination=../../../mocks/mock_chat.go -package=mocks

package contract

import (
	"context"

	"github.com/diegoclair/event-reminder-bot/internal/domain/entity"
)

// Messenger delivers reminders to the configured channel of a chat platform.
// Implementations resolve the role mention themselves.
type Messenger interface {
	Send(ctx context.Context, reminder entity.Reminder) error
}
