package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/event-reminder-bot/internal/domain"
	"github.com/diegoclair/event-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/event-reminder-bot/internal/domain/entity"
	"github.com/mattn/go-sqlite3"
)

type sentReminderRepo struct {
	db dbConn
}

func newSentReminderRepo(db dbConn) contract.SentReminderRepo {
	return &sentReminderRepo{db: db}
}

const sentReminderColumns = `id, event_name, hour, minute, event_date, status, error, created_at, updated_at`

func (r *sentReminderRepo) Create(ctx context.Context, reminder *entity.SentReminder) error {
	query := `
		INSERT INTO sent_reminders (event_name, hour, minute, event_date, status, error)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if reminder.Status == "" {
		reminder.Status = entity.SentReminderStatusSent
	}

	result, err := r.db.ExecContext(ctx, query,
		reminder.EventName,
		reminder.Hour,
		reminder.Minute,
		reminder.EventDate,
		reminder.Status,
		reminder.Error,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return domain.ErrAlreadySent
		}
		return fmt.Errorf("failed to create sent reminder: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	reminder.ID = id
	return nil
}

func (r *sentReminderRepo) MarkFailed(ctx context.Context, id int64, reason string) error {
	query := `
		UPDATE sent_reminders SET
			status = ?,
			error = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query, entity.SentReminderStatusFailed, reason, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to mark reminder as failed: %w", err)
	}

	return nil
}

func (r *sentReminderRepo) ListSince(ctx context.Context, eventDate string) ([]*entity.SentReminder, error) {
	query := `
		SELECT ` + sentReminderColumns + `
		FROM sent_reminders
		WHERE event_date >= ?
		ORDER BY event_date ASC, hour ASC, minute ASC
	`

	return r.list(ctx, query, eventDate)
}

func (r *sentReminderRepo) ListRecent(ctx context.Context, limit int) ([]*entity.SentReminder, error) {
	query := `
		SELECT ` + sentReminderColumns + `
		FROM sent_reminders
		ORDER BY id DESC
		LIMIT ?
	`

	return r.list(ctx, query, limit)
}

func (r *sentReminderRepo) list(ctx context.Context, query string, args ...interface{}) ([]*entity.SentReminder, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*entity.SentReminder
	for rows.Next() {
		reminder := &entity.SentReminder{}
		err := rows.Scan(
			&reminder.ID,
			&reminder.EventName,
			&reminder.Hour,
			&reminder.Minute,
			&reminder.EventDate,
			&reminder.Status,
			&reminder.Error,
			&reminder.CreatedAt,
			&reminder.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sent reminder: %w", err)
		}
		reminders = append(reminders, reminder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sent reminders: %w", err)
	}

	return reminders, nil
}
