package database

import (
	"github.com/diegoclair/event-reminder-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db               *DB
	sentReminderRepo contract.SentReminderRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		db:               db,
		sentReminderRepo: newSentReminderRepo(db.conn),
	}
}

// SentReminder returns the sent reminders repository
func (i *instance) SentReminder() contract.SentReminderRepo {
	return i.sentReminderRepo
}
