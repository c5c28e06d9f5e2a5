package entity

import "time"

const (
	SentReminderStatusSent   = "sent"
	SentReminderStatusFailed = "failed"
)

// SentReminder is a row of the sent reminders log
type SentReminder struct {
	ID        int64
	EventName string
	Hour      int
	Minute    int
	EventDate string // YYYY-MM-DD in the scheduling timezone
	Status    string
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Reminder is the platform neutral payload handed to a Messenger
type Reminder struct {
	Title       string
	Description string
	Color       int
	ImageURL    string
	Timestamp   time.Time
}
