package domain

import "time"

// ReminderLead is how long before an event start the reminder is posted
const ReminderLead = 30 * time.Minute

// TriggerWindow is the symmetric tolerance around a reminder time inside
// which a poll tick counts as a match. Both ends are inclusive.
const TriggerWindow = 15 * time.Second

// Poll cadence bounds. The interval must stay below the full window width
// (2 * TriggerWindow) or a window can fall between two ticks.
const (
	DefaultPollInterval = 15 * time.Second
	MinPollInterval     = 5 * time.Second
	MaxPollInterval     = 15 * time.Second
)

// ErrorBackoff is the pause applied after a failed poll tick
const ErrorBackoff = 30 * time.Second

// Synthetic event fired by the test command
const (
	TestEventName  = "TEST"
	TestEventLead  = 2 * time.Minute
	TestEventEmoji = "🧪"
)

const (
	DefaultTimezone = "Europe/Istanbul"
	DefaultEmoji    = "🚨"
	DefaultColor    = 0x00ff00
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// History command limits
const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 50
)
