package entity

import (
	"fmt"
	"math"
	"time"
)

// ScheduleTime is a configured time of day: 14 means 14:00, 20.5 means 20:30.
type ScheduleTime float64

// Clock splits the value into hour and minute.
func (t ScheduleTime) Clock() (hour, minute int) {
	whole := math.Floor(float64(t))
	hour = int(whole)
	if float64(t)-whole != 0 {
		minute = 30
	}
	return hour, minute
}

// EventDefinition is one entry of the schedule table. Never mutated after load.
type EventDefinition struct {
	Name     string
	ImageURL string
	Emoji    string
	Color    int
	Schedule []ScheduleTime
}

// Occurrence is a single (event, time of day) pair.
type Occurrence struct {
	EventName string
	Hour      int
	Minute    int
	Emoji     string
	Color     int
	ImageURL  string
}

// Key identifies the occurrence independently of the date.
func (o Occurrence) Key() string {
	return fmt.Sprintf("%s@%02d:%02d", o.EventName, o.Hour, o.Minute)
}

// ClockString returns the time of day as HH:MM.
func (o Occurrence) ClockString() string {
	return fmt.Sprintf("%02d:%02d", o.Hour, o.Minute)
}

// UpcomingOccurrence is an occurrence resolved to its next absolute instant.
type UpcomingOccurrence struct {
	Occurrence
	At time.Time
}
