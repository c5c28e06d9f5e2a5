package service

import (
	"time"

	"github.com/diegoclair/event-reminder-bot/internal/domain"
	"github.com/diegoclair/event-reminder-bot/internal/domain/entity"
)

// ExpandSchedule flattens the schedule table into one occurrence per
// declared time, keeping event order and then time order as declared.
func ExpandSchedule(events []entity.EventDefinition) []entity.Occurrence {
	var occurrences []entity.Occurrence
	for _, ev := range events {
		for _, t := range ev.Schedule {
			hour, minute := t.Clock()
			occurrences = append(occurrences, entity.Occurrence{
				EventName: ev.Name,
				Hour:      hour,
				Minute:    minute,
				Emoji:     ev.Emoji,
				Color:     ev.Color,
				ImageURL:  ev.ImageURL,
			})
		}
	}
	return occurrences
}

// nextEventTime resolves the occurrence to its next instant at or after now,
// in now's location: today if the time of day has not passed yet, otherwise
// tomorrow.
func nextEventTime(o entity.Occurrence, now time.Time) time.Time {
	eventTime := time.Date(now.Year(), now.Month(), now.Day(), o.Hour, o.Minute, 0, 0, now.Location())
	if eventTime.Before(now) {
		eventTime = eventTime.AddDate(0, 0, 1)
	}
	return eventTime
}

func reminderTime(eventTime time.Time) time.Time {
	return eventTime.Add(-domain.ReminderLead)
}

// withinWindow reports whether now lies in [target-window, target+window].
func withinWindow(now, target time.Time, window time.Duration) bool {
	return !now.Before(target.Add(-window)) && !now.After(target.Add(window))
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
