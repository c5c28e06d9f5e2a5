// Package calendar exports the daily schedule as an iCalendar feed so it can
// be subscribed to from any calendar client.
package calendar

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/diegoclair/event-reminder-bot/internal/domain"
	"github.com/diegoclair/event-reminder-bot/internal/domain/entity"
)

const (
	productID   = "-//diegoclair//event-reminder-bot//EN"
	eventLength = 30 * time.Minute
)

// Build renders one daily recurring VEVENT per occurrence, starting on the
// day of now, with a display alarm at the reminder lead time.
func Build(occurrences []entity.Occurrence, loc *time.Location, now time.Time) string {
	now = now.In(loc)

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName("Daily events")
	cal.SetXWRTimezone(loc.String())

	for _, occ := range occurrences {
		start := time.Date(now.Year(), now.Month(), now.Day(), occ.Hour, occ.Minute, 0, 0, loc)

		event := cal.AddEvent(eventUID(occ))
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(start.Add(eventLength))
		event.SetSummary(strings.TrimSpace(occ.Emoji + " " + occ.EventName))
		event.SetDescription(fmt.Sprintf("%s starts daily at %s (%s)", occ.EventName, occ.ClockString(), loc.String()))
		if occ.ImageURL != "" {
			event.SetURL(occ.ImageURL)
		}
		event.AddRrule("FREQ=DAILY")

		alarm := event.AddAlarm()
		alarm.SetAction(ical.ActionDisplay)
		alarm.SetTrigger(fmt.Sprintf("-PT%dM", int(domain.ReminderLead.Minutes())))
	}

	return cal.Serialize()
}

func eventUID(occ entity.Occurrence) string {
	name := strings.ToLower(strings.Join(strings.Fields(occ.EventName), "-"))
	return fmt.Sprintf("%s-%02d%02d@event-reminder-bot", name, occ.Hour, occ.Minute)
}
