package main

import (
	"context"
	"fmt"
	"os"

	"github.com/diegoclair/event-reminder-bot/internal/config"
	"github.com/diegoclair/event-reminder-bot/internal/domain"
	"github.com/diegoclair/event-reminder-bot/internal/domain/service"
	"github.com/urfave/cli"
)

// printSchedule needs no chat token or database: it only reads the schedule.
func printSchedule(c *cli.Context) error {
	loc, err := config.LoadLocation(os.Getenv("TIMEZONE"))
	if err != nil {
		return err
	}

	events, err := config.LoadSchedule(os.Getenv("SCHEDULE_FILE"))
	if err != nil {
		return err
	}

	services := service.New(nil, nil, events, service.Config{Location: loc})

	upcoming := services.Reminder.UpcomingToday(context.Background())
	if len(upcoming) == 0 {
		fmt.Println("No more events today.")
		return nil
	}

	for _, u := range upcoming {
		fmt.Printf("%s  %s %s (reminder at %s)\n",
			u.At.Format(domain.ClockLayout),
			u.Emoji,
			u.EventName,
			u.At.Add(-domain.ReminderLead).Format(domain.ClockLayout))
	}

	return nil
}
