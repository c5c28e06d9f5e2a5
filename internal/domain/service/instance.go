package service

import (
	"time"

	"github.com/diegoclair/event-reminder-bot/internal/domain"
	"github.com/diegoclair/event-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/event-reminder-bot/internal/domain/entity"
	"go.uber.org/zap"
)

// Config carries the scheduling settings. Zero values fall back to the
// domain defaults.
type Config struct {
	Location     *time.Location
	PollInterval time.Duration
	Window       time.Duration
	Backoff      time.Duration
	Clock        Clock
	Logger       *zap.Logger
}

func (c Config) withDefaults() Config {
	if c.Location == nil {
		c.Location = time.UTC
	}
	if c.PollInterval <= 0 {
		c.PollInterval = domain.DefaultPollInterval
	}
	if c.Window <= 0 {
		c.Window = domain.TriggerWindow
	}
	if c.Backoff <= 0 {
		c.Backoff = domain.ErrorBackoff
	}
	if c.Clock == nil {
		c.Clock = realClock{}
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

type Instance struct {
	Reminder  *reminderService
	Scheduler *scheduler
}

// New expands the schedule once and builds the notifier and the poller
// around it.
func New(dm contract.DataManager, messenger contract.Messenger, events []entity.EventDefinition, cfg Config) *Instance {
	cfg = cfg.withDefaults()

	reminderService := newReminder(dm, messenger, ExpandSchedule(events), cfg)

	return &Instance{
		Reminder:  reminderService,
		Scheduler: newScheduler(dm, reminderService, cfg),
	}
}
