package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/event-reminder-bot/internal/domain"
	"github.com/diegoclair/event-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/event-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/event-reminder-bot/internal/logger"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// scheduler is the poller: on every tick it checks each occurrence's
// reminder window and fires the notifier at most once per occurrence and
// event date.
type scheduler struct {
	dm       contract.DataManager
	reminder *reminderService
	loc      *time.Location
	clock    Clock
	interval time.Duration
	window   time.Duration
	backoff  time.Duration
	log      *zap.Logger

	cron    *cron.Cron
	running bool

	mu          sync.Mutex
	fired       map[string]string // occurrence key -> last fired event date
	pausedUntil time.Time
	nextLogged  string
}

func newScheduler(dm contract.DataManager, reminder *reminderService, cfg Config) *scheduler {
	return &scheduler{
		dm:       dm,
		reminder: reminder,
		loc:      cfg.Location,
		clock:    cfg.Clock,
		interval: cfg.PollInterval,
		window:   cfg.Window,
		backoff:  cfg.Backoff,
		log:      cfg.Logger.Named("scheduler"),
		fired:    make(map[string]string),
	}
}

// Start seeds the fired set from the sent log and starts polling every
// interval until Stop is called or ctx is done.
func (s *scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()
	if running {
		return nil
	}

	if err := s.seedFired(ctx); err != nil {
		// not fatal, the sent log unique key still rejects duplicates
		s.log.Error("failed to load sent reminders", zap.Error(err))
	}

	cronLog := logger.Cron(s.log)
	s.cron = cron.New(
		cron.WithLocation(s.loc),
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)

	if _, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.interval), func() { s.runTick(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule poller: %w", err)
	}

	s.mu.Lock()
	s.running = true
	s.mu.Unlock()
	s.cron.Start()
	s.log.Info("scheduler started",
		zap.Duration("interval", s.interval),
		zap.Duration("window", s.window),
		zap.String("timezone", s.loc.String()),
		zap.Int("occurrences", len(s.reminder.occurrences)))

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop halts polling and waits for a running tick to finish.
func (s *scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
}

func (s *scheduler) seedFired(ctx context.Context) error {
	today := s.clock.Now().In(s.loc).Format(domain.DateLayout)

	sent, err := s.dm.SentReminder().ListSince(ctx, today)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range sent {
		key := entity.Occurrence{EventName: r.EventName, Hour: r.Hour, Minute: r.Minute}.Key()
		if r.EventDate > s.fired[key] {
			s.fired[key] = r.EventDate
		}
	}
	return nil
}

func (s *scheduler) runTick(ctx context.Context) {
	now := s.clock.Now().In(s.loc)

	if s.paused(now) {
		return
	}

	if err := s.safeTick(ctx, now); err != nil {
		s.log.Error("poll tick failed, backing off",
			zap.Duration("backoff", s.backoff),
			zap.Error(err))
		s.mu.Lock()
		s.pausedUntil = now.Add(s.backoff)
		s.mu.Unlock()
	}
}

func (s *scheduler) paused(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Before(s.pausedUntil)
}

func (s *scheduler) safeTick(ctx context.Context, now time.Time) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during tick: %v", r)
		}
	}()
	return s.tick(ctx, now)
}

// tick evaluates every occurrence against now, which must already be in the
// scheduling location.
func (s *scheduler) tick(ctx context.Context, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var (
		nextKey string
		nextAt  time.Time
	)

	for _, occ := range s.reminder.occurrences {
		eventAt := nextEventTime(occ, now)
		if nextAt.IsZero() || eventAt.Before(nextAt) {
			nextAt = eventAt
			nextKey = occ.Key()
		}

		if !withinWindow(now, reminderTime(eventAt), s.window) {
			continue
		}

		if !s.markFired(occ.Key(), eventAt.Format(domain.DateLayout)) {
			continue
		}

		err := s.reminder.Notify(ctx, occ, eventAt)
		if err != nil && !errors.Is(err, domain.ErrAlreadySent) {
			// delivery failures are terminal for this occurrence only
			s.log.Warn("reminder skipped", zap.String("occurrence", occ.Key()), zap.Error(err))
		}
	}

	s.logNext(nextKey, nextAt)
	return nil
}

// markFired returns false if the occurrence already fired for eventDate.
func (s *scheduler) markFired(key, eventDate string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fired[key] == eventDate {
		return false
	}
	s.fired[key] = eventDate
	return true
}

func (s *scheduler) logNext(key string, at time.Time) {
	if key == "" {
		return
	}
	id := key + " " + at.Format(domain.DateLayout)

	s.mu.Lock()
	changed := id != s.nextLogged
	s.nextLogged = id
	s.mu.Unlock()

	if changed {
		s.log.Info("next event",
			zap.String("occurrence", key),
			zap.Time("event_at", at),
			zap.Time("reminder_at", reminderTime(at)))
	}
}
