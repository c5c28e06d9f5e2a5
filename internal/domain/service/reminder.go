package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/diegoclair/event-reminder-bot/internal/domain"
	"github.com/diegoclair/event-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/event-reminder-bot/internal/domain/entity"
	"go.uber.org/zap"
)

// reminderService is the notifier and the read side of the command surface.
type reminderService struct {
	dm          contract.DataManager
	messenger   contract.Messenger
	occurrences []entity.Occurrence
	loc         *time.Location
	clock       Clock
	log         *zap.Logger

	// serializes deliveries so two reminders never interleave
	sendMu sync.Mutex
}

func newReminder(dm contract.DataManager, messenger contract.Messenger, occurrences []entity.Occurrence, cfg Config) *reminderService {
	return &reminderService{
		dm:          dm,
		messenger:   messenger,
		occurrences: occurrences,
		loc:         cfg.Location,
		clock:       cfg.Clock,
		log:         cfg.Logger.Named("notifier"),
	}
}

func (s *reminderService) now() time.Time {
	return s.clock.Now().In(s.loc)
}

func (s *reminderService) Occurrences() []entity.Occurrence {
	out := make([]entity.Occurrence, len(s.occurrences))
	copy(out, s.occurrences)
	return out
}

// Notify records the occurrence in the sent log and delivers its reminder.
// It returns domain.ErrAlreadySent without sending when the log already holds
// the occurrence for that event date. Delivery failures are recorded and not
// retried.
func (s *reminderService) Notify(ctx context.Context, occ entity.Occurrence, eventAt time.Time) error {
	record := &entity.SentReminder{
		EventName: occ.EventName,
		Hour:      occ.Hour,
		Minute:    occ.Minute,
		EventDate: eventAt.Format(domain.DateLayout),
		Status:    entity.SentReminderStatusSent,
	}

	if err := s.dm.SentReminder().Create(ctx, record); err != nil {
		if errors.Is(err, domain.ErrAlreadySent) {
			s.log.Info("reminder already sent, skipping",
				zap.String("occurrence", occ.Key()),
				zap.String("event_date", record.EventDate))
			return err
		}
		// deliver anyway, the poller still guards against repeats in memory
		s.log.Error("failed to record reminder", zap.String("occurrence", occ.Key()), zap.Error(err))
	}

	if err := s.deliver(ctx, occ, eventAt); err != nil {
		if record.ID != 0 {
			if markErr := s.dm.SentReminder().MarkFailed(ctx, record.ID, err.Error()); markErr != nil {
				s.log.Error("failed to mark reminder as failed", zap.Int64("id", record.ID), zap.Error(markErr))
			}
		}
		return err
	}

	return nil
}

func (s *reminderService) deliver(ctx context.Context, occ entity.Occurrence, eventAt time.Time) error {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	reminder := buildReminder(occ, eventAt, s.now())

	if err := s.messenger.Send(ctx, reminder); err != nil {
		s.log.Error("failed to send reminder",
			zap.String("occurrence", occ.Key()),
			zap.Time("event_at", eventAt),
			zap.Error(err))
		return fmt.Errorf("failed to send reminder for %s: %w", occ.Key(), err)
	}

	s.log.Info("reminder sent",
		zap.String("occurrence", occ.Key()),
		zap.Time("event_at", eventAt))
	return nil
}

func buildReminder(occ entity.Occurrence, eventAt, now time.Time) entity.Reminder {
	emoji := occ.Emoji
	if emoji == "" {
		emoji = domain.DefaultEmoji
	}
	color := occ.Color
	if color == 0 {
		color = domain.DefaultColor
	}

	minutes := int(math.Round(eventAt.Sub(now).Minutes()))
	if minutes < 0 {
		minutes = 0
	}

	return entity.Reminder{
		Title:       fmt.Sprintf("%s %s is starting soon!", emoji, occ.EventName),
		Description: fmt.Sprintf("**Starts in %d minutes!**\n`🕒 %s`", minutes, eventAt.Format(domain.ClockLayout)),
		Color:       color,
		ImageURL:    occ.ImageURL,
		Timestamp:   eventAt,
	}
}

// UpcomingToday lists the occurrences still ahead today, earliest first.
func (s *reminderService) UpcomingToday(ctx context.Context) []entity.UpcomingOccurrence {
	now := s.now()

	var upcoming []entity.UpcomingOccurrence
	for _, occ := range s.occurrences {
		at := nextEventTime(occ, now)
		if !sameDay(at, now) {
			continue
		}
		upcoming = append(upcoming, entity.UpcomingOccurrence{Occurrence: occ, At: at})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].At.Before(upcoming[j].At)
	})

	return upcoming
}

// SendTest delivers a synthetic reminder for an event starting TestEventLead
// from now. It is not written to the sent log.
func (s *reminderService) SendTest(ctx context.Context) (entity.UpcomingOccurrence, error) {
	at := s.now().Add(domain.TestEventLead)

	occ := entity.Occurrence{
		EventName: domain.TestEventName,
		Hour:      at.Hour(),
		Minute:    at.Minute(),
		Emoji:     domain.TestEventEmoji,
		Color:     domain.DefaultColor,
	}

	test := entity.UpcomingOccurrence{Occurrence: occ, At: at}
	if err := s.deliver(ctx, occ, at); err != nil {
		return test, err
	}
	return test, nil
}

func (s *reminderService) History(ctx context.Context, limit int) ([]*entity.SentReminder, error) {
	if limit <= 0 {
		limit = domain.DefaultHistoryLimit
	}
	if limit > domain.MaxHistoryLimit {
		limit = domain.MaxHistoryLimit
	}

	reminders, err := s.dm.SentReminder().ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder history: %w", err)
	}
	return reminders, nil
}
