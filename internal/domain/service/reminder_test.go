package service

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/event-reminder-bot/internal/domain"
	"github.com/diegoclair/event-reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_reminderService_Notify(t *testing.T) {
	occ := entity.Occurrence{EventName: "BDW", Hour: 14, Emoji: "🏰", Color: 0xe74c3c, ImageURL: "https://img"}
	eventAt := at(17, 14, 0, 0)

	tests := []struct {
		name      string
		buildMock func(m allMocks)
		wantErr   error
		errSubstr string
	}{
		{
			name: "Should record and send the reminder",
			buildMock: func(m allMocks) {
				gomock.InOrder(
					m.mockSentReminderRepo.EXPECT().
						Create(gomock.Any(), &entity.SentReminder{
							EventName: "BDW",
							Hour:      14,
							EventDate: "2026-10-17",
							Status:    entity.SentReminderStatusSent,
						}).
						Return(nil).Times(1),
					m.mockMessenger.EXPECT().
						Send(gomock.Any(), entity.Reminder{
							Title:       "🏰 BDW is starting soon!",
							Description: "**Starts in 30 minutes!**\n`🕒 14:00`",
							Color:       0xe74c3c,
							ImageURL:    "https://img",
							Timestamp:   eventAt,
						}).
						Return(nil).Times(1),
				)
			},
		},
		{
			name: "Should not send when the occurrence was already recorded",
			buildMock: func(m allMocks) {
				m.mockSentReminderRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(domain.ErrAlreadySent).Times(1)
			},
			wantErr: domain.ErrAlreadySent,
		},
		{
			name: "Should still send when recording fails",
			buildMock: func(m allMocks) {
				m.mockSentReminderRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(errors.New("disk full")).Times(1)
				m.mockMessenger.EXPECT().
					Send(gomock.Any(), gomock.Any()).
					Return(nil).Times(1)
			},
		},
		{
			name: "Should mark the record as failed when delivery fails",
			buildMock: func(m allMocks) {
				m.mockSentReminderRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *entity.SentReminder) error {
						r.ID = 7
						return nil
					}).Times(1)
				m.mockMessenger.EXPECT().
					Send(gomock.Any(), gomock.Any()).
					Return(errors.New("unknown channel")).Times(1)
				m.mockSentReminderRepo.EXPECT().
					MarkFailed(gomock.Any(), int64(7), gomock.Any()).
					Return(nil).Times(1)
			},
			errSubstr: "unknown channel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			instance := newTestInstance(t, m, nil, &fakeClock{now: at(17, 13, 30, 0)})
			tt.buildMock(m)

			err := instance.Reminder.Notify(context.Background(), occ, eventAt)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.errSubstr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errSubstr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_buildReminder(t *testing.T) {
	occ := entity.Occurrence{EventName: "Mystery", Hour: 9}

	got := buildReminder(occ, at(17, 9, 0, 0), at(17, 8, 30, 10))

	assert.Equal(t, "🚨 Mystery is starting soon!", got.Title)
	assert.Contains(t, got.Description, "Starts in 30 minutes")
	assert.Contains(t, got.Description, "09:00")
	assert.Equal(t, domain.DefaultColor, got.Color)
}

func Test_reminderService_UpcomingToday(t *testing.T) {
	tests := []struct {
		name string
		now  int // hour of day on the 17th
		want []string
	}{
		{
			name: "Should list the remaining events sorted by time",
			now:  13,
			want: []string{"BDW@14:00", "BDW@20:00", "Inferno Temple@20:30", "Davulcu@23:00"},
		},
		{
			name: "Should list everything at midnight",
			now:  0,
			want: []string{"BDW@02:00", "Inferno Temple@08:00", "BDW@14:00", "BDW@20:00", "Inferno Temple@20:30", "Davulcu@23:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			instance := newTestInstance(t, m, testEvents, &fakeClock{now: at(17, tt.now, 0, 0)})

			upcoming := instance.Reminder.UpcomingToday(context.Background())

			var got []string
			for _, u := range upcoming {
				got = append(got, u.Key())
				assert.Equal(t, 17, u.At.Day())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_reminderService_UpcomingToday_NoMoreEvents(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	instance := newTestInstance(t, m, testEvents, &fakeClock{now: at(17, 23, 55, 0)})

	assert.Empty(t, instance.Reminder.UpcomingToday(context.Background()))
}

func Test_reminderService_SendTest(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	instance := newTestInstance(t, m, testEvents, &fakeClock{now: at(17, 12, 0, 0)})

	m.mockMessenger.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r entity.Reminder) error {
			assert.Equal(t, "🧪 TEST is starting soon!", r.Title)
			assert.Contains(t, r.Description, "Starts in 2 minutes")
			assert.Contains(t, r.Description, "12:02")
			return nil
		}).Times(1)

	test, err := instance.Reminder.SendTest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TestEventName, test.EventName)
	assert.True(t, at(17, 12, 2, 0).Equal(test.At))

	m.mockMessenger.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		Return(errors.New("missing access")).Times(1)

	_, err = instance.Reminder.SendTest(context.Background())
	require.Error(t, err)
}

func Test_reminderService_History(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
		repoErr   error
	}{
		{name: "Should use the default limit", limit: 0, wantLimit: domain.DefaultHistoryLimit},
		{name: "Should keep a valid limit", limit: 3, wantLimit: 3},
		{name: "Should clamp a large limit", limit: 500, wantLimit: domain.MaxHistoryLimit},
		{name: "Should wrap repository errors", limit: 5, wantLimit: 5, repoErr: errors.New("locked")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			instance := newTestInstance(t, m, nil, &fakeClock{now: at(17, 12, 0, 0)})

			rows := []*entity.SentReminder{{ID: 1, EventName: "BDW"}}
			m.mockSentReminderRepo.EXPECT().
				ListRecent(gomock.Any(), tt.wantLimit).
				Return(rows, tt.repoErr).Times(1)

			got, err := instance.Reminder.History(context.Background(), tt.limit)
			if tt.repoErr != nil {
				require.ErrorIs(t, err, tt.repoErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, rows, got)
		})
	}
}
