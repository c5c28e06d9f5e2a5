package service

import (
	"testing"
	"time"

	"github.com/diegoclair/event-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/event-reminder-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

// Europe/Istanbul has been a fixed UTC+3 since 2016
var testLoc = time.FixedZone("TRT", 3*60*60)

type allMocks struct {
	mockDataManager      *mocks.MockDataManager
	mockSentReminderRepo *mocks.MockSentReminderRepo
	mockMessenger        *mocks.MockMessenger
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	sentReminderRepo := mocks.NewMockSentReminderRepo(ctrl)
	dm.EXPECT().SentReminder().Return(sentReminderRepo).AnyTimes()

	m = allMocks{
		mockDataManager:      dm,
		mockSentReminderRepo: sentReminderRepo,
		mockMessenger:        mocks.NewMockMessenger(ctrl),
	}

	return
}

func newTestInstance(t *testing.T, m allMocks, events []entity.EventDefinition, clock *fakeClock) *Instance {
	t.Helper()

	instance := New(m.mockDataManager, m.mockMessenger, events, Config{
		Location: testLoc,
		Clock:    clock,
		Logger:   zaptest.NewLogger(t),
	})
	require.NotNil(t, instance)

	return instance
}

func at(day, hour, minute, second int) time.Time {
	return time.Date(2026, time.October, day, hour, minute, second, 0, testLoc)
}

var testEvents = []entity.EventDefinition{
	{Name: "BDW", Emoji: "🏰", Color: 0xe74c3c, ImageURL: "https://prnt.sc/IwzCXuokYbao", Schedule: []entity.ScheduleTime{2, 14, 20}},
	{Name: "Inferno Temple", Emoji: "🔥", Color: 0xe67e22, ImageURL: "https://prnt.sc/7Pb7YHC9IbJ8", Schedule: []entity.ScheduleTime{8, 20.5}},
	{Name: "Davulcu", Emoji: "🥁", Color: 0x3498db, Schedule: []entity.ScheduleTime{23}},
}
