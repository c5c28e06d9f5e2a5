package service

import (
	"testing"
	"time"

	"github.com/diegoclair/event-reminder-bot/internal/domain"
	"github.com/diegoclair/event-reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandSchedule(t *testing.T) {
	occurrences := ExpandSchedule(testEvents)
	require.Len(t, occurrences, 6)

	want := []struct {
		name   string
		hour   int
		minute int
	}{
		{"BDW", 2, 0},
		{"BDW", 14, 0},
		{"BDW", 20, 0},
		{"Inferno Temple", 8, 0},
		{"Inferno Temple", 20, 30},
		{"Davulcu", 23, 0},
	}
	for i, w := range want {
		assert.Equal(t, w.name, occurrences[i].EventName)
		assert.Equal(t, w.hour, occurrences[i].Hour)
		assert.Equal(t, w.minute, occurrences[i].Minute)
	}

	assert.Equal(t, "🔥", occurrences[4].Emoji)
	assert.Equal(t, 0xe67e22, occurrences[4].Color)
	assert.Equal(t, "Inferno Temple@20:30", occurrences[4].Key())
	assert.Equal(t, "20:30", occurrences[4].ClockString())

	assert.Empty(t, ExpandSchedule(nil))
}

func TestScheduleTime_Clock(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		h, m := entity.ScheduleTime(hour).Clock()
		assert.Equal(t, hour, h)
		assert.Equal(t, 0, m)

		h, m = entity.ScheduleTime(float64(hour) + 0.5).Clock()
		assert.Equal(t, hour, h)
		assert.Equal(t, 30, m)
	}
}

func Test_nextEventTime(t *testing.T) {
	occ := entity.Occurrence{EventName: "BDW", Hour: 14}

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "Should return today if time hasn't passed",
			now:  at(17, 10, 0, 0),
			want: at(17, 14, 0, 0),
		},
		{
			name: "Should return today when now is exactly the event time",
			now:  at(17, 14, 0, 0),
			want: at(17, 14, 0, 0),
		},
		{
			name: "Should return tomorrow if time has passed",
			now:  at(17, 14, 0, 1),
			want: at(18, 14, 0, 0),
		},
		{
			name: "Should roll over the month end",
			now:  at(31, 23, 0, 0),
			want: time.Date(2026, time.November, 1, 14, 0, 0, 0, testLoc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextEventTime(occ, tt.now)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}

func Test_nextEventTime_NeverInThePast(t *testing.T) {
	occurrences := ExpandSchedule(testEvents)
	start := at(17, 0, 0, 0)

	for now := start; now.Before(start.Add(24 * time.Hour)); now = now.Add(7 * time.Minute) {
		for _, occ := range occurrences {
			got := nextEventTime(occ, now)
			require.False(t, got.Before(now), "%s at %v resolved to %v", occ.Key(), now, got)
			require.True(t, got.Before(now.Add(24*time.Hour)), "%s at %v resolved to %v", occ.Key(), now, got)
			require.Equal(t, occ.Hour, got.Hour())
			require.Equal(t, occ.Minute, got.Minute())
		}
	}
}

func Test_reminderTime(t *testing.T) {
	eventAt := at(17, 20, 30, 0)
	assert.True(t, at(17, 20, 0, 0).Equal(reminderTime(eventAt)))

	// reminder for a time just after midnight lands on the previous day
	assert.True(t, at(17, 23, 45, 0).Equal(reminderTime(at(18, 0, 15, 0))))
}

func Test_withinWindow(t *testing.T) {
	r := at(17, 13, 30, 0)
	w := domain.TriggerWindow

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"exactly at reminder time", r, true},
		{"lower boundary", r.Add(-w), true},
		{"upper boundary", r.Add(w), true},
		{"one second before the window", r.Add(-w - time.Second), false},
		{"one second after the window", r.Add(w + time.Second), false},
		{"one nanosecond before the window", r.Add(-w - time.Nanosecond), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withinWindow(tt.now, r, w))
		})
	}
}
