package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slackRequest struct {
	path string
	form url.Values
}

func newSlackTestServer(t *testing.T, response string, got *slackRequest) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		got.path = r.URL.Path
		got.form = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestSlackMessenger_Send(t *testing.T) {
	var got slackRequest
	srv := newSlackTestServer(t, `{"ok":true,"channel":"C123","ts":"1760698800.000100"}`, &got)

	client := slack.New("xoxb-test", slack.OptionAPIURL(srv.URL+"/"))
	m := NewSlackMessenger(client, "C123", "S42")

	err := m.Send(context.Background(), testReminder)
	require.NoError(t, err)

	assert.Equal(t, "/chat.postMessage", got.path)
	assert.Equal(t, "C123", got.form.Get("channel"))
	assert.Equal(t, "<!subteam^S42> 🔔", got.form.Get("text"))

	var attachments []slack.Attachment
	require.NoError(t, json.Unmarshal([]byte(got.form.Get("attachments")), &attachments))
	require.Len(t, attachments, 1)
	assert.Equal(t, "#e74c3c", attachments[0].Color)
	assert.Equal(t, testReminder.Title, attachments[0].Title)
	assert.Equal(t, "*Starts in 30 minutes!*\n`🕒 14:00`", attachments[0].Text)
	assert.Equal(t, testReminder.ImageURL, attachments[0].ImageURL)
}

func TestSlackMessenger_SendError(t *testing.T) {
	var got slackRequest
	srv := newSlackTestServer(t, `{"ok":false,"error":"channel_not_found"}`, &got)

	client := slack.New("xoxb-test", slack.OptionAPIURL(srv.URL+"/"))
	err := NewSlackMessenger(client, "C404", "S42").Send(context.Background(), testReminder)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel_not_found")
}
