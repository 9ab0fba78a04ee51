package slack_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/flameunter/fanclub/internal/club"
	"github.com/flameunter/fanclub/internal/metrics"
	clubslack "github.com/flameunter/fanclub/internal/notifier/slack"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotifier(t *testing.T, handler http.HandlerFunc) (*clubslack.Notifier, *metrics.MockMetrics) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api := slack.New("test-token", slack.OptionAPIURL(srv.URL+"/"))
	metricsMock := metrics.NewMock()
	return clubslack.NewNotifierWithAPI(api, "C123", metricsMock), metricsMock
}

func TestSendNewsNotification(t *testing.T) {
	handlerCalled := false
	notifier, metricsMock := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		body, _ := io.ReadAll(r.Body)
		vals, _ := url.ParseQuery(string(body))
		assert.Equal(t, "C123", vals.Get("channel"))

		var blocks slack.Blocks
		err := json.Unmarshal([]byte(vals.Get("blocks")), &blocks)
		require.NoError(t, err)

		require.Len(t, blocks.BlockSet, 2)
		header := blocks.BlockSet[0].(*slack.HeaderBlock)
		assert.Contains(t, header.Text.Text, "Team news")
		section := blocks.BlockSet[1].(*slack.SectionBlock)
		assert.Equal(t, "Training moved to 6 PM", section.Text.Text)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true, "ts": "12345.6789"}`))
	})

	err := notifier.SendNewsNotification(club.TeamNewsItem{ID: 4, Title: "Training moved to 6 PM"}, false)
	require.NoError(t, err)

	assert.True(t, handlerCalled, "Expected http handler to be called")
	assert.Equal(t, 1, metricsMock.SlackSentCount)
	assert.Equal(t, 0, metricsMock.SlackFailedCount)
}

func TestSendScheduleNotification(t *testing.T) {
	handlerCalled := false
	notifier, metricsMock := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		body, _ := io.ReadAll(r.Body)
		vals, _ := url.ParseQuery(string(body))

		var blocks slack.Blocks
		err := json.Unmarshal([]byte(vals.Get("blocks")), &blocks)
		require.NoError(t, err)

		require.Len(t, blocks.BlockSet, 2)
		section := blocks.BlockSet[1].(*slack.SectionBlock)
		assert.Contains(t, section.Text.Text, "Rival FC")
		assert.Contains(t, section.Text.Text, "(FT 3 - 1)")
		assert.Contains(t, section.Text.Text, "Mountain Giants")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true, "ts": "12345.6789"}`))
	})

	matches := []club.MatchInfo{
		{Opponent: "Rival FC", Competition: "Premier League", Date: "2024-08-28", Time: "15:00 GMT", Venue: "Flameunter Stadium (Home)", Score: "3 - 1"},
		{Opponent: "Mountain Giants", Competition: "Premier League", Date: "2024-09-05", Time: "19:45 GMT", Venue: "Giant's Peak (Away)"},
	}
	err := notifier.SendScheduleNotification(matches, false)
	require.NoError(t, err)

	assert.True(t, handlerCalled, "Expected http handler to be called")
	assert.Equal(t, 1, metricsMock.SlackSentCount)
}

func TestSendPlayerJoinedNotification(t *testing.T) {
	handlerCalled := false
	notifier, metricsMock := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		body, _ := io.ReadAll(r.Body)
		vals, _ := url.ParseQuery(string(body))

		var blocks slack.Blocks
		err := json.Unmarshal([]byte(vals.Get("blocks")), &blocks)
		require.NoError(t, err)

		require.Len(t, blocks.BlockSet, 2)
		header := blocks.BlockSet[0].(*slack.HeaderBlock)
		assert.Contains(t, header.Text.Text, "New signing")
		section := blocks.BlockSet[1].(*slack.SectionBlock)
		assert.Contains(t, section.Text.Text, "New Kid has joined the squad")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true, "ts": "12345.6789"}`))
	})

	err := notifier.SendPlayerJoinedNotification(club.Player{ID: "7772026", Name: "New Kid"}, false)
	require.NoError(t, err)

	assert.True(t, handlerCalled, "Expected http handler to be called")
	assert.Equal(t, 1, metricsMock.SlackSentCount)
}

func TestSendNotificationDryRun(t *testing.T) {
	handlerCalled := false
	notifier, metricsMock := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	})

	err := notifier.SendNewsNotification(club.TeamNewsItem{ID: 1, Title: "Quiet week"}, true)
	require.NoError(t, err)

	assert.False(t, handlerCalled, "Expected http handler NOT to be called in dry run")
	assert.Equal(t, 0, metricsMock.SlackSentCount, "Metrics should not be incremented in dry run")
}

func TestSendNotificationFailure(t *testing.T) {
	notifier, metricsMock := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": false, "error": "channel_not_found"}`))
	})

	err := notifier.SendNewsNotification(club.TeamNewsItem{ID: 1, Title: "Quiet week"}, false)
	require.Error(t, err)

	assert.Equal(t, 0, metricsMock.SlackSentCount)
	assert.Equal(t, 1, metricsMock.SlackFailedCount)
}
