package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/flameunter/fanclub/internal/announcer"
	"github.com/flameunter/fanclub/internal/club"
	"github.com/flameunter/fanclub/internal/config"
	"github.com/flameunter/fanclub/internal/database"
	"github.com/flameunter/fanclub/internal/genai"
	"github.com/flameunter/fanclub/internal/metrics"
	"github.com/flameunter/fanclub/internal/notifier"
	"github.com/flameunter/fanclub/internal/pubsub"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestServer initializes a new server with a test database and mock clients.
func setupTestServer(t *testing.T, ai genai.Client) (*Server, *notifier.Mock, *pubsub.MockPubSubClient, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)

	clubStore := club.New(db, club.ModeratorCredentials{Username: "111", Password: "111"})
	require.NoError(t, clubStore.Seed())

	cfg := config.Config{}
	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)
	notifierMock := notifier.NewMock()
	pubsubMock := pubsub.NewMock("TEST")
	ann := announcer.New(notifierMock, metricsSvc, pubsubMock)

	server := NewServer(clubStore, metricsSvc, metricsHandler, cfg, ai, ann)
	return server, notifierMock, pubsubMock, dbTeardown
}

func doJSON(t *testing.T, server *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)
	return rr
}

func TestHealthCheckHandler(t *testing.T) {
	server, _, _, teardown := setupTestServer(t, genai.NewMock())
	defer teardown()

	rr := doJSON(t, server, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code, "handler returned wrong status code")
	assert.Equal(t, "OK!", rr.Body.String(), "handler returned unexpected body")
}

func TestPlayerLoginHandler(t *testing.T) {
	server, _, _, teardown := setupTestServer(t, genai.NewMock())
	defer teardown()

	t.Run("valid credentials", func(t *testing.T) {
		rr := doJSON(t, server, "POST", "/player/login", `{"id": "1002022", "password": "abdurrakib10s2022"}`)
		require.Equal(t, http.StatusOK, rr.Code)

		var player club.Player
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &player))
		assert.Equal(t, club.Player{ID: "1002022", Name: "Abdur Rakib"}, player)
		assert.NotContains(t, rr.Body.String(), "abdurrakib10s2022", "password must never reach the client")
	})

	t.Run("invalid credentials", func(t *testing.T) {
		rr := doJSON(t, server, "POST", "/player/login", `{"id": "1002022", "password": "nope"}`)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rr := doJSON(t, server, "POST", "/player/login", `{`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestModeratorLoginHandler(t *testing.T) {
	server, _, _, teardown := setupTestServer(t, genai.NewMock())
	defer teardown()

	rr := doJSON(t, server, "POST", "/moderator/login", `{"username": "111", "password": "111"}`)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, server, "POST", "/moderator/login", `{"username": "111", "password": "222"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestPlayerDashboardHandler(t *testing.T) {
	server, _, _, teardown := setupTestServer(t, genai.NewMock())
	defer teardown()

	t.Run("known player", func(t *testing.T) {
		rr := doJSON(t, server, "GET", "/player/dashboard?playerID=1002022", "")
		require.Equal(t, http.StatusOK, rr.Code)

		var dashboard club.DashboardData
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dashboard))
		assert.Len(t, dashboard.SeasonStats, 8)
		assert.Len(t, dashboard.TeamNews, 3)
	})

	t.Run("unknown player", func(t *testing.T) {
		rr := doJSON(t, server, "GET", "/player/dashboard?playerID=ghost", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("missing id", func(t *testing.T) {
		rr := doJSON(t, server, "GET", "/player/dashboard", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestPlayersHandler(t *testing.T) {
	server, notifierMock, pubsubMock, teardown := setupTestServer(t, genai.NewMock())
	defer teardown()

	t.Run("list", func(t *testing.T) {
		rr := doJSON(t, server, "GET", "/players", "")
		require.Equal(t, http.StatusOK, rr.Code)

		var players []club.Player
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
		assert.Len(t, players, 10)
	})

	t.Run("add announces the new player", func(t *testing.T) {
		rr := doJSON(t, server, "POST", "/players", `{"id": "7772026", "name": "New Kid", "password": "secret"}`)
		require.Equal(t, http.StatusCreated, rr.Code)

		require.Len(t, notifierMock.SendPlayerJoinedNotificationCalls, 1)
		assert.Equal(t, "New Kid", notifierMock.SendPlayerJoinedNotificationCalls[0].Name)
		require.Len(t, pubsubMock.SendMessageCalls, 1)
		assert.Equal(t, string(pubsub.EventPlayerAdded), pubsubMock.SendMessageCalls[0].Topic)
	})

	t.Run("duplicate id conflicts", func(t *testing.T) {
		rr := doJSON(t, server, "POST", "/players", `{"id": "1002022", "name": "Impostor", "password": "x"}`)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("empty field is a bad request", func(t *testing.T) {
		rr := doJSON(t, server, "POST", "/players", `{"id": "9992026", "name": "", "password": "x"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestPlayerStatsHandler(t *testing.T) {
	server, _, _, teardown := setupTestServer(t, genai.NewMock())
	defer teardown()

	t.Run("get for editing", func(t *testing.T) {
		rr := doJSON(t, server, "GET", "/players/stats?playerID=1002022", "")
		require.Equal(t, http.StatusOK, rr.Code)

		var sheet club.StatSheet
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sheet))
		assert.Len(t, sheet.SeasonStats, 8)
		assert.Len(t, sheet.AllTimeStats, 4)
	})

	t.Run("update replaces and filters", func(t *testing.T) {
		body := `{"season_stats": [{"label": "Goals", "value": "9"}, {"label": "", "value": "x"}], "all_time_stats": []}`
		rr := doJSON(t, server, "PUT", "/players/stats?playerID=1002022", body)
		require.Equal(t, http.StatusOK, rr.Code)

		rr = doJSON(t, server, "GET", "/players/stats?playerID=1002022", "")
		var sheet club.StatSheet
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sheet))
		assert.Equal(t, []club.StatLine{{Label: "Goals", Value: "9"}}, sheet.SeasonStats)
		assert.Empty(t, sheet.AllTimeStats)
	})

	t.Run("unknown player", func(t *testing.T) {
		rr := doJSON(t, server, "GET", "/players/stats?playerID=ghost", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestTeamNewsHandler(t *testing.T) {
	server, notifierMock, pubsubMock, teardown := setupTestServer(t, genai.NewMock())
	defer teardown()

	t.Run("publish appends and announces", func(t *testing.T) {
		rr := doJSON(t, server, "POST", "/news", `{"title": "Training moved"}`)
		require.Equal(t, http.StatusCreated, rr.Code)

		var item club.TeamNewsItem
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &item))
		assert.Equal(t, club.TeamNewsItem{ID: 4, Title: "Training moved"}, item)

		require.Len(t, notifierMock.SendNewsNotificationCalls, 1)
		require.Len(t, pubsubMock.SendMessageCalls, 1)
		assert.Equal(t, string(pubsub.EventNewsPublished), pubsubMock.SendMessageCalls[0].Topic)

		rr = doJSON(t, server, "GET", "/news", "")
		var news []club.TeamNewsItem
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &news))
		require.Len(t, news, 4)
		assert.Equal(t, item, news[3])
	})

	t.Run("empty title is a bad request", func(t *testing.T) {
		rr := doJSON(t, server, "POST", "/news", `{"title": "  "}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestScheduleHandler(t *testing.T) {
	server, notifierMock, _, teardown := setupTestServer(t, genai.NewMock())
	defer teardown()

	replacement := `[
		{"opponent": "Harbor Town", "competition": "Premier League", "date": "2024-10-01", "time": "15:00 GMT", "venue": "Flameunter Stadium (Home)"},
		{"opponent": "Rival FC", "competition": "League Cup", "date": "2024-10-09", "time": "19:45 GMT", "venue": "Rival Park (Away)"},
		{"opponent": "Oceanic Wanderers", "competition": "Premier League", "date": "2024-10-15", "time": "16:30 GMT", "venue": "The Coral Arena (Away)"}
	]`
	rr := doJSON(t, server, "PUT", "/schedule", replacement)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, notifierMock.SendScheduleNotificationCalls, 1)

	rr = doJSON(t, server, "GET", "/schedule", "")
	var matches []club.MatchInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &matches))
	require.Len(t, matches, 3)
	assert.Equal(t, "Harbor Town", matches[0].Opponent)
	assert.Equal(t, "Oceanic Wanderers", matches[2].Opponent)
}

func TestClubLeadersHandler(t *testing.T) {
	server, _, _, teardown := setupTestServer(t, genai.NewMock())
	defer teardown()

	rr := doJSON(t, server, "GET", "/leaders", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var leaders club.ClubLeadersData
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &leaders))
	assert.Equal(t, "Abdur Rakib", leaders.TopScorer.Name)
	assert.Equal(t, "4", leaders.TopScorer.Value)
}

func TestAINewsHandler(t *testing.T) {
	aiMock := genai.NewMock()
	aiMock.SearchNewsFunc = func(ctx context.Context, prompt string) (genai.NewsResult, error) {
		return genai.NewsResult{Text: "All quiet.", Sources: []genai.Source{{URI: "https://example.com", Title: "Club site"}}}, nil
	}
	server, _, _, teardown := setupTestServer(t, aiMock)
	defer teardown()

	rr := doJSON(t, server, "POST", "/ai/news", `{"prompt": "any transfer rumours?"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var result genai.NewsResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, "All quiet.", result.Text)
	require.Len(t, aiMock.SearchNewsCalls, 1)
	assert.Equal(t, "any transfer rumours?", aiMock.SearchNewsCalls[0])
}

func TestAIFanArtHandler(t *testing.T) {
	t.Run("invalid ratio is rejected before the collaborator is called", func(t *testing.T) {
		aiMock := genai.NewMock()
		server, _, _, teardown := setupTestServer(t, aiMock)
		defer teardown()

		rr := doJSON(t, server, "POST", "/ai/art", `{"prompt": "banner", "aspect_ratio": "2:1"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, aiMock.GenerateFanArtCalls)
	})

	t.Run("collaborator failure maps to bad gateway", func(t *testing.T) {
		aiMock := genai.NewMock()
		aiMock.GenerateFanArtFunc = func(ctx context.Context, prompt string, ratio genai.AspectRatio) (genai.ImageResult, error) {
			return genai.ImageResult{}, genai.ErrGenerationFailed
		}
		server, _, _, teardown := setupTestServer(t, aiMock)
		defer teardown()

		rr := doJSON(t, server, "POST", "/ai/art", `{"prompt": "banner", "aspect_ratio": "16:9"}`)
		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}

func TestAIAnalyzeHandler(t *testing.T) {
	aiMock := genai.NewMock()
	aiMock.AnalyzePhotoFunc = func(ctx context.Context, prompt string, image []byte, mimeType string) (genai.AnalysisResult, error) {
		return genai.AnalysisResult{Text: "A corner kick."}, nil
	}
	server, _, _, teardown := setupTestServer(t, aiMock)
	defer teardown()

	rr := doJSON(t, server, "POST", "/ai/analyze", `{"prompt": "", "image": "AQID", "mime_type": "image/png"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var result genai.AnalysisResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, "A corner kick.", result.Text)

	rr = doJSON(t, server, "POST", "/ai/analyze", `{"prompt": "x", "image": "", "mime_type": "image/png"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestClearStoreHandler(t *testing.T) {
	server, _, _, teardown := setupTestServer(t, genai.NewMock())
	defer teardown()

	rr := doJSON(t, server, "GET", "/clear", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(t, server, "GET", "/players", "")
	var players []club.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	assert.Empty(t, players)
}
