package http

import (
	"net/http"

	"github.com/flameunter/fanclub/internal/announcer"
	"github.com/flameunter/fanclub/internal/club"
	"github.com/flameunter/fanclub/internal/config"
	"github.com/flameunter/fanclub/internal/genai"
	"github.com/flameunter/fanclub/internal/metrics"
)

func NewServer(store club.ClubStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, ai genai.Client, announcer *announcer.Announcer) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		AI:             ai,
		Announcer:      announcer,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))
	s.Router.Handle("/player/login", Chain(s.PlayerLoginHandler(), paramsMiddleware))
	s.Router.Handle("/player/dashboard", Chain(s.PlayerDashboardHandler(), paramsMiddleware))
	s.Router.Handle("/moderator/login", Chain(s.ModeratorLoginHandler(), paramsMiddleware))
	s.Router.Handle("/players", Chain(s.PlayersHandler(), paramsMiddleware))
	s.Router.Handle("/players/stats", Chain(s.PlayerStatsHandler(), paramsMiddleware))
	s.Router.Handle("/news", Chain(s.TeamNewsHandler(), paramsMiddleware))
	s.Router.Handle("/schedule", Chain(s.ScheduleHandler(), paramsMiddleware))
	s.Router.Handle("/leaders", Chain(s.ClubLeadersHandler(), paramsMiddleware))
	s.Router.Handle("/ai/news", Chain(s.AINewsHandler(), paramsMiddleware))
	s.Router.Handle("/ai/places", Chain(s.AIPlacesHandler(), paramsMiddleware))
	s.Router.Handle("/ai/art", Chain(s.AIFanArtHandler(), paramsMiddleware))
	s.Router.Handle("/ai/analyze", Chain(s.AIAnalyzeHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
