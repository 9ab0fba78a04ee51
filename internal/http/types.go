package http

import (
	"net/http"

	"github.com/flameunter/fanclub/internal/announcer"
	"github.com/flameunter/fanclub/internal/club"
	"github.com/flameunter/fanclub/internal/config"
	"github.com/flameunter/fanclub/internal/genai"
	"github.com/flameunter/fanclub/internal/metrics"
)

type Server struct {
	Store          club.ClubStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	AI             genai.Client
	Announcer      *announcer.Announcer
	Router         *http.ServeMux
}
