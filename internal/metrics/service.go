package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// Service is the Prometheus-backed Metrics implementation.
type Service struct {
	PlayerLogins    *prometheus.CounterVec
	ModeratorLogins *prometheus.CounterVec
	NewsPublished   prometheus.Counter
	ScheduleUpdates prometheus.Counter
	GenAICalls      *prometheus.CounterVec
	GenAIFailures   *prometheus.CounterVec
	SlackNotifSent  prometheus.Counter
	SlackNotifFail  prometheus.Counter
	StartupSeconds  prometheus.Gauge
}

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		PlayerLogins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fanclub_player_logins_total",
			Help: "The total number of player login attempts, by outcome.",
		}, []string{"success"}),
		ModeratorLogins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fanclub_moderator_logins_total",
			Help: "The total number of moderator login attempts, by outcome.",
		}, []string{"success"}),
		NewsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fanclub_news_published_total",
			Help: "The total number of team news items published.",
		}),
		ScheduleUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fanclub_schedule_updates_total",
			Help: "The total number of wholesale schedule replacements.",
		}),
		GenAICalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fanclub_genai_calls_total",
			Help: "The total number of generative-AI collaborator calls, by capability.",
		}, []string{"capability"}),
		GenAIFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fanclub_genai_failures_total",
			Help: "The total number of failed generative-AI collaborator calls, by capability.",
		}, []string{"capability"}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fanclub_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fanclub_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fanclub_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.PlayerLogins,
		s.ModeratorLogins,
		s.NewsPublished,
		s.ScheduleUpdates,
		s.GenAICalls,
		s.GenAIFailures,
		s.SlackNotifSent,
		s.SlackNotifFail,
		s.StartupSeconds,
	)

	return s
}

func (s *Service) IncPlayerLogins(success bool) {
	s.PlayerLogins.WithLabelValues(strconv.FormatBool(success)).Inc()
}

func (s *Service) IncModeratorLogins(success bool) {
	s.ModeratorLogins.WithLabelValues(strconv.FormatBool(success)).Inc()
}

func (s *Service) IncNewsPublished() {
	s.NewsPublished.Inc()
}

func (s *Service) IncScheduleUpdates() {
	s.ScheduleUpdates.Inc()
}

func (s *Service) IncGenAICalls(capability string) {
	s.GenAICalls.WithLabelValues(capability).Inc()
}

func (s *Service) IncGenAIFailures(capability string) {
	s.GenAIFailures.WithLabelValues(capability).Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFail.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupSeconds.Set(duration)
}
