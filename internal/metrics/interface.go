package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncPlayerLogins(success bool)
	IncModeratorLogins(success bool)
	IncNewsPublished()
	IncScheduleUpdates()
	IncGenAICalls(capability string)
	IncGenAIFailures(capability string)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
