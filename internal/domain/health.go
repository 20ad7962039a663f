package domain

// ComponentHealth is the probe result of one backend.
type ComponentHealth struct {
	Name      string
	Healthy   bool
	Error     string
	LatencyMs int64
}

// HealthReport aggregates the backend probes. Healthy is true only when
// every component is.
type HealthReport struct {
	Healthy    bool
	Components []ComponentHealth
}
