package v1

import "time"

// CheckResult is the outcome of one credential probe. Probe failures are
// carried here as data, never as errors.
type CheckResult struct {
	CredentialId int64     `json:"credential_id"`
	Status       string    `json:"status"` // healthy | unhealthy | limited
	Reason       string    `json:"reason"`
	CheckedAt    time.Time `json:"checked_at"`
}

// SweepSummary aggregates one batch run over a credential set.
type SweepSummary struct {
	Total     int           `json:"total"`
	Healthy   int           `json:"healthy"`
	Unhealthy int           `json:"unhealthy"`
	Limited   int           `json:"limited"`
	Results   []CheckResult `json:"results"`
}

type RunSweepRequest struct {
	BatchWidth int `json:"batch_width" example:"5"` // max concurrent probes, defaults from config
}

type RunSweepResponse struct {
	Response
	Data SweepSummary
}

type HealthStatsData struct {
	Total         int64      `json:"total"`
	Healthy       int64      `json:"healthy"`
	Unhealthy     int64      `json:"unhealthy"`
	Limited       int64      `json:"limited"`
	Unknown       int64      `json:"unknown"`
	LastCheckedAt *time.Time `json:"last_checked_at"`
}

type HealthStatsResponse struct {
	Response
	Data HealthStatsData
}
