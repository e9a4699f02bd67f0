package domain

import "time"

// InsightsTotals summarises the workouts inside a report window.
type InsightsTotals struct {
	Sessions    int     `json:"sessions"`
	Minutes     float64 `json:"minutes"`
	AvgDuration float64 `json:"avg_duration"`
	StreakDays  int     `json:"streak_days"`
}

// InsightsReport is derived on demand and never persisted.
type InsightsReport struct {
	Totals      InsightsTotals     `json:"totals"`
	VolumeByDay map[string]float64 `json:"volume_by_day"`
	Types       map[string]int     `json:"types"`
	Suggestions []string           `json:"suggestions"`
	// WeightChange is nil when the history has no usable weight readings.
	WeightChange *float64 `json:"weight_change"`
}

// ReportArchive points at an insights report snapshot kept in object storage.
type ReportArchive struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
