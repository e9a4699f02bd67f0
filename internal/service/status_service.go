package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"fmt"
)

const (
	maxStatusCollections = 10
	maxStatusErrLen      = 80
)

// ConfigPresence records which store settings were supplied at boot.
type ConfigPresence struct {
	DatabaseURL  bool
	DatabaseName bool
}

type StatusService interface {
	// Status never fails: every sub-check degrades to a status string.
	Status(ctx context.Context) domain.StatusReport
}

type statusService struct {
	store    repository.StoreInspector
	presence ConfigPresence
}

func NewStatusService(store repository.StoreInspector, presence ConfigPresence) StatusService {
	return &statusService{store: store, presence: presence}
}

func (s *statusService) Status(ctx context.Context) domain.StatusReport {
	report := domain.StatusReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      setOrNot(s.presence.DatabaseURL),
		DatabaseName:     setOrNot(s.presence.DatabaseName),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if s.store == nil || !s.store.Connected() {
		return report
	}

	report.Database = "✅ Available"
	report.ConnectionStatus = "Connected"

	names, err := s.store.CollectionNames(ctx)
	if err != nil {
		report.Database = fmt.Sprintf("⚠️ Connected but Error: %s", truncate(err.Error(), maxStatusErrLen))
		return report
	}
	if len(names) > maxStatusCollections {
		names = names[:maxStatusCollections]
	}
	report.Collections = append(report.Collections, names...)
	report.Database = "✅ Connected & Working"
	return report
}

func setOrNot(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
