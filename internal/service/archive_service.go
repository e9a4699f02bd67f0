package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/storage"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
)

var (
	ErrArchiveDisabled = errors.New("report archive storage is not configured")
	ErrArchiveFailed   = errors.New("failed to archive insights report")
)

type ArchiveService interface {
	// ArchiveInsights computes the insights report, stores a JSON snapshot
	// of it and returns a temporary download link.
	ArchiveInsights(ctx context.Context, email string, days int) (*domain.ReportArchive, error)
}

type archiveService struct {
	insights    InsightsService
	fileStorage storage.FileStorage
	expiry      time.Duration
	now         func() time.Time
}

// NewArchiveService creates the archive service. fileStorage may be nil, in
// which case every call fails with ErrArchiveDisabled.
func NewArchiveService(insights InsightsService, fileStorage storage.FileStorage, expiry time.Duration, now func() time.Time) ArchiveService {
	if expiry <= 0 {
		expiry = storage.DefaultPresignedURLExpiry
	}
	if now == nil {
		now = time.Now
	}
	return &archiveService{
		insights:    insights,
		fileStorage: fileStorage,
		expiry:      expiry,
		now:         now,
	}
}

func (s *archiveService) ArchiveInsights(ctx context.Context, email string, days int) (*domain.ReportArchive, error) {
	if s.fileStorage == nil {
		return nil, ErrArchiveDisabled
	}

	report, err := s.insights.Insights(ctx, email, days)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchiveFailed, err)
	}

	now := s.now()
	objectKey := reportObjectKey(email, now)
	if err := s.fileStorage.PutObject(ctx, objectKey, "application/json", body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchiveFailed, err)
	}

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, s.expiry)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchiveFailed, err)
	}

	return &domain.ReportArchive{
		Key:       objectKey,
		URL:       url,
		ExpiresAt: now.Add(s.expiry).UTC(),
	}, nil
}

// reportObjectKey builds insights/<email>/<YYYY-MM-DD>-<uuid>.json
func reportObjectKey(email string, now time.Time) string {
	name := fmt.Sprintf("%s-%s.json", domain.FormatDate(domain.CivilDate(now)), uuid.NewString())
	return path.Join("insights", email, name)
}
