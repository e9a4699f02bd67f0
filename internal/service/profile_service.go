package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
)

// --- Error Definitions ---
var (
	ErrProfileNotFound = errors.New("profile not found")
)

type ProfileService interface {
	CreateProfile(ctx context.Context, profile *domain.UserProfile) (string, error)
	GetProfileByEmail(ctx context.Context, email string) (*domain.UserProfile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new instance of profileService.
func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

// CreateProfile stores a profile and returns its hex identifier.
func (s *profileService) CreateProfile(ctx context.Context, profile *domain.UserProfile) (string, error) {
	id, err := s.profileRepo.Create(ctx, profile)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// GetProfileByEmail returns the first profile stored under email.
// Unlike the list operations, an empty match is an error here.
func (s *profileService) GetProfileByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	profile, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}
