package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
)

const (
	DefaultBodyCompLimit = 30
	MaxBodyCompLimit     = 365
)

type BodyCompService interface {
	RecordMeasurement(ctx context.Context, entry *domain.BodyCompEntry) (string, error)
	ListMeasurements(ctx context.Context, query repository.BodyCompQuery) ([]domain.BodyCompEntry, error)
}

type bodyCompService struct {
	bodyCompRepo repository.BodyCompRepository
}

func NewBodyCompService(bodyCompRepo repository.BodyCompRepository) BodyCompService {
	return &bodyCompService{bodyCompRepo: bodyCompRepo}
}

func (s *bodyCompService) RecordMeasurement(ctx context.Context, entry *domain.BodyCompEntry) (string, error) {
	id, err := s.bodyCompRepo.Create(ctx, entry)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (s *bodyCompService) ListMeasurements(ctx context.Context, query repository.BodyCompQuery) ([]domain.BodyCompEntry, error) {
	entries, err := s.bodyCompRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.BodyCompEntry{}
	}
	return entries, nil
}
