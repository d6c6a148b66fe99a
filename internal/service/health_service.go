package service

import (
	"context"

	"familycookbook/internal/repository"
)

type HealthService interface {
	SchemaVersion(ctx context.Context) (int, error)
}

type healthService struct {
	healthRepo repository.HealthRepository
}

func NewHealthService(healthRepo repository.HealthRepository) HealthService {
	return &healthService{healthRepo: healthRepo}
}

func (h *healthService) SchemaVersion(ctx context.Context) (int, error) {
	version, err := h.healthRepo.SchemaVersion(ctx)
	if err != nil {
		return 0, err
	}

	return version, nil
}
