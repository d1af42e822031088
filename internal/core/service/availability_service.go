package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/atelieranj/client-portal/internal/core/domain"
	"github.com/atelieranj/client-portal/internal/core/policy"
	"github.com/atelieranj/client-portal/internal/core/ports"
)

// AvailabilityService manages the global consultation schedule: a default
// weekday slot grid plus superadmin-edited per-date overrides.
type AvailabilityService struct {
	repo ports.AvailabilityRepository
	log  zerolog.Logger
}

func NewAvailabilityService(repo ports.AvailabilityRepository, log zerolog.Logger) *AvailabilityService {
	return &AvailabilityService{repo: repo, log: log}
}

func (s *AvailabilityService) IsDateAvailable(ctx context.Context, date string) (domain.DayAvailability, error) {
	override, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		return domain.DayAvailability{}, fmt.Errorf("availability lookup: %w", err)
	}
	return domain.Availability(date, override), nil
}

func (s *AvailabilityService) List(ctx context.Context) ([]domain.AvailabilityRecord, error) {
	return s.repo.List(ctx)
}

func (s *AvailabilityService) SetAvailability(ctx context.Context, actor domain.Actor, records []domain.AvailabilityRecord) error {
	if err := policy.Authorize(actor, policy.ActionSetAvailability, nil); err != nil {
		return err
	}
	for _, r := range records {
		if r.Date == "" {
			return fmt.Errorf("%w: availability record missing date", domain.ErrValidation)
		}
	}
	if err := s.repo.ReplaceAll(ctx, records); err != nil {
		return fmt.Errorf("set availability: %w", err)
	}
	s.log.Info().Int("records", len(records)).Msg("availability schedule replaced")
	return nil
}
