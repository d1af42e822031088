package ports

import (
	"context"

	"github.com/atelieranj/client-portal/internal/core/domain"
)

// AvailabilityService manages the global consultation schedule.
type AvailabilityService interface {
	// IsDateAvailable resolves the bookable slots for a date. An empty slot
	// list is a normal answer, not an error.
	IsDateAvailable(ctx context.Context, date string) (domain.DayAvailability, error)
	List(ctx context.Context) ([]domain.AvailabilityRecord, error)
	// SetAvailability replaces the whole override collection (superadmin only).
	SetAvailability(ctx context.Context, actor domain.Actor, records []domain.AvailabilityRecord) error
}
