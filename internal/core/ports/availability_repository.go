package ports

import (
	"context"

	"github.com/atelieranj/client-portal/internal/core/domain"
)

// AvailabilityRepository persists per-date overrides of the default booking
// schedule. Writers (superadmin only) replace the whole collection.
type AvailabilityRepository interface {
	// FindByDate returns the override for a date, or (nil, nil) when the
	// default schedule applies.
	FindByDate(ctx context.Context, date string) (*domain.AvailabilityRecord, error)
	List(ctx context.Context) ([]domain.AvailabilityRecord, error)
	ReplaceAll(ctx context.Context, records []domain.AvailabilityRecord) error
}
