package ports

import (
	"context"

	"github.com/atelieranj/client-portal/internal/core/domain"
)

// UserRepository defines persistence for portal accounts. Emails are stored
// normalized (trimmed, lowercased); implementations must enforce uniqueness
// on email at creation and return domain.ErrEmailTaken on collision. There is
// no delete: accounts are append/update-only.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail matches case-insensitively on the trimmed address.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update replaces the stored user wholesale (password resets, owned
	// project list growth).
	Update(ctx context.Context, user *domain.User) error
	// ListStaff returns every non-client account.
	ListStaff(ctx context.Context) ([]*domain.User, error)
}
