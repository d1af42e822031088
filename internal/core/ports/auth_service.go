package ports

import (
	"context"

	"github.com/atelieranj/client-portal/internal/core/domain"
)

// SignupInput carries a self-service client registration.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Company  string
}

// CreateWorkerInput carries a staff onboarding request (superadmin only).
type CreateWorkerInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     domain.Role // defaults to worker when empty
}

// AuthService covers account lifecycle and credential checks.
type AuthService interface {
	// Login authenticates by email and password within a role group: the
	// group "admin" admits any staff role, any other value requires an
	// exact role match. Returns a signed token and the user.
	Login(ctx context.Context, email, password, roleGroup string) (string, *domain.User, error)
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)
	ResetPassword(ctx context.Context, email, newPassword string) error
	CreateWorker(ctx context.Context, actor domain.Actor, in CreateWorkerInput) (*domain.User, error)
	ListStaff(ctx context.Context, actor domain.Actor) ([]*domain.User, error)
}
