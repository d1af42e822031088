package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/atelieranj/client-portal/internal/core/domain"
	"github.com/atelieranj/client-portal/internal/core/policy"
	"github.com/atelieranj/client-portal/internal/core/ports"
)

// AuthService implements signup, login, password reset, and staff onboarding.
type AuthService struct {
	repo       ports.UserRepository
	dispatcher ports.Dispatcher // optional; nil disables side-channel sync
	jwtSecret  string
	tokenTTL   time.Duration
	log        zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, dispatcher ports.Dispatcher, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, dispatcher: dispatcher, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// NormalizeEmail is the canonical form all email lookups use.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Login(ctx context.Context, email, password, roleGroup string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	// Login is segmented by role group: the portal's client entry and the
	// admin console each only admit their own tier.
	if !policy.MatchesLoginGroup(roleGroup, user.Role) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Email:         NormalizeEmail(in.Email),
		PasswordHash:  string(hash),
		Phone:         in.Phone,
		Company:       in.Company,
		Role:          domain.RoleClient,
		OwnedProjects: []string{},
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("client signed up")

	if s.dispatcher != nil {
		s.dispatcher.Enqueue(ports.SideChannelJob{Kind: ports.JobSyncSignup, User: created})
	}
	return created, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: new password is required", domain.ErrValidation)
	}

	user, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)

	if err := s.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("password reset")
	return nil
}

func (s *AuthService) CreateWorker(ctx context.Context, actor domain.Actor, in ports.CreateWorkerInput) (*domain.User, error) {
	if err := policy.Authorize(actor, policy.ActionCreateWorker, nil); err != nil {
		return nil, err
	}
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", domain.ErrValidation)
	}

	role := in.Role
	if role == "" {
		role = domain.RoleWorker
	}
	if !policy.IsStaff(role) {
		return nil, fmt.Errorf("%w: %q is not a staff role", domain.ErrValidation, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Email:         NormalizeEmail(in.Email),
		PasswordHash:  string(hash),
		Phone:         in.Phone,
		Role:          role,
		OwnedProjects: []string{},
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("staff onboarded")
	return created, nil
}

func (s *AuthService) ListStaff(ctx context.Context, actor domain.Actor) ([]*domain.User, error) {
	if !policy.IsStaff(actor.Role) {
		return nil, fmt.Errorf("%w: staff roster is staff-only", domain.ErrForbidden)
	}
	return s.repo.ListStaff(ctx)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
