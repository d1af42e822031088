package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/atelieranj/client-portal/internal/core/domain"
	"github.com/atelieranj/client-portal/internal/core/ports"
)

type stubAuthService struct {
	loginFn        func(ctx context.Context, email, password, roleGroup string) (string, *domain.User, error)
	signupFn       func(ctx context.Context, in ports.SignupInput) (*domain.User, error)
	resetFn        func(ctx context.Context, email, newPassword string) error
	createWorkerFn func(ctx context.Context, actor domain.Actor, in ports.CreateWorkerInput) (*domain.User, error)
	listStaffFn    func(ctx context.Context, actor domain.Actor) ([]*domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password, roleGroup string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password, roleGroup)
}

func (s *stubAuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	return s.signupFn(ctx, in)
}

func (s *stubAuthService) ResetPassword(ctx context.Context, email, newPassword string) error {
	return s.resetFn(ctx, email, newPassword)
}

func (s *stubAuthService) CreateWorker(ctx context.Context, actor domain.Actor, in ports.CreateWorkerInput) (*domain.User, error) {
	return s.createWorkerFn(ctx, actor, in)
}

func (s *stubAuthService) ListStaff(ctx context.Context, actor domain.Actor) ([]*domain.User, error) {
	return s.listStaffFn(ctx, actor)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(_ context.Context, in ports.SignupInput) (*domain.User, error) {
			if in.Name != "Ada" || in.Email != "ada@example.com" || in.Company != "Ada & Co" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "user_1", Name: in.Name, Email: in.Email, Role: domain.RoleClient}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/signup",
		`{"name":"Ada","email":"ada@example.com","password":"hunter2","company":"Ada & Co"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["role"] != "client" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatal("password hash must never be serialized")
	}
}

func TestAuthHandler_Signup_EmailTaken(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(context.Context, ports.SignupInput) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/signup",
		`{"name":"Ada","email":"ada@example.com","password":"pw"}`)

	err := h.Signup(c)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken passed through, got %v", err)
	}
}

func TestAuthHandler_Signup_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(context.Context, ports.SignupInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/signup", `{"email":"not-an-email"}`)

	err := h.Signup(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password, roleGroup string) (string, *domain.User, error) {
			if email != "ada@example.com" || password != "hunter2" || roleGroup != "client" {
				t.Fatalf("unexpected args: %s %s %s", email, password, roleGroup)
			}
			return "token123", &domain.User{ID: "user_1", Role: domain.RoleClient}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"ada@example.com","password":"hunter2","role":"client"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"ada@example.com","password":"bad","role":"client"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials passed through, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string, string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", "{")

	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	var gotEmail, gotPassword string
	stub := &stubAuthService{
		resetFn: func(_ context.Context, email, newPassword string) error {
			gotEmail, gotPassword = email, newPassword
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/auth/reset-password",
		`{"email":"ada@example.com","new_password":"n3wpass"}`)

	if err := h.ResetPassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotEmail != "ada@example.com" || gotPassword != "n3wpass" {
		t.Fatalf("unexpected args: %s %s", gotEmail, gotPassword)
	}
}
