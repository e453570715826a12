package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/roosly/site-api/internal/core/domain"
	"github.com/roosly/site-api/pkg/password"
	"github.com/roosly/site-api/pkg/session"
)

type stubAuthRepo struct {
	users map[string]*domain.User
	err   error
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func seedUser(t *testing.T, repo *stubAuthRepo, email, pass, role string) {
	t.Helper()
	hash, err := password.NewHasher().Hash(pass)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	repo.users[email] = &domain.User{
		ID:           1,
		Name:         "Admin User",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
}

func newAuthService(repo *stubAuthRepo) *AuthService {
	issuer := session.NewIssuer("secret", time.Hour)
	return NewAuthService(repo, password.NewHasher(), issuer, zerolog.Nop())
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	seedUser(t, repo, "admin@roosly.com", "admin123", domain.RoleAdmin)
	svc := newAuthService(repo)

	token, user, err := svc.Login(context.Background(), "admin@roosly.com", "admin123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "admin@roosly.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := session.NewIssuer("secret", time.Hour).Read(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %s", domain.RoleAdmin, claims.Role)
	}
	if claims.UserID != 1 {
		t.Fatalf("expected uid 1, got %d", claims.UserID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAuthRepo()
	seedUser(t, repo, "admin@roosly.com", "admin123", domain.RoleAdmin)
	svc := newAuthService(repo)

	token, user, err := svc.Login(context.Background(), "admin@roosly.com", "badpass")
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if token != "" || user != nil {
		t.Fatalf("no session may be issued on failure")
	}
}

func TestAuthService_Login_UnknownUserIsIndistinguishable(t *testing.T) {
	repo := newStubAuthRepo()
	seedUser(t, repo, "admin@roosly.com", "admin123", domain.RoleAdmin)
	svc := newAuthService(repo)

	_, _, wrongPass := svc.Login(context.Background(), "admin@roosly.com", "badpass")
	_, _, unknown := svc.Login(context.Background(), "ghost@roosly.com", "whatever")

	if wrongPass != domain.ErrInvalidCredentials || unknown != domain.ErrInvalidCredentials {
		t.Fatalf("both failure modes must surface as ErrInvalidCredentials, got %v and %v", wrongPass, unknown)
	}
}

func TestAuthService_Login_MissingCredentials(t *testing.T) {
	svc := newAuthService(newStubAuthRepo())

	if _, _, err := svc.Login(context.Background(), "", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@b.com", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_StoreFailureFailsClosed(t *testing.T) {
	repo := newStubAuthRepo()
	repo.err = errors.New("store unavailable")
	svc := newAuthService(repo)

	if _, _, err := svc.Login(context.Background(), "admin@roosly.com", "admin123"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials on store failure, got %v", err)
	}
}
