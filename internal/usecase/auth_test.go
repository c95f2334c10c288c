package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/skobelin/paytrack/internal/domain/errors"
	"github.com/skobelin/paytrack/internal/domain/model"
	pkgAuth "github.com/skobelin/paytrack/internal/pkg/auth"
	testhelpers "github.com/skobelin/paytrack/internal/test"
)

func newAuthUseCase() (*AuthUseCase, *testhelpers.UserRepositoryStub) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, testhelpers.StrategyStub{})
	return uc, repo
}

func TestAuthRegisterDefaultsRoleToCustomer(t *testing.T) {
	uc, _ := newAuthUseCase()

	user, token, err := uc.Register(context.Background(), "Alice", "a@x.com", "pw123456", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != model.RoleCustomer {
		t.Fatalf("expected customer role, got %q", user.Role)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
}

func TestAuthRegisterKeepsRequestedRole(t *testing.T) {
	uc, _ := newAuthUseCase()

	user, _, err := uc.Register(context.Background(), "Admin", "a@x.com", "pw123456", model.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != model.RoleAdmin {
		t.Fatalf("expected admin role, got %q", user.Role)
	}
}

func TestAuthRegisterRejectsEmptyFields(t *testing.T) {
	uc, _ := newAuthUseCase()

	cases := []struct {
		name, email, password string
	}{
		{"", "a@x.com", "pw123456"},
		{"Alice", "", "pw123456"},
		{"Alice", "a@x.com", ""},
	}
	for _, tc := range cases {
		if _, _, err := uc.Register(context.Background(), tc.name, tc.email, tc.password, ""); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
			t.Fatalf("expected invalid credentials for %+v, got %v", tc, err)
		}
	}
}

func TestAuthRegisterRejectsUnknownRole(t *testing.T) {
	uc, _ := newAuthUseCase()

	if _, _, err := uc.Register(context.Background(), "Alice", "a@x.com", "pw123456", "superuser"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	uc, _ := newAuthUseCase()

	if _, _, err := uc.Register(context.Background(), "Alice", "a@x.com", "pw123456", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := uc.Register(context.Background(), "Bob", "a@x.com", "pw123456", ""); !errors.Is(err, domainErrors.ErrEmailInUse) {
		t.Fatalf("expected email in use error, got %v", err)
	}
}

func TestAuthAuthenticateSuccess(t *testing.T) {
	uc, _ := newAuthUseCase()

	if _, _, err := uc.Register(context.Background(), "Alice", "a@x.com", "pw123456", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, token, err := uc.Authenticate(context.Background(), "a@x.com", "pw123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "a@x.com" {
		t.Fatalf("unexpected user %+v", user)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
}

func TestAuthAuthenticateRejectsUnknownUserAndWrongPassword(t *testing.T) {
	uc, _ := newAuthUseCase()

	if _, _, err := uc.Authenticate(context.Background(), "nobody@x.com", "pw123456"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	if _, _, err := uc.Register(context.Background(), "Alice", "a@x.com", "pw123456", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := uc.Authenticate(context.Background(), "a@x.com", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestAuthParseTokenRoundTrip(t *testing.T) {
	uc, _ := newAuthUseCase()

	user, token, err := uc.Register(context.Background(), "Admin", "a@x.com", "pw123456", model.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	identity, err := uc.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.UserID != user.ID || identity.Role != model.RoleAdmin {
		t.Fatalf("unexpected identity %+v", identity)
	}
}

func TestAuthParseTokenRejectsEmptyAndBadRole(t *testing.T) {
	uc, _ := newAuthUseCase()

	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
	if _, err := uc.ParseToken("5|superuser"); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token for unknown role, got %v", err)
	}
}
