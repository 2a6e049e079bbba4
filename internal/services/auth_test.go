package services_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/services"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/store"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/testutil"
)

const testSessionSecret = "test-secret-test-secret-test-sec"

func newAuthService(t *testing.T) (*services.AuthService, *store.Store) {
	t.Helper()
	documents := testutil.NewTestStore(t)
	return services.NewAuthService(documents, testSessionSecret), documents
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	authService, _ := newAuthService(t)
	ctx := context.Background()

	created, err := authService.Register(ctx, models.User{
		Name:     "Alice",
		Email:    "Alice@Karmic.co.in",
		Password: "password",
	})
	if err != nil {
		t.Fatalf("registering: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated user id")
	}
	if created.Role != models.RoleEmployee {
		t.Errorf("expected default employee role, got %q", created.Role)
	}
	if created.Email != "alice@karmic.co.in" {
		t.Errorf("expected lower-cased email, got %q", created.Email)
	}

	// Login is case-insensitive on email.
	user, err := authService.Login(ctx, "ALICE@karmic.co.in", "password")
	if err != nil {
		t.Fatalf("logging in: %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("expected user %s, got %s", created.ID, user.ID)
	}

	if _, err := authService.Login(ctx, "alice@karmic.co.in", "wrong"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := authService.Login(ctx, "nobody@karmic.co.in", "password"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthService_RegisterRejectsDuplicateEmail(t *testing.T) {
	authService, _ := newAuthService(t)
	ctx := context.Background()

	if _, err := authService.Register(ctx, models.User{Name: "Alice", Email: "alice@karmic.co.in", Password: "password"}); err != nil {
		t.Fatalf("registering first account: %v", err)
	}

	// Duplicate detection ignores case.
	_, err := authService.Register(ctx, models.User{Name: "Other Alice", Email: "ALICE@karmic.co.in", Password: "password"})
	if !errors.Is(err, services.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_SessionRoundTrip(t *testing.T) {
	authService, _ := newAuthService(t)
	ctx := context.Background()

	created, err := authService.Register(ctx, models.User{Name: "Alice", Email: "alice@karmic.co.in", Password: "password"})
	if err != nil {
		t.Fatalf("registering: %v", err)
	}

	recorder := httptest.NewRecorder()
	if err := authService.SetSession(recorder, created.ID); err != nil {
		t.Fatalf("setting session: %v", err)
	}

	request := httptest.NewRequest("GET", "/auth/me", nil)
	for _, cookie := range recorder.Result().Cookies() {
		request.AddCookie(cookie)
	}

	user, err := authService.GetCurrentUser(request)
	if err != nil {
		t.Fatalf("resolving session: %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("expected session user %s, got %s", created.ID, user.ID)
	}
}

func TestAuthService_GetCurrentUserWithoutCookie(t *testing.T) {
	authService, _ := newAuthService(t)

	request := httptest.NewRequest("GET", "/auth/me", nil)
	if _, err := authService.GetCurrentUser(request); err == nil {
		t.Error("expected error without session cookie")
	}
}
