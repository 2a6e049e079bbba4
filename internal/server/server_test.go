package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/clock"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/config"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/policy"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/server"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/services"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/store"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/testutil"
)

func newTestServer(t *testing.T) (http.Handler, *store.Store) {
	t.Helper()
	documents := testutil.NewTestStore(t)

	cfg := config.Config{
		SessionSecret: "test-secret",
		Port:          "0",
		ClockMode:     config.ClockModeSimulated,
		CORSOrigins:   []string{"*"},
	}
	simulated := clock.NewSimulated(time.Date(2024, time.June, 10, 9, 0, 0, 0, time.Local))
	resolver := policy.NewWorkPlanResolver(documents)
	menuService := services.NewMenuService(documents)
	scheduler := policy.NewReminderScheduler(documents, resolver, menuService)

	srv := server.New(documents, cfg, simulated, simulated, scheduler)
	return srv.Router(), documents
}

func registerAccount(t *testing.T, router http.Handler, email string) []*http.Cookie {
	t.Helper()
	body := `{"name":"Test","email":"` + email + `","password":"password"}`
	request := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("registering %s: expected 201, got %d\nbody: %s", email, recorder.Code, recorder.Body.String())
	}
	return recorder.Result().Cookies()
}

func doRequest(router http.Handler, method, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, nil)
	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestServer_HealthIsPublic(t *testing.T) {
	router, _ := newTestServer(t)

	if recorder := doRequest(router, http.MethodGet, "/health", nil); recorder.Code != http.StatusOK {
		t.Errorf("expected 200 from /health, got %d", recorder.Code)
	}
}

func TestServer_APIRequiresSession(t *testing.T) {
	router, _ := newTestServer(t)

	if recorder := doRequest(router, http.MethodGet, "/api/menu", nil); recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a session, got %d", recorder.Code)
	}
}

func TestServer_RoleGates(t *testing.T) {
	router, documents := newTestServer(t)
	ctx := context.Background()

	if err := services.SeedMenus(ctx, documents); err != nil {
		t.Fatalf("seeding menus: %v", err)
	}

	cookies := registerAccount(t, router, "carol@karmic.co.in")

	if recorder := doRequest(router, http.MethodGet, "/api/menu", cookies); recorder.Code != http.StatusOK {
		t.Errorf("expected 200 from /api/menu with a session, got %d", recorder.Code)
	}
	if recorder := doRequest(router, http.MethodGet, "/api/admin/reports/consolidated", cookies); recorder.Code != http.StatusForbidden {
		t.Errorf("expected 403 for employee on admin route, got %d", recorder.Code)
	}
	if recorder := doRequest(router, http.MethodGet, "/api/admin/users", cookies); recorder.Code != http.StatusForbidden {
		t.Errorf("expected 403 for employee on main-admin route, got %d", recorder.Code)
	}

	// Promote the account to admin: reports open up, account management stays closed.
	promote(t, documents, "carol@karmic.co.in", models.RoleAdmin)
	if recorder := doRequest(router, http.MethodGet, "/api/admin/reports/consolidated", cookies); recorder.Code != http.StatusOK {
		t.Errorf("expected 200 for admin on reports, got %d", recorder.Code)
	}
	if recorder := doRequest(router, http.MethodGet, "/api/admin/users", cookies); recorder.Code != http.StatusForbidden {
		t.Errorf("expected 403 for admin on main-admin route, got %d", recorder.Code)
	}

	promote(t, documents, "carol@karmic.co.in", models.RoleMainAdmin)
	if recorder := doRequest(router, http.MethodGet, "/api/admin/users", cookies); recorder.Code != http.StatusOK {
		t.Errorf("expected 200 for main admin on user management, got %d", recorder.Code)
	}
}

func TestServer_SimulatedClockRoutes(t *testing.T) {
	router, documents := newTestServer(t)

	cookies := registerAccount(t, router, "dave@karmic.co.in")
	promote(t, documents, "dave@karmic.co.in", models.RoleAdmin)

	request := httptest.NewRequest(http.MethodPost, "/api/admin/clock", strings.NewReader(`{"hour":12,"minute":30}`))
	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusOK {
		t.Errorf("expected 200 setting the simulated clock, got %d\nbody: %s", recorder.Code, recorder.Body.String())
	}

	if recorder := doRequest(router, http.MethodPost, "/api/admin/clock/advance-day", cookies); recorder.Code != http.StatusOK {
		t.Errorf("expected 200 advancing the simulated day, got %d", recorder.Code)
	}
}

func promote(t *testing.T, documents *store.Store, email string, role models.Role) {
	t.Helper()
	ctx := context.Background()
	matched, err := documents.Query(ctx, models.CollectionUsers, store.Where("email", email))
	if err != nil || len(matched) != 1 {
		t.Fatalf("finding account %s: %v (%d matches)", email, err, len(matched))
	}
	if err := documents.Update(ctx, models.CollectionUsers, matched[0].ID, map[string]any{"role": string(role)}); err != nil {
		t.Fatalf("promoting %s: %v", email, err)
	}
}
