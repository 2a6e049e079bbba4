package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/clock"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/policy"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/services"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/store"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/testutil"
)

func putConfirmation(t *testing.T, documents *store.Store, confirmation models.MealConfirmation) {
	t.Helper()
	fields, err := models.Encode(confirmation)
	if err != nil {
		t.Fatalf("encoding confirmation: %v", err)
	}
	id := models.CompositeID(confirmation.UserID, confirmation.Date)
	if err := documents.Put(context.Background(), models.CollectionConfirmations, id, fields); err != nil {
		t.Fatalf("seeding confirmation %s: %v", id, err)
	}
}

func newReportService(t *testing.T) (*services.ReportService, *store.Store) {
	t.Helper()
	documents := testutil.NewTestStore(t)
	resolver := policy.NewWorkPlanResolver(documents)
	simulated := clock.NewSimulated(time.Date(2024, time.June, 10, 9, 0, 0, 0, time.Local))
	return services.NewReportService(documents, resolver, simulated), documents
}

func TestReportService_ConsolidatedReport(t *testing.T) {
	reportService, documents := newReportService(t)
	ctx := context.Background()

	putConfirmation(t, documents, models.MealConfirmation{UserID: "emp1", Date: "2024-06-10", Lunch: true, Dinner: true})
	putConfirmation(t, documents, models.MealConfirmation{UserID: "emp2", Date: "2024-06-10", Lunch: true})
	// A different day must not leak into today's report.
	putConfirmation(t, documents, models.MealConfirmation{UserID: "emp3", Date: "2024-06-11", Lunch: true})

	report, err := reportService.ConsolidatedReport(ctx)
	if err != nil {
		t.Fatalf("building report: %v", err)
	}
	if len(report) != 4 {
		t.Fatalf("expected one row per meal type, got %d", len(report))
	}

	counts := make(map[models.MealType]int, len(report))
	for _, row := range report {
		if row.Date != "2024-06-10" {
			t.Errorf("expected today's date on every row, got %q", row.Date)
		}
		counts[row.MealType] = row.Confirmed
	}
	if counts[models.MealTypeLunch] != 2 {
		t.Errorf("expected 2 lunches, got %d", counts[models.MealTypeLunch])
	}
	if counts[models.MealTypeDinner] != 1 {
		t.Errorf("expected 1 dinner, got %d", counts[models.MealTypeDinner])
	}
	if counts[models.MealTypeBreakfast] != 0 || counts[models.MealTypeSnacks] != 0 {
		t.Errorf("expected zero breakfasts and snacks, got %v", counts)
	}
}

func TestReportService_EmployeeConfirmationDetails(t *testing.T) {
	reportService, documents := newReportService(t)
	ctx := context.Background()

	putUser(t, documents, models.User{ID: "emp1", Name: "Alice", Role: models.RoleEmployee})
	putUser(t, documents, models.User{ID: "emp2", Name: "Bob", Role: models.RoleEmployee})
	putUser(t, documents, models.User{ID: "adm1", Name: "Admin", Role: models.RoleAdmin})
	putConfirmation(t, documents, models.MealConfirmation{UserID: "emp1", Date: "2024-06-10", Lunch: true})

	details, err := reportService.EmployeeConfirmationDetails(ctx)
	if err != nil {
		t.Fatalf("building details: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected one row per employee, got %d", len(details))
	}

	byID := make(map[string]models.EmployeeConfirmationDetails, len(details))
	for _, row := range details {
		byID[row.ID] = row
	}
	if !byID["emp1"].Confirmation.Lunch {
		t.Error("expected emp1's confirmation in the join")
	}
	if byID["emp2"].Confirmation.AnyConfirmed() {
		t.Error("expected zero-value confirmation for undecided employee")
	}
}

func TestReportService_WasteAnalytics(t *testing.T) {
	reportService, documents := newReportService(t)
	ctx := context.Background()

	putConfirmation(t, documents, models.MealConfirmation{UserID: "emp1", Date: "2024-06-10", Lunch: true})
	putConfirmation(t, documents, models.MealConfirmation{UserID: "emp1", Date: "2024-06-07", Lunch: true})
	putConfirmation(t, documents, models.MealConfirmation{UserID: "emp2", Date: "2024-06-07", Lunch: true})

	analytics, err := reportService.WasteAnalytics(ctx)
	if err != nil {
		t.Fatalf("building analytics: %v", err)
	}
	if len(analytics) != 7 {
		t.Fatalf("expected 7 days, got %d", len(analytics))
	}
	// Oldest first, ending today.
	if analytics[0].Date != "2024-06-04" || analytics[6].Date != "2024-06-10" {
		t.Errorf("unexpected date range %s..%s", analytics[0].Date, analytics[6].Date)
	}
	if analytics[3].Date != "2024-06-07" || analytics[3].Confirmed != 2 {
		t.Errorf("expected 2 lunches on 2024-06-07, got %+v", analytics[3])
	}
	if analytics[6].Confirmed != 1 {
		t.Errorf("expected 1 lunch today, got %d", analytics[6].Confirmed)
	}
}

func TestReportService_WorkforceDistribution(t *testing.T) {
	reportService, documents := newReportService(t)
	ctx := context.Background()

	putUser(t, documents, models.User{ID: "emp1", Role: models.RoleEmployee, WorkLocation: models.LocationMainOffice})
	putUser(t, documents, models.User{ID: "emp2", Role: models.RoleEmployee, WorkLocation: models.LocationWFH})
	putUser(t, documents, models.User{ID: "emp3", Role: models.RoleEmployee, WorkLocation: models.LocationMainOffice})
	putUser(t, documents, models.User{ID: "adm1", Role: models.RoleAdmin, WorkLocation: models.LocationMainOffice})
	// emp3's override for today beats the office default.
	putWorkPlan(t, documents, "emp3", "2024-06-10", models.LocationOnLeave)

	distribution, err := reportService.WorkforceDistribution(ctx)
	if err != nil {
		t.Fatalf("building distribution: %v", err)
	}
	want := models.WorkforceDistribution{MainOffice: 1, WFH: 1, OnLeave: 1, Total: 3}
	if distribution != want {
		t.Errorf("expected %+v, got %+v", want, distribution)
	}
}
