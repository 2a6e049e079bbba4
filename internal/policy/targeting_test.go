package policy_test

import (
	"context"
	"testing"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/policy"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/store"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/testutil"
)

func seedUser(t *testing.T, documents *store.Store, user models.User) {
	t.Helper()
	fields, err := models.Encode(user)
	if err != nil {
		t.Fatalf("encoding user %s: %v", user.ID, err)
	}
	if err := documents.Put(context.Background(), models.CollectionUsers, user.ID, fields); err != nil {
		t.Fatalf("seeding user %s: %v", user.ID, err)
	}
}

func seedWorkPlan(t *testing.T, documents *store.Store, userID, date string, location models.WorkLocation) {
	t.Helper()
	plan := models.DailyWorkPlan{UserID: userID, Date: date, Location: location}
	fields, err := models.Encode(plan)
	if err != nil {
		t.Fatalf("encoding plan: %v", err)
	}
	if err := documents.Put(context.Background(), models.CollectionWorkPlans, models.CompositeID(userID, date), fields); err != nil {
		t.Fatalf("seeding plan for %s: %v", userID, err)
	}
}

func TestWorkPlanResolver_EffectiveLocation(t *testing.T) {
	documents := testutil.NewTestStore(t)
	resolver := policy.NewWorkPlanResolver(documents)
	ctx := context.Background()

	user := models.User{ID: "emp1", Role: models.RoleEmployee, WorkLocation: models.LocationMainOffice}
	seedUser(t, documents, user)

	location, err := resolver.EffectiveLocation(ctx, user, "2024-06-10")
	if err != nil {
		t.Fatalf("resolving without a plan: %v", err)
	}
	if location != models.LocationMainOffice {
		t.Errorf("expected default location, got %q", location)
	}

	seedWorkPlan(t, documents, "emp1", "2024-06-10", models.LocationWFH)

	location, err = resolver.EffectiveLocation(ctx, user, "2024-06-10")
	if err != nil {
		t.Fatalf("resolving with a plan: %v", err)
	}
	if location != models.LocationWFH {
		t.Errorf("expected plan override, got %q", location)
	}

	// The override binds only its own date.
	location, err = resolver.EffectiveLocation(ctx, user, "2024-06-11")
	if err != nil {
		t.Fatalf("resolving a different date: %v", err)
	}
	if location != models.LocationMainOffice {
		t.Errorf("expected default for uncovered date, got %q", location)
	}
}

func TestTargeting_EligibleRecipients(t *testing.T) {
	documents := testutil.NewTestStore(t)
	resolver := policy.NewWorkPlanResolver(documents)
	targeting := policy.NewTargeting(resolver)
	ctx := context.Background()
	date := "2024-06-10"

	users := []models.User{
		{ID: "emp1", Role: models.RoleEmployee, WorkLocation: models.LocationMainOffice},
		{ID: "emp2", Role: models.RoleEmployee, WorkLocation: models.LocationWFH},
		{ID: "emp3", Role: models.RoleEmployee, WorkLocation: models.LocationMainOffice},
		{ID: "adm1", Role: models.RoleAdmin, WorkLocation: models.LocationMainOffice},
	}
	for _, user := range users {
		seedUser(t, documents, user)
	}
	// emp2 comes into the office that day; emp3 takes leave.
	seedWorkPlan(t, documents, "emp2", date, models.LocationMainOffice)
	seedWorkPlan(t, documents, "emp3", date, models.LocationOnLeave)

	all, err := targeting.EligibleRecipients(ctx, users, models.TargetAll, date)
	if err != nil {
		t.Fatalf("computing all recipients: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected every employee for target all, got %d", len(all))
	}
	if _, ok := all["adm1"]; ok {
		t.Error("admins must never receive notifications")
	}

	office, err := targeting.EligibleRecipients(ctx, users, models.TargetOfficeOnly, date)
	if err != nil {
		t.Fatalf("computing office recipients: %v", err)
	}
	if len(office) != 2 {
		t.Fatalf("expected 2 office recipients, got %d", len(office))
	}
	for _, id := range []string{"emp1", "emp2"} {
		if _, ok := office[id]; !ok {
			t.Errorf("expected %s among office recipients", id)
		}
	}
}

func TestTargeting_Tally(t *testing.T) {
	documents := testutil.NewTestStore(t)
	targeting := policy.NewTargeting(policy.NewWorkPlanResolver(documents))

	users := []models.User{
		{ID: "emp1", Role: models.RoleEmployee},
		{ID: "emp2", Role: models.RoleEmployee},
		{ID: "emp3", Role: models.RoleEmployee},
		{ID: "emp4", Role: models.RoleEmployee},
		{ID: "adm1", Role: models.RoleAdmin},
	}
	notification := models.Notification{
		Responses: map[string]string{"emp1": "yes", "emp2": "yes", "emp3": "no"},
	}

	tally := targeting.Tally(notification, users)
	if tally.Yes != 2 || tally.No != 1 {
		t.Errorf("expected 2 yes / 1 no, got %+v", tally)
	}
	// noResponse measures against the employee population, admins excluded.
	if tally.NoResponse != 1 {
		t.Errorf("expected 1 noResponse, got %d", tally.NoResponse)
	}
}
