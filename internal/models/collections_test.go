package models_test

import (
	"testing"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
)

func TestEncodeStripsID(t *testing.T) {
	user := models.User{ID: "user123", Name: "Alice", Email: "alice@karmic.co.in", Role: models.RoleEmployee}

	fields, err := models.Encode(user)
	if err != nil {
		t.Fatalf("encoding: %v", err)
	}
	if _, ok := fields["id"]; ok {
		t.Error("expected id stripped from field map")
	}
	if fields["name"] != "Alice" {
		t.Errorf("expected name field, got %v", fields["name"])
	}

	// Every encoded field must be admitted by the collection schema.
	allowed := make(map[string]struct{})
	for _, field := range models.Schemas()[models.CollectionUsers] {
		allowed[field] = struct{}{}
	}
	for field := range fields {
		if _, ok := allowed[field]; !ok {
			t.Errorf("encoded field %q missing from users schema", field)
		}
	}
}

func TestDecodeMergesID(t *testing.T) {
	fields := map[string]any{"userId": "emp1", "date": "2024-06-10", "Lunch": true}

	var confirmation models.MealConfirmation
	if err := models.Decode("emp1-2024-06-10", fields, &confirmation); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if confirmation.ID != "emp1-2024-06-10" {
		t.Errorf("expected document id on the record, got %q", confirmation.ID)
	}
	if !confirmation.Lunch || confirmation.Breakfast {
		t.Errorf("unexpected meals %+v", confirmation)
	}
}

func TestCompositeID(t *testing.T) {
	if got := models.CompositeID("emp1", "2024-06-10"); got != "emp1-2024-06-10" {
		t.Errorf("unexpected composite id %q", got)
	}
}
