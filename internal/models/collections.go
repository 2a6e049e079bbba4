package models

import (
	"encoding/json"
	"fmt"
)

// Collection names used across the portal.
const (
	CollectionUsers         = "users"
	CollectionWeeklyMenus   = "weeklyMenuTemplates"
	CollectionConfirmations = "confirmations"
	CollectionFeedback      = "feedback"
	CollectionNotifications = "notifications"
	CollectionWorkPlans     = "dailyWorkPlans"
)

// Schemas maps each collection to its allowed field names. The store rejects
// writes carrying fields outside the collection's schema.
func Schemas() map[string][]string {
	return map[string][]string{
		CollectionUsers:         {"name", "email", "password", "role", "employeeId", "mobileNumber", "workLocation"},
		CollectionWeeklyMenus:   {"Breakfast", "Lunch", "Snacks", "Dinner"},
		CollectionConfirmations: {"userId", "date", "Breakfast", "Lunch", "Snacks", "Dinner"},
		CollectionFeedback:      {"userId", "userName", "date", "mealType", "rating", "comment"},
		CollectionNotifications: {"title", "message", "timestamp", "requiresAction", "target", "responses"},
		CollectionWorkPlans:     {"userId", "date", "location"},
	}
}

// CompositeID builds the document id for userId-date keyed collections.
func CompositeID(userID, date string) string {
	return userID + "-" + date
}

// Encode converts a record into a document field map. The id never lives in
// the field map; the store tracks it separately.
func Encode(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decoding document fields: %w", err)
	}
	delete(fields, "id")
	return fields, nil
}

// Decode materializes a document's fields plus its id into a record.
func Decode(id string, fields map[string]any, v any) error {
	merged := make(map[string]any, len(fields)+1)
	for key, value := range fields {
		merged[key] = value
	}
	merged["id"] = id

	raw, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("encoding document fields: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decoding document: %w", err)
	}
	return nil
}
