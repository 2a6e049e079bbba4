package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/store"
)

// UserService exposes the main-admin account operations.
type UserService struct {
	store *store.Store
}

func NewUserService(documents *store.Store) *UserService {
	return &UserService{store: documents}
}

func (service *UserService) List(ctx context.Context) ([]models.User, error) {
	return listUsers(ctx, service.store)
}

// Update merges partial fields into a user. An email change is normalized to
// lower case and re-checked for uniqueness.
func (service *UserService) Update(ctx context.Context, userID string, partial map[string]any) error {
	if email, ok := partial["email"].(string); ok {
		normalized := strings.ToLower(email)
		partial["email"] = normalized

		existing, err := service.store.Query(ctx, models.CollectionUsers, store.Where("email", normalized))
		if err != nil {
			return fmt.Errorf("checking email uniqueness: %w", err)
		}
		for _, document := range existing {
			if document.ID != userID {
				return ErrDuplicateEmail
			}
		}
	}
	if role, ok := partial["role"].(string); ok {
		switch models.Role(role) {
		case models.RoleEmployee, models.RoleAdmin, models.RoleMainAdmin:
		default:
			return fmt.Errorf("invalid role %q", role)
		}
	}
	if location, ok := partial["workLocation"].(string); ok && !models.ValidWorkLocation(location) {
		return fmt.Errorf("invalid work location %q", location)
	}

	return service.store.Update(ctx, models.CollectionUsers, userID, partial)
}

func (service *UserService) Delete(ctx context.Context, userID string) error {
	return service.store.Delete(ctx, models.CollectionUsers, userID)
}

func listUsers(ctx context.Context, documents *store.Store) ([]models.User, error) {
	listed, err := documents.List(ctx, models.CollectionUsers)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	users := make([]models.User, 0, len(listed))
	for _, document := range listed {
		var user models.User
		if err := models.Decode(document.ID, document.Fields, &user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func listEmployees(ctx context.Context, documents *store.Store) ([]models.User, error) {
	users, err := listUsers(ctx, documents)
	if err != nil {
		return nil, err
	}

	employees := users[:0]
	for _, user := range users {
		if user.Role == models.RoleEmployee {
			employees = append(employees, user)
		}
	}
	return employees, nil
}
