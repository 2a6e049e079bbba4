package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/securecookie"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/store"
)

// AuthService handles login, registration, and the session cookie.
// Credentials are compared in plaintext against the users collection, which
// is how the portal stores them.
type AuthService struct {
	store        *store.Store
	secureCookie *securecookie.SecureCookie
}

type SessionData struct {
	UserID string `json:"user_id"`
}

func NewAuthService(documents *store.Store, sessionSecret string) *AuthService {
	return &AuthService{
		store:        documents,
		secureCookie: securecookie.New([]byte(sessionSecret), nil),
	}
}

// Login resolves a user by email (case-insensitive) and checks the password.
func (service *AuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	matched, err := service.store.Query(ctx, models.CollectionUsers, store.Where("email", strings.ToLower(email)))
	if err != nil {
		return models.User{}, fmt.Errorf("looking up user: %w", err)
	}
	if len(matched) == 0 {
		return models.User{}, ErrInvalidCredentials
	}

	var user models.User
	if err := models.Decode(matched[0].ID, matched[0].Fields, &user); err != nil {
		return models.User{}, err
	}
	if user.Password != password {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// Register creates an employee account. The email is stored lower-cased so
// the uniqueness invariant is case-insensitive by construction.
func (service *AuthService) Register(ctx context.Context, user models.User) (models.User, error) {
	user.Email = strings.ToLower(user.Email)
	if user.Role == "" {
		user.Role = models.RoleEmployee
	}

	existing, err := service.store.Query(ctx, models.CollectionUsers, store.Where("email", user.Email))
	if err != nil {
		return models.User{}, fmt.Errorf("checking existing email: %w", err)
	}
	if len(existing) > 0 {
		return models.User{}, ErrDuplicateEmail
	}

	fields, err := models.Encode(user)
	if err != nil {
		return models.User{}, err
	}
	id, err := service.store.Add(ctx, models.CollectionUsers, fields)
	if err != nil {
		return models.User{}, fmt.Errorf("creating user: %w", err)
	}

	user.ID = id
	return user, nil
}

func (service *AuthService) SetSession(w http.ResponseWriter, userID string) error {
	data, err := json.Marshal(SessionData{UserID: userID})
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}

	value, err := service.secureCookie.Encode("session", string(data))
	if err != nil {
		return fmt.Errorf("encoding session cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 7,
	})
	return nil
}

func (service *AuthService) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// GetCurrentUser resolves the session cookie to its user document.
func (service *AuthService) GetCurrentUser(r *http.Request) (models.User, error) {
	cookie, err := r.Cookie("session")
	if err != nil {
		return models.User{}, fmt.Errorf("no session cookie: %w", err)
	}

	var decoded string
	if err := service.secureCookie.Decode("session", cookie.Value, &decoded); err != nil {
		return models.User{}, fmt.Errorf("decoding session cookie: %w", err)
	}

	var data SessionData
	if err := json.Unmarshal([]byte(decoded), &data); err != nil {
		return models.User{}, fmt.Errorf("unmarshaling session: %w", err)
	}

	document, err := service.store.Get(r.Context(), models.CollectionUsers, data.UserID)
	if err != nil {
		return models.User{}, fmt.Errorf("loading session user: %w", err)
	}

	var user models.User
	if err := models.Decode(document.ID, document.Fields, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
