package handlers

import (
	"net/http"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/middleware"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (handler *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Name         string `json:"name"`
		Email        string `json:"email"`
		Password     string `json:"password"`
		EmployeeID   string `json:"employeeId"`
		MobileNumber string `json:"mobileNumber"`
		WorkLocation string `json:"workLocation"`
	}
	if !decodeBody(w, r, &request) {
		return
	}
	if request.Name == "" || request.Email == "" || request.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name, email and password are required"})
		return
	}
	if request.WorkLocation != "" && !models.ValidWorkLocation(request.WorkLocation) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid work location"})
		return
	}

	user := models.User{
		Name:         request.Name,
		Email:        request.Email,
		Password:     request.Password,
		Role:         models.RoleEmployee,
		EmployeeID:   request.EmployeeID,
		MobileNumber: request.MobileNumber,
		WorkLocation: models.WorkLocation(request.WorkLocation),
	}
	if user.WorkLocation == "" {
		user.WorkLocation = models.LocationMainOffice
	}

	created, err := handler.authService.Register(r.Context(), user)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := handler.authService.SetSession(w, created.ID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sanitizeUser(created))
}

func (handler *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &request) {
		return
	}

	user, err := handler.authService.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := handler.authService.SetSession(w, user.ID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sanitizeUser(user))
}

func (handler *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	handler.authService.ClearSession(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (handler *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	writeJSON(w, http.StatusOK, sanitizeUser(user))
}
