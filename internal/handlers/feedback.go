package handlers

import (
	"net/http"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/middleware"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/services"
)

type FeedbackHandler struct {
	feedbackService *services.FeedbackService
}

func NewFeedbackHandler(feedbackService *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

func (handler *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var request struct {
		MealType string `json:"mealType"`
		Rating   int    `json:"rating"`
		Comment  string `json:"comment"`
	}
	if !decodeBody(w, r, &request) {
		return
	}

	created, err := handler.feedbackService.Add(r.Context(), models.Feedback{
		UserID:   user.ID,
		UserName: user.Name,
		MealType: models.MealType(request.MealType),
		Rating:   request.Rating,
		Comment:  request.Comment,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (handler *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	feedback, err := handler.feedbackService.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, feedback)
}
