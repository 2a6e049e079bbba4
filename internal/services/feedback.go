package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/clock"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/store"
)

// FeedbackService records meal ratings. Feedback is immutable after creation;
// nothing in the portal edits or deletes it.
type FeedbackService struct {
	store *store.Store
	clock clock.Clock
}

func NewFeedbackService(documents *store.Store, clk clock.Clock) *FeedbackService {
	return &FeedbackService{store: documents, clock: clk}
}

func (service *FeedbackService) Add(ctx context.Context, feedback models.Feedback) (models.Feedback, error) {
	if feedback.Rating < 1 || feedback.Rating > 5 {
		return models.Feedback{}, fmt.Errorf("rating must be between 1 and 5, got %d", feedback.Rating)
	}
	if !models.ValidMealType(string(feedback.MealType)) {
		return models.Feedback{}, fmt.Errorf("invalid meal type %q", feedback.MealType)
	}

	feedback.Date = models.DateString(service.clock.Now())
	feedback.ID = ""

	fields, err := models.Encode(feedback)
	if err != nil {
		return models.Feedback{}, err
	}
	id, err := service.store.Add(ctx, models.CollectionFeedback, fields)
	if err != nil {
		return models.Feedback{}, fmt.Errorf("adding feedback: %w", err)
	}

	feedback.ID = id
	return feedback, nil
}

// List returns all feedback, newest date first.
func (service *FeedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	documents, err := service.store.List(ctx, models.CollectionFeedback)
	if err != nil {
		return nil, fmt.Errorf("listing feedback: %w", err)
	}

	feedback := make([]models.Feedback, 0, len(documents))
	for _, document := range documents {
		var entry models.Feedback
		if err := models.Decode(document.ID, document.Fields, &entry); err != nil {
			return nil, err
		}
		feedback = append(feedback, entry)
	}

	sort.SliceStable(feedback, func(i, j int) bool {
		return feedback[i].Date > feedback[j].Date
	})
	return feedback, nil
}
