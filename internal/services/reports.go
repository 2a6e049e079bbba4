package services

import (
	"context"
	"fmt"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/clock"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/policy"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/store"
)

// ReportService derives the admin-facing tallies from confirmations and
// work plans.
type ReportService struct {
	store    *store.Store
	resolver *policy.WorkPlanResolver
	clock    clock.Clock
}

func NewReportService(documents *store.Store, resolver *policy.WorkPlanResolver, clk clock.Clock) *ReportService {
	return &ReportService{store: documents, resolver: resolver, clock: clk}
}

// ConsolidatedReport counts today's confirmed headcount per meal type.
func (service *ReportService) ConsolidatedReport(ctx context.Context) ([]models.ConsolidatedReport, error) {
	today := models.DateString(service.clock.Now())
	confirmations, err := service.confirmationsForDate(ctx, today)
	if err != nil {
		return nil, err
	}

	report := make([]models.ConsolidatedReport, 0, len(models.MealTypes))
	for _, mealType := range models.MealTypes {
		confirmed := 0
		for _, confirmation := range confirmations {
			if confirmation.Confirmed(mealType) {
				confirmed++
			}
		}
		report = append(report, models.ConsolidatedReport{
			Date:      today,
			MealType:  mealType,
			Confirmed: confirmed,
		})
	}
	return report, nil
}

// EmployeeConfirmationDetails joins every employee with today's confirmation,
// substituting the all-false zero value when none exists.
func (service *ReportService) EmployeeConfirmationDetails(ctx context.Context) ([]models.EmployeeConfirmationDetails, error) {
	today := models.DateString(service.clock.Now())

	employees, err := listEmployees(ctx, service.store)
	if err != nil {
		return nil, err
	}
	confirmations, err := service.confirmationsForDate(ctx, today)
	if err != nil {
		return nil, err
	}

	byUser := make(map[string]models.MealConfirmation, len(confirmations))
	for _, confirmation := range confirmations {
		byUser[confirmation.UserID] = confirmation
	}

	details := make([]models.EmployeeConfirmationDetails, 0, len(employees))
	for _, employee := range employees {
		confirmation, ok := byUser[employee.ID]
		if !ok {
			confirmation = models.MealConfirmation{UserID: employee.ID, Date: today}
		}
		details = append(details, models.EmployeeConfirmationDetails{
			User:         employee,
			Confirmation: confirmation,
		})
	}
	return details, nil
}

// WasteAnalytics reports lunch confirmations for the last seven days,
// oldest first.
func (service *ReportService) WasteAnalytics(ctx context.Context) ([]models.ConsolidatedReport, error) {
	now := service.clock.Now()

	analytics := make([]models.ConsolidatedReport, 0, 7)
	for i := 6; i >= 0; i-- {
		date := models.DateString(now.AddDate(0, 0, -i))
		confirmations, err := service.confirmationsForDate(ctx, date)
		if err != nil {
			return nil, err
		}

		confirmed := 0
		for _, confirmation := range confirmations {
			if confirmation.Lunch {
				confirmed++
			}
		}
		analytics = append(analytics, models.ConsolidatedReport{
			Date:      date,
			MealType:  models.MealTypeLunch,
			Confirmed: confirmed,
		})
	}
	return analytics, nil
}

// WorkforceDistribution counts today's employees by effective location.
func (service *ReportService) WorkforceDistribution(ctx context.Context) (models.WorkforceDistribution, error) {
	today := models.DateString(service.clock.Now())

	employees, err := listEmployees(ctx, service.store)
	if err != nil {
		return models.WorkforceDistribution{}, err
	}

	distribution := models.WorkforceDistribution{Total: len(employees)}
	for _, employee := range employees {
		location, err := service.resolver.EffectiveLocation(ctx, employee, today)
		if err != nil {
			return models.WorkforceDistribution{}, err
		}
		switch location {
		case models.LocationMainOffice:
			distribution.MainOffice++
		case models.LocationWFH:
			distribution.WFH++
		case models.LocationOther:
			distribution.Other++
		case models.LocationOnLeave:
			distribution.OnLeave++
		}
	}
	return distribution, nil
}

func (service *ReportService) confirmationsForDate(ctx context.Context, date string) ([]models.MealConfirmation, error) {
	documents, err := service.store.Query(ctx, models.CollectionConfirmations, store.Where("date", date))
	if err != nil {
		return nil, fmt.Errorf("querying confirmations: %w", err)
	}

	confirmations := make([]models.MealConfirmation, 0, len(documents))
	for _, document := range documents {
		var confirmation models.MealConfirmation
		if err := models.Decode(document.ID, document.Fields, &confirmation); err != nil {
			return nil, err
		}
		confirmations = append(confirmations, confirmation)
	}
	return confirmations, nil
}
