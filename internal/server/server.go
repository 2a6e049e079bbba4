package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/clock"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/config"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/handlers"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/middleware"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/policy"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/services"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/store"
)

type Server struct {
	router *chi.Mux
	config config.Config
}

// New wires the service and handler graph over one shared store instance.
// simulated is nil unless the portal runs with CLOCK_MODE=simulated.
func New(documents *store.Store, cfg config.Config, clk clock.Clock, simulated *clock.Simulated, scheduler *policy.ReminderScheduler) *Server {
	resolver := policy.NewWorkPlanResolver(documents)
	targeting := policy.NewTargeting(resolver)

	authService := services.NewAuthService(documents, cfg.SessionSecret)
	userService := services.NewUserService(documents)
	menuService := services.NewMenuService(documents)
	confirmationService := services.NewConfirmationService(documents, clk)
	reportService := services.NewReportService(documents, resolver, clk)
	notificationService := services.NewNotificationService(documents, targeting, menuService, clk)
	workPlanService := services.NewWorkPlanService(documents)
	feedbackService := services.NewFeedbackService(documents, clk)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	menuHandler := handlers.NewMenuHandler(menuService, clk)
	confirmationHandler := handlers.NewConfirmationHandler(confirmationService)
	reportHandler := handlers.NewReportHandler(reportService, documents)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	workPlanHandler := handlers.NewWorkPlanHandler(workPlanService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	reminderHandler := handlers.NewReminderHandler(scheduler)
	icalHandler := handlers.NewICalHandler(menuService, clk)

	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	router.Post("/auth/register", authHandler.Register)
	router.Post("/auth/login", authHandler.Login)
	router.Post("/auth/logout", authHandler.Logout)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(authService))

		r.Get("/auth/me", authHandler.Me)

		r.Get("/api/menu", menuHandler.Get)
		r.Get("/ical/menu", icalHandler.MenuFeed)

		r.Get("/api/confirmations", confirmationHandler.Week)
		r.Post("/api/confirmations/toggle", confirmationHandler.Toggle)

		r.Get("/api/workplans", workPlanHandler.Get)
		r.Put("/api/workplans", workPlanHandler.Update)

		r.Get("/api/notifications", notificationHandler.List)
		r.Post("/api/notifications/{id}/respond", notificationHandler.Respond)

		r.Post("/api/feedback", feedbackHandler.Submit)

		r.Get("/api/reminders", reminderHandler.Pending)
		r.Delete("/api/reminders/{id}", reminderHandler.Dismiss)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			r.Post("/api/admin/menu/{day}/{meal}/items", menuHandler.AddItem)
			r.Put("/api/admin/menu/{day}/{meal}/items/{itemID}", menuHandler.UpdateItem)
			r.Delete("/api/admin/menu/{day}/{meal}/items/{itemID}", menuHandler.DeleteItem)

			r.Get("/api/admin/reports/consolidated", reportHandler.Consolidated)
			r.Get("/api/admin/reports/details", reportHandler.Details)
			r.Get("/api/admin/reports/waste", reportHandler.Waste)
			r.Get("/api/admin/stream", reportHandler.Stream)

			r.Post("/api/admin/notifications", notificationHandler.Send)
			r.Post("/api/admin/notifications/publish-menu", notificationHandler.PublishMenu)
			r.Get("/api/admin/notifications/{id}/tally", notificationHandler.Tally)

			r.Get("/api/admin/feedback", feedbackHandler.List)

			if simulated != nil {
				clockHandler := handlers.NewClockHandler(simulated)
				r.Post("/api/admin/clock", clockHandler.Set)
				r.Post("/api/admin/clock/advance-day", clockHandler.AdvanceDay)
			}
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireMainAdmin)

			r.Get("/api/admin/users", userHandler.List)
			r.Put("/api/admin/users/{id}", userHandler.Update)
			r.Delete("/api/admin/users/{id}", userHandler.Delete)
			r.Get("/api/admin/workforce", reportHandler.Workforce)
		})
	})

	return &Server{router: router, config: cfg}
}

func (server *Server) Router() http.Handler {
	return server.router
}

func (server *Server) Start() error {
	return http.ListenAndServe(":"+server.config.Port, server.router)
}
