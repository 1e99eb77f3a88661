package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/core/appointments"
	"medibook-service/internal/app/services/core/dashboard"
	"medibook-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	userController *users.UserController,
	appointmentController *appointments.AppointmentController,
	dashboardController *dashboard.DashboardController,
) {
	router.Use(middlewares.RequireSession, middlewares.RequireRole(models.RoleAdmin))
	router.Get("/doctors", userController.FindDoctorsForAdmin)
	router.Put("/doctors/{doctorID}/approve", userController.ApproveDoctor)
	router.Delete("/doctors/{doctorID}", userController.RejectDoctor)
	router.Get("/patients", userController.FindPatients)
	router.Get("/appointments", appointmentController.FindAll)
	router.Get("/stats", dashboardController.GetStats)
}
