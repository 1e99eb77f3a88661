package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Use(middlewares.RequireSession)
	router.With(middlewares.RequireRole(models.RolePatient)).Post("/", appointmentController.BookAppointment)
	router.Get("/", appointmentController.FindMine)
	router.Put("/{appointmentID}/status", appointmentController.UpdateStatus)
	router.With(middlewares.RequireRole(models.RoleAdmin)).Delete("/{appointmentID}", appointmentController.DeleteAppointment)
}
