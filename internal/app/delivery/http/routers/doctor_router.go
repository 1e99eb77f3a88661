package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/core/reviews"
	"medibook-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController, reviewController *reviews.ReviewController) {
	router.Get("/", userController.FindDoctors)
	router.Get("/{doctorID}", userController.FindDoctorByID)
	router.Get("/{doctorID}/reviews", reviewController.FindByDoctor)
	router.With(middlewares.RequireSession, middlewares.RequireRole(models.RolePatient)).Post("/{doctorID}/reviews", reviewController.AddReview)
}
