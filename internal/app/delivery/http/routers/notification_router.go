package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/notifications"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *notifications.NotificationController) {
	router.Use(middlewares.RequireSession)
	router.Get("/", notificationController.FindMine)
	router.Put("/{notificationID}/read", notificationController.MarkAsRead)
}
