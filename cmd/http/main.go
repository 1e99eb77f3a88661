package main

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/delivery/http/routers"
	"medibook-service/internal/app/drivers/kvstore"
	"medibook-service/internal/app/drivers/logger"
	"medibook-service/internal/app/drivers/messaging"
	"medibook-service/internal/app/services/core/appointments"
	"medibook-service/internal/app/services/core/dashboard"
	"medibook-service/internal/app/services/core/notifications"
	"medibook-service/internal/app/services/core/reviews"
	"medibook-service/internal/app/services/core/seed"
	"medibook-service/internal/app/services/core/session"
	"medibook-service/internal/app/services/core/users"
	"medibook-service/internal/app/services/shared/codec"
	"medibook-service/internal/app/services/shared/jwtmanager"
	"medibook-service/internal/app/services/shared/notificationqueue"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	store, storageClose, err := kvstore.NewKeyValueStore(driverConfig, log)
	if err != nil {
		log.Fatal("Error initializing storage backend", zap.Error(err))
	}

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
		StorageClose:   storageClose,
	}
	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig, log)
	}

	err = bootstrapingTheApp(&bootstrap, store)
	if err != nil {
		log.Fatal("Error bootstraping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server started", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Error releasing resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, store contracts.KeyValueStore) error {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Storage
	storageCodec := codec.NewCodec(store, bootstrap.DriverConfig.Storage.KeyPrefix, log)

	// Repositories
	userRepository := users.NewUserStorageRepository(storageCodec)
	appointmentRepository := appointments.NewAppointmentStorageRepository(storageCodec)
	reviewRepository := reviews.NewReviewStorageRepository(storageCodec)
	notificationRepository := notifications.NewNotificationStorageRepository(storageCodec)

	// Seed
	if internalConfig.App.SeedOnStartup {
		ctx, cancel := context.WithTimeout(context.Background(), internalConfig.RequestTimeout())
		defer cancel()
		_, err := seed.NewLoader(storageCodec, userRepository, log).EnsureSeeded(ctx)
		if err != nil {
			return err
		}
	}

	// Notification
	publisher := notificationqueue.NewNoopPublisher()
	if bootstrap.RabbitMQ != nil {
		var err error
		publisher, err = notificationqueue.NewRabbitMQPublisher(bootstrap.RabbitMQ, internalConfig.Notification.Queue, log)
		if err != nil {
			return err
		}
	}
	notificationUsecase := notifications.NewNotificationUsecase(notificationRepository, publisher, log)
	notificationController := notifications.NewNotificationController(log, notificationUsecase, internalConfig)

	// Session
	jwtManager, err := jwtmanager.NewJWTManager(internalConfig, log)
	if err != nil {
		return err
	}
	verifier := session.NewCredentialVerifier(internalConfig.Auth.Mode, storageCodec)
	sessionManager := session.NewSessionManager(storageCodec, userRepository, verifier, jwtManager, log)
	authController := session.NewAuthController(log, sessionManager, internalConfig)

	// User
	userUsecase := users.NewUserUsecase(userRepository, notificationUsecase, log)
	userController := users.NewUserController(log, userUsecase, sessionManager, internalConfig)

	// Appointment
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, userRepository, notificationUsecase, log)
	appointmentController := appointments.NewAppointmentController(log, appointmentUsecase, internalConfig)

	// Review
	reviewUsecase := reviews.NewReviewUsecase(reviewRepository, userRepository, log)
	reviewController := reviews.NewReviewController(log, reviewUsecase, internalConfig)

	// Dashboard
	dashboardUsecase := dashboard.NewDashboardUsecase(userRepository, appointmentRepository, internalConfig.App.RevenuePerAppointment)
	dashboardController := dashboard.NewDashboardController(log, dashboardUsecase, internalConfig)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, sessionManager, internalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares,
		authController,
		userController,
		appointmentController,
		reviewController,
		notificationController,
		dashboardController,
	)
	return nil
}
