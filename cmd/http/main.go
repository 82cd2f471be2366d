package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/delivery/http/controllers"
	"mediconnect-service/internal/app/delivery/http/middlewares"
	"mediconnect-service/internal/app/delivery/http/routers"
	"mediconnect-service/internal/app/drivers/database"
	"mediconnect-service/internal/app/drivers/logger"
	"mediconnect-service/internal/app/drivers/messaging"
	"mediconnect-service/internal/app/drivers/storage"
	backendauth "mediconnect-service/internal/app/services/backend/auth"
	backendappointments "mediconnect-service/internal/app/services/backend/appointments"
	backenddoctors "mediconnect-service/internal/app/services/backend/doctors"
	backendpatients "mediconnect-service/internal/app/services/backend/patients"
	"mediconnect-service/internal/app/services/backend/restclient"
	backendreviews "mediconnect-service/internal/app/services/backend/reviews"
	coreappointments "mediconnect-service/internal/app/services/core/appointments"
	coreauth "mediconnect-service/internal/app/services/core/auth"
	"mediconnect-service/internal/app/services/core/availability"
	coredoctors "mediconnect-service/internal/app/services/core/doctors"
	"mediconnect-service/internal/app/services/core/profiles"
	corereviews "mediconnect-service/internal/app/services/core/reviews"
	"mediconnect-service/internal/app/services/core/scheduling"
	"mediconnect-service/internal/app/services/core/session"
	"mediconnect-service/internal/app/services/shared/notifier"
	sharedredis "mediconnect-service/internal/app/services/shared/redis"
	sharedstorage "mediconnect-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQConnection,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Error while closing drivers: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	notifierService, err := notifier.NewNotifierService(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.NotificationQueue)
	if err != nil {
		logrus.Fatalf("Failed to initialize notifier: %v", err)
	}
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio)
	sessionService := session.NewSessionService(redisRepository)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Backend clients
	restClient := restclient.NewClient(bootstrap.InternalConfig)
	appointmentBackendClient := backendappointments.NewAppointmentBackendClient(restClient, bootstrap.Logger)
	doctorBackendClient := backenddoctors.NewDoctorBackendClient(restClient, bootstrap.Logger)
	patientBackendClient := backendpatients.NewPatientBackendClient(restClient, bootstrap.Logger)
	reviewBackendClient := backendreviews.NewReviewBackendClient(restClient, bootstrap.Logger)
	authBackendClient := backendauth.NewAuthBackendClient(restClient, bootstrap.Logger)

	// Auth
	authUsecase := coreauth.NewAuthUsecase(authBackendClient, doctorBackendClient, patientBackendClient, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Scheduling
	availabilityUsecase := availability.NewAvailabilityUsecase(appointmentBackendClient, sessionService, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	schedulingUsecase := scheduling.NewSchedulingUsecase(appointmentBackendClient, doctorBackendClient, patientBackendClient, sessionService, availabilityUsecase, notifierService, bootstrap.Logger)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, schedulingUsecase, availabilityUsecase)

	// Dashboards
	dashboardUsecase := coreappointments.NewDashboardUsecase(appointmentBackendClient, doctorBackendClient, patientBackendClient, sessionService, bootstrap.Logger)
	dashboardController := controllers.NewDashboardController(bootstrap.Logger, dashboardUsecase)

	// Doctors
	doctorUsecase := coredoctors.NewDoctorUsecase(doctorBackendClient, sessionService, bootstrap.Logger)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase)

	// Profiles
	profileUsecase := profiles.NewProfileUsecase(doctorBackendClient, patientBackendClient, sessionService, minioStorage, bootstrap.InternalConfig, bootstrap.Logger)
	profileController := controllers.NewProfileController(bootstrap.Logger, profileUsecase)

	// Reviews
	reviewUsecase := corereviews.NewReviewUsecase(reviewBackendClient, appointmentBackendClient, sessionService, bootstrap.Logger)
	reviewController := controllers.NewReviewController(bootstrap.Logger, reviewUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		appointmentController,
		dashboardController,
		doctorController,
		profileController,
		reviewController,
	)
}
