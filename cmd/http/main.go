package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"vitaliv-service/internal/app/config"
	"vitaliv-service/internal/app/contracts"
	"vitaliv-service/internal/app/delivery/http/middlewares"
	"vitaliv-service/internal/app/delivery/http/routers"
	"vitaliv-service/internal/app/drivers/database"
	"vitaliv-service/internal/app/drivers/logger"
	"vitaliv-service/internal/app/drivers/messaging"
	"vitaliv-service/internal/app/drivers/storage"
	"vitaliv-service/internal/app/services/core/auth"
	"vitaliv-service/internal/app/services/core/bookings"
	"vitaliv-service/internal/app/services/core/checklists"
	"vitaliv-service/internal/app/services/core/files"
	"vitaliv-service/internal/app/services/core/links"
	"vitaliv-service/internal/app/services/core/session"
	"vitaliv-service/internal/app/services/core/surveys"
	"vitaliv-service/internal/app/services/core/users"
	"vitaliv-service/internal/app/services/shared/notifierqueue"
	"vitaliv-service/internal/app/services/shared/redis"
	sharedstorage "vitaliv-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	workerLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		workerLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	notifierService := bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})
	defer notifierService.Close()

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()
	go runBookingEventWorker(consumerCtx, notifierService, workerLog)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			workerLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	stopConsumer()

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		workerLog.Fatalf("Server forced to shutdown: %v", err)
	}

	workerLog.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) *notifierqueue.Service {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio)

	notifierService, err := notifierqueue.NewService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.Booking.NotificationQueue,
		1,
	)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to set up notifier queue", zap.Error(err))
	}

	// Session
	sessionService := session.NewSessionService(redisRepository, bootstrap.InternalConfig.App.SessionExpiredTimeInHours)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// User
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	userUsecase := users.NewUserUsecase(userMongoRepository, sessionService, bootstrap.Logger)
	userController := users.NewUserController(bootstrap.Logger, userUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Surveys
	surveyCatalog := surveys.NewDefaultCatalog()
	surveyResponseMongoRepository := surveys.NewSurveyResponseMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	surveyUsecase := surveys.NewSurveyUsecase(surveyCatalog, sessionService, surveyResponseMongoRepository, bootstrap.Logger)
	surveyController := surveys.NewSurveyController(bootstrap.Logger, surveyUsecase)

	// Bookings
	bookingMongoRepository := bookings.NewBookingMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	bookingSlotMongoRepository := bookings.NewBookingSlotMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	bookingUsecase := bookings.NewBookingUsecase(
		bookingMongoRepository,
		bookingSlotMongoRepository,
		sessionService,
		notifierService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	bookingController := bookings.NewBookingController(bootstrap.Logger, bookingUsecase)

	// Checklists
	checklistMongoRepository := checklists.NewChecklistMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	checklistUsecase := checklists.NewChecklistUsecase(checklistMongoRepository, sessionService, bootstrap.Logger)
	checklistController := checklists.NewChecklistController(bootstrap.Logger, checklistUsecase)

	// Links
	linkMongoRepository := links.NewLinkMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	linkUsecase := links.NewLinkUsecase(linkMongoRepository, bootstrap.Logger)
	linkController := links.NewLinkController(bootstrap.Logger, linkUsecase)

	// Files
	fileUsecase := files.NewFileUsecase(minioStorage, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	fileController := files.NewFileController(bootstrap.Logger, fileUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		userController,
		surveyController,
		bookingController,
		checklistController,
		linkController,
		fileController,
	)

	return notifierService
}

// runBookingEventWorker drains booking events from the notification queue.
// Delivery to clinic staff happens out-of-band; the worker records each
// event so operators can follow the booking flow in the logs.
func runBookingEventWorker(ctx context.Context, notifierService *notifierqueue.Service, workerLog *logrus.Logger) {
	err := notifierService.RunConsumer(ctx, func(ctx context.Context, event *contracts.BookingEvent) error {
		workerLog.WithFields(logrus.Fields{
			"type":       event.Type,
			"booking_id": event.BookingID,
			"user_id":    event.UserID,
			"date":       event.Date,
			"start_time": event.StartTime,
		}).Info("Booking event received")
		return nil
	})
	if err != nil && err != context.Canceled {
		workerLog.Errorf("Booking event worker stopped: %v", err)
	}
}
