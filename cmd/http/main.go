package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"preop-service/internal/app/config"
	"preop-service/internal/app/delivery/http/controllers"
	"preop-service/internal/app/delivery/http/middlewares"
	"preop-service/internal/app/delivery/http/routers"
	"preop-service/internal/app/drivers/database"
	"preop-service/internal/app/drivers/logger"
	"preop-service/internal/app/drivers/messaging"
	"preop-service/internal/app/services/core/classifications"
	"preop-service/internal/app/services/core/medications"
	"preop-service/internal/app/services/core/questionnaires"
	"preop-service/internal/app/services/shared/eventqueue"
	"preop-service/internal/app/services/shared/redis"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var (
	Version string
	Tag     string
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(bootstrap, location)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server starting",
			zap.String("port", internalConfig.App.Port),
			zap.String("version", Version),
			zap.String("tag", Tag),
		)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, location *time.Location) error {
	dbName := bootstrap.InternalConfig.MongoDB.DBName
	requestTimeout := bootstrap.InternalConfig.RequestTimeout()

	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err := database.EnsureIndexes(indexCtx, bootstrap.MongoDB, dbName)
	if err != nil {
		return err
	}

	eventsQueue := bootstrap.InternalConfig.RabbitMQ.QuestionnaireEventsQueue
	err = messaging.DeclareQueue(bootstrap.RabbitMQ, eventsQueue)
	if err != nil {
		return err
	}

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	eventPublisher, err := eventqueue.NewQuestionnaireEventPublisher(bootstrap.RabbitMQ, eventsQueue, bootstrap.Logger)
	if err != nil {
		return err
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Questionnaire
	questionnaireMongoRepository := questionnaires.NewQuestionnaireMongoRepository(bootstrap.MongoDB, dbName)
	questionnaireUsecase := questionnaires.NewQuestionnaireUsecase(
		questionnaireMongoRepository,
		redisRepository,
		eventPublisher,
		bootstrap.InternalConfig.Cache.SummaryTTL,
		location,
		bootstrap.Logger,
	)
	questionnaireController := controllers.NewQuestionnaireController(bootstrap.Logger, questionnaireUsecase, requestTimeout)

	// Classification
	classificationUsecase := classifications.NewClassificationUsecase(bootstrap.Logger)
	classificationController := controllers.NewClassificationController(bootstrap.Logger, classificationUsecase, requestTimeout)

	// Medication
	medicationMongoRepository := medications.NewMedicationMongoRepository(bootstrap.MongoDB, dbName)
	medicationUsecase := medications.NewMedicationUsecase(
		medicationMongoRepository,
		redisRepository,
		bootstrap.InternalConfig.Cache.MedicationTTL,
		bootstrap.Logger,
	)
	medicationController := controllers.NewMedicationController(bootstrap.Logger, medicationUsecase, requestTimeout)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		questionnaireController,
		classificationController,
		medicationController,
	)
	return nil
}
