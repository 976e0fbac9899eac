package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lexbook-service/internal/app/config"
	"lexbook-service/internal/app/delivery/http/controllers"
	"lexbook-service/internal/app/delivery/http/middlewares"
	"lexbook-service/internal/app/delivery/http/routers"
	"lexbook-service/internal/app/drivers/database"
	"lexbook-service/internal/app/drivers/logger"
	"lexbook-service/internal/app/drivers/messaging"
	"lexbook-service/internal/app/drivers/storage"
	"lexbook-service/internal/app/services/core/accounts"
	"lexbook-service/internal/app/services/core/auth"
	"lexbook-service/internal/app/services/core/bookings"
	"lexbook-service/internal/app/services/core/lawyers"
	"lexbook-service/internal/app/services/core/payments"
	"lexbook-service/internal/app/services/core/slots"
	"lexbook-service/internal/app/services/shared/archive"
	"lexbook-service/internal/app/services/shared/bookingevents"
	sharedredis "lexbook-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	eventPublisher, err := bookingevents.NewService(rabbitConn, internalConfig.App.RabbitMQBookingQueue, zapLogger)
	if err != nil {
		log.Fatalf("Error setting up booking event queue: %v", err)
	}
	defer eventPublisher.Close()

	bootstrapTheApp(bootstrap, eventPublisher, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()
	log.Infof("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, eventPublisher *bookingevents.Service, minioClient *minio.Client) {
	// Shared
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	callbackArchive := archive.NewMinioArchive(minioClient, bootstrap.DriverConfig.Minio.BucketName)

	// Users and auth
	userMongoRepository := accounts.NewUserMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	accountProvisioner := accounts.NewAccountProvisioner(userMongoRepository, bootstrap.Logger)
	authUsecase := auth.NewAuthUsecase(userMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Lawyers
	lawyerMongoRepository := lawyers.NewLawyerMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	lawyerUsecase := lawyers.NewLawyerUsecase(lawyerMongoRepository, bootstrap.Logger)
	lawyerController := controllers.NewLawyerController(bootstrap.Logger, lawyerUsecase)

	// Time slots
	slotMongoRepository := slots.NewSlotMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	slotUsecase := slots.NewSlotUsecase(slotMongoRepository, lawyerMongoRepository, bootstrap.Logger)
	slotController := controllers.NewSlotController(bootstrap.Logger, slotUsecase)

	// Bookings
	appointmentMongoRepository := bookings.NewAppointmentMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	paymentLinkBuilder := payments.NewLinkBuilder(bootstrap.InternalConfig.PayAnyWay)
	bookingUsecase := bookings.NewBookingUsecase(
		appointmentMongoRepository,
		slotMongoRepository,
		accountProvisioner,
		paymentLinkBuilder,
		eventPublisher,
		bootstrap.Logger,
	)
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase)

	// Payment callback
	callbackUsecase := payments.NewCallbackUsecase(bookingUsecase, callbackArchive, bootstrap.InternalConfig.PayAnyWay, bootstrap.Logger)
	paymentController := controllers.NewPaymentController(bootstrap.Logger, callbackUsecase)

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		authController,
		bookingController,
		slotController,
		lawyerController,
		paymentController,
	)
}
