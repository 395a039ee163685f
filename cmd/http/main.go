package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"valoredash-service/internal/app/config"
	"valoredash-service/internal/app/delivery/http/middlewares"
	"valoredash-service/internal/app/delivery/http/routers"
	"valoredash-service/internal/app/drivers/database"
	"valoredash-service/internal/app/drivers/logger"
	"valoredash-service/internal/app/drivers/messaging"
	"valoredash-service/internal/app/services/core/agendas"
	"valoredash-service/internal/app/services/core/availability"
	"valoredash-service/internal/app/services/core/bookings"
	"valoredash-service/internal/app/services/core/calendars"
	"valoredash-service/internal/app/services/shared/cache"
	"valoredash-service/internal/app/services/shared/jwtmanager"
	"valoredash-service/internal/app/services/shared/locker"
	"valoredash-service/internal/app/services/shared/notifierqueue"
	redisrepo "valoredash-service/internal/app/services/shared/redis"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	worker := bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoClient.Database(driverConfig.MongoDB.DbName),
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})
	worker.Start(context.Background())

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

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	worker.Stop()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) *availability.Worker {
	zapLogger := logger.NewZapLogger(bootstrap.DriverConfig, bootstrap.InternalConfig)

	// Redis-backed shared services
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	cacheService := cache.NewCacheService(redisRepository)
	lockerService := locker.NewLockService(redisRepository, zapLogger)

	jwtManager, err := jwtmanager.NewJWTManager(bootstrap.InternalConfig)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to initialize JWT manager: %v", err)
	}

	bookingEventPublisher, err := notifierqueue.NewPublisher(
		bootstrap.RabbitMQ,
		zapLogger,
		bootstrap.InternalConfig.App.RabbitMQBookingEventsQueue,
	)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to initialize booking event publisher: %v", err)
	}

	// Middlewares
	middlewares := &middlewares.Middlewares{
		Log:            zapLogger,
		JWTManager:     jwtManager,
		InternalConfig: bootstrap.InternalConfig,
	}

	// Repositories
	agendaRepository := agendas.NewAgendaMongoRepository(bootstrap.MongoDB)
	operatingHourRepository := calendars.NewOperatingHourMongoRepository(bootstrap.MongoDB)
	dateExceptionRepository := calendars.NewDateExceptionMongoRepository(bootstrap.MongoDB)
	bookingRepository := bookings.NewBookingMongoRepository(bootstrap.MongoDB)

	// Availability
	availabilityUsecase := availability.NewAvailabilityUsecase(
		agendaRepository,
		operatingHourRepository,
		dateExceptionRepository,
		bookingRepository,
		cacheService,
		zapLogger,
		time.Duration(bootstrap.InternalConfig.App.AvailabilityCacheTTLSeconds)*time.Second,
	)
	availabilityController := availability.NewAvailabilityController(zapLogger, availabilityUsecase)

	// Agenda
	agendaUsecase := agendas.NewAgendaUsecase(agendaRepository, zapLogger)
	agendaController := agendas.NewAgendaController(zapLogger, agendaUsecase)

	// Calendar
	calendarUsecase := calendars.NewCalendarUsecase(
		agendaRepository,
		operatingHourRepository,
		dateExceptionRepository,
		availabilityUsecase,
		zapLogger,
		bootstrap.InternalConfig.App.AvailabilityWindowDays,
	)
	calendarController := calendars.NewCalendarController(zapLogger, calendarUsecase)

	// Booking
	bookingUsecase := bookings.NewBookingUsecase(
		agendaRepository,
		bookingRepository,
		availabilityUsecase,
		lockerService,
		bookingEventPublisher,
		zapLogger,
		time.Duration(bootstrap.InternalConfig.App.BookingLockTTLSeconds)*time.Second,
	)
	bookingController := bookings.NewBookingController(zapLogger, bookingUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		agendaController,
		calendarController,
		availabilityController,
		bookingController,
	)

	return availability.NewWorker(zapLogger, bootstrap.InternalConfig, lockerService, agendaRepository, availabilityUsecase)
}
