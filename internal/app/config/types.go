package config

import (
	"github.com/go-chi/chi/v5"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Database
		Redis          *redis.Client
		RabbitMQ       *amqp.Connection
		Logger         *logrus.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App App
		JWT JWT
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	App struct {
		Env                         string
		Port                        string
		Version                     string
		Address                     string
		Timezone                    string
		EndpointPrefix              string
		MaxRequests                 int
		MaxTimeRequestsPerSeconds   int
		RequestBodyLimitInMegabyte  int
		ShutdownTimeout             int
		AvailabilityCacheTTLSeconds int
		AvailabilityWindowDays      int
		WarmWorkerCronSpec          string
		BookingLockTTLSeconds       int
		RabbitMQBookingEventsQueue  string
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
