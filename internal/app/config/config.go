package config

import (
	"preop-service/internal/pkg/utils"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", "8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "Europe/Madrid"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:  utils.GetEnvInt("APP_REQUEST_TIMEOUT", 10),
			PhysicianAPIKey:          utils.GetEnvString("APP_PHYSICIAN_API_KEY", ""),
		},
		RabbitMQ: AppRabbitMQ{
			QuestionnaireEventsQueue: utils.GetEnvString("APP_RABBITMQ_QUESTIONNAIRE_EVENTS_QUEUE", "questionnaire_events"),
		},
		MongoDB: AppMongoDB{
			DBName: utils.GetEnvString("MONGODB_DB_NAME", "preop"),
		},
		Cache: AppCache{
			SummaryTTL:    utils.GetEnvDuration("APP_SUMMARY_CACHE_TTL", 15*time.Minute),
			MedicationTTL: utils.GetEnvDuration("APP_MEDICATION_CACHE_TTL", 24*time.Hour),
		},
	}
}

// RequestTimeout falls back to ten seconds when the configured value is not positive.
func (c *InternalConfig) RequestTimeout() time.Duration {
	if c.App.RequestTimeoutInSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.App.RequestTimeoutInSeconds) * time.Second
}
