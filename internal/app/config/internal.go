package config

import "time"

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
	MongoDB  AppMongoDB  `mapstructure:"mongodb"`
	Cache    AppCache    `mapstructure:"cache"`
}

type App struct {
	Env                      string `mapstructure:"env"`
	Port                     string `mapstructure:"port"`
	Version                  string `mapstructure:"version"`
	Timezone                 string `mapstructure:"timezone"`
	EndpointPrefix           string `mapstructure:"endpoint_prefix"`
	MaxRequests              int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds  int    `mapstructure:"request_timeout_in_seconds"`
	// PhysicianAPIKey gates the review dashboard; an empty key rejects every request.
	PhysicianAPIKey string `mapstructure:"physician_api_key"`
}

type AppRabbitMQ struct {
	QuestionnaireEventsQueue string `mapstructure:"questionnaire_events_queue"`
}

type AppMongoDB struct {
	DBName string `mapstructure:"db_name"`
}

type AppCache struct {
	SummaryTTL    time.Duration `mapstructure:"summary_ttl"`
	MedicationTTL time.Duration `mapstructure:"medication_ttl"`
}
