package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type APIConfig struct {
	DBDSN     string `envconfig:"DB_DSN" required:"true"`
	Port      string `envconfig:"PORT" default:"8080"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	// browser origins allowed to call the intake endpoint
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	DBPoolMaxConns          int32         `envconfig:"DB_POOL_MAX_CONNS"`
	DBPoolMinConns          int32         `envconfig:"DB_POOL_MIN_CONNS"`
	DBPoolMaxConnLifetime   time.Duration `envconfig:"DB_POOL_MAX_CONN_LIFETIME"`
	DBPoolMaxConnIdleTime   time.Duration `envconfig:"DB_POOL_MAX_CONN_IDLE_TIME"`
	DBPoolHealthCheckPeriod time.Duration `envconfig:"DB_POOL_HEALTH_CHECK_PERIOD"`
	DBMigrateOnStart        bool          `envconfig:"DB_MIGRATE_ON_START" default:"false"`

	// AWS / SQS registration events, disabled when EVENTS_QUEUE_URL is empty
	AWSRegion          string        `envconfig:"AWS_REGION" default:"us-east-1"`
	EventsQueueURL     string        `envconfig:"EVENTS_QUEUE_URL"`
	LocalstackEndpoint string        `envconfig:"LOCALSTACK_ENDPOINT"`
	EventsRPS          float64       `envconfig:"EVENTS_RPS" default:"10"`
	EventsBurst        int           `envconfig:"EVENTS_BURST" default:"20"`
	EventsTimeout      time.Duration `envconfig:"EVENTS_TIMEOUT" default:"2s"`

	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type MigrateConfig struct {
	DBDSN     string `envconfig:"DB_DSN" required:"true"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

func (c APIConfig) EventsEnabled() bool { return c.EventsQueueURL != "" }

func LoadAPI() APIConfig {
	var cfg APIConfig
	if err := envconfig.Process("", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

func LoadMigrate() MigrateConfig {
	var cfg MigrateConfig
	if err := envconfig.Process("", &cfg); err != nil {
		panic(err)
	}
	return cfg
}
