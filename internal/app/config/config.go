package config

import (
	"edunexus-service/internal/pkg/utils"

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
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "edunexus"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
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
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "Asia/Karachi"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 50),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
			AuditCronSpec:             utils.GetEnvString("APP_AUDIT_CRON_SPEC", "@daily"),
		},
		Store: AppStore{
			Backend: utils.GetEnvString("APP_STORE_BACKEND", "redis"),
		},
		Scheduler: AppScheduler{
			BaseUrl:                 utils.GetEnvString("SCHEDULER_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			Model:                   utils.GetEnvString("SCHEDULER_MODEL", "gemini-2.5-flash"),
			APIKey:                  utils.GetEnvString("SCHEDULER_API_KEY", ""),
			RequestTimeoutInSeconds: utils.GetEnvInt("SCHEDULER_REQUEST_TIMEOUT_IN_SECONDS", 30),
			RetryOnTransientError:   utils.GetEnvBool("SCHEDULER_RETRY_ON_TRANSIENT_ERROR", true),
			LockTTLInSeconds:        utils.GetEnvInt("SCHEDULER_LOCK_TTL_IN_SECONDS", 60),
		},
		Minio: AppMinio{
			BucketName:             utils.GetEnvString("APP_MINIO_BUCKET_NAME", "edunexus-photos"),
			PhotoMaxUploadSizeInMB: utils.GetEnvInt("APP_MINIO_PHOTO_UPLOAD_MAX_SIZE_IN_MB", 2),
			PhotoOffloadEnabled:    utils.GetEnvBool("APP_MINIO_PHOTO_OFFLOAD_ENABLED", false),
		},
		RabbitMQ: AppRabbitMQ{
			EventsQueue: utils.GetEnvString("APP_RABBITMQ_EVENTS_QUEUE", "edunexus.events"),
			Enabled:     utils.GetEnvBool("APP_RABBITMQ_ENABLED", false),
		},
	}
}
