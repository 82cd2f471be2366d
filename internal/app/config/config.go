package config

import (
	"mediconnect-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: RedisDriver{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: LoggerDriver{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQDriver{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: MinioDriver{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                            utils.GetEnvString("APP_ENV", "development"),
			Port:                           utils.GetEnvString("APP_PORT", ":8080"),
			Version:                        utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                       utils.GetEnvString("APP_TIMEZONE", "America/Sao_Paulo"),
			EndpointPrefix:                 utils.GetEnvString("APP_ENDPOINT_PREFIX", "v1"),
			MaxRequests:                    utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds:       utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			LoginSessionExpiredTimeInHours: utils.GetEnvInt("APP_LOGIN_SESSION_EXPIRED_TIME_IN_HOURS", 12),
		},
		Backend: AppBackend{
			BaseUrl:                     utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:8080"),
			RequestTimeoutInSeconds:     utils.GetEnvInt("BACKEND_REQUEST_TIMEOUT_IN_SECONDS", 10),
			OutboundRequestsPerSecond:   utils.GetEnvInt("BACKEND_OUTBOUND_REQUESTS_PER_SECOND", 20),
			OutboundBurst:               utils.GetEnvInt("BACKEND_OUTBOUND_BURST", 40),
			AvailabilityCacheTTLSeconds: utils.GetEnvInt("BACKEND_AVAILABILITY_CACHE_TTL_IN_SECONDS", 30),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 12),
		},
		Minio: AppMinio{
			ProfilePictureMaxUploadSizeInMB: utils.GetEnvInt64("MINIO_PROFILE_PICTURE_UPLOAD_MAX_SIZE_IN_MB", 2),
			BucketName:                      utils.GetEnvString("MINIO_BUCKET_NAME", "mediconnect"),
		},
		RabbitMQ: AppRabbitMQ{
			NotificationQueue: utils.GetEnvString("RABBITMQ_NOTIFICATION_QUEUE", "mediconnect.notifications"),
		},
	}
}
