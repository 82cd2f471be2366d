package config

type InternalConfig struct {
	App      App
	Backend  AppBackend
	JWT      AppJWT
	Minio    AppMinio
	RabbitMQ AppRabbitMQ
}

type App struct {
	Env                            string
	Port                           string
	Version                        string
	Timezone                       string
	EndpointPrefix                 string
	MaxRequests                    int
	ShutdownTimeoutInSeconds       int
	LoginSessionExpiredTimeInHours int
}

// AppBackend configures the platform backend collaborator: the REST API that
// owns accounts, appointments, and reviews.
type AppBackend struct {
	BaseUrl                     string
	RequestTimeoutInSeconds     int
	OutboundRequestsPerSecond   int
	OutboundBurst               int
	AvailabilityCacheTTLSeconds int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMinio struct {
	ProfilePictureMaxUploadSizeInMB int64
	BucketName                      string
}

type AppRabbitMQ struct {
	NotificationQueue string
}
