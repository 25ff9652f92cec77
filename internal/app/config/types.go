package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
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
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type InternalConfig struct {
	App     App
	JWT     JWT
	Minio   AppMinio
	Booking AppBooking
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Timezone                  string
	EndpointPrefix            string
	MaxRequests               int
	ShutdownTimeoutInSeconds  int
	SessionExpiredTimeInHours int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMinio struct {
	BucketName                         string
	CustomerFilePrefix                 string
	PresignedURLObjectExpiryTimeInHour int
}

type AppBooking struct {
	// NotificationQueue is the RabbitMQ queue that receives booking lifecycle events.
	NotificationQueue string
	// SlotDurationInMinutes sets the calendar granularity for a working day.
	SlotDurationInMinutes int
	DayStartHour          int
	DayEndHour            int
}
