package config

import "time"

type (
	DriverConfig struct {
		Storage  Storage
		Redis    Redis
		MongoDB  MongoDB
		Minio    Minio
		RabbitMQ RabbitMQ
		Logger   Logger
	}
	Storage struct {
		Driver    string
		KeyPrefix string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	MongoDB struct {
		Host     string
		Port     string
		Username string
		Password string
		DbName   string
	}
	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
	RabbitMQ struct {
		Enabled  bool
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
)

type (
	InternalConfig struct {
		App          App
		Auth         Auth
		Notification Notification
	}
	App struct {
		Env                        string
		Port                       string
		Version                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestTimeoutInSeconds    int
		SeedOnStartup              bool
		RevenuePerAppointment      float64
		RequestBodyLimitInMegabyte int
	}
	Auth struct {
		// Mode is "demo" (any password accepted) or "bcrypt".
		Mode              string
		JWTSecret         string
		SessionTTLInHours int
	}
	Notification struct {
		Queue string
	}
)

func (c *InternalConfig) RequestTimeout() time.Duration {
	return time.Duration(c.App.RequestTimeoutInSeconds) * time.Second
}

func (c *InternalConfig) SessionTTL() time.Duration {
	return time.Duration(c.Auth.SessionTTLInHours) * time.Hour
}
