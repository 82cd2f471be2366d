package config

import "fmt"

// DriverConfig holds connection settings for the external systems the
// service depends on, resolved from the environment once at startup.
type DriverConfig struct {
	Redis    RedisDriver
	Logger   LoggerDriver
	RabbitMQ RabbitMQDriver
	Minio    MinioDriver
}

type RedisDriver struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (r RedisDriver) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

type LoggerDriver struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type RabbitMQDriver struct {
	Host     string
	Port     string
	Username string
	Password string
}

func (r RabbitMQDriver) URL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", r.Username, r.Password, r.Host, r.Port)
}

type MinioDriver struct {
	Host     string
	Port     string
	Username string
	Password string
	UseSSL   bool
}

func (m MinioDriver) Endpoint() string {
	return fmt.Sprintf("%s:%s", m.Host, m.Port)
}
