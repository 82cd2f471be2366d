package messaging

import (
	"log"

	"mediconnect-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
)

func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	conn, err := amqp091.Dial(driverConfig.RabbitMQ.URL())
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	log.Println("Successfully connected to RabbitMQ")
	return conn
}
