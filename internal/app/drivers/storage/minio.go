package storage

import (
	"log"

	"mediconnect-service/internal/app/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func NewMinio(driverConfig *config.DriverConfig) *minio.Client {
	minioClient, err := minio.New(driverConfig.Minio.Endpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize Minio client: %v", err)
	}
	log.Println("Successfully connected to Minio")
	return minioClient
}
