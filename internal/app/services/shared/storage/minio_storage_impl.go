package storage

import (
	"bytes"
	"fmt"
	"mime"
	"sync"

	"context"

	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

var (
	minioStorageInstance contracts.Storage
	onceMinioStorage     sync.Once
)

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	onceMinioStorage.Do(func() {
		minioStorageInstance = &minioStorage{MinioClient: minioClient}
	})
	return minioStorageInstance
}

func (m *minioStorage) UploadBase64Image(ctx context.Context, encodedImageData []byte, bucketName, fileName, fileExtension string) (string, error) {
	contentType := mime.TypeByExtension(fileExtension)
	if contentType == "" {
		errContentType := fmt.Errorf("unknown content type for extension %s", fileExtension)
		return "", exceptions.ErrMinioCreateObject(errContentType, bucketName)
	}

	_, err := m.MinioClient.PutObject(
		ctx,
		bucketName,
		fileName,
		bytes.NewReader(encodedImageData),
		int64(len(encodedImageData)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return fileName, nil
}
