package archive

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"lexbook-service/internal/app/contracts"
	"lexbook-service/internal/pkg/constvars"
	"lexbook-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

// minioArchive keeps every confirmed gateway notification as an object so
// disputed payments can be replayed against the exact bytes received.
type minioArchive struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioArchive(minioClient *minio.Client, bucketName string) contracts.CallbackArchive {
	return &minioArchive{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioArchive) Store(ctx context.Context, transactionID string, payload []byte) error {
	objectName := fmt.Sprintf("callbacks/%s/%s.txt", time.Now().UTC().Format("2006-01-02"), transactionID)
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(payload),
		int64(len(payload)),
		minio.PutObjectOptions{ContentType: constvars.MIMETextPlain},
	)
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, m.BucketName)
	}
	return nil
}
