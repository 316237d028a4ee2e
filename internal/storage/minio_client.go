package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"luxestate/internal/config"
)

type Storage interface {
	UploadImage(ctx context.Context, propertyID, fileName, contentType string, file io.Reader, size int64) (string, string, error)
	DeleteImage(ctx context.Context, objectName string) error
}

type MinIOClient struct {
	client    *minio.Client
	bucket    string
	publicURL string
	now       func() time.Time
}

// NewMinIOClient connects to the configured endpoint and creates the image
// bucket when it does not exist yet.
func NewMinIOClient(ctx context.Context, cfg config.MinIO) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.BucketName, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.BucketName, err)
		}
		slog.Info("created image bucket", "bucket", cfg.BucketName)
	}

	return &MinIOClient{
		client:    client,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		now:       time.Now,
	}, nil
}

// UploadImage stores file and returns its object name and public URL.
func (m *MinIOClient) UploadImage(ctx context.Context, propertyID, fileName, contentType string, file io.Reader, size int64) (string, string, error) {
	now := m.now().UTC()
	objectName := ObjectName(propertyID, fileName, now)

	_, err := m.client.PutObject(ctx, m.bucket, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"property-id":       propertyID,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("upload %s: %w", objectName, err)
	}

	return objectName, ObjectURL(m.publicURL, m.bucket, objectName), nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("delete %s: %w", objectName, err)
	}
	return nil
}

// ObjectName lays images out as properties/<id>/<yyyy>/<mm>/<uuid><ext>.
func ObjectName(propertyID, fileName string, at time.Time) string {
	ext := strings.ToLower(path.Ext(fileName))
	if ext == "" {
		ext = ".jpg"
	}

	return fmt.Sprintf("properties/%s/%d/%02d/%s%s",
		propertyID,
		at.Year(),
		at.Month(),
		uuid.New().String(),
		ext)
}

func ObjectURL(publicURL, bucket, objectName string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(publicURL, "/"), bucket, objectName)
}
