package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// ObjectStore is the external blob store holding meal images and delivery
// proofs. The database keeps only the returned URL.
type ObjectStore interface {
	Upload(ctx context.Context, data []byte, fileName, contentType string) (string, error)
	Delete(ctx context.Context, objectURL string) error
}

// Store is the process-wide object store, set by InitStorage. Tests swap
// in a fake.
var Store ObjectStore

type gcsStore struct {
	client *storage.Client
	bucket string
}

// InitStorage initializes the GCS-backed object store.
func InitStorage() error {
	bucket := os.Getenv("GCP_BUCKET_NAME")
	if bucket == "" {
		return fmt.Errorf("GCP_BUCKET_NAME not set")
	}

	client, err := storage.NewClient(context.Background())
	if err != nil {
		return fmt.Errorf("failed to create GCP storage client: %v", err)
	}

	Store = &gcsStore{client: client, bucket: bucket}
	return nil
}

func (s *gcsStore) Upload(ctx context.Context, data []byte, fileName, contentType string) (string, error) {
	objectName := uuid.NewString() + "-" + fileName

	obj := s.client.Bucket(s.bucket).Object(objectName)
	writer := obj.NewWriter(ctx)
	if contentType == "" {
		contentType = "image/jpeg"
	}
	writer.ContentType = contentType

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return "", fmt.Errorf("GCS upload failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("GCS upload finalization failed: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectName), nil
}

func (s *gcsStore) Delete(ctx context.Context, objectURL string) error {
	if objectURL == "" {
		return nil
	}

	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", s.bucket)
	objectName := strings.TrimPrefix(objectURL, prefix)
	if objectName == objectURL {
		// Not one of ours; nothing to delete.
		return nil
	}

	return s.client.Bucket(s.bucket).Object(objectName).Delete(ctx)
}
