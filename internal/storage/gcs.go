package storage

import (
	"context"
	"fmt"

	gstorage "cloud.google.com/go/storage"

	"github.com/Mahesh0843/Telugu-DOCX/internal/gcp"
)

// GCSStore commits generated documents to a Cloud Storage bucket. Staging
// stays on local disk: the upload only lives for one request, so there is
// nothing to gain from a network round trip.
type GCSStore struct {
	*LocalStore
	bucket     *gstorage.BucketHandle
	bucketName string
}

func NewGCSStore(client *gstorage.Client, bucketName, uploadDir string) (*GCSStore, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("bucketName must be provided to create a GCS store")
	}
	return &GCSStore{
		LocalStore: NewLocalStore(uploadDir, ""),
		bucket:     client.Bucket(bucketName),
		bucketName: bucketName,
	}, nil
}

func (s *GCSStore) Commit(ctx context.Context, name string, data []byte) (string, error) {
	if err := gcp.SaveObjectAtomically(ctx, s.bucket, name, data); err != nil {
		return "", err
	}
	return fmt.Sprintf("gs://%s/%s", s.bucketName, name), nil
}
