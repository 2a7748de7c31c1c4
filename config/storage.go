package config

import (
	"context"
	"fmt"

	"github.com/yoockh/portfolio/internal/storage"
)

// InitStorage builds the object store selected by STORAGE_BACKEND.
func InitStorage(ctx context.Context, s Settings) (storage.Storage, error) {
	switch s.StorageBackend {
	case "local":
		st, err := storage.NewLocalStorage(s.MediaRoot, s.MediaURL)
		if err != nil {
			return nil, err
		}
		return st, nil
	case "gcs":
		st, err := storage.NewGCSStorage(ctx, s.GCSBucket, s.GCSCredentialsFile)
		if err != nil {
			return nil, err
		}
		st.PublicRead = s.GCSPublicRead
		return st, nil
	case "s3":
		st, err := storage.NewS3Storage(ctx, storage.S3Options{
			Bucket:    s.S3Bucket,
			Region:    s.S3Region,
			Endpoint:  s.S3Endpoint,
			AccessKey: s.S3AccessKey,
			SecretKey: s.S3SecretKey,
			PublicURL: s.S3PublicURL,
		})
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", s.StorageBackend)
	}
}
