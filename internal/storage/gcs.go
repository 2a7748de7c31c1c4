package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type GCSStorage struct {
	client *gcs.Client
	bucket string
	// PublicRead grants allUsers read on every uploaded object. Leave it off
	// for buckets using uniform bucket-level access.
	PublicRead bool
}

func NewGCSStorage(ctx context.Context, bucket, credentialsFile string) (*GCSStorage, error) {
	if bucket == "" {
		return nil, errors.New("GCS bucket is empty")
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	c, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &GCSStorage{client: c, bucket: bucket}, nil
}

func (u *GCSStorage) Close() error { return u.client.Close() }

func (u *GCSStorage) Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (string, error) {
	obj := u.client.Bucket(u.bucket).Object(objectName)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	if u.PublicRead {
		if err := obj.ACL().Set(ctx, gcs.AllUsers, gcs.RoleReader); err != nil {
			return "", err
		}
	}
	return objectName, nil
}

func (u *GCSStorage) Delete(ctx context.Context, storedPath string) error {
	err := u.client.Bucket(u.bucket).Object(storedPath).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil
	}
	return err
}

func (u *GCSStorage) URL(storedPath string) string {
	return joinURL(fmt.Sprintf("https://storage.googleapis.com/%s", u.bucket), storedPath)
}
