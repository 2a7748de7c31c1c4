package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (storedPath string, err error)
}

// Deleter removes a stored object. Deleting an object that does not exist is not an error.
type Deleter interface {
	Delete(ctx context.Context, storedPath string) error
}

// URLResolver maps a stored path to the URL a browser can fetch it from.
type URLResolver interface {
	URL(storedPath string) string
}

type Storage interface {
	Uploader
	Deleter
	URLResolver
}

// ObjectName builds a collision-free key under prefix from an uploaded file
// name: "project_images/my-app-1a2b3c4d.png".
func ObjectName(prefix, fileName string) string {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	ext := strings.ToLower(path.Ext(base))
	stem := slug.Make(strings.TrimSuffix(base, path.Ext(base)))
	if stem == "" {
		stem = "file"
	}
	name := stem + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8] + ext
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

func joinURL(base, key string) string {
	if key == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}
