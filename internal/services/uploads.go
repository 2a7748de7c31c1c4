package services

import (
	"context"
	"io"

	"github.com/yoockh/portfolio/internal/storage"
	"github.com/yoockh/portfolio/internal/utils"
)

// Upload is a file received from the admin API, not yet stored.
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// MaxUploadSize caps any single uploaded file.
const MaxUploadSize = 10 << 20

// pendingUpload pairs an Upload with the record field it fills and the
// storage prefix it goes under.
type pendingUpload struct {
	field  *string
	prefix string
	up     *Upload
}

func checkUploadSize(op string, ups []pendingUpload) error {
	for _, p := range ups {
		if p.up.Size > MaxUploadSize {
			return utils.E(utils.CodeInvalidArgument, op, "file too large (max 10MB): "+p.up.FileName, nil)
		}
	}
	return nil
}

// storeUploads writes every pending upload and points its field at the
// stored key. On failure, files already written are removed again.
func storeUploads(ctx context.Context, op string, up storage.Uploader, guard *FileGuard, ups []pendingUpload) ([]string, error) {
	if len(ups) == 0 {
		return nil, nil
	}
	if up == nil {
		return nil, utils.E(utils.CodeInternal, op, "uploader is not configured", nil)
	}
	stored := make([]string, 0, len(ups))
	for _, p := range ups {
		key := storage.ObjectName(p.prefix, p.up.FileName)
		ct := p.up.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		storedPath, err := up.Upload(ctx, key, ct, p.up.Body)
		if err != nil {
			guard.Remove(ctx, op, stored...)
			return nil, utils.E(utils.CodeUnavailable, op, "failed to upload file", err)
		}
		*p.field = storedPath
		stored = append(stored, storedPath)
	}
	return stored, nil
}
