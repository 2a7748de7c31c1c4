package handlers

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/portfolio/internal/services"
	"github.com/yoockh/portfolio/internal/utils"
)

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

func parseID(c *gin.Context, param, op string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid "+param, err))
		return 0, false
	}
	return uint(id), true
}

// listFilter reads ?profile_id=&q=&limit=&offset= from the query string.
func listFilter(c *gin.Context, op string) (services.ListFilter, bool) {
	var f services.ListFilter
	f.Query = strings.TrimSpace(c.Query("q"))
	for name, dst := range map[string]*int{"limit": &f.Limit, "offset": &f.Offset} {
		if v := c.Query(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid "+name, err))
				return f, false
			}
			*dst = n
		}
	}
	if v := c.Query("profile_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid profile_id", err))
			return f, false
		}
		f.ProfileID = uint(id)
	}
	return f, true
}

func bindJSON(c *gin.Context, op string, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return false
	}
	return true
}

// bindInput binds JSON or form fields depending on the request content type.
func bindInput(c *gin.Context, op string, dst any) bool {
	if err := c.ShouldBind(dst); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid request body", err))
		return false
	}
	return true
}

// uploads holds the optional multipart files of one request. Close releases
// them once the service call returns.
type uploads struct {
	files  map[string]*services.Upload
	closer []io.Closer
}

func (u *uploads) get(field string) *services.Upload { return u.files[field] }

func (u *uploads) Close() {
	for _, c := range u.closer {
		_ = c.Close()
	}
}

func formUploads(c *gin.Context, op string, fields ...string) (*uploads, bool) {
	out := &uploads{files: map[string]*services.Upload{}}
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return out, true
	}
	for _, field := range fields {
		fh, err := c.FormFile(field)
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if err != nil {
			out.Close()
			writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid multipart field '"+field+"'", err))
			return nil, false
		}
		up, closer, err := openUpload(fh)
		if err != nil {
			out.Close()
			writeError(c, utils.E(utils.CodeInternal, op, "failed to open upload", err))
			return nil, false
		}
		out.files[field] = up
		out.closer = append(out.closer, closer)
	}
	return out, true
}

// openUpload sniffs the content type from the first 512 bytes and hands back
// a reader that still yields the whole file.
func openUpload(fh *multipart.FileHeader) (*services.Upload, io.Closer, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		_ = file.Close()
		return nil, nil, err
	}
	head = head[:n]

	ct := fh.Header.Get("Content-Type")
	if ct == "" || ct == "application/octet-stream" {
		ct = http.DetectContentType(head)
	}
	if strings.EqualFold(fileExt(fh.Filename), ".svg") {
		ct = "image/svg+xml"
	}
	return &services.Upload{
		FileName:    fh.Filename,
		ContentType: ct,
		Size:        fh.Size,
		Body:        io.MultiReader(bytes.NewReader(head), file),
	}, file, nil
}

func fileExt(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}
