package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/portfolio/internal/services"
)

// Profile file fields accepted in multipart requests.
const (
	fieldImage1 = "image1"
	fieldImage2 = "image2"
	fieldCV     = "cv"
)

type ProfileHandler struct {
	svc services.ProfileService
}

func NewProfileHandler(svc services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func bindProfile(c *gin.Context, op string) (services.ProfileInput, *uploads, bool) {
	var in services.ProfileInput
	if !bindInput(c, op, &in) {
		return in, nil, false
	}
	files, ok := formUploads(c, op, fieldImage1, fieldImage2, fieldCV)
	if !ok {
		return in, nil, false
	}
	return in, files, true
}

func profileFiles(u *uploads) services.ProfileFiles {
	return services.ProfileFiles{
		Image1: u.get(fieldImage1),
		Image2: u.get(fieldImage2),
		CV:     u.get(fieldCV),
	}
}

func (h *ProfileHandler) List(c *gin.Context) {
	f, ok := listFilter(c, "ProfileHandler.List")
	if !ok {
		return
	}
	rows, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ProfileHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "ProfileHandler.Get")
	if !ok {
		return
	}
	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Update accepts JSON, or multipart with optional image1, image2 and cv files.
// Omitted files keep their current value.
func (h *ProfileHandler) Update(c *gin.Context) {
	const op = "ProfileHandler.Update"
	id, ok := parseID(c, "id", op)
	if !ok {
		return
	}
	in, files, ok := bindProfile(c, op)
	if !ok {
		return
	}
	defer files.Close()

	p, err := h.svc.Update(c.Request.Context(), id, in, profileFiles(files))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "ProfileHandler.Delete")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
