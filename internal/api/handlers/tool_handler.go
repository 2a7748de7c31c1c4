package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/portfolio/internal/services"
)

// fieldIcon is the multipart field carrying a tool icon.
const fieldIcon = "image"

type ToolHandler struct {
	svc services.ToolService
}

func NewToolHandler(svc services.ToolService) *ToolHandler {
	return &ToolHandler{svc: svc}
}

func (h *ToolHandler) List(c *gin.Context) {
	f, ok := listFilter(c, "ToolHandler.List")
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

func (h *ToolHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "ToolHandler.Get")
	if !ok {
		return
	}
	t, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// Create expects multipart form fields plus the icon under "image".
func (h *ToolHandler) Create(c *gin.Context) {
	const op = "ToolHandler.Create"
	var in services.ToolInput
	if !bindInput(c, op, &in) {
		return
	}
	files, ok := formUploads(c, op, fieldIcon)
	if !ok {
		return
	}
	defer files.Close()

	t, err := h.svc.Create(c.Request.Context(), in, files.get(fieldIcon))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *ToolHandler) Update(c *gin.Context) {
	const op = "ToolHandler.Update"
	id, ok := parseID(c, "id", op)
	if !ok {
		return
	}
	var in services.ToolInput
	if !bindInput(c, op, &in) {
		return
	}
	files, ok := formUploads(c, op, fieldIcon)
	if !ok {
		return
	}
	defer files.Close()

	t, err := h.svc.Update(c.Request.Context(), id, in, files.get(fieldIcon))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *ToolHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "ToolHandler.Delete")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ToolHandler) Reorder(c *gin.Context) {
	var items []services.OrderUpdate
	if !bindJSON(c, "ToolHandler.Reorder", &items) {
		return
	}
	if err := h.svc.Reorder(c.Request.Context(), items); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
