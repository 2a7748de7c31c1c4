package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/portfolio/internal/services"
)

// ContactHandler exposes contact messages read-only, plus deletion.
type ContactHandler struct {
	svc services.ContactService
}

func NewContactHandler(svc services.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

func (h *ContactHandler) List(c *gin.Context) {
	f, ok := listFilter(c, "ContactHandler.List")
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

func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "ContactHandler.Get")
	if !ok {
		return
	}
	m, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "ContactHandler.Delete")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
