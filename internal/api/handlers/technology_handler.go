package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/portfolio/internal/services"
)

type TechnologyHandler struct {
	svc services.TechnologyService
}

func NewTechnologyHandler(svc services.TechnologyService) *TechnologyHandler {
	return &TechnologyHandler{svc: svc}
}

type TechnologyRequest struct {
	Name string `json:"name"`
}

// List doubles as autocomplete: ?q= matches on name.
func (h *TechnologyHandler) List(c *gin.Context) {
	f, ok := listFilter(c, "TechnologyHandler.List")
	if !ok {
		return
	}
	rows, err := h.svc.Search(c.Request.Context(), f.Query, f.Limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *TechnologyHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "TechnologyHandler.Get")
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

func (h *TechnologyHandler) Create(c *gin.Context) {
	var req TechnologyRequest
	if !bindJSON(c, "TechnologyHandler.Create", &req) {
		return
	}
	t, err := h.svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *TechnologyHandler) Update(c *gin.Context) {
	const op = "TechnologyHandler.Update"
	id, ok := parseID(c, "id", op)
	if !ok {
		return
	}
	var req TechnologyRequest
	if !bindJSON(c, op, &req) {
		return
	}
	t, err := h.svc.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TechnologyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "TechnologyHandler.Delete")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
