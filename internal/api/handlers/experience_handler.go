package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/portfolio/internal/models"
	"github.com/yoockh/portfolio/internal/services"
)

type ExperienceHandler struct {
	svc services.ExperienceService
}

func NewExperienceHandler(svc services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{svc: svc}
}

func (h *ExperienceHandler) List(c *gin.Context) {
	f, ok := listFilter(c, "ExperienceHandler.List")
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

func (h *ExperienceHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "ExperienceHandler.Get")
	if !ok {
		return
	}
	e, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	var e models.Experience
	if !bindJSON(c, "ExperienceHandler.Create", &e) {
		return
	}
	out, err := h.svc.Create(c.Request.Context(), &e)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	const op = "ExperienceHandler.Update"
	id, ok := parseID(c, "id", op)
	if !ok {
		return
	}
	var e models.Experience
	if !bindJSON(c, op, &e) {
		return
	}
	out, err := h.svc.Update(c.Request.Context(), id, &e)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "ExperienceHandler.Delete")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ExperienceHandler) Reorder(c *gin.Context) {
	var items []services.OrderUpdate
	if !bindJSON(c, "ExperienceHandler.Reorder", &items) {
		return
	}
	if err := h.svc.Reorder(c.Request.Context(), items); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
