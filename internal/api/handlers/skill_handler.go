package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/portfolio/internal/models"
	"github.com/yoockh/portfolio/internal/services"
)

type SkillHandler struct {
	svc services.SkillService
}

func NewSkillHandler(svc services.SkillService) *SkillHandler {
	return &SkillHandler{svc: svc}
}

func (h *SkillHandler) List(c *gin.Context) {
	f, ok := listFilter(c, "SkillHandler.List")
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

func (h *SkillHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "SkillHandler.Get")
	if !ok {
		return
	}
	sk, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sk)
}

func (h *SkillHandler) Create(c *gin.Context) {
	var sk models.Skill
	if !bindJSON(c, "SkillHandler.Create", &sk) {
		return
	}
	out, err := h.svc.Create(c.Request.Context(), &sk)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *SkillHandler) Update(c *gin.Context) {
	const op = "SkillHandler.Update"
	id, ok := parseID(c, "id", op)
	if !ok {
		return
	}
	var sk models.Skill
	if !bindJSON(c, op, &sk) {
		return
	}
	out, err := h.svc.Update(c.Request.Context(), id, &sk)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "SkillHandler.Delete")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SkillHandler) Reorder(c *gin.Context) {
	var items []services.OrderUpdate
	if !bindJSON(c, "SkillHandler.Reorder", &items) {
		return
	}
	if err := h.svc.Reorder(c.Request.Context(), items); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
