package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/portfolio/internal/services"
)

const fieldProjectImage = "image"

type ProjectHandler struct {
	svc services.ProjectService
}

func NewProjectHandler(svc services.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

func (h *ProjectHandler) List(c *gin.Context) {
	f, ok := listFilter(c, "ProjectHandler.List")
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

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "ProjectHandler.Get")
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

func (h *ProjectHandler) Create(c *gin.Context) {
	const op = "ProjectHandler.Create"
	var in services.ProjectInput
	if !bindInput(c, op, &in) {
		return
	}
	files, ok := formUploads(c, op, fieldProjectImage)
	if !ok {
		return
	}
	defer files.Close()

	p, err := h.svc.Create(c.Request.Context(), in, files.get(fieldProjectImage))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	const op = "ProjectHandler.Update"
	id, ok := parseID(c, "id", op)
	if !ok {
		return
	}
	var in services.ProjectInput
	if !bindInput(c, op, &in) {
		return
	}
	files, ok := formUploads(c, op, fieldProjectImage)
	if !ok {
		return
	}
	defer files.Close()

	p, err := h.svc.Update(c.Request.Context(), id, in, files.get(fieldProjectImage))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "ProjectHandler.Delete")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) Reorder(c *gin.Context) {
	var items []services.OrderUpdate
	if !bindJSON(c, "ProjectHandler.Reorder", &items) {
		return
	}
	if err := h.svc.Reorder(c.Request.Context(), items); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) ListTechnologies(c *gin.Context) {
	id, ok := parseID(c, "id", "ProjectHandler.ListTechnologies")
	if !ok {
		return
	}
	rows, err := h.svc.ListTechnologies(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type AttachTechnologyRequest struct {
	TechnologyID uint `json:"technology_id"`
	Order        int  `json:"order"`
}

func (h *ProjectHandler) AttachTechnology(c *gin.Context) {
	const op = "ProjectHandler.AttachTechnology"
	id, ok := parseID(c, "id", op)
	if !ok {
		return
	}
	var req AttachTechnologyRequest
	if !bindJSON(c, op, &req) {
		return
	}
	pt, err := h.svc.AttachTechnology(c.Request.Context(), id, req.TechnologyID, req.Order)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pt)
}

type TechnologyOrderRequest struct {
	Order int `json:"order"`
}

func (h *ProjectHandler) SetTechnologyOrder(c *gin.Context) {
	const op = "ProjectHandler.SetTechnologyOrder"
	id, ok := parseID(c, "id", op)
	if !ok {
		return
	}
	techID, ok := parseID(c, "tech_id", op)
	if !ok {
		return
	}
	var req TechnologyOrderRequest
	if !bindJSON(c, op, &req) {
		return
	}
	pt, err := h.svc.SetTechnologyOrder(c.Request.Context(), id, techID, req.Order)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pt)
}

func (h *ProjectHandler) DetachTechnology(c *gin.Context) {
	const op = "ProjectHandler.DetachTechnology"
	id, ok := parseID(c, "id", op)
	if !ok {
		return
	}
	techID, ok := parseID(c, "tech_id", op)
	if !ok {
		return
	}
	if err := h.svc.DetachTechnology(c.Request.Context(), id, techID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
