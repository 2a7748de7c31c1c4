package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/portfolio/internal/services"
)

type AccountHandler struct {
	accounts services.AccountService
	profiles services.ProfileService
}

func NewAccountHandler(accounts services.AccountService, profiles services.ProfileService) *AccountHandler {
	return &AccountHandler{accounts: accounts, profiles: profiles}
}

func (h *AccountHandler) List(c *gin.Context) {
	f, ok := listFilter(c, "AccountHandler.List")
	if !ok {
		return
	}
	rows, err := h.accounts.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AccountHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "AccountHandler.Get")
	if !ok {
		return
	}
	acc, err := h.accounts.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, acc)
}

func (h *AccountHandler) Create(c *gin.Context) {
	var in services.AccountInput
	if !bindJSON(c, "AccountHandler.Create", &in) {
		return
	}
	acc, err := h.accounts.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, acc)
}

func (h *AccountHandler) Update(c *gin.Context) {
	const op = "AccountHandler.Update"
	id, ok := parseID(c, "id", op)
	if !ok {
		return
	}
	var in services.AccountInput
	if !bindJSON(c, op, &in) {
		return
	}
	acc, err := h.accounts.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, acc)
}

// Delete removes the account, its profile and every file they held.
func (h *AccountHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "AccountHandler.Delete")
	if !ok {
		return
	}
	if err := h.accounts.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AccountHandler) GetProfile(c *gin.Context) {
	id, ok := parseID(c, "id", "AccountHandler.GetProfile")
	if !ok {
		return
	}
	p, err := h.profiles.GetByAccount(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *AccountHandler) CreateProfile(c *gin.Context) {
	const op = "AccountHandler.CreateProfile"
	id, ok := parseID(c, "id", op)
	if !ok {
		return
	}
	in, files, ok := bindProfile(c, op)
	if !ok {
		return
	}
	defer files.Close()

	p, err := h.profiles.Create(c.Request.Context(), id, in, profileFiles(files))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	const op = "AccountHandler.UpdateProfile"
	id, ok := parseID(c, "id", op)
	if !ok {
		return
	}
	cur, err := h.profiles.GetByAccount(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	in, files, ok := bindProfile(c, op)
	if !ok {
		return
	}
	defer files.Close()

	p, err := h.profiles.Update(c.Request.Context(), cur.ID, in, profileFiles(files))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
