package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/portfolio/internal/auth"
	"github.com/yoockh/portfolio/internal/models"
	"github.com/yoockh/portfolio/internal/services"
	"github.com/yoockh/portfolio/internal/utils"
)

type AuthHandler struct {
	accounts services.AccountService
	tokens   *auth.TokenIssuer
}

func NewAuthHandler(accounts services.AccountService, tokens *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{accounts: accounts, tokens: tokens}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Account   *models.Account `json:"account"`
}

// Login exchanges staff credentials for a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	const op = "AuthHandler.Login"

	var req LoginRequest
	if !bindJSON(c, op, &req) {
		return
	}
	acc, err := h.accounts.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	if !acc.IsStaff {
		writeError(c, utils.E(utils.CodeForbidden, op, "staff access required", nil))
		return
	}
	token, exp, err := h.tokens.Issue(acc)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "failed to issue token", err))
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token, ExpiresAt: exp, Account: acc})
}

// Me returns the account behind the bearer token.
func (h *AuthHandler) Me(c *gin.Context) {
	v, _ := c.Get("account_id")
	id, _ := v.(uint)
	if id == 0 {
		writeError(c, utils.E(utils.CodeUnauthorized, "AuthHandler.Me", "unauthorized", nil))
		return
	}
	acc, err := h.accounts.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, acc)
}
