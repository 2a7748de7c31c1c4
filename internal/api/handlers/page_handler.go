package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/portfolio/internal/services"
	"github.com/yoockh/portfolio/internal/utils"
	"github.com/yoockh/portfolio/internal/web"
)

const (
	flashCookie = "portfolio_flash"
	flashMaxAge = 60 // seconds
)

// msgSubmitFailed replaces internal error details on the public page.
const msgSubmitFailed = "Could not submit form, please try again later."

type PageHandler struct {
	svc services.PortfolioService
	// SecureCookies marks the flash cookie Secure; on in production.
	SecureCookies bool
}

func NewPageHandler(svc services.PortfolioService) *PageHandler {
	return &PageHandler{svc: svc}
}

// Index renders the portfolio page, consuming any pending flash message.
func (h *PageHandler) Index(c *gin.Context) {
	flash := h.takeFlash(c)

	data, err := h.svc.Page(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	c.HTML(http.StatusOK, "index.html", web.PageView{Profile: data.Profile, Flash: flash})
}

// Submit stores a contact message and always redirects back to the page.
func (h *PageHandler) Submit(c *gin.Context) {
	var in services.ContactInput
	if err := c.ShouldBind(&in); err != nil {
		h.setFlash(c, web.Flash{Level: "error", Message: "invalid form submission"})
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	in.ClientIP = c.ClientIP()
	in.UserAgent = c.Request.UserAgent()

	_, err := h.svc.SubmitContact(c.Request.Context(), in)
	switch {
	case err == nil:
		h.setFlash(c, web.Flash{Level: "success", Message: services.MsgContactSent})
	case utils.IsCode(err, utils.CodeNotFound), utils.IsCode(err, utils.CodeInvalidArgument):
		h.setFlash(c, web.Flash{Level: "error", Message: utils.PublicMessage(err)})
	default:
		_ = c.Error(err)
		h.setFlash(c, web.Flash{Level: "error", Message: msgSubmitFailed})
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PageHandler) setFlash(c *gin.Context, f web.Flash) {
	b, err := json.Marshal(f)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, base64.RawURLEncoding.EncodeToString(b), flashMaxAge, "/", "", h.SecureCookies, true)
}

func (h *PageHandler) takeFlash(c *gin.Context) *web.Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, "", -1, "/", "", h.SecureCookies, true)

	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var f web.Flash
	if err := json.Unmarshal(b, &f); err != nil || f.Message == "" {
		return nil
	}
	if f.Level != "success" {
		f.Level = "error"
	}
	return &f
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
