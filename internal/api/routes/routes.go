package routes

import (
	"context"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/portfolio/internal/api/handlers"
	"github.com/yoockh/portfolio/internal/api/middleware"
	"github.com/yoockh/portfolio/internal/auth"
)

type Deps struct {
	Page       *handlers.PageHandler
	Auth       *handlers.AuthHandler
	Account    *handlers.AccountHandler
	Profile    *handlers.ProfileHandler
	Experience *handlers.ExperienceHandler
	Skill      *handlers.SkillHandler
	Tool       *handlers.ToolHandler
	Project    *handlers.ProjectHandler
	Technology *handlers.TechnologyHandler
	Contact    *handlers.ContactHandler

	Tokens      *auth.TokenIssuer
	CORSOrigins []string
	// InvalidatePage runs after every successful admin write.
	InvalidatePage func(ctx context.Context)

	Templates *template.Template
	Static    fs.FS
	// MediaRoot and MediaPath serve uploads from disk; empty disables it.
	MediaRoot string
	MediaPath string
}

const adminPrefix = "/admin/api"

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middleware.CORS(adminPrefix+"/", d.CORSOrigins))

	r.GET("/healthz", handlers.Health)

	// Public page
	if d.Templates != nil {
		r.SetHTMLTemplate(d.Templates)
	}
	r.GET("/", d.Page.Index)
	r.POST("/", d.Page.Submit)
	if d.Static != nil {
		r.StaticFS("/static", http.FS(d.Static))
	}
	if prefix := mediaPrefix(d.MediaPath); prefix != "" && d.MediaRoot != "" {
		r.Group(prefix, middleware.MediaHeaders()).Static("/", d.MediaRoot)
	}

	// Admin API
	api := r.Group(adminPrefix)
	api.POST("/login", d.Auth.Login)

	admin := api.Group("/")
	admin.Use(middleware.JWTAuth(d.Tokens), middleware.RequireAdmin())
	if d.InvalidatePage != nil {
		admin.Use(middleware.InvalidateOnWrite(d.InvalidatePage))
	}

	admin.GET("/me", d.Auth.Me)

	admin.GET("/accounts", d.Account.List)
	admin.POST("/accounts", d.Account.Create)
	admin.GET("/accounts/:id", d.Account.Get)
	admin.PUT("/accounts/:id", d.Account.Update)
	admin.DELETE("/accounts/:id", d.Account.Delete)
	admin.GET("/accounts/:id/profile", d.Account.GetProfile)
	admin.POST("/accounts/:id/profile", d.Account.CreateProfile)
	admin.PUT("/accounts/:id/profile", d.Account.UpdateProfile)

	admin.GET("/profiles", d.Profile.List)
	admin.GET("/profiles/:id", d.Profile.Get)
	admin.PUT("/profiles/:id", d.Profile.Update)
	admin.DELETE("/profiles/:id", d.Profile.Delete)

	admin.GET("/experiences", d.Experience.List)
	admin.POST("/experiences", d.Experience.Create)
	admin.PUT("/experiences/order", d.Experience.Reorder)
	admin.GET("/experiences/:id", d.Experience.Get)
	admin.PUT("/experiences/:id", d.Experience.Update)
	admin.DELETE("/experiences/:id", d.Experience.Delete)

	admin.GET("/skills", d.Skill.List)
	admin.POST("/skills", d.Skill.Create)
	admin.PUT("/skills/order", d.Skill.Reorder)
	admin.GET("/skills/:id", d.Skill.Get)
	admin.PUT("/skills/:id", d.Skill.Update)
	admin.DELETE("/skills/:id", d.Skill.Delete)

	admin.GET("/tools", d.Tool.List)
	admin.POST("/tools", d.Tool.Create)
	admin.PUT("/tools/order", d.Tool.Reorder)
	admin.GET("/tools/:id", d.Tool.Get)
	admin.PUT("/tools/:id", d.Tool.Update)
	admin.DELETE("/tools/:id", d.Tool.Delete)

	admin.GET("/projects", d.Project.List)
	admin.POST("/projects", d.Project.Create)
	admin.PUT("/projects/order", d.Project.Reorder)
	admin.GET("/projects/:id", d.Project.Get)
	admin.PUT("/projects/:id", d.Project.Update)
	admin.DELETE("/projects/:id", d.Project.Delete)
	admin.GET("/projects/:id/technologies", d.Project.ListTechnologies)
	admin.POST("/projects/:id/technologies", d.Project.AttachTechnology)
	admin.PUT("/projects/:id/technologies/:tech_id", d.Project.SetTechnologyOrder)
	admin.DELETE("/projects/:id/technologies/:tech_id", d.Project.DetachTechnology)

	admin.GET("/technologies", d.Technology.List)
	admin.POST("/technologies", d.Technology.Create)
	admin.GET("/technologies/:id", d.Technology.Get)
	admin.PUT("/technologies/:id", d.Technology.Update)
	admin.DELETE("/technologies/:id", d.Technology.Delete)

	admin.GET("/contacts", d.Contact.List)
	admin.GET("/contacts/:id", d.Contact.Get)
	admin.DELETE("/contacts/:id", d.Contact.Delete)
}

// mediaPrefix turns a MEDIA_URL such as "/media/" into a route prefix.
// Absolute URLs mean another host serves the files.
func mediaPrefix(u string) string {
	if strings.Contains(u, "://") {
		return ""
	}
	p := "/" + strings.Trim(u, "/")
	if p == "/" {
		return ""
	}
	return p
}
