package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yoockh/portfolio/config"
	"github.com/yoockh/portfolio/internal/api/handlers"
	"github.com/yoockh/portfolio/internal/api/middleware"
	"github.com/yoockh/portfolio/internal/api/routes"
	"github.com/yoockh/portfolio/internal/auth"
	"github.com/yoockh/portfolio/internal/cache"
	pgrepo "github.com/yoockh/portfolio/internal/repositories/postgres"
	"github.com/yoockh/portfolio/internal/render"
	"github.com/yoockh/portfolio/internal/services"
	"github.com/yoockh/portfolio/internal/storage"
	"github.com/yoockh/portfolio/internal/web"
	"gorm.io/gorm"
)

// openDB connects to the configured database and brings its schema up to date.
func openDB(ctx context.Context, s config.Settings, l *logrus.Logger) (*gorm.DB, func(), error) {
	switch s.DatabaseDriver {
	case "sqlite":
		db, err := config.InitSQLite(s)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite init: %w", err)
		}
		if err := config.MigrateSQLite(db); err != nil {
			return nil, nil, fmt.Errorf("sqlite migrate: %w", err)
		}
		l.WithField("path", s.SQLitePath).Info("SQLite ready")
		return db, closeDB(db), nil
	default:
		db, sqlDB, err := config.InitPostgres(s)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres init: %w", err)
		}
		if err := config.MigratePostgres(ctx, sqlDB); err != nil {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("postgres migrate: %w", err)
		}
		l.Info("PostgreSQL connected")
		return db, func() { _ = sqlDB.Close() }, nil
	}
}

func closeDB(db *gorm.DB) func() {
	return func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

// pageCache prefers Redis and falls back to an in-process cache.
func pageCache(s config.Settings, l *logrus.Logger) cache.Cache {
	if s.RedisAddr != "" {
		rdb, err := config.InitRedis(s)
		if err == nil {
			l.Info("Redis connected")
			return cache.NewRedisCache(rdb, "portfolio:", s.PageCacheTTL)
		}
		l.WithError(err).Warn("Redis unavailable, using in-process page cache")
	}
	return cache.NewMemoryCache(s.PageCacheTTL, 2*s.PageCacheTTL)
}

type server struct {
	engine  *gin.Engine
	db      *gorm.DB
	cleanup []func()
}

func (s *server) Close() {
	for i := len(s.cleanup) - 1; i >= 0; i-- {
		s.cleanup[i]()
	}
}

// buildServer wires repositories, services and handlers into a gin engine.
func buildServer(ctx context.Context, s config.Settings, l *logrus.Logger) (*server, error) {
	srv := &server{}
	fail := func(err error) (*server, error) {
		srv.Close()
		return nil, err
	}

	db, closeDB, err := openDB(ctx, s, l)
	if err != nil {
		return fail(err)
	}
	srv.cleanup = append(srv.cleanup, closeDB)
	srv.db = db

	store, err := config.InitStorage(ctx, s)
	if err != nil {
		return fail(fmt.Errorf("storage init: %w", err))
	}
	if c, ok := store.(io.Closer); ok {
		srv.cleanup = append(srv.cleanup, func() { _ = c.Close() })
	}
	l.WithField("backend", s.StorageBackend).Info("storage ready")

	pc := pageCache(s, l)
	srv.cleanup = append(srv.cleanup, func() { _ = pc.Close() })

	// Repositories
	tx := pgrepo.NewTransactor(db)
	accountRepo := pgrepo.NewAccountRepo(db)
	profileRepo := pgrepo.NewProfileRepo(db)
	experienceRepo := pgrepo.NewExperienceRepo(db)
	skillRepo := pgrepo.NewSkillRepo(db)
	toolRepo := pgrepo.NewToolRepo(db)
	projectRepo := pgrepo.NewProjectRepo(db)
	technologyRepo := pgrepo.NewTechnologyRepo(db)
	contactRepo := pgrepo.NewContactRepo(db)

	// Services
	guard := services.NewFileGuard(store, l)
	accountSvc := services.NewAccountService(accountRepo, profileRepo, tx, guard)
	profileSvc := services.NewProfileService(profileRepo, accountRepo, tx, store, guard)
	portfolioSvc := services.NewPortfolioService(profileRepo, contactRepo, pc, services.PortfolioOptions{
		ProfileID: s.ProfileID,
		CacheTTL:  s.PageCacheTTL,
	}, l)

	tpl, err := web.Templates(store, render.NewMarkdown())
	if err != nil {
		return fail(fmt.Errorf("templates: %w", err))
	}

	if s.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(l))

	tokens := auth.NewTokenIssuer(s.JWTSecret, s.JWTIssuer, s.JWTTTL)
	page := handlers.NewPageHandler(portfolioSvc)
	page.SecureCookies = s.IsProduction()

	deps := routes.Deps{
		Page:       page,
		Auth:       handlers.NewAuthHandler(accountSvc, tokens),
		Account:    handlers.NewAccountHandler(accountSvc, profileSvc),
		Profile:    handlers.NewProfileHandler(profileSvc),
		Experience: handlers.NewExperienceHandler(services.NewExperienceService(experienceRepo, profileRepo)),
		Skill:      handlers.NewSkillHandler(services.NewSkillService(skillRepo, profileRepo)),
		Tool:       handlers.NewToolHandler(services.NewToolService(toolRepo, profileRepo, tx, store, guard)),
		Project:    handlers.NewProjectHandler(services.NewProjectService(projectRepo, technologyRepo, profileRepo, tx, store, guard)),
		Technology: handlers.NewTechnologyHandler(services.NewTechnologyService(technologyRepo)),
		Contact:    handlers.NewContactHandler(services.NewContactService(contactRepo)),

		Tokens:         tokens,
		CORSOrigins:    s.CORSOrigins,
		InvalidatePage: portfolioSvc.InvalidatePage,
		Templates:      tpl,
		Static:         web.Static(),
	}
	if _, ok := store.(*storage.LocalStorage); ok {
		deps.MediaRoot = s.MediaRoot
		deps.MediaPath = s.MediaURL
	}
	if s.JWTSecret == "" {
		l.Warn("ADMIN_JWT_SECRET is not set; the admin API will reject every request")
	}
	routes.RegisterRoutes(r, deps)

	srv.engine = r
	return srv, nil
}
