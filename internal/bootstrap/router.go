package bootstrap

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/folio-site/folio-backend/config"
	adminhttp "github.com/folio-site/folio-backend/internal/admin/http"
	httpapi "github.com/folio-site/folio-backend/internal/api/http"
	"github.com/folio-site/folio-backend/internal/api/http/middleware"
	appshttp "github.com/folio-site/folio-backend/internal/applications/http"
	appsrepo "github.com/folio-site/folio-backend/internal/applications/repository"
	appsservice "github.com/folio-site/folio-backend/internal/applications/service"
	"github.com/folio-site/folio-backend/internal/auth"
	authhttp "github.com/folio-site/folio-backend/internal/auth/http"
	authmw "github.com/folio-site/folio-backend/internal/auth/middleware"
	authrepo "github.com/folio-site/folio-backend/internal/auth/repository"
	authservice "github.com/folio-site/folio-backend/internal/auth/service"
	projectshttp "github.com/folio-site/folio-backend/internal/projects/http"
	projectsrepo "github.com/folio-site/folio-backend/internal/projects/repository"
	projectsservice "github.com/folio-site/folio-backend/internal/projects/service"
	"github.com/folio-site/folio-backend/internal/storage/cache"
	taxonomyhttp "github.com/folio-site/folio-backend/internal/taxonomy/http"
)

const ServiceName = "folio-api"

type RouterDeps struct {
	Config *config.Config
	DB     *sql.DB
	Cache  cache.Cache
	// Redis is nil when the in-process cache is used.
	Redis *redis.Client
	// Provider overrides the Google provider built from Config.Google.
	Provider authservice.Provider
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	cfg := dep.Config

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.FrontendOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	var cachePing httpapi.CachePinger
	if dep.Redis != nil {
		rdb := dep.Redis
		cachePing = httpapi.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	}
	httpapi.NewHealthHandler(ServiceName, cfg.App.Version, dep.DB, cachePing).RegisterRoutes(r)

	projectRepo := projectsrepo.NewProjectRepository(dep.DB)
	achievementRepo := projectsrepo.NewAchievementRepository(dep.DB)
	applicationRepo := appsrepo.NewApplicationRepository(dep.DB)
	userRepo := authrepo.NewUserRepository(dep.DB)
	sessionRepo := authrepo.NewSessionRepository(dep.DB)

	timeline := projectsservice.NewCachedProjection(
		projectsservice.NewProjectionService(projectRepo, achievementRepo),
		dep.Cache,
		cfg.Redis.CacheTTL,
	)
	pages := appsservice.NewLookupService(applicationRepo, timeline, cfg.App.Redirects)

	sessions := authservice.NewSessionService(sessionRepo)
	login := authservice.NewLoginService(userRepo, sessions, cfg.Google.SelfID)
	provider := dep.Provider
	if provider == nil {
		provider = authservice.NewGoogleProvider(&cfg.Google)
	}
	cookies := auth.Cookies{Secure: cfg.Session.CookieSecure}

	r.Use(authmw.WithCurrentUser(sessions, cookies))

	authHandler := authhttp.New(provider, login, sessions, cookies, cfg.App.AdminLandingPage)
	authHandler.RegisterLogin(r, middleware.RateLimit(6*time.Second, 10))

	api := r.Group("/api/v1")
	authHandler.RegisterAPI(api)
	taxonomyhttp.Register(api)
	projectshttp.New(timeline).Register(api.Group("/projects"))
	appshttp.New(pages).Register(api.Group("/apps"))

	admin := api.Group("/admin")
	admin.Use(authmw.RequireAdmin())
	adminhttp.New(projectRepo, achievementRepo, applicationRepo, timeline).Register(admin)

	return r
}
