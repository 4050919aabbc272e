package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/vasilika/portfolio-tracker-backend/config"
	httpapi "github.com/vasilika/portfolio-tracker-backend/internal/api/http"
	"github.com/vasilika/portfolio-tracker-backend/internal/api/http/middleware"
	authhttp "github.com/vasilika/portfolio-tracker-backend/internal/auth/http"
	authmw "github.com/vasilika/portfolio-tracker-backend/internal/auth/middleware"
	authservice "github.com/vasilika/portfolio-tracker-backend/internal/auth/service"
	projectscache "github.com/vasilika/portfolio-tracker-backend/internal/projects/cache"
	projectshttp "github.com/vasilika/portfolio-tracker-backend/internal/projects/http"
	"github.com/vasilika/portfolio-tracker-backend/internal/projects/repository"
	"github.com/vasilika/portfolio-tracker-backend/internal/projects/service"
)

type RouterDeps struct {
	Config *config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client // may be nil
	Log    zerolog.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestIDMiddleware(dep.Log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.Config.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Location", "X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler("portfolio-tracker", dep.Config.App.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	projectRepo := repository.NewProjectRepository(dep.DB)
	taskRepo := repository.NewTaskRepository(dep.DB)
	updateRepo := repository.NewUpdateRepository(dep.DB)

	var viewCache service.ViewCache
	if dep.Redis != nil {
		viewCache = projectscache.NewDetailsCache(dep.Redis, dep.Config.Redis.CacheTTL)
	}

	queryService := service.NewQueryService(projectRepo, taskRepo, updateRepo, viewCache, dep.Log)
	adminService := service.NewAdminService(projectRepo, taskRepo, updateRepo, viewCache, dep.Log)

	projectsHandler := projectshttp.NewHandler(queryService, adminService, dep.Log)
	projectsHandler.RegisterPublic(r.Group("/api/projects"))

	authService := authservice.NewAuthService(dep.Config.Auth)
	authhttp.NewHandler(authService).Register(r.Group("/auth"))

	admin := r.Group("/admin")
	admin.Use(authmw.AdminAuthMiddleware([]byte(dep.Config.Auth.JWTSecret), dep.Log))
	projectsHandler.RegisterAdmin(admin)

	return r
}
