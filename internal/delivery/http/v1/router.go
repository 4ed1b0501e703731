package v1

import (
	"context"
	"net/http"
	"time"

	"hirehand-backend/config"
	"hirehand-backend/internal/delivery/http/middleware"
	"hirehand-backend/internal/delivery/http/response"
	"hirehand-backend/internal/domain"
	"hirehand-backend/pkg/auth"
	"hirehand-backend/pkg/database"
	"hirehand-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	JobUC       domain.JobUsecase
	CandidateUC domain.CandidateUsecase
	ContactUC   domain.ContactUsecase
	Tokens      *auth.TokenManager
	DB          *database.DB
	Redis       *goredis.Client
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// CORS must run before anything that can abort the request.
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimit(deps.Redis, middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	// Health reports component status: the store is required, the rate
	// limit backend is optional and only flagged as degraded.
	v1.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		components := gin.H{"database": "ok"}
		healthy := true
		if deps.DB != nil {
			if err := deps.DB.Ping(ctx); err != nil {
				components["database"] = "unavailable"
				healthy = false
			}
		}
		if deps.Redis != nil {
			components["redis"] = "ok"
			if err := redis.HealthCheck(ctx, deps.Redis); err != nil {
				components["redis"] = "unavailable"
			}
		}

		if !healthy {
			response.Error(c, http.StatusServiceUnavailable, "System degraded", components)
			return
		}
		response.Success(c, http.StatusOK, "System operational", components)
	})

	public := v1.Group("")

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))

	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(deps.Tokens))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))

	loginLimiter := middleware.RateLimit(deps.Redis, middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window))
	contactLimiter := middleware.RateLimit(deps.Redis, middleware.ContactRateLimitConfig(deps.Config.RateLimitContactThreshold, window))

	NewContactHandler(public, admin, deps.ContactUC, contactLimiter)
	NewAuthHandler(public, protected, admin, deps.AuthUC, deps.Tokens, loginLimiter)
	NewJobHandler(public, admin, deps.JobUC)
	NewCandidateHandler(public, admin, deps.CandidateUC)

	return r
}
