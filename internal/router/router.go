package router

import (
	"net/http"
	"time"

	"github.com/csexamtest/examtest-backend/internal/config"
	"github.com/csexamtest/examtest-backend/internal/handler"
	"github.com/csexamtest/examtest-backend/internal/middleware"
	"github.com/csexamtest/examtest-backend/internal/response"
	"github.com/csexamtest/examtest-backend/internal/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	Course    *handler.CourseHandler
	Question  *handler.QuestionHandler
	Test      *handler.TestHandler
	Dashboard *handler.DashboardHandler
	Activity  *handler.ActivityHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// Metrics are registered on reg and served from gatherer at /metrics.
func SetupRouter(
	handlers *Handlers,
	sessions *session.Manager,
	cfg *config.Config,
	log zerolog.Logger,
	reg prometheus.Registerer,
	gatherer prometheus.Gatherer,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	// ClientIP feeds the auth rate limiter, so forwarded headers count only
	// when they come from a configured proxy.
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		log.Error().Err(err).Msg("Invalid trusted proxies, trusting none")
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	// The front end sends the session cookie, so origins are always echoed
	// back with credentials; an empty list accepts any origin (dev).
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.NewMetrics(reg).Middleware())
	router.Use(middleware.LoadSession(sessions, log))
	router.Use(middleware.AccessLog(log.With().Str("component", "http").Logger()))
	router.Use(middleware.Brotli())

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	authLimiter := middleware.NewRateLimiter(cfg.AuthRateLimitPerMinute)

	api := router.Group("/api")
	api.Use(middleware.NoStore())

	// ─── 1. Public ─────────────────────────────────────────────────────
	api.GET("/courses", handlers.Course.ListCourses)
	api.POST("/admin/login", authLimiter.Middleware(), handlers.Auth.AdminLogin)
	api.POST("/admin/logout", handlers.Auth.Logout)
	api.POST("/student/register", authLimiter.Middleware(), handlers.Auth.StudentRegister)
	api.POST("/student/login", authLimiter.Middleware(), handlers.Auth.StudentLogin)
	api.POST("/student/logout", handlers.Auth.Logout)

	// ─── 2. Admin Portal ───────────────────────────────────────────────
	adminAPI := api.Group("/admin")
	adminAPI.Use(middleware.RequireAdmin())
	{
		adminAPI.GET("/me", handlers.Auth.AdminMe)

		adminAPI.GET("/stats", handlers.Dashboard.Stats)
		adminAPI.GET("/recent-activity", handlers.Dashboard.RecentActivity)
		adminAPI.GET("/student-results", handlers.Dashboard.StudentResults)
		adminAPI.GET("/student-results/export", handlers.Dashboard.ExportStudentResults)

		adminAPI.POST("/courses", handlers.Course.CreateCourse)

		adminAPI.GET("/questions", handlers.Question.ListQuestions)
		adminAPI.POST("/questions", handlers.Question.CreateQuestion)
		adminAPI.PUT("/questions/:id", handlers.Question.UpdateQuestion)
		adminAPI.DELETE("/questions/:id", handlers.Question.DeleteQuestion)
	}

	// ─── 3. Student Portal ─────────────────────────────────────────────
	api.GET("/questions/:courseId", middleware.RequireStudent(), handlers.Question.ListStudentQuestions)

	studentAPI := api.Group("/student")
	studentAPI.Use(middleware.RequireStudent())
	{
		studentAPI.GET("/me", handlers.Auth.StudentMe)

		studentAPI.POST("/test/start", handlers.Test.StartTest)
		studentAPI.POST("/test/answer", handlers.Test.SubmitAnswer)
		studentAPI.POST("/test/complete", handlers.Test.CompleteTest)
		studentAPI.GET("/test/history", handlers.Test.History)
		studentAPI.GET("/test/results/:testAttemptId", handlers.Test.Result)
	}

	// ─── 4. WebSocket ──────────────────────────────────────────────────
	ws := router.Group("/ws")
	ws.Use(middleware.RequireAdmin())
	{
		ws.GET("/admin/activity", handlers.Activity.Stream)
	}

	return router
}
