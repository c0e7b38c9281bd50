package handlers

import (
	"net/http"
	"time"

	_ "daily_diet/docs" // registers the swagger spec
	"daily_diet/internal/logger"
	"daily_diet/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultCookieName = "session"

// Config controls the session cookie and CORS.
type Config struct {
	CookieName     string
	CookieSecure   bool
	SessionTTL     time.Duration
	AllowedOrigins []string
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	cfg      Config
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, cfg Config) *Handler {
	if cfg.CookieName == "" {
		cfg.CookieName = defaultCookieName
	}
	return &Handler{services: services, log: log, cfg: cfg}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)
	if len(h.cfg.AllowedOrigins) > 0 {
		router.Use(cors.New(h.corsConfig()))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerMealRoutes(router)

	return router
}

func (h *Handler) corsConfig() cors.Config {
	return cors.Config{
		AllowOrigins:     h.cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.POST("/user", h.signUp)
	r.POST("/login", h.signIn)
	r.GET("/logout", h.sessionMiddleware, h.signOut)
}

func (h *Handler) registerMealRoutes(r *gin.Engine) {
	meals := r.Group("/meals")
	{
		meals.GET("/:id", h.getMeal)
		meals.GET("/user/:id", h.listUserMeals)

		meals.POST("", h.sessionMiddleware, h.createMeal)
		meals.PATCH("/:id", h.sessionMiddleware, h.updateMeal)
		meals.DELETE("/:id", h.sessionMiddleware, h.deleteMeal)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
