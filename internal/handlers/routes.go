package handlers

import (
	"fmt"
	"net/http"

	"employee-directory/internal/config"
	"employee-directory/internal/logging"
	"employee-directory/internal/views"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var getOrPost = []string{http.MethodGet, http.MethodPost}

// NewRouter builds the gin engine: middleware, HTML templates and routes.
func NewRouter(cfg *config.Config, h *Handler, logger *zap.Logger) (*gin.Engine, error) {
	tmpl, err := views.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.Use(logging.RequestLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic while serving request",
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))

	if len(cfg.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CORSOrigins,
			AllowMethods: getOrPost,
			AllowHeaders: []string{"Origin", "Content-Type"},
		}))
	}

	router.SetHTMLTemplate(tmpl)
	h.RegisterRoutes(router, cfg.StaticDir)

	return router, nil
}

// RegisterRoutes wires every endpoint onto router.
func (h *Handler) RegisterRoutes(router *gin.Engine, staticDir string) {
	for _, method := range getOrPost {
		router.Handle(method, "/", h.Home)
		router.Handle(method, "/about", h.About)
		router.Handle(method, "/getemp", h.GetEmployee)
		router.Handle(method, "/fetchdata", h.FetchData)
	}
	router.POST("/addemp", h.AddEmployee)
	router.GET("/health", h.Health)

	// http.Dir confines lookups to staticDir; "../" segments cannot escape it.
	router.Static("/static", staticDir)
}
