package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mahesh0843/Telugu-DOCX/internal/config"
	"github.com/Mahesh0843/Telugu-DOCX/internal/storage"
)

// NewRouter wires all routes: the conversion API, the health check, and
// static serving of the frontend bundle and generated documents.
func NewRouter(cfg *config.Config, h *Handler, store storage.Store) *gin.Engine {
	r := gin.Default()
	r.Use(CORSMiddleware(cfg.FrontendURL))

	r.GET("/health", h.Health)

	apiGroup := r.Group("/api")
	apiGroup.POST("/convert", UploadMiddleware(store, cfg.MaxUploadSize), h.Convert)

	// Generated documents live on local disk or in the GCS bucket, never
	// both; /output follows wherever commits actually go.
	if cfg.OutputBucket == "" {
		r.Static("/output", cfg.OutputDir)
	} else {
		r.GET("/output/:name", func(c *gin.Context) {
			c.Redirect(http.StatusFound,
				fmt.Sprintf("https://storage.googleapis.com/%s/%s", cfg.OutputBucket, c.Param("name")))
		})
	}

	r.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.FrontendDir))))

	return r
}
