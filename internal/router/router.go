package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/moviechat/internal/handler"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", h.Root)
	r.GET("/search_movie", h.SearchMovie)
	r.GET("/movie/:id", h.MovieDetails)
	r.POST("/chat", h.Chat)
}
