package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/user/moviechat/internal/model"
	"github.com/user/moviechat/internal/service"
	"github.com/user/moviechat/internal/utils"
)

// Root 根路径，确认后端已启动
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Backend is running!"})
}

// SearchMovie 按关键词搜索电影
// GET /search_movie?query=xxx
func (h *Handler) SearchMovie(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		utils.BadRequest(c, "Query parameter is required")
		return
	}

	results, err := h.Movies.SearchMovies(c.Request.Context(), query)
	if err != nil {
		log.Printf("[API] 搜索电影失败 (query: %s): %v", query, err)
		utils.InternalServerError(c, "Failed to fetch data from TMDB")
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// MovieDetails 电影详情
// GET /movie/:id
func (h *Handler) MovieDetails(c *gin.Context) {
	movieID, err := strconv.Atoi(c.Param("id"))
	if err != nil || movieID <= 0 {
		utils.BadRequest(c, "Invalid movie id")
		return
	}

	detail, err := h.Movies.GetMovieDetails(c.Request.Context(), movieID)
	if err != nil {
		log.Printf("[API] 获取电影详情失败 (MovieID: %d): %v", movieID, err)
		utils.InternalServerError(c, "Failed to fetch movie details from TMDB")
		return
	}

	// 原样透传 TMDB 的详情响应，不做字段裁剪
	c.Data(http.StatusOK, "application/json; charset=utf-8", detail.Raw)
}

// Chat 围绕指定电影的对话
// POST /chat
func (h *Handler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// 字段校验失败和请求体解析失败统一返回同一个 400 文案
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			log.Printf("[API] 解析对话请求体失败: %v", err)
		}
		utils.BadRequest(c, "movie_id and user_message are required")
		return
	}

	reply, err := h.ChatService.ChatAboutMovie(c.Request.Context(), req.MovieID, req.UserMessage)
	if err != nil {
		if errors.Is(err, service.ErrMovieDetailsNotFound) {
			utils.InternalServerError(c, service.ErrMovieDetailsNotFound.Error())
			return
		}
		// 原始错误只进服务端日志，客户端拿到固定文案
		log.Printf("[API] 对话生成失败 (MovieID: %d): %v", req.MovieID, err)
		utils.InternalServerError(c, "Failed to generate chat response")
		return
	}

	c.JSON(http.StatusOK, model.ChatResult{Response: reply})
}
