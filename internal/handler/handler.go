package handler

import (
	"context"

	"github.com/user/moviechat/internal/config"
	"github.com/user/moviechat/internal/model"
)

// MovieService 电影数据服务
type MovieService interface {
	SearchMovies(ctx context.Context, query string) ([]model.MovieSummary, error)
	GetMovieDetails(ctx context.Context, movieID int) (*model.MovieDetail, error)
}

// ChatService 电影对话服务
type ChatService interface {
	ChatAboutMovie(ctx context.Context, movieID int, userMessage string) (string, error)
}

// Handler HTTP 处理器
type Handler struct {
	Config      *config.Config
	Movies      MovieService
	ChatService ChatService
}

// NewHandler 创建处理器
func NewHandler(cfg *config.Config, movies MovieService, chat ChatService) *Handler {
	return &Handler{
		Config:      cfg,
		Movies:      movies,
		ChatService: chat,
	}
}
