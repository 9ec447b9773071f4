package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/user/moviechat/internal/config"
	"github.com/user/moviechat/internal/model"
	"github.com/user/moviechat/internal/utils"
)

// ErrMovieNotFound TMDB 中不存在该电影
var ErrMovieNotFound = errors.New("movie not found")

// TMDBClient TMDB 数据客户端
type TMDBClient struct {
	apiKey  string
	baseURL string
	http    *utils.HTTPClient
}

// NewTMDBClient 创建 TMDB 客户端
func NewTMDBClient(cfg *config.Config) *TMDBClient {
	return &TMDBClient{
		apiKey:  cfg.TMDBAPIKey,
		baseURL: cfg.TMDBBaseURL,
		http:    utils.NewHTTPClient(30 * time.Second),
	}
}

type tmdbSearchResponse struct {
	Results []model.MovieSummary `json:"results"`
}

// SearchMovies 按关键词搜索电影，结果顺序与 TMDB 返回保持一致
// 单次请求，失败不重试
func (c *TMDBClient) SearchMovies(ctx context.Context, query string) ([]model.MovieSummary, error) {
	u := fmt.Sprintf("%s/search/movie?api_key=%s&query=%s",
		c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(query))

	resp, err := c.http.Get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("请求 TMDB 搜索接口失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TMDB 搜索接口返回异常状态码: %d", resp.StatusCode)
	}

	var result tmdbSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("解析 TMDB 搜索响应失败: %w", err)
	}

	// 预分配空切片，保证空结果序列化为 [] 而不是 null
	summaries := make([]model.MovieSummary, 0, len(result.Results))
	summaries = append(summaries, result.Results...)
	return summaries, nil
}

// GetMovieDetails 按 ID 获取电影详情
// 已知字段解析为结构体，原始响应体保留在 Raw 中供详情接口透传
func (c *TMDBClient) GetMovieDetails(ctx context.Context, movieID int) (*model.MovieDetail, error) {
	u := fmt.Sprintf("%s/movie/%d?api_key=%s", c.baseURL, movieID, url.QueryEscape(c.apiKey))

	resp, err := c.http.Get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("请求 TMDB 详情接口失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %d", ErrMovieNotFound, movieID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TMDB 详情接口返回异常状态码: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取 TMDB 详情响应失败: %w", err)
	}

	var detail model.MovieDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("解析 TMDB 详情响应失败: %w", err)
	}
	detail.Raw = body
	return &detail, nil
}
