package model

import "encoding/json"

// MovieSummary 搜索结果中的电影条目
// 缺失的可选字段统一使用零值（空字符串 / 0）
type MovieSummary struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

// Genre 电影类型
type Genre struct {
	Name string `json:"name"`
}

// MovieDetail 电影详情
// 解析时缺失字段落到零值，不会报错
type MovieDetail struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	Genres      []Genre `json:"genres"`
	Runtime     int     `json:"runtime"` // 片长（分钟）

	// Raw 保存 TMDB 返回的原始 JSON，详情接口原样透传给前端
	Raw json.RawMessage `json:"-"`
}
