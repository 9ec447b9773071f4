package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/user/moviechat/internal/config"
)

func newTestTMDBClient(t *testing.T, handler http.HandlerFunc) *TMDBClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewTMDBClient(&config.Config{
		TMDBAPIKey:  "test-key",
		TMDBBaseURL: srv.URL,
	})
}

func TestSearchMovies(t *testing.T) {
	var gotPath, gotKey, gotQuery string
	client := newTestTMDBClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("api_key")
		gotQuery = r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[
			{"id":27205,"title":"Inception","overview":"Dream heist.","poster_path":"/poster.jpg","release_date":"2010-07-16","vote_average":8.3},
			{"id":27206,"title":"Inception: The Cobol Job"}
		]}`))
	})

	results, err := client.SearchMovies(context.Background(), "Inception")
	if err != nil {
		t.Fatalf("SearchMovies() 返回错误: %v", err)
	}

	if gotPath != "/search/movie" {
		t.Errorf("请求路径错误: %s", gotPath)
	}
	if gotKey != "test-key" || gotQuery != "Inception" {
		t.Errorf("请求参数错误: api_key=%s query=%s", gotKey, gotQuery)
	}

	if len(results) != 2 {
		t.Fatalf("期望 2 条结果，实际 %d 条", len(results))
	}

	// 顺序与 TMDB 返回保持一致，字段完整映射
	first := results[0]
	if first.ID != 27205 || first.Title != "Inception" || first.Overview != "Dream heist." ||
		first.PosterPath != "/poster.jpg" || first.ReleaseDate != "2010-07-16" || first.VoteAverage != 8.3 {
		t.Errorf("第一条结果映射错误: %+v", first)
	}

	// 缺失的可选字段落到零值
	second := results[1]
	if second.ID != 27206 || second.Overview != "" || second.PosterPath != "" ||
		second.ReleaseDate != "" || second.VoteAverage != 0 {
		t.Errorf("缺省字段映射错误: %+v", second)
	}

	for _, m := range results {
		if m.ID <= 0 {
			t.Errorf("电影 ID 应为正整数: %+v", m)
		}
		if m.VoteAverage < 0 || m.VoteAverage > 10 {
			t.Errorf("评分应在 [0,10] 区间: %+v", m)
		}
	}
}

func TestSearchMoviesEmptyResults(t *testing.T) {
	client := newTestTMDBClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	})

	results, err := client.SearchMovies(context.Background(), "no-such-movie")
	if err != nil {
		t.Fatalf("SearchMovies() 返回错误: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("期望空结果，实际 %d 条", len(results))
	}

	// 空结果序列化为 [] 而不是 null
	b, _ := json.Marshal(results)
	if string(b) != "[]" {
		t.Errorf("空结果应序列化为 []，实际 %s", b)
	}
}

func TestSearchMoviesUpstreamError(t *testing.T) {
	client := newTestTMDBClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if _, err := client.SearchMovies(context.Background(), "Inception"); err == nil {
		t.Error("上游非 200 状态应返回错误")
	}
}

func TestGetMovieDetails(t *testing.T) {
	// 带额外字段的响应，验证原样透传
	body := `{"id":27205,"title":"Inception","overview":"Dream heist.","release_date":"2010-07-16",` +
		`"vote_average":8.3,"genres":[{"id":28,"name":"Action"},{"id":878,"name":"Sci-Fi"}],` +
		`"runtime":148,"tagline":"Your mind is the scene of the crime."}`

	var gotPath string
	client := newTestTMDBClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	})

	detail, err := client.GetMovieDetails(context.Background(), 27205)
	if err != nil {
		t.Fatalf("GetMovieDetails() 返回错误: %v", err)
	}

	if gotPath != "/movie/27205" {
		t.Errorf("请求路径错误: %s", gotPath)
	}
	if detail.Title != "Inception" || detail.ReleaseDate != "2010-07-16" ||
		detail.VoteAverage != 8.3 || detail.Runtime != 148 {
		t.Errorf("详情字段解析错误: %+v", detail)
	}
	if len(detail.Genres) != 2 || detail.Genres[0].Name != "Action" || detail.Genres[1].Name != "Sci-Fi" {
		t.Errorf("类型列表解析错误: %+v", detail.Genres)
	}

	// Raw 必须逐字节保留原始响应，包括结构体里没有的字段
	if string(detail.Raw) != body {
		t.Errorf("原始响应未保留: %s", detail.Raw)
	}
}

func TestGetMovieDetailsNotFound(t *testing.T) {
	client := newTestTMDBClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetMovieDetails(context.Background(), 99999999)
	if !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("期望 ErrMovieNotFound，实际 %v", err)
	}
}

func TestGetMovieDetailsUpstreamError(t *testing.T) {
	client := newTestTMDBClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.GetMovieDetails(context.Background(), 27205)
	if err == nil {
		t.Fatal("上游非 200 状态应返回错误")
	}
	if errors.Is(err, ErrMovieNotFound) {
		t.Errorf("服务端错误不应归类为 ErrMovieNotFound: %v", err)
	}
}
