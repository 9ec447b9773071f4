package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/user/moviechat/internal/model"
)

// chatSystemPrompt 对话助手的固定人设
const chatSystemPrompt = "You are a helpful movie assistant."

// FormatMovieContext 把电影详情格式化为固定结构的多行文本
// 纯函数：相同输入保证产生逐字节相同的输出
// 缺失字段按零值渲染（空字符串 / 0），不会报错
func FormatMovieContext(detail *model.MovieDetail) string {
	names := make([]string, 0, len(detail.Genres))
	for _, g := range detail.Genres {
		names = append(names, g.Name)
	}

	lines := []string{
		"Title: " + detail.Title,
		"Overview: " + detail.Overview,
		"Release Date: " + detail.ReleaseDate,
		"Rating: " + strconv.FormatFloat(detail.VoteAverage, 'f', -1, 64),
		"Genres: " + strings.Join(names, ", "),
		fmt.Sprintf("Runtime: %d minutes", detail.Runtime),
	}
	return strings.Join(lines, "\n")
}

// buildMoviePrompt 把上下文文本包装成给对话模型的背景说明
// 措辞上同时允许基于详情的事实性回答和开放式推荐
func buildMoviePrompt(detail *model.MovieDetail) string {
	return fmt.Sprintf(`The user is asking about the movie '%s'.
Movie details:
%s

Please answer the user's question based on these details, and if they ask for recommendations, use your movie knowledge.`,
		detail.Title, FormatMovieContext(detail))
}
