package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/user/moviechat/internal/model"
)

// 对话消息角色
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ChatMessage 发给对话模型的单条消息
type ChatMessage struct {
	Role    string
	Content string
}

// MovieDetailsProvider 电影详情来源
type MovieDetailsProvider interface {
	GetMovieDetails(ctx context.Context, movieID int) (*model.MovieDetail, error)
}

// CompletionClient 对话补全客户端
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, messages []ChatMessage) (string, error)
}

var (
	// ErrMovieDetailsNotFound 获取电影详情失败
	// 不存在与上游错误统一折叠为这一个对外错误，错误文案即接口返回文案
	ErrMovieDetailsNotFound = errors.New("Movie details not found")
	// ErrChatCompletion 对话模型调用失败
	ErrChatCompletion = errors.New("chat completion failed")
)

// ChatService 电影对话服务
type ChatService struct {
	movies MovieDetailsProvider
	llm    CompletionClient
}

// NewChatService 创建对话服务
func NewChatService(movies MovieDetailsProvider, llm CompletionClient) *ChatService {
	return &ChatService{
		movies: movies,
		llm:    llm,
	}
}

// ChatAboutMovie 围绕指定电影回答用户问题
// 流程：获取详情 -> 构建上下文 -> 调用对话模型 -> 提取回复
// 每次调用都重新生成上下文，不做任何缓存或重试
func (s *ChatService) ChatAboutMovie(ctx context.Context, movieID int, userMessage string) (string, error) {
	detail, err := s.movies.GetMovieDetails(ctx, movieID)
	if err != nil {
		log.Printf("[Chat] 获取电影详情失败 (MovieID: %d): %v", movieID, err)
		return "", ErrMovieDetailsNotFound
	}

	// 固定的三段消息：人设、电影上下文、用户原始提问
	messages := []ChatMessage{
		{Role: RoleSystem, Content: chatSystemPrompt},
		{Role: RoleUser, Content: buildMoviePrompt(detail)},
		{Role: RoleUser, Content: userMessage},
	}

	reply, err := s.llm.CreateChatCompletion(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrChatCompletion, err)
	}
	return reply, nil
}
