package service

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	// chatModel 固定使用的对话模型
	chatModel = openai.ChatModelGPT4oMini
	// chatTemperature 固定采样温度
	chatTemperature = 0.5
)

// OpenAIClient OpenAI 对话补全客户端
type OpenAIClient struct {
	client openai.Client
}

// NewOpenAIClient 创建 OpenAI 客户端
// 客户端在进程启动时创建一次，通过构造函数显式传入对话服务
func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
	}
}

// CreateChatCompletion 发起一次对话补全，返回第一个候选的回复文本
// 不重试、不流式，超时沿用 SDK 默认值
func (c *OpenAIClient) CreateChatCompletion(ctx context.Context, messages []ChatMessage) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:       chatModel,
		Temperature: openai.Float(chatTemperature),
		Messages:    make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)),
	}
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			params.Messages = append(params.Messages, openai.SystemMessage(m.Content))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(m.Content))
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai 请求失败: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai 未返回任何候选结果")
	}
	return resp.Choices[0].Message.Content, nil
}
