package model

// ChatRequest 对话请求体
type ChatRequest struct {
	MovieID     int    `json:"movie_id" binding:"required,gt=0"`
	UserMessage string `json:"user_message" binding:"required"`
}

// ChatResult 对话响应，response 与 error 二选一
type ChatResult struct {
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}
