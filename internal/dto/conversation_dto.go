package dto

import "time"

type ConversationHistoryQuery struct {
	Limit int `query:"limit" validate:"min=1,max=100"`
}

type SaveConversationMessageRequest struct {
	TelegramId int64  `json:"telegram_id" validate:"required"`
	Role       string `json:"role" validate:"required,oneof=user assistant"`
	Message    string `json:"message"`
}

type ConversationMessageItem struct {
	Id        int64     `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ConversationHistoryResponse struct {
	Success  bool                      `json:"success"`
	Messages []ConversationMessageItem `json:"messages"`
}

type SaveConversationMessageResponse struct {
	Success   bool      `json:"success"`
	Id        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
