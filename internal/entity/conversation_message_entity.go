package entity

import "time"

const (
	ConversationRoleUser      = "user"
	ConversationRoleAssistant = "assistant"
)

type ConversationMessage struct {
	Id         int64
	TelegramId int64
	Role       string
	Message    string
	CreatedAt  time.Time
}
