package model

import "time"

type ConversationMessage struct {
	Id         int64     `gorm:"primaryKey"`
	TelegramId int64     `gorm:"column:telegram_id;not null;index:idx_conversation_history_telegram_id"`
	Role       string    `gorm:"type:varchar(20);not null"`
	Message    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (ConversationMessage) TableName() string {
	return "conversation_history"
}
