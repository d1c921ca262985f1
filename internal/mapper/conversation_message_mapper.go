package mapper

import (
	"workforce-bot-api/internal/entity"
	"workforce-bot-api/internal/model"
)

type ConversationMessageMapper struct{}

func NewConversationMessageMapper() *ConversationMessageMapper {
	return &ConversationMessageMapper{}
}

func (m *ConversationMessageMapper) ToEntity(c *model.ConversationMessage) *entity.ConversationMessage {
	if c == nil {
		return nil
	}
	return &entity.ConversationMessage{
		Id:         c.Id,
		TelegramId: c.TelegramId,
		Role:       c.Role,
		Message:    c.Message,
		CreatedAt:  c.CreatedAt,
	}
}

func (m *ConversationMessageMapper) ToModel(c *entity.ConversationMessage) *model.ConversationMessage {
	if c == nil {
		return nil
	}
	return &model.ConversationMessage{
		Id:         c.Id,
		TelegramId: c.TelegramId,
		Role:       c.Role,
		Message:    c.Message,
		CreatedAt:  c.CreatedAt,
	}
}

func (m *ConversationMessageMapper) ToEntities(messages []*model.ConversationMessage) []*entity.ConversationMessage {
	entities := make([]*entity.ConversationMessage, len(messages))
	for i, c := range messages {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
