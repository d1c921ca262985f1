package service

import (
	"context"
	"fmt"
	"time"

	"workforce-bot-api/internal/dto"
	"workforce-bot-api/internal/entity"
	"workforce-bot-api/internal/pkg/logger"
	"workforce-bot-api/internal/repository/specification"
	"workforce-bot-api/internal/repository/unitofwork"
	"workforce-bot-api/pkg/events"
)

// defaultPublishTimeout bounds event publication when no query timeout is set.
const defaultPublishTimeout = 2 * time.Second

type IConversationService interface {
	GetHistory(ctx context.Context, telegramID int64, limit int) (*dto.ConversationHistoryResponse, error)
	Append(ctx context.Context, req *dto.SaveConversationMessageRequest) (*dto.SaveConversationMessageResponse, error)
}

type conversationService struct {
	scope     queryScope
	publisher events.Publisher
	logger    logger.ILogger
}

func NewConversationService(
	uowFactory unitofwork.RepositoryFactory,
	queryTimeout time.Duration,
	publisher events.Publisher,
	logger logger.ILogger,
) IConversationService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &conversationService{
		scope:     queryScope{uowFactory: uowFactory, timeout: queryTimeout},
		publisher: publisher,
		logger:    logger,
	}
}

// GetHistory returns the latest limit messages in chronological order.
func (s *conversationService) GetHistory(ctx context.Context, telegramID int64, limit int) (*dto.ConversationHistoryResponse, error) {
	uow, ctx, cancel, err := s.scope.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	messages, err := uow.ConversationRepository().FindAll(ctx,
		specification.Filter("telegram_id", telegramID),
		specification.OrderBy{Field: "id", Desc: true},
		specification.Pagination{Limit: limit},
	)
	if err != nil {
		return nil, fmt.Errorf("find conversation history: %w", err)
	}

	items := make([]dto.ConversationMessageItem, len(messages))
	for i, m := range messages {
		items[len(messages)-1-i] = dto.ConversationMessageItem{
			Id:        m.Id,
			Role:      m.Role,
			Content:   m.Message,
			CreatedAt: m.CreatedAt,
		}
	}

	return &dto.ConversationHistoryResponse{Success: true, Messages: items}, nil
}

func (s *conversationService) Append(ctx context.Context, req *dto.SaveConversationMessageRequest) (*dto.SaveConversationMessageResponse, error) {
	uow, queryCtx, cancel, err := s.scope.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	if err := uow.Begin(queryCtx); err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	message := &entity.ConversationMessage{
		TelegramId: req.TelegramId,
		Role:       req.Role,
		Message:    req.Message,
	}
	if err := uow.ConversationRepository().Create(queryCtx, message); err != nil {
		_ = uow.Rollback()
		return nil, fmt.Errorf("save conversation message: %w", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit conversation message: %w", err)
	}

	// Publishing is best effort once the row is committed.
	event := events.NewConversationMessageSaved(message.Id, message.TelegramId, message.Role, message.CreatedAt)
	publishCtx, cancelPublish := context.WithTimeout(ctx, s.publishTimeout())
	defer cancelPublish()
	if err := s.publisher.Publish(publishCtx, event); err != nil {
		s.logger.Warn("CONVERSATION", "Failed to publish event", map[string]interface{}{
			"event":      event.EventType(),
			"message_id": message.Id,
			"error":      err.Error(),
		})
	}

	return &dto.SaveConversationMessageResponse{
		Success:   true,
		Id:        message.Id,
		CreatedAt: message.CreatedAt,
	}, nil
}

func (s *conversationService) publishTimeout() time.Duration {
	if s.scope.timeout > 0 {
		return s.scope.timeout
	}
	return defaultPublishTimeout
}
