package service

import (
	"context"
	"time"

	"workforce-bot-api/internal/dto"
	"workforce-bot-api/pkg/database"

	"gorm.io/gorm"
)

var servedEndpoints = []string{
	"/api/telegram/worker-type/{chat_id}",
	"/api/telegram/hours/{chat_id}",
	"/api/telegram/payments/{chat_id}",
	"/api/telegram/subcontractor/quotes/{chat_id}",
	"/api/telegram/subcontractor/milestones/{chat_id}",
	"/api/telegram/subcontractor/payment-status/{chat_id}",
	"/api/telegram/conversation-history/{telegram_id}",
	"POST /api/telegram/conversation-history",
}

type ISystemService interface {
	Liveness() dto.RootResponse
	Readiness(ctx context.Context) dto.HealthResponse
}

type systemService struct {
	db           *gorm.DB
	serviceName  string
	queryTimeout time.Duration
}

// NewSystemService accepts a nil db when no database is configured.
func NewSystemService(db *gorm.DB, serviceName string, queryTimeout time.Duration) ISystemService {
	return &systemService{db: db, serviceName: serviceName, queryTimeout: queryTimeout}
}

func (s *systemService) Liveness() dto.RootResponse {
	status := dto.DatabaseConnected
	if s.db == nil {
		status = dto.DatabaseDisconnected
	}
	return dto.RootResponse{Status: "online", Service: s.serviceName, Database: status}
}

// Readiness probes the database with SELECT 1. It never fails; problems are
// reported in the database field.
func (s *systemService) Readiness(ctx context.Context) dto.HealthResponse {
	status := dto.DatabaseConnected
	if s.db == nil {
		status = dto.DatabaseNotConfigured
	} else {
		if s.queryTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
			defer cancel()
		}
		if err := database.Ping(ctx, s.db); err != nil {
			status = "error: " + err.Error()
		}
	}

	endpoints := make([]string, len(servedEndpoints))
	copy(endpoints, servedEndpoints)

	return dto.HealthResponse{Status: "healthy", Database: status, Endpoints: endpoints}
}
