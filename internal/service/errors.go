package service

import (
	"errors"

	"workforce-bot-api/internal/entity"
)

var (
	ErrContractorNotFound = errors.New("contractor not found")
	ErrStoreUnavailable   = errors.New("database connection not available")
	ErrInvalidCISFlag     = entity.ErrInvalidCISFlag
)
