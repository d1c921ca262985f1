package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGormDBFromDSN_Empty(t *testing.T) {
	db, err := NewGormDBFromDSN("", PoolConfig{MaxOpenConns: 1})
	assert.Nil(t, db)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNilHandle(t *testing.T) {
	assert.ErrorIs(t, Ping(context.Background(), nil), ErrNotConfigured)
	assert.NoError(t, Close(nil))
}
