package specification

import "gorm.io/gorm"

type ByTelegramID struct {
	TelegramID string
}

func (s ByTelegramID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("telegram_id = ?", s.TelegramID)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
