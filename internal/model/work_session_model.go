package model

import "time"

type WorkSession struct {
	Id              uint       `gorm:"primaryKey"`
	ContractorId    *uint      `gorm:"index:idx_work_sessions_contractor_start,priority:1"`
	ContractorName  string     `gorm:"type:text;index"`
	StartTime       time.Time  `gorm:"not null;index:idx_work_sessions_contractor_start,priority:2"`
	EndTime         *time.Time `gorm:"column:end_time"`
	TotalHours      *string    `gorm:"type:text"`
	JobSiteLocation *string    `gorm:"type:text"`
}

func (WorkSession) TableName() string {
	return "work_sessions"
}
