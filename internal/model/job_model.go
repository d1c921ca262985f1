package model

import "gorm.io/datatypes"

type Job struct {
	Id             uint           `gorm:"primaryKey"`
	ContractorId   *uint          `gorm:"index"`
	ContractorName *string        `gorm:"type:text;index"`
	Title          string         `gorm:"type:text"`
	Location       *string        `gorm:"type:text"`
	Description    *string        `gorm:"type:text"`
	Status         string         `gorm:"type:text;index"`
	DueDate        *string        `gorm:"type:text"`
	Phases         datatypes.JSON `gorm:"type:jsonb"`
}

func (Job) TableName() string {
	return "jobs"
}
