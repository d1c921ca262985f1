package entity

import "time"

type WorkSession struct {
	Id              uint
	ContractorId    *uint
	ContractorName  string
	StartTime       time.Time
	EndTime         *time.Time
	TotalHours      *string
	JobSiteLocation string
}

func (s *WorkSession) IsActive() bool {
	return s.EndTime == nil
}
