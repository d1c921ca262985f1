package mapper

import (
	"workforce-bot-api/internal/entity"
	"workforce-bot-api/internal/model"
)

type WorkSessionMapper struct{}

func NewWorkSessionMapper() *WorkSessionMapper {
	return &WorkSessionMapper{}
}

func (m *WorkSessionMapper) ToEntity(s *model.WorkSession) *entity.WorkSession {
	if s == nil {
		return nil
	}
	return &entity.WorkSession{
		Id:              s.Id,
		ContractorId:    s.ContractorId,
		ContractorName:  s.ContractorName,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		TotalHours:      s.TotalHours,
		JobSiteLocation: deref(s.JobSiteLocation),
	}
}

func (m *WorkSessionMapper) ToEntities(sessions []*model.WorkSession) []*entity.WorkSession {
	entities := make([]*entity.WorkSession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
