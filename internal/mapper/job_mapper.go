package mapper

import (
	"encoding/json"

	"workforce-bot-api/internal/entity"
	"workforce-bot-api/internal/model"
)

type JobMapper struct{}

func NewJobMapper() *JobMapper {
	return &JobMapper{}
}

func (m *JobMapper) ToEntity(j *model.Job) *entity.Job {
	if j == nil {
		return nil
	}

	var phases json.RawMessage
	if len(j.Phases) > 0 {
		phases = json.RawMessage(j.Phases)
	}

	return &entity.Job{
		Id:             j.Id,
		ContractorId:   j.ContractorId,
		ContractorName: deref(j.ContractorName),
		Title:          j.Title,
		Location:       deref(j.Location),
		Description:    deref(j.Description),
		Status:         j.Status,
		DueDate:        j.DueDate,
		Phases:         phases,
	}
}

func (m *JobMapper) ToEntities(jobs []*model.Job) []*entity.Job {
	entities := make([]*entity.Job, len(jobs))
	for i, j := range jobs {
		entities[i] = m.ToEntity(j)
	}
	return entities
}
