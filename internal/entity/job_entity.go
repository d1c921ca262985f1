package entity

import "encoding/json"

const (
	JobStatusCompleted = "completed"
	JobStatusAssigned  = "assigned"
	JobStatusPending   = "pending"
)

type Job struct {
	Id             uint
	ContractorId   *uint
	ContractorName string
	Title          string
	Location       string
	Description    string
	Status         string
	DueDate        *string
	Phases         json.RawMessage
}

func (j *Job) IsCompleted() bool {
	return j.Status == JobStatusCompleted
}

func (j *Job) IsInProgress() bool {
	return j.Status == JobStatusAssigned || j.Status == JobStatusPending
}
