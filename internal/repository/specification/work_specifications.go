package specification

import (
	"time"

	"gorm.io/gorm"
)

// OwnedByContractor matches rows of work_sessions or jobs belonging to a
// contractor. Rows written before contractor_id existed fall back to the
// display-name match.
type OwnedByContractor struct {
	ContractorID uint
	Name         string
}

func (s OwnedByContractor) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("(contractor_id = ? OR (contractor_id IS NULL AND contractor_name = ?))", s.ContractorID, s.Name)
}

// StartedBetween filters on start_time in [From, To). A zero To leaves the
// range open-ended.
type StartedBetween struct {
	From time.Time
	To   time.Time
}

func (s StartedBetween) Apply(db *gorm.DB) *gorm.DB {
	db = db.Where("start_time >= ?", s.From)
	if !s.To.IsZero() {
		db = db.Where("start_time < ?", s.To)
	}
	return db
}
