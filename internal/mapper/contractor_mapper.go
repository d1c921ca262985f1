package mapper

import (
	"fmt"
	"strings"

	"workforce-bot-api/internal/entity"
	"workforce-bot-api/internal/model"
)

type ContractorMapper struct{}

func NewContractorMapper() *ContractorMapper {
	return &ContractorMapper{}
}

func (m *ContractorMapper) ToEntity(c *model.Contractor) (*entity.Contractor, error) {
	if c == nil {
		return nil, nil
	}

	cis, err := DecodeCISFlag(c.IsCisRegistered)
	if err != nil {
		return nil, fmt.Errorf("contractor %d: %w", c.Id, err)
	}

	return &entity.Contractor{
		Id:            c.Id,
		TelegramId:    c.TelegramId,
		FirstName:     deref(c.FirstName),
		LastName:      deref(c.LastName),
		Email:         deref(c.Email),
		Username:      deref(c.Username),
		AdminPayRate:  c.AdminPayRate,
		CISRegistered: cis,
		Status:        c.Status,
	}, nil
}

// ToFirstEntity decodes only the first row and returns the ids of the
// remaining ones, so a corrupt duplicate cannot fail the lookup.
func (m *ContractorMapper) ToFirstEntity(contractors []*model.Contractor) (*entity.Contractor, []uint, error) {
	if len(contractors) == 0 {
		return nil, nil, nil
	}

	first, err := m.ToEntity(contractors[0])
	if err != nil {
		return nil, nil, err
	}

	others := make([]uint, 0, len(contractors)-1)
	for _, c := range contractors[1:] {
		others = append(others, c.Id)
	}
	return first, others, nil
}

// DecodeCISFlag reads the text column written by onboarding. NULL means the
// question was never answered and counts as unregistered.
func DecodeCISFlag(v *string) (bool, error) {
	if v == nil {
		return false, nil
	}
	switch strings.ToLower(strings.TrimSpace(*v)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", entity.ErrInvalidCISFlag, *v)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
