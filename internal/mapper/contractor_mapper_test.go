package mapper

import (
	"errors"
	"testing"

	"workforce-bot-api/internal/entity"
	"workforce-bot-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func strPtr(s string) *string { return &s }

func TestDecodeCISFlag(t *testing.T) {
	tests := []struct {
		name    string
		in      *string
		want    bool
		wantErr bool
	}{
		{name: "null", in: nil, want: false},
		{name: "true", in: strPtr("true"), want: true},
		{name: "upper and padded", in: strPtr("  TRUE "), want: true},
		{name: "false", in: strPtr("False"), want: false},
		{name: "yes is rejected", in: strPtr("yes"), wantErr: true},
		{name: "empty is rejected", in: strPtr(""), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeCISFlag(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, entity.ErrInvalidCISFlag))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContractorMapper_ToEntity(t *testing.T) {
	rate := 12.5
	m := &model.Contractor{
		Id:              7,
		TelegramId:      "555",
		FirstName:       strPtr("Jane"),
		LastName:        nil,
		Username:        strPtr("jdoe"),
		AdminPayRate:    &rate,
		IsCisRegistered: strPtr("true"),
		Status:          "approved",
	}

	e, err := NewContractorMapper().ToEntity(m)
	require.NoError(t, err)
	assert.Equal(t, uint(7), e.Id)
	assert.Equal(t, "Jane", e.DisplayName())
	assert.Equal(t, "", e.Email)
	assert.True(t, e.CISRegistered)
	assert.Equal(t, &rate, e.AdminPayRate)
}

func TestContractorMapper_ToFirstEntityIgnoresCorruptDuplicate(t *testing.T) {
	first, others, err := NewContractorMapper().ToFirstEntity([]*model.Contractor{
		{Id: 4, IsCisRegistered: strPtr("true")},
		{Id: 8, IsCisRegistered: strPtr("yes")},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(4), first.Id)
	assert.True(t, first.CISRegistered)
	assert.Equal(t, []uint{8}, others)
}

func TestContractorMapper_ToFirstEntityInvalidFlag(t *testing.T) {
	_, _, err := NewContractorMapper().ToFirstEntity([]*model.Contractor{
		{Id: 2, IsCisRegistered: strPtr("maybe")},
		{Id: 5, IsCisRegistered: strPtr("false")},
	})
	assert.ErrorIs(t, err, entity.ErrInvalidCISFlag)
	assert.Contains(t, err.Error(), "contractor 2")
}

func TestContractorMapper_ToFirstEntityEmpty(t *testing.T) {
	first, others, err := NewContractorMapper().ToFirstEntity(nil)
	require.NoError(t, err)
	assert.Nil(t, first)
	assert.Nil(t, others)
}

func TestJobMapper_Phases(t *testing.T) {
	mapper := NewJobMapper()

	withPhases := mapper.ToEntity(&model.Job{Id: 1, Phases: datatypes.JSON(`[{"name":"groundwork"}]`)})
	assert.JSONEq(t, `[{"name":"groundwork"}]`, string(withPhases.Phases))

	without := mapper.ToEntity(&model.Job{Id: 2})
	assert.Nil(t, without.Phases)
}
