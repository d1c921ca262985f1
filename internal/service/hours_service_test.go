package service

import (
	"context"
	"testing"
	"time"

	"workforce-bot-api/internal/dto"
	"workforce-bot-api/internal/entity"
	"workforce-bot-api/internal/pkg/logger"
	"workforce-bot-api/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var fixedNow = time.Date(2024, 3, 13, 15, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestPeriodWindow(t *testing.T) {
	today := periodWindow(dto.PeriodToday, fixedNow)
	assert.Equal(t, time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), today.From)
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), today.To)

	week := periodWindow(dto.PeriodWeek, fixedNow)
	assert.Equal(t, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), week.From)
	assert.True(t, week.To.IsZero())
}

func TestPeriodWindow_UsesClockLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	late := time.Date(2024, 3, 13, 23, 30, 0, 0, time.UTC).In(loc)

	today := periodWindow(dto.PeriodToday, late)
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, loc), today.From)
}

func TestGetHoursSummary_Scenario(t *testing.T) {
	uow := newFakeUnitOfWork().withContractors(&entity.Contractor{
		Id:            5,
		FirstName:     "Dal",
		LastName:      "Wayne",
		AdminPayRate:  floatPtr(12.50),
		CISRegistered: true,
	})
	end := time.Date(2024, 3, 12, 12, 30, 0, 0, time.UTC)
	var gotSpecs []specification.Specification
	uow.sessions.FindAllFunc = func(ctx context.Context, specs ...specification.Specification) ([]*entity.WorkSession, error) {
		gotSpecs = specs
		return []*entity.WorkSession{
			{Id: 2, StartTime: time.Date(2024, 3, 13, 8, 0, 0, 0, time.UTC), TotalHours: strPtr("3:15")},
			{Id: 1, StartTime: time.Date(2024, 3, 12, 8, 0, 0, 0, time.UTC), EndTime: &end, TotalHours: strPtr("4:30"), JobSiteLocation: "Leeds"},
		}, nil
	}

	svc := NewHoursService(&fakeFactory{uow: uow}, time.Second, fixedClock, time.UTC, logger.NewNopLogger())
	resp, err := svc.GetHoursSummary(context.Background(), "555", dto.PeriodWeek)
	require.NoError(t, err)

	assert.Equal(t, "Dal Wayne", resp.ContractorName)
	assert.Equal(t, dto.PeriodWeek, resp.Period)
	assert.Equal(t, dto.HoursSummary{
		TotalHours:     7.75,
		TotalSessions:  2,
		TotalGrossPay:  96.88,
		TotalNetPay:    77.50,
		TotalDeduction: 19.38,
		CISRate:        20,
		HourlyRate:     12.50,
	}, resp.Summary)

	require.Len(t, resp.Sessions, 2)
	assert.Equal(t, dto.SessionItem{Id: 2, Date: "2024-03-13", StartTime: "08:00", EndTime: "Active", Hours: "3:15"}, resp.Sessions[0])
	assert.Equal(t, dto.SessionItem{Id: 1, Date: "2024-03-12", StartTime: "08:00", EndTime: "12:30", Hours: "4:30", Location: "Leeds"}, resp.Sessions[1])

	owner, ok := findSpec[specification.OwnedByContractor](gotSpecs)
	require.True(t, ok)
	assert.Equal(t, specification.OwnedByContractor{ContractorID: 5, Name: "Dal Wayne"}, owner)
	window, ok := findSpec[specification.StartedBetween](gotSpecs)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), window.From)
	order, ok := findSpec[specification.OrderBy](gotSpecs)
	require.True(t, ok)
	assert.Equal(t, specification.OrderBy{Field: "start_time", Desc: true}, order)
}

func TestGetHoursSummary_UnregisteredWithholdsThirtyPercent(t *testing.T) {
	uow := newFakeUnitOfWork().withContractors(&entity.Contractor{Id: 5, AdminPayRate: floatPtr(12.50)})
	uow.sessions.FindAllFunc = func(ctx context.Context, specs ...specification.Specification) ([]*entity.WorkSession, error) {
		return []*entity.WorkSession{
			{Id: 1, StartTime: fixedNow, TotalHours: strPtr("4:30")},
			{Id: 2, StartTime: fixedNow, TotalHours: strPtr("3:15")},
		}, nil
	}

	svc := NewHoursService(&fakeFactory{uow: uow}, time.Second, fixedClock, time.UTC, logger.NewNopLogger())
	resp, err := svc.GetHoursSummary(context.Background(), "555", dto.PeriodToday)
	require.NoError(t, err)

	assert.Equal(t, 96.88, resp.Summary.TotalGrossPay)
	assert.Equal(t, 67.81, resp.Summary.TotalNetPay)
	assert.Equal(t, 29.07, resp.Summary.TotalDeduction)
	assert.Equal(t, 30, resp.Summary.CISRate)
}

func TestGetHoursSummary_MalformedAndOpenSessions(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	uow := newFakeUnitOfWork().withContractors(&entity.Contractor{Id: 5})
	uow.sessions.FindAllFunc = func(ctx context.Context, specs ...specification.Specification) ([]*entity.WorkSession, error) {
		return []*entity.WorkSession{
			{Id: 1, StartTime: fixedNow, TotalHours: strPtr("2:00")},
			{Id: 2, StartTime: fixedNow, TotalHours: strPtr("abc")},
			{Id: 3, StartTime: fixedNow, TotalHours: nil},
		}, nil
	}

	svc := NewHoursService(&fakeFactory{uow: uow}, time.Second, fixedClock, time.UTC, logger.NewFromCore(core))
	resp, err := svc.GetHoursSummary(context.Background(), "555", dto.PeriodToday)
	require.NoError(t, err)

	assert.Equal(t, 2.0, resp.Summary.TotalHours)
	assert.Equal(t, 3, resp.Summary.TotalSessions)
	assert.Equal(t, 9.0, resp.Summary.HourlyRate)
	assert.Equal(t, 18.0, resp.Summary.TotalGrossPay)
	assert.Equal(t, "abc", resp.Sessions[1].Hours)
	assert.Equal(t, "0:00", resp.Sessions[2].Hours)

	require.Equal(t, 1, logs.Len())
	details := logs.All()[0].ContextMap()["details"].(map[string]interface{})
	assert.Equal(t, uint(2), details["session_id"])
}

func TestGetHoursSummary_NoSessions(t *testing.T) {
	uow := newFakeUnitOfWork().withContractors(&entity.Contractor{Id: 5})

	svc := NewHoursService(&fakeFactory{uow: uow}, time.Second, fixedClock, time.UTC, logger.NewNopLogger())
	resp, err := svc.GetHoursSummary(context.Background(), "555", dto.PeriodWeek)
	require.NoError(t, err)

	assert.Equal(t, 0.0, resp.Summary.TotalHours)
	assert.NotNil(t, resp.Sessions)
	assert.Empty(t, resp.Sessions)
}

func TestGetHoursSummary_NotFound(t *testing.T) {
	svc := NewHoursService(&fakeFactory{uow: newFakeUnitOfWork()}, time.Second, fixedClock, time.UTC, logger.NewNopLogger())
	_, err := svc.GetHoursSummary(context.Background(), "404", dto.PeriodWeek)
	assert.ErrorIs(t, err, ErrContractorNotFound)
}
