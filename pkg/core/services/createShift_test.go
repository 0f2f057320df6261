package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/InteriMed/Medishift-sub000/pkg/core/rules"
	"github.com/InteriMed/Medishift-sub000/pkg/db"
)

func TestCreateShift_Single(t *testing.T) {
	store := newMockStore()

	result, err := CreateShift(context.Background(), store, zap.NewNop(), rules.SwissLawDefaults(), CreateShiftParams{
		UserID:     "u1",
		FacilityID: "f1",
		Role:       "NURSE",
		Date:       "2025-01-10",
		StartTime:  "08:00",
		EndTime:    "16:00",
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	require.Len(t, result.Created, 1)
	assert.NotEmpty(t, result.Created[0].ID)
	assert.Equal(t, "DRAFT", result.Created[0].Status)
	assert.Equal(t, "u1", result.Created[0].UserID)
	require.Len(t, result.Validations, 1)
	assert.True(t, result.Validations[0].Result.Valid)
	assert.Len(t, store.inserted, 1)
}

func TestCreateShift_OpenShiftSkipsValidation(t *testing.T) {
	store := newMockStore()

	result, err := CreateShift(context.Background(), store, zap.NewNop(), rules.SwissLawDefaults(), CreateShiftParams{
		FacilityID: "f1",
		Role:       "NURSE",
		Date:       "2025-01-10",
		StartTime:  "08:00",
		EndTime:    "16:00",
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Validations)
	require.Len(t, result.Created, 1)
	assert.Empty(t, result.Created[0].UserID)
	assert.Len(t, store.inserted, 1)
}

func TestCreateShift_WeeklyRecurrence(t *testing.T) {
	store := newMockStore()

	result, err := CreateShift(context.Background(), store, zap.NewNop(), rules.SwissLawDefaults(), CreateShiftParams{
		UserID:      "u1",
		FacilityID:  "f1",
		Role:        "NURSE",
		Date:        "2025-01-06",
		StartTime:   "08:00",
		EndTime:     "16:00",
		Repeat:      "FREQ=WEEKLY",
		RepeatUntil: "2025-01-27",
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	require.Len(t, result.Created, 4)
	dates := make([]string, len(result.Created))
	for i, s := range result.Created {
		dates[i] = s.Date
	}
	assert.Equal(t, []string{"2025-01-06", "2025-01-13", "2025-01-20", "2025-01-27"}, dates)
	assert.Len(t, store.inserted, 4)
}

func TestCreateShift_BatchSelfConflict(t *testing.T) {
	// A daily series over seven days trips the consecutive-days limit on
	// its own occurrences: the batch must catch itself, not just conflicts
	// with stored shifts
	store := newMockStore()

	result, err := CreateShift(context.Background(), store, zap.NewNop(), rules.SwissLawDefaults(), CreateShiftParams{
		UserID:      "u1",
		FacilityID:  "f1",
		Role:        "NURSE",
		Date:        "2025-01-06",
		StartTime:   "08:00",
		EndTime:     "16:00",
		Repeat:      "FREQ=DAILY",
		RepeatUntil: "2025-01-12",
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Nil(t, result.Created)
	assert.Empty(t, store.inserted)

	require.Len(t, result.Validations, 7)
	for _, pv := range result.Validations[:6] {
		assert.True(t, pv.Result.Valid, pv.Date)
	}
	last := result.Validations[6]
	assert.False(t, last.Result.Valid)
	assert.NotEmpty(t, last.Result.Violations)
}

func TestCreateShift_ForceAcceptsConflictingBatch(t *testing.T) {
	store := newMockStore()

	result, err := CreateShift(context.Background(), store, zap.NewNop(), rules.SwissLawDefaults(), CreateShiftParams{
		UserID:      "u1",
		FacilityID:  "f1",
		Role:        "NURSE",
		Date:        "2025-01-06",
		StartTime:   "08:00",
		EndTime:     "16:00",
		Repeat:      "FREQ=DAILY",
		RepeatUntil: "2025-01-12",
		Force:       true,
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Len(t, result.Created, 7)
	assert.Len(t, store.inserted, 7)

	// The downgraded violations are still reported per occurrence
	last := result.Validations[6]
	assert.True(t, last.Result.Valid)
	assert.NotEmpty(t, last.Result.Violations)
	require.NotEmpty(t, last.Result.Warnings)
	assert.Contains(t, last.Result.Warnings[0], "FORCE OVERRIDE")
}

func TestCreateShift_DryRun(t *testing.T) {
	store := newMockStore()

	result, err := CreateShift(context.Background(), store, zap.NewNop(), rules.SwissLawDefaults(), CreateShiftParams{
		UserID:     "u1",
		FacilityID: "f1",
		Role:       "NURSE",
		Date:       "2025-01-10",
		StartTime:  "08:00",
		EndTime:    "16:00",
		DryRun:     true,
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Len(t, result.Created, 1)
	assert.Empty(t, store.inserted)
}

func TestCreateShift_ChecksStoredShifts(t *testing.T) {
	store := newMockStore()
	store.shifts["u1"] = []db.Shift{
		{ID: "s1", UserID: "u1", Date: "2025-01-09", StartTime: "15:00", EndTime: "23:00", Status: "PUBLISHED"},
	}

	result, err := CreateShift(context.Background(), store, zap.NewNop(), rules.SwissLawDefaults(), CreateShiftParams{
		UserID:     "u1",
		FacilityID: "f1",
		Role:       "NURSE",
		Date:       "2025-01-10",
		StartTime:  "06:00",
		EndTime:    "14:00",
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Nil(t, result.Created)
	assert.Empty(t, store.inserted)
}

func TestCreateShift_ParamErrors(t *testing.T) {
	store := newMockStore()
	logger := zap.NewNop()
	ruleSet := rules.SwissLawDefaults()

	_, err := CreateShift(context.Background(), store, logger, ruleSet, CreateShiftParams{
		UserID: "u1", Role: "NURSE", Date: "2025-01-10", StartTime: "08:00", EndTime: "16:00",
	})
	assert.Error(t, err, "missing facility")

	_, err = CreateShift(context.Background(), store, logger, ruleSet, CreateShiftParams{
		UserID: "u1", FacilityID: "f1", Role: "NURSE", Date: "2025-01-10", StartTime: "08:00", EndTime: "16:00",
		Repeat: "FREQ=DAILY",
	})
	assert.Error(t, err, "repeat without until")

	_, err = CreateShift(context.Background(), store, logger, ruleSet, CreateShiftParams{
		UserID: "u1", FacilityID: "f1", Role: "NURSE", Date: "2025-01-10", StartTime: "08:00", EndTime: "16:00",
		Repeat: "FREQ=DAILY", RepeatUntil: "2025-01-05",
	})
	assert.Error(t, err, "until before start")

	_, err = CreateShift(context.Background(), store, logger, ruleSet, CreateShiftParams{
		UserID: "u1", FacilityID: "f1", Role: "NURSE", Date: "2025-01-10", StartTime: "08:00", EndTime: "16:00",
		Repeat: "NOT-AN-RRULE", RepeatUntil: "2025-01-20",
	})
	assert.Error(t, err, "malformed rrule")
}

func TestCreateShift_InsertErrorPropagates(t *testing.T) {
	store := newMockStore()
	store.insertErr = errors.New("deadlock detected")

	_, err := CreateShift(context.Background(), store, zap.NewNop(), rules.SwissLawDefaults(), CreateShiftParams{
		UserID:     "u1",
		FacilityID: "f1",
		Role:       "NURSE",
		Date:       "2025-01-10",
		StartTime:  "08:00",
		EndTime:    "16:00",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlock detected")
}
