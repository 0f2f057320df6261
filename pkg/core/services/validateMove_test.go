package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/InteriMed/Medishift-sub000/pkg/core/constraints"
	"github.com/InteriMed/Medishift-sub000/pkg/core/rules"
	"github.com/InteriMed/Medishift-sub000/pkg/db"
)

func TestValidateMove_CleanSchedule(t *testing.T) {
	store := newMockStore()

	result, err := ValidateMove(context.Background(), store, zap.NewNop(), rules.SwissLawDefaults(), MoveParams{
		UserID:     "u1",
		FacilityID: "f1",
		Placement:  constraints.ShiftPlacement{Date: "2025-01-10", StartTime: "08:00", EndTime: "16:00"},
	})

	require.NoError(t, err)
	assert.True(t, result.Result.Valid)
	assert.Empty(t, result.Result.Violations)
	assert.Equal(t, 8.0, result.Result.BurdenScore)
	assert.Nil(t, result.Override)
}

func TestValidateMove_RestViolationFromStoredShift(t *testing.T) {
	store := newMockStore()
	store.shifts["u1"] = []db.Shift{
		{ID: "s1", UserID: "u1", FacilityID: "f1", Date: "2025-01-09", StartTime: "15:00", EndTime: "23:00", Status: "PUBLISHED"},
	}

	result, err := ValidateMove(context.Background(), store, zap.NewNop(), rules.SwissLawDefaults(), MoveParams{
		UserID:     "u1",
		FacilityID: "f1",
		Placement:  constraints.ShiftPlacement{Date: "2025-01-10", StartTime: "06:00", EndTime: "14:00"},
	})

	require.NoError(t, err)
	assert.False(t, result.Result.Valid)
	require.Len(t, result.Result.Violations, 1)
	assert.Equal(t, constraints.CodeDailyRest, result.Result.Violations[0].Code)
	assert.Equal(t, []string{"s1"}, result.Result.Violations[0].AffectedShifts)
}

func TestValidateMove_ExcludeMovedShift(t *testing.T) {
	// Moving s1 from the evening into the next morning: its old position
	// must not block the move
	store := newMockStore()
	store.shifts["u1"] = []db.Shift{
		{ID: "s1", UserID: "u1", FacilityID: "f1", Date: "2025-01-09", StartTime: "15:00", EndTime: "23:00", Status: "PUBLISHED"},
	}

	result, err := ValidateMove(context.Background(), store, zap.NewNop(), rules.SwissLawDefaults(), MoveParams{
		UserID:         "u1",
		FacilityID:     "f1",
		Placement:      constraints.ShiftPlacement{Date: "2025-01-10", StartTime: "06:00", EndTime: "14:00"},
		ExcludeShiftID: "s1",
	})

	require.NoError(t, err)
	assert.True(t, result.Result.Valid)
}

func TestValidateMove_ContractAdvisory(t *testing.T) {
	store := newMockStore()
	store.shifts["u1"] = []db.Shift{
		{ID: "s1", UserID: "u1", Date: "2025-01-06", StartTime: "08:00", EndTime: "18:00", Status: "PUBLISHED"},
		{ID: "s2", UserID: "u1", Date: "2025-01-07", StartTime: "08:00", EndTime: "18:00", Status: "PUBLISHED"},
		{ID: "s3", UserID: "u1", Date: "2025-01-08", StartTime: "08:00", EndTime: "18:00", Status: "PUBLISHED"},
	}
	store.contracts["u1"] = &db.Contract{ID: "c1", UserID: "u1", MaxWeeklyHours: 42, Status: "ACTIVE"}

	result, err := ValidateMove(context.Background(), store, zap.NewNop(), rules.SwissLawDefaults(), MoveParams{
		UserID:     "u1",
		FacilityID: "f1",
		Placement:  constraints.ShiftPlacement{Date: "2025-01-10", StartTime: "08:00", EndTime: "16:00"},
	})

	require.NoError(t, err)
	assert.True(t, result.Result.Valid)
	require.Len(t, result.Result.Warnings, 1)
	assert.Contains(t, result.Result.Warnings[0], "Approaching contract limit")
}

func TestValidateMove_ForceBuildsOverrideRecord(t *testing.T) {
	store := newMockStore()
	store.shifts["u1"] = []db.Shift{
		{ID: "s1", UserID: "u1", Date: "2025-01-09", StartTime: "15:00", EndTime: "23:00", Status: "PUBLISHED"},
	}

	result, err := ValidateMove(context.Background(), store, zap.NewNop(), rules.SwissLawDefaults(), MoveParams{
		UserID:      "u1",
		FacilityID:  "f1",
		Placement:   constraints.ShiftPlacement{Date: "2025-01-10", StartTime: "06:00", EndTime: "14:00"},
		Force:       true,
		ForceAuthor: "admin-7",
		ForceReason: "flu outbreak, ward short-staffed",
	})

	require.NoError(t, err)
	assert.True(t, result.Result.Valid)
	require.Len(t, result.Result.Violations, 1)
	assert.Equal(t, constraints.SeverityWarning, result.Result.Violations[0].Severity)
	require.NotEmpty(t, result.Result.Warnings)
	assert.Contains(t, result.Result.Warnings[0], "FORCE OVERRIDE")

	require.NotNil(t, result.Override)
	assert.Equal(t, "admin-7", result.Override.Author)
	assert.Equal(t, "flu outbreak, ward short-staffed", result.Override.Reason)
	assert.Equal(t, []constraints.ViolationCode{constraints.CodeDailyRest}, result.Override.BypassedCodes)
	assert.False(t, result.Override.At.IsZero())
}

func TestValidateMove_ForceWithoutViolations(t *testing.T) {
	store := newMockStore()

	result, err := ValidateMove(context.Background(), store, zap.NewNop(), rules.SwissLawDefaults(), MoveParams{
		UserID:     "u1",
		FacilityID: "f1",
		Placement:  constraints.ShiftPlacement{Date: "2025-01-10", StartTime: "08:00", EndTime: "16:00"},
		Force:      true,
	})

	require.NoError(t, err)
	assert.True(t, result.Result.Valid)
	assert.Nil(t, result.Override)
}

func TestValidateMove_RequiresAssignedWorker(t *testing.T) {
	_, err := ValidateMove(context.Background(), newMockStore(), zap.NewNop(), rules.SwissLawDefaults(), MoveParams{
		FacilityID: "f1",
		Placement:  constraints.ShiftPlacement{Date: "2025-01-10", StartTime: "08:00", EndTime: "16:00"},
	})
	assert.Error(t, err)
}

func TestValidateMove_StoreErrorPropagates(t *testing.T) {
	store := newMockStore()
	store.shiftsErr["u1"] = errors.New("connection reset")

	_, err := ValidateMove(context.Background(), store, zap.NewNop(), rules.SwissLawDefaults(), MoveParams{
		UserID:     "u1",
		FacilityID: "f1",
		Placement:  constraints.ShiftPlacement{Date: "2025-01-10", StartTime: "08:00", EndTime: "16:00"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}
