package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/InteriMed/Medishift-sub000/pkg/core/constraints"
	"github.com/InteriMed/Medishift-sub000/pkg/core/model"
	"github.com/InteriMed/Medishift-sub000/pkg/core/rules"
	"github.com/InteriMed/Medishift-sub000/pkg/db"
)

// CreateShiftParams describes one shift, or a recurring series of shifts
// when Repeat is set
type CreateShiftParams struct {
	// UserID may be empty for an open shift; open shifts skip validation
	// since no worker's limits are touched until assignment
	UserID     string
	FacilityID string
	Role       string
	Date       string // "2006-01-02", first occurrence when repeating
	StartTime  string // "HH:MM"
	EndTime    string // "HH:MM"

	// Repeat is an optional RRULE string (e.g. "FREQ=WEEKLY;BYDAY=MO")
	Repeat string
	// RepeatUntil bounds the expansion, required when Repeat is set
	RepeatUntil string

	// Force downgrades blocking violations per occurrence
	Force bool
	// DryRun validates the whole batch without inserting anything
	DryRun bool
}

// PlacementValidation pairs one occurrence date with its engine result
type PlacementValidation struct {
	Date   string
	Result constraints.ValidationResult
}

// CreateShiftResult contains the created shifts and per-occurrence results
type CreateShiftResult struct {
	Created     []db.Shift
	Validations []PlacementValidation

	// Success means every assigned occurrence came back valid (possibly
	// via force override); nothing is inserted otherwise
	Success bool
}

// CreateShift validates and inserts one shift or a recurring series. Each
// assigned occurrence is checked against the worker's stored shifts plus the
// occurrences already accepted earlier in the batch, so a series cannot
// smuggle in its own consecutive-days or weekly-hours violations.
func CreateShift(ctx context.Context, database CreateShiftStore, logger *zap.Logger, ruleSet rules.RuleSet, params CreateShiftParams) (*CreateShiftResult, error) {
	if params.FacilityID == "" {
		return nil, fmt.Errorf("facility id is required")
	}

	dates, err := expandOccurrences(params)
	if err != nil {
		return nil, err
	}
	logger.Debug("Expanded shift occurrences",
		zap.Int("count", len(dates)),
		zap.Bool("recurring", params.Repeat != ""))

	result := &CreateShiftResult{Success: true}

	var existing []constraints.ExistingShift
	var contract *constraints.Contract
	if params.UserID != "" {
		shifts, err := database.ListActiveShifts(ctx, params.UserID, params.FacilityID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch shifts: %w", err)
		}
		existing = toEngineShifts(shifts)

		c, err := database.GetActiveContract(ctx, params.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch contract: %w", err)
		}
		if c != nil {
			contract = &constraints.Contract{MaxWeeklyHours: c.MaxWeeklyHours}
		}
	}

	for _, date := range dates {
		shiftID := uuid.New().String()

		if params.UserID != "" {
			validation, err := constraints.Evaluate(constraints.EvaluationInput{
				Placement: constraints.ShiftPlacement{
					Date:      date,
					StartTime: params.StartTime,
					EndTime:   params.EndTime,
					Role:      params.Role,
				},
				ExistingShifts: existing,
				Contract:       contract,
				Force:          params.Force,
				Rules:          ruleSet,
			})
			if err != nil {
				return nil, fmt.Errorf("evaluation failed for %s: %w", date, err)
			}
			result.Validations = append(result.Validations, PlacementValidation{Date: date, Result: validation})

			if !validation.Valid {
				result.Success = false
				continue
			}

			// Accepted occurrences join the schedule context so the
			// rest of the series is checked against them too
			existing = append(existing, constraints.ExistingShift{
				ID:        shiftID,
				Date:      date,
				StartTime: params.StartTime,
				EndTime:   params.EndTime,
				Status:    model.ShiftStatusDraft,
			})
		}

		result.Created = append(result.Created, db.Shift{
			ID:         shiftID,
			UserID:     params.UserID,
			FacilityID: params.FacilityID,
			Date:       date,
			StartTime:  params.StartTime,
			EndTime:    params.EndTime,
			Role:       params.Role,
			Status:     string(model.ShiftStatusDraft),
		})
	}

	if !result.Success {
		logger.Warn("Shift batch rejected by constraint checks",
			zap.Int("occurrences", len(dates)))
		result.Created = nil
		return result, nil
	}

	if params.DryRun {
		logger.Info("Dry run - shifts not saved", zap.Int("count", len(result.Created)))
		return result, nil
	}

	if err := database.InsertShifts(ctx, result.Created); err != nil {
		return nil, fmt.Errorf("failed to save shifts: %w", err)
	}
	logger.Info("Shifts created",
		zap.Int("count", len(result.Created)),
		zap.String("user_id", params.UserID),
		zap.String("facility_id", params.FacilityID))

	return result, nil
}

// expandOccurrences returns the occurrence dates for the params: just the
// start date, or every RRULE occurrence between the start date and the
// until bound (inclusive)
func expandOccurrences(params CreateShiftParams) ([]string, error) {
	start, err := time.Parse("2006-01-02", params.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", params.Date, err)
	}

	if params.Repeat == "" {
		return []string{params.Date}, nil
	}

	if params.RepeatUntil == "" {
		return nil, fmt.Errorf("repeatUntil is required when repeat is set")
	}
	until, err := time.Parse("2006-01-02", params.RepeatUntil)
	if err != nil {
		return nil, fmt.Errorf("invalid repeatUntil %q: %w", params.RepeatUntil, err)
	}
	if until.Before(start) {
		return nil, fmt.Errorf("repeatUntil %s is before start date %s", params.RepeatUntil, params.Date)
	}

	rule, err := rrule.StrToRRule(params.Repeat)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rrule: %w", err)
	}
	rule.DTStart(start)

	occurrences := rule.Between(start, until, true)
	if len(occurrences) == 0 {
		return nil, fmt.Errorf("rrule produces no occurrences between %s and %s", params.Date, params.RepeatUntil)
	}

	dates := make([]string, len(occurrences))
	for i, occ := range occurrences {
		dates[i] = occ.Format("2006-01-02")
	}
	return dates, nil
}
