package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/InteriMed/Medishift-sub000/pkg/core/constraints"
	"github.com/InteriMed/Medishift-sub000/pkg/core/model"
	"github.com/InteriMed/Medishift-sub000/pkg/core/rules"
	"github.com/InteriMed/Medishift-sub000/pkg/db"
)

// MoveParams describes one proposed placement of a worker
type MoveParams struct {
	UserID     string
	FacilityID string
	Placement  constraints.ShiftPlacement

	// ExcludeShiftID removes one shift from the checks, used when the
	// placement is a move of that shift rather than a new one
	ExcludeShiftID string

	// Force downgrades blocking violations to warnings. Callers are
	// expected to record the justification they collected; the returned
	// OverrideRecord carries the fields to persist.
	Force       bool
	ForceAuthor string
	ForceReason string
}

// OverrideRecord is what a caller needs to persist alongside a forced
// placement. The engine itself stores nothing.
type OverrideRecord struct {
	Author        string
	Reason        string
	BypassedCodes []constraints.ViolationCode
	At            time.Time
}

// MoveResult is the outcome of validating one proposed placement
type MoveResult struct {
	Result   constraints.ValidationResult
	Override *OverrideRecord
}

// ValidateMove fetches the worker's schedule context and evaluates the
// proposed placement against the given rule set. Rule violations come back
// inside the result; the error return is reserved for operational failures.
func ValidateMove(ctx context.Context, database ValidateMoveStore, logger *zap.Logger, ruleSet rules.RuleSet, params MoveParams) (*MoveResult, error) {
	// Only assignment to a specific worker triggers the checks; an open
	// shift has nobody whose rest or hours could be violated
	if params.UserID == "" {
		return nil, fmt.Errorf("placement has no assigned worker - nothing to validate")
	}
	if params.FacilityID == "" {
		return nil, fmt.Errorf("facility id is required")
	}

	logger.Debug("Validating placement",
		zap.String("user_id", params.UserID),
		zap.String("facility_id", params.FacilityID),
		zap.String("date", params.Placement.Date),
		zap.Bool("force", params.Force))

	shifts, err := database.ListActiveShifts(ctx, params.UserID, params.FacilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}
	logger.Debug("Fetched existing shifts", zap.Int("count", len(shifts)))

	contract, err := database.GetActiveContract(ctx, params.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contract: %w", err)
	}

	input := constraints.EvaluationInput{
		Placement:      params.Placement,
		ExistingShifts: toEngineShifts(shifts),
		ExcludeShiftID: params.ExcludeShiftID,
		Force:          params.Force,
		Rules:          ruleSet,
	}
	if contract != nil {
		input.Contract = &constraints.Contract{MaxWeeklyHours: contract.MaxWeeklyHours}
	}

	result, err := constraints.Evaluate(input)
	if err != nil {
		return nil, fmt.Errorf("evaluation failed: %w", err)
	}

	logger.Info("Placement evaluated",
		zap.String("user_id", params.UserID),
		zap.Bool("valid", result.Valid),
		zap.Int("violations", len(result.Violations)),
		zap.Float64("burden_score", result.BurdenScore))

	moveResult := &MoveResult{Result: result}

	if params.Force && len(result.Violations) > 0 {
		if params.ForceReason == "" {
			logger.Warn("Force override used without a recorded reason",
				zap.String("user_id", params.UserID))
		}
		codes := make([]constraints.ViolationCode, len(result.Violations))
		for i, v := range result.Violations {
			codes[i] = v.Code
		}
		moveResult.Override = &OverrideRecord{
			Author:        params.ForceAuthor,
			Reason:        params.ForceReason,
			BypassedCodes: codes,
			At:            time.Now().UTC(),
		}
	}

	return moveResult, nil
}

// toEngineShifts converts store records to the engine's input shape
func toEngineShifts(shifts []db.Shift) []constraints.ExistingShift {
	result := make([]constraints.ExistingShift, len(shifts))
	for i, s := range shifts {
		result[i] = constraints.ExistingShift{
			ID:        s.ID,
			Date:      s.Date,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Status:    model.ShiftStatus(s.Status),
		}
	}
	return result
}
