package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/InteriMed/Medishift-sub000/pkg/core/constraints"
	"github.com/InteriMed/Medishift-sub000/pkg/core/gapresolver"
	"github.com/InteriMed/Medishift-sub000/pkg/core/model"
	"github.com/InteriMed/Medishift-sub000/pkg/core/rules"
)

// GapParams describes a facility's unmet staffing need
type GapParams struct {
	FacilityID  string
	Date        string // "2006-01-02"
	MissingRole string
	StartTime   string // "HH:MM"
	EndTime     string // "HH:MM"
}

// defaultScanConcurrency bounds the per-candidate fan-out when the caller
// does not configure one
const defaultScanConcurrency = 8

// ResolveGap ranks every eligible worker for a coverage gap and proposes a
// single recommendation. Candidates are scanned concurrently through a
// bounded pool; each scan runs the constraint engine (non-forced) and
// gathers availability, vacation and employment signals. A candidate whose
// data fetch fails is kept as a zero-score diagnostic entry rather than
// failing the call. Caller cancellation stops remaining scans and marks the
// outcome truncated while keeping what was already collected.
func ResolveGap(ctx context.Context, database ResolveGapStore, logger *zap.Logger, ruleSet rules.RuleSet, weights gapresolver.Weights, maxConcurrent int, params GapParams) (*gapresolver.Outcome, error) {
	if params.FacilityID == "" || params.MissingRole == "" {
		return nil, fmt.Errorf("facility id and missing role are required")
	}
	if maxConcurrent <= 0 {
		maxConcurrent = defaultScanConcurrency
	}

	logger.Debug("Resolving coverage gap",
		zap.String("facility_id", params.FacilityID),
		zap.String("date", params.Date),
		zap.String("role", params.MissingRole),
		zap.String("window", params.StartTime+"-"+params.EndTime))

	workers, err := database.ListActiveWorkersByRole(ctx, params.FacilityID, params.MissingRole)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	logger.Debug("Eligible workers found", zap.Int("count", len(workers)))

	placement := constraints.ShiftPlacement{
		Date:      params.Date,
		StartTime: params.StartTime,
		EndTime:   params.EndTime,
		Role:      params.MissingRole,
	}

	// Results land at the worker's scan index so completion order cannot
	// influence the final ordering; nil slots mean the scan never ran.
	results := make([]*gapresolver.CandidateScore, len(workers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for i, record := range workers {
		i := i
		if gctx.Err() != nil {
			break
		}
		worker := model.Worker{
			ID:             record.ID,
			FirstName:      record.FirstName,
			LastName:       record.LastName,
			FacilityID:     record.FacilityID,
			Role:           record.Role,
			EmploymentType: model.EmploymentType(record.EmploymentType),
			Status:         record.Status,
		}
		g.Go(func() error {
			score := scanCandidate(gctx, database, logger, ruleSet, weights, placement, params.FacilityID, worker)
			results[i] = score
			return nil
		})
	}

	// Workers never return errors, so Wait only flushes the pool
	_ = g.Wait()

	outcome := &gapresolver.Outcome{Candidates: make([]gapresolver.CandidateScore, 0, len(results))}
	for _, r := range results {
		if r == nil {
			outcome.Truncated = true
			continue
		}
		outcome.Candidates = append(outcome.Candidates, *r)
	}

	gapresolver.SortCandidates(outcome.Candidates)
	outcome.Recommendation = gapresolver.Recommend(outcome.Candidates)

	logger.Info("Gap resolved",
		zap.Int("candidates", len(outcome.Candidates)),
		zap.Bool("truncated", outcome.Truncated),
		zap.Bool("has_recommendation", outcome.Recommendation != nil))

	return outcome, nil
}

// scanCandidate gathers one worker's signals and scores them. Returns nil
// when the scan was cut short by cancellation; any other failure produces a
// zero-score diagnostic entry so one bad record cannot abort the whole scan.
func scanCandidate(ctx context.Context, database ResolveGapStore, logger *zap.Logger, ruleSet rules.RuleSet, weights gapresolver.Weights, placement constraints.ShiftPlacement, facilityID string, worker model.Worker) *gapresolver.CandidateScore {
	sig, err := gatherSignals(ctx, database, ruleSet, placement, facilityID, worker)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		logger.Warn("Candidate scan failed",
			zap.String("user_id", worker.ID),
			zap.Error(err))
		return &gapresolver.CandidateScore{
			UserID:   worker.ID,
			Score:    0,
			Category: gapresolver.CategoryInternal,
			Reason:   fmt.Sprintf("Data fetch failed: %v", err),
		}
	}

	score := gapresolver.ScoreCandidate(*sig, weights)
	return &score
}

func gatherSignals(ctx context.Context, database ResolveGapStore, ruleSet rules.RuleSet, placement constraints.ShiftPlacement, facilityID string, worker model.Worker) (*gapresolver.CandidateSignals, error) {
	shifts, err := database.ListActiveShifts(ctx, worker.ID, facilityID)
	if err != nil {
		return nil, fmt.Errorf("shifts: %w", err)
	}
	contract, err := database.GetActiveContract(ctx, worker.ID)
	if err != nil {
		return nil, fmt.Errorf("contract: %w", err)
	}

	input := constraints.EvaluationInput{
		Placement:      placement,
		ExistingShifts: toEngineShifts(shifts),
		Rules:          ruleSet,
	}
	if contract != nil {
		input.Contract = &constraints.Contract{MaxWeeklyHours: contract.MaxWeeklyHours}
	}

	validation, err := constraints.Evaluate(input)
	if err != nil {
		return nil, fmt.Errorf("evaluation: %w", err)
	}

	mark, err := database.GetAvailabilityMark(ctx, worker.ID, placement.Date)
	if err != nil {
		return nil, fmt.Errorf("availability: %w", err)
	}

	balance, err := database.GetVacationBalance(ctx, worker.ID, facilityID)
	if err != nil {
		return nil, fmt.Errorf("vacation balance: %w", err)
	}

	sig := &gapresolver.CandidateSignals{
		Worker:          worker,
		Validation:      validation,
		VacationBalance: balance,
	}
	if mark != nil {
		sig.Availability = model.AvailabilityLevel(mark.Level)
	}
	return sig, nil
}
