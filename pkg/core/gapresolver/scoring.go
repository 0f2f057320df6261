package gapresolver

import "github.com/InteriMed/Medishift-sub000/pkg/core/model"

// ScoreCandidate computes a worker's score for a gap from the gathered
// signals. Adjustments are additive and applied in a fixed order; conditions
// are not mutually exclusive, and a later adjustment may overwrite the
// reason or category set by an earlier one.
func ScoreCandidate(sig CandidateSignals, w Weights) CandidateScore {
	score := CandidateScore{
		UserID:          sig.Worker.ID,
		Category:        CategoryInternal,
		Violations:      sig.Validation.Violations,
		VacationBalance: sig.VacationBalance,
		WeeklyHours:     sig.Validation.BurdenScore,
	}

	// Constraint violations disqualify outright: no further adjustments
	if !sig.Validation.Valid {
		score.Score = 0
		score.Reason = "Constraint violations"
		return score
	}

	score.Score = BaseScore
	score.Reason = "Available"

	switch sig.Availability {
	case model.AvailabilityImpossible:
		score.Score += w.AvailabilityImpossible
		score.Reason = "Marked as impossible for this date"
	case model.AvailabilityPreferred:
		score.Score += w.AvailabilityPreferred
		score.Reason = "Prefers to work this date"
	}

	if sig.VacationBalance < 0 {
		// Negative balance means the worker owes time: put them to work
		score.Score += w.NegativeVacationBalance
		score.Category = CategoryInternalLowBalance
		score.Reason = "Negative vacation balance"
	} else if sig.VacationBalance > HighVacationBalanceDays {
		score.Score += w.HighVacationBalance
		score.Reason = "High vacation balance"
	}

	if score.WeeklyHours > HighWeeklyHoursThreshold {
		score.Score += w.HighWeeklyHours
		score.Reason = "High weekly hours"
		if score.WeeklyHours > OvertimeHoursThreshold {
			score.Category = CategoryOvertime
		}
	} else if score.WeeklyHours < LowWeeklyHoursThreshold {
		score.Score += w.LowWeeklyHours
		score.Reason = "Low weekly hours"
	}

	switch sig.Worker.EmploymentType {
	case model.EmploymentFloater:
		score.Score += w.Floater
		score.Category = CategoryFloater
		score.Reason = "Floater"
	case model.EmploymentExternal:
		score.Score += w.External
		score.Category = CategoryExternal
		score.Reason = "External worker"
	}

	return score
}
