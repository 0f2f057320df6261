package gapresolver

import (
	"github.com/InteriMed/Medishift-sub000/pkg/core/constraints"
	"github.com/InteriMed/Medishift-sub000/pkg/core/model"
)

// Category buckets candidates for a coverage gap. Precedence outranks raw
// score when ordering candidates.
type Category string

const (
	CategoryInternalLowBalance Category = "INTERNAL_LOW_BALANCE"
	CategoryInternal           Category = "INTERNAL"
	CategoryFloater            Category = "FLOATER"
	CategoryOvertime           Category = "OVERTIME"
	CategoryExternal           Category = "EXTERNAL"
)

// Precedence returns the sort rank of the category; lower sorts first
func (c Category) Precedence() int {
	switch c {
	case CategoryInternalLowBalance:
		return 1
	case CategoryInternal:
		return 2
	case CategoryFloater:
		return 3
	case CategoryOvertime:
		return 4
	case CategoryExternal:
		return 5
	default:
		return 6
	}
}

// CandidateScore is one worker's ranked suitability for a gap
type CandidateScore struct {
	UserID string

	// Score is a signed integer, conventionally 0-150. Candidates with
	// constraint violations or failed data fetches score 0.
	Score int

	// Reason is a single human explanation; later scoring adjustments
	// overwrite earlier ones (last writer wins, it is not a log)
	Reason string

	Category        Category
	Violations      []constraints.ConstraintViolation
	VacationBalance float64
	WeeklyHours     float64
}

// CandidateSignals bundles the per-candidate inputs to scoring
type CandidateSignals struct {
	Worker model.Worker

	// Validation is the non-forced engine result for the proposed slot
	Validation constraints.ValidationResult

	// Availability is the worker's mark for the gap date, empty when the
	// worker left no mark
	Availability model.AvailabilityLevel

	// VacationBalance is annual entitlement minus used/pending days
	VacationBalance float64
}

// Weights are the scoring adjustments. The magnitudes come from the original
// system with no documented rationale, so they are configuration rather than
// literals; DefaultWeights preserves them unchanged.
type Weights struct {
	AvailabilityImpossible  int `yaml:"availabilityImpossible"`
	AvailabilityPreferred   int `yaml:"availabilityPreferred"`
	NegativeVacationBalance int `yaml:"negativeVacationBalance"`
	HighVacationBalance     int `yaml:"highVacationBalance"`
	HighWeeklyHours         int `yaml:"highWeeklyHours"`
	LowWeeklyHours          int `yaml:"lowWeeklyHours"`
	Floater                 int `yaml:"floater"`
	External                int `yaml:"external"`
}

// DefaultWeights returns the adjustments used by the original ranker
func DefaultWeights() Weights {
	return Weights{
		AvailabilityImpossible:  -50,
		AvailabilityPreferred:   20,
		NegativeVacationBalance: 30,
		HighVacationBalance:     -10,
		HighWeeklyHours:         -20,
		LowWeeklyHours:          15,
		Floater:                 10,
		External:                -25,
	}
}

// Scoring thresholds. Like the weights these are inherited from the original
// system without documented calibration.
const (
	// BaseScore is the starting score for a constraint-clean candidate
	BaseScore = 100

	// HighVacationBalanceDays is the balance above which a candidate is
	// deprioritized (leave should be taken, not accumulated)
	HighVacationBalanceDays = 10

	// HighWeeklyHoursThreshold marks a loaded week
	HighWeeklyHoursThreshold = 40

	// OvertimeHoursThreshold re-categorizes the candidate as OVERTIME
	OvertimeHoursThreshold = 45

	// LowWeeklyHoursThreshold marks a light week worth topping up
	LowWeeklyHoursThreshold = 30
)

// Outcome is the full result of resolving one coverage gap
type Outcome struct {
	// Candidates in final ranked order
	Candidates []CandidateScore

	// Recommendation is the first ranked candidate with a positive score,
	// nil when every candidate scored zero or below
	Recommendation *CandidateScore

	// Truncated is set when caller cancellation stopped the scan before
	// every eligible worker was considered
	Truncated bool
}
