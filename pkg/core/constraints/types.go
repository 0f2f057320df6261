package constraints

import (
	"github.com/InteriMed/Medishift-sub000/pkg/core/model"
	"github.com/InteriMed/Medishift-sub000/pkg/core/rules"
)

// ViolationCode identifies which labor-time rule a placement breaks
type ViolationCode string

const (
	CodeMaxDailyHours   ViolationCode = "MAX_DAILY_HOURS"
	CodeDailyRest       ViolationCode = "DAILY_REST_VIOLATION"
	CodeConsecutiveDays ViolationCode = "CONSECUTIVE_DAYS_VIOLATION"
	CodeWeeklyHours     ViolationCode = "WEEKLY_HOURS_VIOLATION"
	CodeContractHours   ViolationCode = "CONTRACT_HOURS_VIOLATION"
)

// Severity of a violation. Force override downgrades ERROR to WARNING.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// ShiftPlacement is a proposed shift to validate. Times are local "HH:MM";
// an end time earlier than the start time means the shift crosses midnight.
type ShiftPlacement struct {
	Date      string // "2006-01-02"
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
	Role      string
}

// ExistingShift is one of the worker's already-scheduled shifts, as read
// from the shift store. Cancelled shifts never reach the checks.
type ExistingShift struct {
	ID        string
	Date      string
	StartTime string
	EndTime   string
	Status    model.ShiftStatus
}

// Contract carries the contract fields the engine consumes
type Contract struct {
	MaxWeeklyHours float64
}

// ConstraintViolation is a single broken rule. Violations are data, not
// errors: the caller decides whether to block, warn, or force-override.
type ConstraintViolation struct {
	Code           ViolationCode
	Severity       Severity
	Message        string
	AffectedShifts []string
}

// ValidationResult is the outcome of evaluating one proposed placement
type ValidationResult struct {
	// Valid is true when no ERROR-severity violation remains
	Valid bool

	// Violations in check order; never mutated after Evaluate returns
	Violations []ConstraintViolation

	// BurdenScore is the worker's total hours in the ISO week of the
	// proposed date, including the proposed shift
	BurdenScore float64

	// Warnings are free-text advisories (approaching contract limit,
	// force-override notices)
	Warnings []string
}

// EvaluationInput is everything the engine needs for one evaluation.
// The rule set is an explicit input so facility overrides and tests can
// substitute their own limits.
type EvaluationInput struct {
	Placement ShiftPlacement

	// ExistingShifts are the worker's shifts at the same facility.
	// Entries matching ExcludeShiftID or with status CANCELLED are ignored.
	ExistingShifts []ExistingShift

	// Contract is the worker's ACTIVE contract, nil when there is none
	Contract *Contract

	// ExcludeShiftID removes one shift from consideration, used when
	// validating a move of an existing shift
	ExcludeShiftID string

	// Force downgrades blocking violations to warnings (see ApplyOverride)
	Force bool

	Rules rules.RuleSet
}
