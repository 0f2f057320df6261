package constraints

import "fmt"

// resultBuilder accumulates violations and warnings during one evaluation.
// It is finalized exactly once; the returned ValidationResult owns its own
// slices and is never mutated afterwards.
type resultBuilder struct {
	violations []ConstraintViolation
	warnings   []string
}

func newResultBuilder() *resultBuilder {
	return &resultBuilder{}
}

func (b *resultBuilder) addViolation(v ConstraintViolation) {
	b.violations = append(b.violations, v)
}

func (b *resultBuilder) addWarning(w string) {
	b.warnings = append(b.warnings, w)
}

// finalize assembles the result in check order. When force is set and
// violations were collected, the force-override transform is applied.
func (b *resultBuilder) finalize(burdenScore float64, force bool) ValidationResult {
	result := ValidationResult{
		Violations:  append([]ConstraintViolation(nil), b.violations...),
		BurdenScore: burdenScore,
		Warnings:    append([]string(nil), b.warnings...),
	}
	result.Valid = !hasError(result.Violations)

	if force && len(result.Violations) > 0 {
		return ApplyOverride(result)
	}
	return result
}

// ApplyOverride is the force-override transform: it never drops or re-runs
// anything. Every violation keeps its code, message and affected shifts but
// is re-tagged WARNING, the result becomes valid, and a notice with the
// bypassed count is prepended to the warnings. Callers passing force are
// expected to record their justification externally.
func ApplyOverride(result ValidationResult) ValidationResult {
	if len(result.Violations) == 0 {
		return result
	}

	overridden := make([]ConstraintViolation, len(result.Violations))
	for i, v := range result.Violations {
		v.Severity = SeverityWarning
		overridden[i] = v
	}

	warnings := make([]string, 0, len(result.Warnings)+1)
	warnings = append(warnings, fmt.Sprintf("FORCE OVERRIDE: %d violation(s) bypassed", len(result.Violations)))
	warnings = append(warnings, result.Warnings...)

	return ValidationResult{
		Valid:       true,
		Violations:  overridden,
		BurdenScore: result.BurdenScore,
		Warnings:    warnings,
	}
}

func hasError(violations []ConstraintViolation) bool {
	for _, v := range violations {
		if v.Severity == SeverityError {
			return true
		}
	}
	return false
}
