package rules

// RuleSet bundles the jurisdiction labor-time limits applied by the
// constraint engine. It is plain configuration data: callers construct one
// (or take the Swiss-law defaults) and pass it into every evaluation, so
// tests and per-facility overrides can supply synthetic limits.
type RuleSet struct {
	// MaxConsecutiveDays is the longest allowed unbroken run of calendar
	// days with at least one non-cancelled shift.
	MaxConsecutiveDays int

	// MinDailyRestHours is the minimum rest between the end of one shift
	// and the start of the next on adjacent days.
	MinDailyRestHours float64

	// MaxWeeklyHours caps total worked hours inside an ISO week.
	MaxWeeklyHours float64

	// MaxDailyHours caps the duration of a single shift.
	MaxDailyHours float64

	// MinWeeklyRestHours is part of the jurisdiction bundle but is not
	// enforced by the engine; it travels with the rule set so facility
	// overrides can carry a complete bundle.
	MinWeeklyRestHours float64
}

// SwissLawDefaults returns the default limits under Swiss labor law (ArG).
func SwissLawDefaults() RuleSet {
	return RuleSet{
		MaxConsecutiveDays: 6,
		MinDailyRestHours:  11,
		MaxWeeklyHours:     50,
		MaxDailyHours:      12,
		MinWeeklyRestHours: 35,
	}
}
