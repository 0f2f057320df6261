package constraints

import (
	"fmt"
	"time"

	"github.com/InteriMed/Medishift-sub000/pkg/core/model"
)

// parsedShift is an existing shift with its clock times resolved to
// fractional hours, so each shift is parsed at most once per evaluation
type parsedShift struct {
	id    string
	date  string
	start float64
	end   float64
}

// Evaluate runs every labor-time check against the proposed placement and
// returns the accumulated result. Rule violations are returned inside the
// result; the error return is reserved for operational failures such as
// malformed dates or times. All checks run — none short-circuits the others.
func Evaluate(input EvaluationInput) (ValidationResult, error) {
	date, err := time.Parse(dateLayout, input.Placement.Date)
	if err != nil {
		return ValidationResult{}, fmt.Errorf("invalid placement date %q: %w", input.Placement.Date, err)
	}

	start, err := ParseClock(input.Placement.StartTime)
	if err != nil {
		return ValidationResult{}, fmt.Errorf("invalid placement start time: %w", err)
	}
	end, err := ParseClock(input.Placement.EndTime)
	if err != nil {
		return ValidationResult{}, fmt.Errorf("invalid placement end time: %w", err)
	}
	duration := ShiftDuration(start, end)

	byDate, err := indexShifts(input.ExistingShifts, input.ExcludeShiftID)
	if err != nil {
		return ValidationResult{}, err
	}

	b := newResultBuilder()
	r := input.Rules

	// Check 1: single-shift duration cap. Exactly at the limit is compliant.
	if duration > r.MaxDailyHours {
		b.addViolation(ConstraintViolation{
			Code:     CodeMaxDailyHours,
			Severity: SeverityError,
			Message: fmt.Sprintf("Shift duration (%sh) exceeds maximum daily hours (%sh)",
				formatHours(duration), formatHours(r.MaxDailyHours)),
		})
	}

	// Check 2: daily rest against the adjacent calendar days. Each
	// direction is judged independently and may emit its own violation.
	checkDailyRest(b, date, start, end, byDate, r.MinDailyRestHours)

	// Check 3: consecutive occupied days around the proposed date
	checkConsecutiveDays(b, date, byDate, r.MaxConsecutiveDays)

	// Check 4: total hours inside the ISO week of the proposed date.
	// The weekly total becomes the burden score whether or not it violates.
	weekly := checkWeeklyHours(b, date, duration, byDate, r.MaxWeeklyHours)

	// Check 5: contract cap, plus an advisory when within 10% of it
	if c := input.Contract; c != nil {
		if weekly > c.MaxWeeklyHours {
			b.addViolation(ConstraintViolation{
				Code:     CodeContractHours,
				Severity: SeverityError,
				Message: fmt.Sprintf("Weekly hours (%sh) exceed contract limit (%sh)",
					formatHours(weekly), formatHours(c.MaxWeeklyHours)),
			})
		} else if weekly > c.MaxWeeklyHours*0.9 {
			b.addWarning(fmt.Sprintf("Approaching contract limit (%sh / %sh)",
				formatHours(weekly), formatHours(c.MaxWeeklyHours)))
		}
	}

	return b.finalize(weekly, input.Force), nil
}

// indexShifts groups the worker's shifts by calendar date, dropping the
// excluded shift and anything cancelled, and pre-parsing clock times
func indexShifts(shifts []ExistingShift, excludeID string) (map[string][]parsedShift, error) {
	byDate := make(map[string][]parsedShift)
	for _, s := range shifts {
		if excludeID != "" && s.ID == excludeID {
			continue
		}
		if s.Status == model.ShiftStatusCancelled {
			continue
		}
		if _, err := time.Parse(dateLayout, s.Date); err != nil {
			return nil, fmt.Errorf("shift %s has invalid date %q: %w", s.ID, s.Date, err)
		}
		start, err := ParseClock(s.StartTime)
		if err != nil {
			return nil, fmt.Errorf("shift %s: %w", s.ID, err)
		}
		end, err := ParseClock(s.EndTime)
		if err != nil {
			return nil, fmt.Errorf("shift %s: %w", s.ID, err)
		}
		byDate[s.Date] = append(byDate[s.Date], parsedShift{id: s.ID, date: s.Date, start: start, end: end})
	}
	return byDate, nil
}

func checkDailyRest(b *resultBuilder, date time.Time, start, end float64, byDate map[string][]parsedShift, minRest float64) {
	prevDate := date.AddDate(0, 0, -1).Format(dateLayout)
	nextDate := date.AddDate(0, 0, 1).Format(dateLayout)

	// Previous day: rest runs from that shift's end to the proposed start.
	// With several shifts on the day, the latest-ending one bounds the gap.
	if prev, ok := latestEnding(byDate[prevDate]); ok {
		rest := (24 - prev.end) + start
		if rest < minRest {
			b.addViolation(ConstraintViolation{
				Code:     CodeDailyRest,
				Severity: SeverityError,
				Message: fmt.Sprintf("Insufficient rest between shifts (%sh < %sh required)",
					formatHours(rest), formatHours(minRest)),
				AffectedShifts: []string{prev.id},
			})
		}
	}

	// Next day: rest runs from the proposed end to that shift's start
	if next, ok := earliestStarting(byDate[nextDate]); ok {
		rest := (24 - end) + next.start
		if rest < minRest {
			b.addViolation(ConstraintViolation{
				Code:     CodeDailyRest,
				Severity: SeverityError,
				Message: fmt.Sprintf("Insufficient rest before next shift (%sh < %sh required)",
					formatHours(rest), formatHours(minRest)),
				AffectedShifts: []string{next.id},
			})
		}
	}
}

func checkConsecutiveDays(b *resultBuilder, date time.Time, byDate map[string][]parsedShift, maxConsecutive int) {
	// The proposed day itself counts as one
	consecutive := 1
	var affected []string

	// Walk backward while the worker has a shift on the day
	for d := date.AddDate(0, 0, -1); ; d = d.AddDate(0, 0, -1) {
		shifts, ok := byDate[d.Format(dateLayout)]
		if !ok {
			break
		}
		consecutive++
		for _, s := range shifts {
			affected = append(affected, s.id)
		}
	}

	// Walk forward independently
	for d := date.AddDate(0, 0, 1); ; d = d.AddDate(0, 0, 1) {
		shifts, ok := byDate[d.Format(dateLayout)]
		if !ok {
			break
		}
		consecutive++
		for _, s := range shifts {
			affected = append(affected, s.id)
		}
	}

	if consecutive > maxConsecutive {
		b.addViolation(ConstraintViolation{
			Code:     CodeConsecutiveDays,
			Severity: SeverityError,
			Message: fmt.Sprintf("Would result in %d consecutive days (max %d allowed)",
				consecutive, maxConsecutive),
			AffectedShifts: affected,
		})
	}
}

// checkWeeklyHours sums the ISO week (Monday-Sunday) containing the proposed
// date and returns the total including the proposed duration
func checkWeeklyHours(b *resultBuilder, date time.Time, duration float64, byDate map[string][]parsedShift, maxWeekly float64) float64 {
	monday, sunday := isoWeekBounds(date)
	mondayStr := monday.Format(dateLayout)
	sundayStr := sunday.Format(dateLayout)

	weekly := duration
	var weekShiftIDs []string
	for day, shifts := range byDate {
		// ISO date strings order lexicographically
		if day < mondayStr || day > sundayStr {
			continue
		}
		for _, s := range shifts {
			weekly += ShiftDuration(s.start, s.end)
			weekShiftIDs = append(weekShiftIDs, s.id)
		}
	}

	if weekly > maxWeekly {
		b.addViolation(ConstraintViolation{
			Code:     CodeWeeklyHours,
			Severity: SeverityError,
			Message: fmt.Sprintf("Total weekly hours (%sh) exceeds maximum (%sh)",
				formatHours(weekly), formatHours(maxWeekly)),
			AffectedShifts: weekShiftIDs,
		})
	}

	return weekly
}

func latestEnding(shifts []parsedShift) (parsedShift, bool) {
	if len(shifts) == 0 {
		return parsedShift{}, false
	}
	best := shifts[0]
	for _, s := range shifts[1:] {
		if s.end > best.end {
			best = s
		}
	}
	return best, true
}

func earliestStarting(shifts []parsedShift) (parsedShift, bool) {
	if len(shifts) == 0 {
		return parsedShift{}, false
	}
	best := shifts[0]
	for _, s := range shifts[1:] {
		if s.start < best.start {
			best = s
		}
	}
	return best, true
}
