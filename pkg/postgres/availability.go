package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/InteriMed/Medishift-sub000/pkg/db"
)

// GetAvailabilityMark retrieves the worker's availability mark for a date.
// Returns nil without error when the worker left no mark.
func (d *DB) GetAvailabilityMark(ctx context.Context, userID, date string) (*db.AvailabilityMark, error) {
	var m db.AvailabilityMark
	var markDate time.Time
	err := d.pool.QueryRow(ctx, `
		SELECT id, user_id, mark_date, level
		FROM availability_mark
		WHERE user_id = $1 AND mark_date = $2
	`, userID, date).Scan(&m.ID, &m.UserID, &markDate, &m.Level)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query availability mark: %w", err)
	}
	m.Date = markDate.Format("2006-01-02")
	return &m, nil
}

// GetVacationBalance computes the worker's vacation balance: the annual
// entitlement on their active contract minus days already used (APPROVED)
// or awaiting approval (PENDING). A worker without an active contract has a
// balance of zero.
func (d *DB) GetVacationBalance(ctx context.Context, userID, facilityID string) (float64, error) {
	var balance float64
	err := d.pool.QueryRow(ctx, `
		SELECT c.annual_vacation_days - COALESCE((
			SELECT SUM(v.days)
			FROM vacation_booking v
			WHERE v.user_id = c.user_id
			  AND v.facility_id = c.facility_id
			  AND v.status IN ('APPROVED', 'PENDING')
		), 0)
		FROM contract c
		WHERE c.user_id = $1 AND c.facility_id = $2 AND c.status = 'ACTIVE'
		LIMIT 1
	`, userID, facilityID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to compute vacation balance: %w", err)
	}
	return balance, nil
}
