package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/InteriMed/Medishift-sub000/pkg/db"
)

// ListActiveShifts retrieves a worker's shifts at a facility, excluding
// cancelled ones. Draft, published and completed shifts are all returned.
func (d *DB) ListActiveShifts(ctx context.Context, userID, facilityID string) ([]db.Shift, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, COALESCE(user_id, ''), facility_id, shift_date, start_time, end_time, role, status
		FROM shift
		WHERE user_id = $1 AND facility_id = $2 AND status != 'CANCELLED'
	`, userID, facilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []db.Shift
	for rows.Next() {
		var s db.Shift
		var shiftDate time.Time
		if err := rows.Scan(&s.ID, &s.UserID, &s.FacilityID, &shiftDate, &s.StartTime, &s.EndTime, &s.Role, &s.Status); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		s.Date = shiftDate.Format("2006-01-02")
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}

	return shifts, nil
}

// InsertShifts inserts shift records in a single transaction
func (d *DB) InsertShifts(ctx context.Context, shifts []db.Shift) error {
	if len(shifts) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, s := range shifts {
		var userID *string
		if s.UserID != "" {
			userID = &s.UserID
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO shift (id, user_id, facility_id, shift_date, start_time, end_time, role, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, s.ID, userID, s.FacilityID, s.Date, s.StartTime, s.EndTime, s.Role, s.Status)
		if err != nil {
			return fmt.Errorf("failed to insert shift %s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
