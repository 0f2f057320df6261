package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/InteriMed/Medishift-sub000/pkg/db"
)

// GetActiveContract retrieves the worker's ACTIVE contract. Returns nil
// without error when the worker has none.
func (d *DB) GetActiveContract(ctx context.Context, userID string) (*db.Contract, error) {
	var c db.Contract
	err := d.pool.QueryRow(ctx, `
		SELECT id, user_id, facility_id, max_weekly_hours, annual_vacation_days, status
		FROM contract
		WHERE user_id = $1 AND status = 'ACTIVE'
		LIMIT 1
	`, userID).Scan(&c.ID, &c.UserID, &c.FacilityID, &c.MaxWeeklyHours, &c.AnnualVacationDays, &c.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query contract: %w", err)
	}
	return &c, nil
}
