package postgres

import (
	"context"
	"fmt"

	"github.com/InteriMed/Medishift-sub000/pkg/db"
)

// ListActiveWorkersByRole retrieves ACTIVE workers of a facility whose role
// matches, ordered by id so scans are deterministic
func (d *DB) ListActiveWorkersByRole(ctx context.Context, facilityID, role string) ([]db.Worker, error) {
	return d.queryWorkers(ctx, `
		SELECT id, first_name, last_name, facility_id, role, employment_type, status
		FROM worker
		WHERE facility_id = $1 AND role = $2 AND status = 'ACTIVE'
		ORDER BY id
	`, facilityID, role)
}

// ListWorkers retrieves every worker of a facility regardless of status
func (d *DB) ListWorkers(ctx context.Context, facilityID string) ([]db.Worker, error) {
	return d.queryWorkers(ctx, `
		SELECT id, first_name, last_name, facility_id, role, employment_type, status
		FROM worker
		WHERE facility_id = $1
		ORDER BY last_name, first_name
	`, facilityID)
}

func (d *DB) queryWorkers(ctx context.Context, sql string, args ...any) ([]db.Worker, error) {
	rows, err := d.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query workers: %w", err)
	}
	defer rows.Close()

	var workers []db.Worker
	for rows.Next() {
		var w db.Worker
		if err := rows.Scan(&w.ID, &w.FirstName, &w.LastName, &w.FacilityID, &w.Role, &w.EmploymentType, &w.Status); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workers: %w", err)
	}

	return workers, nil
}
