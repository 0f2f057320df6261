package services

import (
	"context"

	"github.com/InteriMed/Medishift-sub000/pkg/db"
)

// ValidateMoveStore defines the database operations needed to validate a
// single proposed placement
type ValidateMoveStore interface {
	ListActiveShifts(ctx context.Context, userID, facilityID string) ([]db.Shift, error)
	GetActiveContract(ctx context.Context, userID string) (*db.Contract, error)
}

// ResolveGapStore defines the database operations needed to rank candidates
// for a coverage gap
type ResolveGapStore interface {
	ValidateMoveStore
	ListActiveWorkersByRole(ctx context.Context, facilityID, role string) ([]db.Worker, error)
	GetAvailabilityMark(ctx context.Context, userID, date string) (*db.AvailabilityMark, error)
	GetVacationBalance(ctx context.Context, userID, facilityID string) (float64, error)
}

// CreateShiftStore defines the database operations needed to create shifts
type CreateShiftStore interface {
	ValidateMoveStore
	InsertShifts(ctx context.Context, shifts []db.Shift) error
}
