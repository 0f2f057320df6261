package db

import "context"

// ShiftStore defines shift read/write operations
type ShiftStore interface {
	// ListActiveShifts returns the worker's shifts at a facility,
	// excluding CANCELLED ones. DRAFT, PUBLISHED and COMPLETED are all
	// included since they all bind the worker's time.
	ListActiveShifts(ctx context.Context, userID, facilityID string) ([]Shift, error)
	InsertShifts(ctx context.Context, shifts []Shift) error
}

// ContractStore defines contract read operations
type ContractStore interface {
	// GetActiveContract returns the worker's ACTIVE contract, or nil
	// without error when there is none
	GetActiveContract(ctx context.Context, userID string) (*Contract, error)
}

// AvailabilityStore defines availability and vacation read operations
type AvailabilityStore interface {
	// GetAvailabilityMark returns the worker's mark for a date, or nil
	// without error when the worker left none
	GetAvailabilityMark(ctx context.Context, userID, date string) (*AvailabilityMark, error)

	// GetVacationBalance computes annual entitlement minus days already
	// used or pending approval, against the worker's active contract
	GetVacationBalance(ctx context.Context, userID, facilityID string) (float64, error)
}

// WorkerStore defines worker directory read operations
type WorkerStore interface {
	// ListActiveWorkersByRole returns ACTIVE workers of a facility whose
	// role matches
	ListActiveWorkersByRole(ctx context.Context, facilityID, role string) ([]Worker, error)
	ListWorkers(ctx context.Context, facilityID string) ([]Worker, error)
}

// Database is the full store surface; postgres.DB implements it
type Database interface {
	ShiftStore
	ContractStore
	AvailabilityStore
	WorkerStore
}
