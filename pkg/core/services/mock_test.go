package services

import (
	"context"

	"github.com/InteriMed/Medishift-sub000/pkg/db"
)

// mockStore is a hand-rolled in-memory database for service tests. Error
// fields inject failures per operation; shiftsErr injects them per user so a
// single candidate's fetch can fail while the rest succeed.
type mockStore struct {
	shifts    map[string][]db.Shift
	contracts map[string]*db.Contract
	marks     map[string]*db.AvailabilityMark
	balances  map[string]float64
	workers   []db.Worker

	inserted []db.Shift

	shiftsErr   map[string]error
	contractErr error
	workersErr  error
	markErr     error
	balanceErr  error
	insertErr   error
}

func newMockStore() *mockStore {
	return &mockStore{
		shifts:    map[string][]db.Shift{},
		contracts: map[string]*db.Contract{},
		marks:     map[string]*db.AvailabilityMark{},
		balances:  map[string]float64{},
		shiftsErr: map[string]error{},
	}
}

func (m *mockStore) ListActiveShifts(_ context.Context, userID, _ string) ([]db.Shift, error) {
	if err := m.shiftsErr[userID]; err != nil {
		return nil, err
	}
	return m.shifts[userID], nil
}

func (m *mockStore) GetActiveContract(_ context.Context, userID string) (*db.Contract, error) {
	if m.contractErr != nil {
		return nil, m.contractErr
	}
	return m.contracts[userID], nil
}

func (m *mockStore) ListActiveWorkersByRole(_ context.Context, facilityID, role string) ([]db.Worker, error) {
	if m.workersErr != nil {
		return nil, m.workersErr
	}
	var matched []db.Worker
	for _, w := range m.workers {
		if w.FacilityID == facilityID && w.Role == role {
			matched = append(matched, w)
		}
	}
	return matched, nil
}

func (m *mockStore) GetAvailabilityMark(_ context.Context, userID, date string) (*db.AvailabilityMark, error) {
	if m.markErr != nil {
		return nil, m.markErr
	}
	return m.marks[userID+"|"+date], nil
}

func (m *mockStore) GetVacationBalance(_ context.Context, userID, _ string) (float64, error) {
	if m.balanceErr != nil {
		return 0, m.balanceErr
	}
	return m.balances[userID], nil
}

func (m *mockStore) InsertShifts(_ context.Context, shifts []db.Shift) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, shifts...)
	return nil
}
