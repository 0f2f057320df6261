package db

// Shift represents a stored shift record. UserID is empty for open shifts
// that have no assigned worker yet.
type Shift struct {
	ID         string
	UserID     string
	FacilityID string
	Date       string // "2006-01-02"
	StartTime  string // "HH:MM"
	EndTime    string // "HH:MM"
	Role       string
	Status     string // DRAFT | PUBLISHED | COMPLETED | CANCELLED
}

// Contract represents an employment contract record
type Contract struct {
	ID                 string
	UserID             string
	FacilityID         string
	MaxWeeklyHours     float64
	AnnualVacationDays float64
	Status             string // ACTIVE | TERMINATED
}

// Worker represents a facility staff member record
type Worker struct {
	ID             string
	FirstName      string
	LastName       string
	FacilityID     string
	Role           string
	EmploymentType string // INTERNAL | FLOATER | EXTERNAL
	Status         string // ACTIVE | INACTIVE
}

// AvailabilityMark is a worker's self-reported availability for one date
type AvailabilityMark struct {
	ID     string
	UserID string
	Date   string
	Level  string // PREFERRED | AVAILABLE | IMPOSSIBLE
}
