package model

// ShiftStatus is the lifecycle state of a stored shift
type ShiftStatus string

const (
	ShiftStatusDraft     ShiftStatus = "DRAFT"
	ShiftStatusPublished ShiftStatus = "PUBLISHED"
	ShiftStatusCompleted ShiftStatus = "COMPLETED"
	ShiftStatusCancelled ShiftStatus = "CANCELLED"
)

// EmploymentType classifies how a worker is attached to a facility
type EmploymentType string

const (
	EmploymentInternal EmploymentType = "INTERNAL"
	EmploymentFloater  EmploymentType = "FLOATER"
	EmploymentExternal EmploymentType = "EXTERNAL"
)

func (e EmploymentType) IsValid() bool {
	return e == EmploymentInternal || e == EmploymentFloater || e == EmploymentExternal
}

// AvailabilityLevel is a worker's self-reported availability for a date
type AvailabilityLevel string

const (
	AvailabilityPreferred  AvailabilityLevel = "PREFERRED"
	AvailabilityAvailable  AvailabilityLevel = "AVAILABLE"
	AvailabilityImpossible AvailabilityLevel = "IMPOSSIBLE"
)

// ContractStatus is the lifecycle state of an employment contract.
// Only ACTIVE contracts participate in constraint checks.
type ContractStatus string

const (
	ContractStatusActive     ContractStatus = "ACTIVE"
	ContractStatusTerminated ContractStatus = "TERMINATED"
)

// Worker represents a facility staff member as seen by the ranker
type Worker struct {
	ID             string
	FirstName      string
	LastName       string
	FacilityID     string
	Role           string
	EmploymentType EmploymentType
	Status         string
}
