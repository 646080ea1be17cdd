package barber

type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusOnLeave   Status = "on_leave"
	StatusSuspended Status = "suspended"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusOnLeave, StatusSuspended:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type Specialty string

const (
	SpecialtyHaircut   Specialty = "haircut"
	SpecialtyBeardTrim Specialty = "beard_trim"
	SpecialtyShave     Specialty = "shave"
	SpecialtyColoring  Specialty = "coloring"
	SpecialtyStyling   Specialty = "styling"
	SpecialtyKidsCut   Specialty = "kids_cut"
)

func (s Specialty) String() string {
	return string(s)
}

func SpecialtiesFromStrings(values []string) []Specialty {
	result := make([]Specialty, len(values))
	for i, v := range values {
		result[i] = Specialty(v)
	}
	return result
}

func SpecialtiesToStrings(values []Specialty) []string {
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = string(v)
	}
	return result
}
