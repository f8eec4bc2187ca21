package reservation

type Status string

const (
	StatusPendingLocation Status = "pending-location"
	StatusLocated         Status = "located"
	StatusRetrieved       Status = "retrieved"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingLocation, StatusLocated, StatusRetrieved:
		return true
	default:
		return false
	}
}

type Mode string

const (
	ModeDate  Mode = "date"
	ModeCount Mode = "count"
)

func (m Mode) IsValid() bool {
	return m == ModeDate || m == ModeCount
}
