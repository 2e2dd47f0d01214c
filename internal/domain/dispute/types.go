package dispute

type Status string

const (
	StatusOpen     Status = "open"
	StatusResolved Status = "resolved"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusResolved:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// State is the dispute situation of a transaction as seen by the
// permission matrix.
type State string

const (
	StateNone     State = "NONE"
	StateOpen     State = "OPEN"
	StateResolved State = "RESOLVED"
)

func (s State) String() string {
	return string(s)
}

// StateOf maps a linked dispute (or none) to its state.
func StateOf(d *Dispute) State {
	if d == nil {
		return StateNone
	}
	if d.Status() == StatusResolved {
		return StateResolved
	}
	return StateOpen
}

// ClaimStatusOpen is the only status a claim is written with.
const ClaimStatusOpen = "open"
