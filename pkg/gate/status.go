package gate

// Status is the derived state of a gate for one evaluation.
type Status int

const (
	Locked Status = iota
	Unlocked
)

func (s Status) String() string {
	if s == Unlocked {
		return "unlocked"
	}
	return "locked"
}
