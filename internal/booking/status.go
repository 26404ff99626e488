package booking

// Step is the current state of a booking session.
type Step string

const (
	StepSelectSeating Step = "SELECT_SEATING"
	StepReview        Step = "REVIEW"
	StepPayment       Step = "PAYMENT"
	StepConfirmed     Step = "CONFIRMED"
)

func (s Step) IsValid() bool {
	switch s {
	case StepSelectSeating, StepReview, StepPayment, StepConfirmed:
		return true
	}
	return false
}

func (s Step) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are possible.
func (s Step) IsTerminal() bool {
	return s == StepConfirmed
}

// CanRestart reports whether the "change seating" action is allowed. It is a
// full restart back to seat selection, available from every non-terminal step.
func (s Step) CanRestart() bool {
	return !s.IsTerminal()
}
