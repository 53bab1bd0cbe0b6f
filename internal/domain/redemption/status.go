package redemption

import "errors"

var ErrInvalidTransition = errors.New("invalid status transition")

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRedeemed  Status = "redeemed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string { return string(s) }

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRedeemed, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

// The single transition table every status change goes through.
// pending -> approved | cancelled
// approved -> redeemed | cancelled
// redeemed, cancelled are terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusApproved, StatusCancelled},
	StatusApproved:  {StatusRedeemed, StatusCancelled},
	StatusRedeemed:  {},
	StatusCancelled: {},
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidateTransition returns ErrInvalidTransition unless the table allows
// from -> to. Self-transitions are never allowed.
func ValidateTransition(from, to Status) error {
	if !from.CanTransitionTo(to) {
		return ErrInvalidTransition
	}
	return nil
}
