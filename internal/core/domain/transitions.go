package domain

import (
	"fmt"

	"github.com/featherworks/aviary_backend/internal/apperrors"
)

// AnimalOperation names a lifecycle mutation applied to an animal.
type AnimalOperation string

const (
	OpMarkBreeding    AnimalOperation = "mark_breeding"
	OpMarkAvailable   AnimalOperation = "mark_available"
	OpPair            AnimalOperation = "pair"
	OpUnpair          AnimalOperation = "unpair"
	OpBeginIncubation AnimalOperation = "begin_incubation"
	OpEndIncubation   AnimalOperation = "end_incubation"
	OpSell            AnimalOperation = "sell"
	OpReturn          AnimalOperation = "return"
)

// transitions is the full lifecycle table: (operation, current status) -> next
// status. An operation missing an entry for the current status is illegal from
// that state; there is no other path between statuses.
var transitions = map[AnimalOperation]map[AnimalStatus]AnimalStatus{
	OpMarkBreeding: {
		StatusAvailable: StatusBreeding,
	},
	OpMarkAvailable: {
		StatusBreeding: StatusAvailable,
	},
	OpPair: {
		StatusBreeding: StatusPaired,
	},
	OpUnpair: {
		StatusPaired:     StatusBreeding,
		StatusIncubating: StatusBreeding,
	},
	OpBeginIncubation: {
		StatusPaired: StatusIncubating,
	},
	OpEndIncubation: {
		StatusIncubating: StatusPaired,
	},
	OpSell: {
		StatusAvailable: StatusSold,
		StatusBreeding:  StatusSold,
	},
	OpReturn: {
		StatusSold: StatusAvailable,
	},
}

// Transition resolves the next status for applying op to an animal currently
// in the given status. Illegal transitions are rejected with a validation
// error naming both the operation and the offending state; no string
// comparison against raw status values happens anywhere else.
func Transition(current AnimalStatus, op AnimalOperation) (AnimalStatus, error) {
	byState, ok := transitions[op]
	if !ok {
		return "", fmt.Errorf("%w: unknown operation %q", apperrors.ErrValidation, op)
	}
	next, ok := byState[current]
	if !ok {
		return "", fmt.Errorf("%w: cannot apply %q to an animal in status %q", apperrors.ErrValidation, op, current)
	}
	return next, nil
}

// CanTransition reports whether op is legal from the given status.
func CanTransition(current AnimalStatus, op AnimalOperation) bool {
	_, err := Transition(current, op)
	return err == nil
}
