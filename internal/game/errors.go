package game

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalMove is matched by every *IllegalMoveError. The game state
	// is unchanged when it is returned.
	ErrIllegalMove = errors.New("illegal move")

	// ErrExhaustedRetries means no legal move was found within MaxTrials.
	ErrExhaustedRetries = errors.New("exhausted move retries")

	// ErrAccounting is matched by every *AccountingError.
	ErrAccounting = errors.New("token accounting invariant violated")
)

// Reason classifies why a move was rejected.
type Reason int

const (
	ReasonInvalidArgument Reason = iota
	ReasonEmptySlot
	ReasonHandFull
	ReasonInsufficientFunds
	ReasonBankScarce
	ReasonTokenLimit
	ReasonNothingTaken
)

func (r Reason) String() string {
	switch r {
	case ReasonInvalidArgument:
		return "invalid argument"
	case ReasonEmptySlot:
		return "no card there"
	case ReasonHandFull:
		return "hand is full"
	case ReasonInsufficientFunds:
		return "not enough gems"
	case ReasonBankScarce:
		return "not enough tokens left in the bank"
	case ReasonTokenLimit:
		return "holding too many tokens"
	case ReasonNothingTaken:
		return "no tokens could be taken"
	default:
		return "unknown"
	}
}

// IllegalMoveError is a recoverable rejection of a single move.
type IllegalMoveError struct {
	Move   Move
	Reason Reason
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s: %s", e.Move, e.Reason)
}

// Is lets errors.Is match ErrIllegalMove.
func (e *IllegalMoveError) Is(target error) bool {
	return target == ErrIllegalMove
}

func illegal(m Move, r Reason) error {
	return &IllegalMoveError{Move: m, Reason: r}
}

// AccountingError wraps a token bookkeeping failure. It is fatal for the
// game it occurs in.
type AccountingError struct {
	Op  string
	Err error
}

func (e *AccountingError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrAccounting, e.Op, e.Err)
}

// Is lets errors.Is match ErrAccounting.
func (e *AccountingError) Is(target error) bool {
	return target == ErrAccounting
}

func (e *AccountingError) Unwrap() error {
	return e.Err
}

// IsIllegalMove reports whether err is a recoverable move rejection.
func IsIllegalMove(err error) bool {
	return errors.Is(err, ErrIllegalMove)
}

// ReasonOf extracts the rejection reason from err.
func ReasonOf(err error) (Reason, bool) {
	var ime *IllegalMoveError
	if errors.As(err, &ime) {
		return ime.Reason, true
	}
	return 0, false
}
