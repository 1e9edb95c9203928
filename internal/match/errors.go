package match

import "fmt"

// ErrorCode classifies every per-request rejection the coordinator can emit.
type ErrorCode int

const (
	MalformedIdentifier ErrorCode = iota + 1
	NotFound
	IllegalPhaseTransition
	Unauthenticated
	OutOfTurn
	MalformedCommand
	IllegalMove
	DuplicateOrUnknownCard
)

// Error is a rejected coordinator operation. It carries the offending command
// name and match id so the transport can render the error wire message. Every
// Error is recoverable: the match's stored state is untouched and no other
// match or subscriber is affected.
type Error struct {
	Code    ErrorCode
	Command string
	MatchID string
	Reason  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Command, e.MatchID, e.Reason)
}

func newError(code ErrorCode, command, matchID, reason string) *Error {
	return &Error{Code: code, Command: command, MatchID: matchID, Reason: reason}
}
