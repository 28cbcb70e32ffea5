package lifecycle

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by the engine, the use cases and the backing
// service adapter. Every error is scoped to a single transition attempt.
var (
	// ErrInvalidTransition: the action is not legal from the current state.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrPreconditionFailed: the action is legal but a guard failed.
	ErrPreconditionFailed = errors.New("precondition failed")
	// ErrRemoteRejected: the backing service refused the request.
	ErrRemoteRejected = errors.New("remote rejected")
	// ErrRemoteUnreachable: network failure or timeout. Safe to retry.
	ErrRemoteUnreachable = errors.New("remote unreachable")
	// ErrSessionExpired: the backing service rejected the credential.
	ErrSessionExpired = errors.New("session expired")
)

// TransitionError describes a transition refused by the engine.
type TransitionError struct {
	Kind   error
	Action Action
	From   State
	Reason string
}

func (e *TransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%v: %s from %s: %s", e.Kind, e.Action, e.From, e.Reason)
	}
	return fmt.Sprintf("%v: %s from %s", e.Kind, e.Action, e.From)
}

func (e *TransitionError) Unwrap() error { return e.Kind }

func invalid(action Action, from State) error {
	return &TransitionError{Kind: ErrInvalidTransition, Action: action, From: from}
}

func precondition(action Action, from State, reason string) error {
	return &TransitionError{Kind: ErrPreconditionFailed, Action: action, From: from, Reason: reason}
}

// RemoteError carries the backing service response for a rejected request.
// Message is the server-provided text, verbatim.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v: status %d", ErrRemoteRejected, e.StatusCode)
	}
	return fmt.Sprintf("%v: status %d: %s", ErrRemoteRejected, e.StatusCode, e.Message)
}

func (e *RemoteError) Unwrap() error { return ErrRemoteRejected }
