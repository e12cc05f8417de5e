package errors

import (
	"errors"
	"fmt"
	"time"
)

// WorkFailureError is returned by a join when the work unit returned an error
// or panicked.
type WorkFailureError struct {
	UnitID string
	Cause  error
	Panic  any
	Stack  []byte
}

func NewWorkFailureError(unitID string, cause error) *WorkFailureError {
	return &WorkFailureError{UnitID: unitID, Cause: cause}
}

func NewWorkPanicError(unitID string, rec any, stack []byte) *WorkFailureError {
	return &WorkFailureError{UnitID: unitID, Panic: rec, Stack: stack}
}

func (e *WorkFailureError) Error() string {
	if e.Panic != nil {
		return fmt.Sprintf("work unit %s panicked: %v", e.UnitID, e.Panic)
	}
	return fmt.Sprintf("work unit %s failed: %v", e.UnitID, e.Cause)
}

func (e *WorkFailureError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	// a panic carrying an error value (e.g. a poisoned guard) stays matchable
	if err, ok := e.Panic.(error); ok {
		return err
	}
	return nil
}

// Panicked reports whether the unit terminated abnormally.
func (e *WorkFailureError) Panicked() bool {
	return e.Panic != nil
}

func IsWorkFailureError(err error) bool {
	var e *WorkFailureError
	return errors.As(err, &e)
}

// LockPoisonedError is returned on acquisition of a guard whose previous
// holder panicked inside the critical section.
type LockPoisonedError struct {
	Reason any
}

func NewLockPoisonedError(reason any) *LockPoisonedError {
	return &LockPoisonedError{Reason: reason}
}

func (e *LockPoisonedError) Error() string {
	return fmt.Sprintf("lock poisoned: previous holder panicked: %v", e.Reason)
}

func IsLockPoisonedError(err error) bool {
	var e *LockPoisonedError
	return errors.As(err, &e)
}

// ChannelClosedError is returned by a receive when no sender is left and no
// message is buffered, or by a send once the receiving side is gone.
type ChannelClosedError struct{}

func NewChannelClosedError() *ChannelClosedError {
	return &ChannelClosedError{}
}

func (e *ChannelClosedError) Error() string {
	return "channel closed"
}

func IsChannelClosedError(err error) bool {
	var e *ChannelClosedError
	return errors.As(err, &e)
}

// TimeoutError is returned by a bounded poll loop that ran out of attempts or time.
type TimeoutError struct {
	Attempts int
	Elapsed  time.Duration
}

func NewTimeoutError(attempts int, elapsed time.Duration) *TimeoutError {
	return &TimeoutError{Attempts: attempts, Elapsed: elapsed}
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %d attempts (%s)", e.Attempts, e.Elapsed.Round(time.Millisecond))
}

func IsTimeoutError(err error) bool {
	var e *TimeoutError
	return errors.As(err, &e)
}

// HandleConsumedError is returned when a completion handle is joined twice.
type HandleConsumedError struct {
	UnitID string
}

func NewHandleConsumedError(unitID string) *HandleConsumedError {
	return &HandleConsumedError{UnitID: unitID}
}

func (e *HandleConsumedError) Error() string {
	return fmt.Sprintf("handle for work unit %s already joined", e.UnitID)
}

func IsHandleConsumedError(err error) bool {
	var e *HandleConsumedError
	return errors.As(err, &e)
}

// ConflictingFlagsError is returned when mutually exclusive options are set together.
type ConflictingFlagsError struct {
	Flags []string
}

func NewConflictingFlagsError(flags ...string) *ConflictingFlagsError {
	return &ConflictingFlagsError{Flags: flags}
}

func (e *ConflictingFlagsError) Error() string {
	return fmt.Sprintf("flags %v are mutually exclusive", e.Flags)
}

func IsConflictingFlagsError(err error) bool {
	var e *ConflictingFlagsError
	return errors.As(err, &e)
}
