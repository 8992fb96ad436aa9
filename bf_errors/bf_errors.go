package bf_errors

import (
	"errors"
	"fmt"
)

// OutOfBoundsError reports a data pointer move past the tape edge while
// wrapping is disabled.
type OutOfBoundsError struct {
	PC int
}

func (err OutOfBoundsError) Error() string {
	return fmt.Sprintf("data pointer out of bounds at position %d", err.PC)
}

// UnmatchedBracketError reports a bracket whose partner does not exist:
// a '[' with no closing ']' before the program ends, or a ']' with no
// loop open.
type UnmatchedBracketError struct {
	PC          int
	Instruction byte
}

func (err UnmatchedBracketError) Error() string {
	return fmt.Sprintf("unmatched '%c' at position %d", err.Instruction, err.PC)
}

// TooManyNestedLoopsError reports a loop stack grown past its ceiling.
type TooManyNestedLoopsError struct {
	Max int
}

func (err TooManyNestedLoopsError) Error() string {
	return fmt.Sprintf("too many nested loops (max %d)", err.Max)
}

// UnclosedLoopError reports loops still open after the program ran to
// its end. It is a diagnostic, not a fatal failure.
type UnclosedLoopError struct {
	Count int
}

func (err UnclosedLoopError) Error() string {
	return fmt.Sprintf("%d unclosed loops", err.Count)
}

// AllocationError reports a run-owned resource that could not be
// reserved before any instruction executed.
type AllocationError struct {
	What string
	Size int
}

func (err AllocationError) Error() string {
	return fmt.Sprintf("memory allocation failed for %s (size %d)", err.What, err.Size)
}

// StartupError wraps a failure at the boundary, before execution.
type StartupError struct {
	Reason error
}

func (err StartupError) Error() string {
	return err.Reason.Error()
}

func (err StartupError) Unwrap() error {
	return err.Reason
}

func CreateStartupError(reason error) error {
	return StartupError{Reason: reason}
}

// IsDiagnostic tells a post-run diagnostic apart from the fatal errors:
// a diagnostic is reported but leaves the exit status untouched.
func IsDiagnostic(err error) bool {
	var unclosed UnclosedLoopError
	return errors.As(err, &unclosed)
}
