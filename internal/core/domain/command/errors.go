package command

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/minish/internal/core/domain/convert"
)

// Sentinel errors. Every error produced by this package matches exactly one
// of them with errors.Is.
var (
	ErrCommandNotFound   = errors.New("command not found")
	ErrTooFewArguments   = errors.New("too few arguments")
	ErrTooManyArguments  = errors.New("too many arguments")
	ErrConversion        = convert.ErrConversion
	ErrHandlerFailure    = errors.New("command failed")
	ErrInvalidDefinition = errors.New("invalid command definition")
)

// ErrExit is returned by a handler to ask the hosting loop to terminate.
var ErrExit = errors.New("exit requested")

// ConversionError is the error returned when a token fails its converter.
type ConversionError = convert.ParseError

// NotFoundError reports a name that matches no command name or alias.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("command '%s' not found", e.Name)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrCommandNotFound }

// TooFewArgumentsError reports a call with fewer tokens than MinArity.
type TooFewArgumentsError struct {
	Given    int
	Required int
	Command  *Descriptor
}

func (e *TooFewArgumentsError) Error() string {
	return fmt.Sprintf("too few arguments passed '%d' when calling command '%s', the minimum required is '%d'",
		e.Given, e.Command.Name(), e.Required)
}

func (e *TooFewArgumentsError) Is(target error) bool { return target == ErrTooFewArguments }

// TooManyArgumentsError reports a call with more tokens than a bounded MaxArity.
type TooManyArgumentsError struct {
	Given   int
	Allowed int
	Command *Descriptor
}

func (e *TooManyArgumentsError) Error() string {
	return fmt.Sprintf("too many arguments passed '%d' when calling command '%s', the maximum allowed is '%d'",
		e.Given, e.Command.Name(), e.Allowed)
}

func (e *TooManyArgumentsError) Is(target error) bool { return target == ErrTooManyArguments }

/*
FailureError is an opaque failure raised inside a handler.
Its message is surfaced verbatim; Err keeps the underlying cause, if any,
available to errors.Is and errors.As.
*/
type FailureError struct {
	Message string
	Err     error
}

func (e *FailureError) Error() string { return e.Message }

func (e *FailureError) Unwrap() error { return e.Err }

func (e *FailureError) Is(target error) bool { return target == ErrHandlerFailure }

// Failure creates a handler failure with a fixed message.
func Failure(message string) error {
	return &FailureError{Message: message}
}

// Failuref formats a handler failure. A %w verb keeps the wrapped error as the cause.
func Failuref(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	return &FailureError{Message: err.Error(), Err: errors.Unwrap(err)}
}

// DefinitionError reports a command whose declared shape or identity is invalid.
// It is only produced while building descriptors, never during a call.
type DefinitionError struct {
	Command string
	Reason  string
}

func (e *DefinitionError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("invalid command definition: %s", e.Reason)
	}
	return fmt.Sprintf("invalid definition for command '%s': %s", e.Command, e.Reason)
}

func (e *DefinitionError) Is(target error) bool { return target == ErrInvalidDefinition }
