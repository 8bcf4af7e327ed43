package reqparse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

var (
	ErrInvalidArguments  = errors.New("invalid request arguments")
	ErrDuplicateArgument = errors.New("an argument with this name is already registered")
	ErrEmptyArgumentName = errors.New("argument name cannot be empty")
	ErrUnknownArgument   = errors.New("no argument registered with this name")

	// ErrMisuse is wrapped by the panic value raised when an Argument is asked
	// to report something that is not a *ValidationError.
	ErrMisuse = errors.New("reqparse: misuse")
)

///////////////////////////////////////////////////////////////////////////////
// ValidationError
///////////////////////////////////////////////////////////////////////////////

// ValidationError is the failure signal of a Coercer. Its message is reported
// to the client as-is unless the Argument overrides it with Help.
type ValidationError struct {
	reason string
}

// Invalid returns a ValidationError carrying reason.
func Invalid(reason string) *ValidationError {
	return &ValidationError{reason: reason}
}

// Invalidf is Invalid with fmt.Sprintf formatting.
func Invalidf(format string, a ...any) *ValidationError {
	return &ValidationError{reason: fmt.Sprintf(format, a...)}
}

// Error implements the error interface
func (ve *ValidationError) Error() string {
	return ve.reason
}

// IsValidationError reports whether err is, or wraps, a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

///////////////////////////////////////////////////////////////////////////////
// InvalidError
///////////////////////////////////////////////////////////////////////////////

// InvalidError is returned by RequestParser.Parse when at least one argument
// failed, or when strict parsing met undeclared keys.
//
// Namespace holds every argument that parsed successfully, Errors maps
// argument names to their messages in registration order and Unparsed maps
// undeclared input keys (strict mode only) to MsgUnrecognizedParameter in
// key order. None of them is ever nil.
type InvalidError struct {
	Namespace *Namespace
	Errors    *Messages
	Unparsed  *Messages
}

// Error implements the error interface
func (ie *InvalidError) Error() string {
	var b strings.Builder
	b.WriteString(ErrInvalidArguments.Error())

	sep := ": "
	for _, messages := range []*Messages{ie.Errors, ie.Unparsed} {
		for _, name := range messages.Keys() {
			msg, _ := messages.Get(name)
			b.WriteString(sep)
			b.WriteString(name)
			b.WriteString(": ")
			b.WriteString(msg)
			sep = "; "
		}
	}
	return b.String()
}

// Is makes errors.Is(err, ErrInvalidArguments) match.
func (ie *InvalidError) Is(target error) bool {
	return target == ErrInvalidArguments
}

// MarshalJSON renders the error as the client-facing payload.
func (ie *InvalidError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Namespace *Namespace `json:"namespace"`
		Errors    *Messages  `json:"errors"`
		Unparsed  *Messages  `json:"unparsed"`
	}{ie.Namespace, ie.Errors, ie.Unparsed})
}
