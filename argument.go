package reqparse

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
)

// Action decides how many raw values an Argument consumes.
type Action int

const (
	// Store takes the first raw value submitted for the key.
	Store Action = iota
	// Append coerces every raw value for the key, in submission order, into
	// a []any.
	Append
)

// String implements fmt.Stringer
func (a Action) String() string {
	switch a {
	case Store:
		return "store"
	case Append:
		return "append"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Argument describes one expected request parameter.
//
// Arguments are plain values. A RequestParser keeps its own copy of each one,
// so changing an Argument after registering it has no effect on the parser.
//
// Example:
//
//	reqparse.Argument{
//		Name:     "latlng",
//		Type:     args.LatLng,
//		Required: true,
//		Help:     "Missing or invalid latlng parameter",
//	}
type Argument struct {
	Name     string  // Key looked up in the input values
	Type     Coercer // Coercion applied to each raw value. Nil means String
	Required bool    // Absence is reported as an error
	Default  any     // Value stored when the key is absent and not Required
	Choices  []any   // Allowed coerced values. Empty means anything goes
	Action   Action  // Store or Append
	Help     string  // Replaces every message this argument reports
}

// Validate turns the raw values submitted for the argument's key into its
// final value. An empty values slice means the key was absent.
//
// The returned error, when non-nil, is always a *ValidationError whose
// message is ready to be shown to the client.
func (a Argument) Validate(values []string) (any, error) {
	if len(values) == 0 {
		if a.Required {
			return nil, a.missing()
		}
		return a.Default, nil
	}

	if a.Action == Append {
		out := make([]any, 0, len(values))
		for _, raw := range values {
			v, err := a.convert(raw)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}

	return a.convert(values[0])
}

// HandleValidationError converts a coercion failure into the error reported
// for this argument: Help when set, err itself otherwise.
//
// err must be a *ValidationError. Anything else means a Coercer broke its
// contract, which is a defect in the argument definitions and not bad user
// input, so HandleValidationError panics with an error wrapping ErrMisuse.
func (a Argument) HandleValidationError(err error) *ValidationError {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		panic(fmt.Errorf("%w: argument %q asked to handle non-validation error %T (%v)",
			ErrMisuse, a.Name, err, err))
	}
	if a.Help != "" {
		return Invalid(a.Help)
	}
	return ve
}

func (a Argument) convert(raw string) (any, error) {
	v, err := a.coercer().Coerce(raw)
	if err != nil {
		return nil, a.HandleValidationError(err)
	}
	if len(a.Choices) > 0 && !a.allows(v) {
		return nil, a.HandleValidationError(Invalidf(MsgInvalidChoiceFmt, v))
	}
	return v, nil
}

func (a Argument) missing() *ValidationError {
	if a.Help != "" {
		return Invalid(a.Help)
	}
	return Invalidf(MsgMissingParameterFmt, a.Name)
}

func (a Argument) allows(v any) bool {
	return slices.ContainsFunc(a.Choices, func(choice any) bool {
		return reflect.DeepEqual(choice, v)
	})
}

func (a Argument) coercer() Coercer {
	if a.Type == nil {
		return String
	}
	return a.Type
}

// clone detaches the argument from slices owned by the caller.
func (a Argument) clone() Argument {
	a.Choices = slices.Clone(a.Choices)
	return a
}
