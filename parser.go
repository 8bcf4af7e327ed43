package reqparse

import (
	"fmt"
	"net/http"
	"slices"
	"sort"
)

///////////////////////////////////////////////////////////////////////////////
// RequestParser
///////////////////////////////////////////////////////////////////////////////

// RequestParser validates a Values multimap against an ordered list of
// Arguments.
//
// A RequestParser is immutable once built. With, Without and Replace return
// new parsers and leave the receiver untouched, so one instance can be shared
// by every request of an endpoint without locking.
type RequestParser struct {
	arguments []Argument     // Registration order
	index     map[string]int // Name -> position in arguments
}

// NewRequestParser builds a parser from args, keeping their order.
//
// It fails with ErrEmptyArgumentName or ErrDuplicateArgument when the
// definitions are inconsistent.
func NewRequestParser(args ...Argument) (*RequestParser, error) {
	p := &RequestParser{
		arguments: make([]Argument, 0, len(args)),
		index:     make(map[string]int, len(args)),
	}

	for _, arg := range args {
		if arg.Name == "" {
			return nil, ErrEmptyArgumentName
		}
		if _, exists := p.index[arg.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateArgument, arg.Name)
		}
		p.index[arg.Name] = len(p.arguments)
		p.arguments = append(p.arguments, arg.clone())
	}

	return p, nil
}

// MustRequestParser is NewRequestParser that panics on error. It is meant for
// package-level parser declarations.
func MustRequestParser(args ...Argument) *RequestParser {
	p, err := NewRequestParser(args...)
	if err != nil {
		panic(fmt.Sprintf("reqparse: failed to build request parser: %v", err))
	}
	return p
}

// Arguments returns a copy of the registered arguments in registration order.
func (p *RequestParser) Arguments() []Argument {
	out := make([]Argument, len(p.arguments))
	for i, arg := range p.arguments {
		out[i] = arg.clone()
	}
	return out
}

// Lookup returns the argument registered under name.
func (p *RequestParser) Lookup(name string) (Argument, bool) {
	i, ok := p.index[name]
	if !ok {
		return Argument{}, false
	}
	return p.arguments[i].clone(), true
}

// With returns a new parser holding the receiver's arguments followed by args.
func (p *RequestParser) With(args ...Argument) (*RequestParser, error) {
	return NewRequestParser(append(p.Arguments(), args...)...)
}

// Without returns a new parser lacking the named arguments.
func (p *RequestParser) Without(names ...string) (*RequestParser, error) {
	for _, name := range names {
		if _, ok := p.index[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownArgument, name)
		}
	}

	kept := slices.DeleteFunc(p.Arguments(), func(arg Argument) bool {
		return slices.Contains(names, arg.Name)
	})
	return NewRequestParser(kept...)
}

// Replace returns a new parser where the argument sharing arg.Name is swapped
// for arg, keeping its position.
func (p *RequestParser) Replace(arg Argument) (*RequestParser, error) {
	i, ok := p.index[arg.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownArgument, arg.Name)
	}

	args := p.Arguments()
	args[i] = arg
	return NewRequestParser(args...)
}

// Parse validates values against every registered argument.
//
// All arguments are validated, in registration order, whatever happened to
// the previous ones. When strict is true, keys of values that no argument
// declares are reported as unparsed.
//
// If any argument failed, or strict parsing met undeclared keys, Parse
// returns the partial namespace together with an *InvalidError that carries
// the same namespace. Otherwise the error is nil.
func (p *RequestParser) Parse(values Values, strict bool) (*Namespace, error) {
	namespace := newNamespace(len(p.arguments))
	errs := newMessages(0)

	for _, arg := range p.arguments {
		value, err := arg.Validate(values[arg.Name])
		if err != nil {
			errs.set(arg.Name, err.Error())
			continue
		}
		namespace.set(arg.Name, value)
	}

	unparsed := newMessages(0)
	if strict {
		for _, key := range p.undeclared(values) {
			unparsed.set(key, MsgUnrecognizedParameter)
		}
	}

	if errs.Len() > 0 || unparsed.Len() > 0 {
		return namespace, &InvalidError{
			Namespace: namespace,
			Errors:    errs,
			Unparsed:  unparsed,
		}
	}

	return namespace, nil
}

// ParseStrict is Parse(values, true).
func (p *RequestParser) ParseStrict(values Values) (*Namespace, error) {
	return p.Parse(values, true)
}

// ParseRequest extracts values from r with FromRequest and parses them.
func (p *RequestParser) ParseRequest(r *http.Request, strict bool) (*Namespace, error) {
	values, err := FromRequest(r, RequestOpts{})
	if err != nil {
		return nil, err
	}
	return p.Parse(values, strict)
}

// ParseSource extracts values from src with the global SourceRegistry and
// parses them.
func (p *RequestParser) ParseSource(src any, strict bool) (*Namespace, error) {
	values, err := Extract(src)
	if err != nil {
		return nil, err
	}
	return p.Parse(values, strict)
}

// undeclared returns the present keys of values that match no argument,
// sorted.
func (p *RequestParser) undeclared(values Values) []string {
	var keys []string
	for key, vs := range values {
		if len(vs) == 0 {
			continue
		}
		if _, ok := p.index[key]; !ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
