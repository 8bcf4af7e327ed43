package reqparse

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"sync"
)

var (
	ErrSourceAlreadyRegistered  = errors.New("a source with this name for this source-type is already registered")
	ErrNoSourceRegistered       = errors.New("no registered source found for this type")
	ErrMultipleSourcesAvailable = errors.New("multiple sources available for this source type, use WithSource() to specify which one")
	ErrSourceNotFound           = errors.New("specified source not found for this source type")
)

///////////////////////////////////////////////////////////////////////////////
// Source
///////////////////////////////////////////////////////////////////////////////

// Source turns one kind of raw input into Values.
type Source interface {
	// Values extracts the multimap held by src.
	Values(src any) (Values, error)
	// SourceType returns the reflect.Type of the inputs this source accepts.
	SourceType() reflect.Type
	// Name returns a unique identifier for this source within its source type.
	Name() string
}

// typedSource implements Source for a function over a concrete input type.
type typedSource[S any] struct {
	name string
	fn   func(S) (Values, error)
}

// NewSource builds a Source named name that accepts inputs of type S.
func NewSource[S any](name string, fn func(S) (Values, error)) Source {
	return &typedSource[S]{name: name, fn: fn}
}

func (ts *typedSource[S]) Values(src any) (Values, error) {
	typed, ok := src.(S)
	if !ok {
		return nil, fmt.Errorf("expected source type %s, got %T", ts.SourceType(), src)
	}
	return ts.fn(typed)
}

func (ts *typedSource[S]) SourceType() reflect.Type {
	return reflect.TypeOf((*S)(nil)).Elem()
}

func (ts *typedSource[S]) Name() string {
	return ts.name
}

///////////////////////////////////////////////////////////////////////////////
// SourceRegistry
///////////////////////////////////////////////////////////////////////////////

// SourceRegistry selects the Source able to handle a given input.
//
// Multiple Sources can be registered for each source type. If only one is
// registered for a type it is used automatically, otherwise WithSource()
// must name the one to use.
type SourceRegistry struct {
	mu sync.RWMutex
	m  map[reflect.Type]map[string]Source // source type -> source name -> source
}

// SourceRegistryContext is a registry curried with a source name.
type SourceRegistryContext struct {
	registry   *SourceRegistry
	sourceName string
}

type SourceRegistryOpts struct {
	Sources         []Source
	ExcludeDefaults bool
}

var _defaultSources []Source

func NewSourceRegistry(opts SourceRegistryOpts) (*SourceRegistry, error) {
	reg := &SourceRegistry{
		m: make(map[reflect.Type]map[string]Source),
	}

	if !opts.ExcludeDefaults {
		for _, source := range _defaultSources {
			if err := reg.Register(source); err != nil {
				return nil, err
			}
		}
	}

	for _, source := range opts.Sources {
		if err := reg.Register(source); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// Register adds source to the registry.
func (reg *SourceRegistry) Register(source Source) error {
	sourceType := source.SourceType()
	name := source.Name()

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if reg.m[sourceType] == nil {
		reg.m[sourceType] = make(map[string]Source)
	}
	if _, exists := reg.m[sourceType][name]; exists {
		return fmt.Errorf("%w: %s", ErrSourceAlreadyRegistered, name)
	}

	reg.m[sourceType][name] = source
	return nil
}

// WithSource returns a context that always uses the named source.
func (reg *SourceRegistry) WithSource(name string) *SourceRegistryContext {
	return &SourceRegistryContext{
		registry:   reg,
		sourceName: name,
	}
}

// Extract converts src into Values using the only source registered for
// its type.
func (reg *SourceRegistry) Extract(src any) (Values, error) {
	source, err := reg.getSourceByName(src, "")
	if err != nil {
		return nil, err
	}
	return source.Values(src)
}

// Extract converts src into Values using the context's source.
func (rc *SourceRegistryContext) Extract(src any) (Values, error) {
	source, err := rc.registry.getSourceByName(src, rc.sourceName)
	if err != nil {
		return nil, err
	}
	return source.Values(src)
}

// getSourceByName retrieves a source by name for the type of src.
//
// No name provided: If there is only one source registered for the type,
// it returns that source. If multiple are registered, it returns an error.
func (reg *SourceRegistry) getSourceByName(src any, name string) (Source, error) {
	t := reflect.TypeOf(src)

	reg.mu.RLock()
	defer reg.mu.RUnlock()

	sourcesForType, exists := reg.m[t]
	if !exists || len(sourcesForType) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoSourceRegistered, t)
	}

	if name == "" {
		if len(sourcesForType) > 1 {
			return nil, fmt.Errorf("%w: %v", ErrMultipleSourcesAvailable, t)
		}
		for _, source := range sourcesForType {
			return source, nil
		}
	}

	if source, found := sourcesForType[name]; found {
		return source, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, name)
}

///////////////////////////////////////////////////////////////////////////////
// Global Singleton and Package Functions
///////////////////////////////////////////////////////////////////////////////

var _globalRegistry *SourceRegistry

func init() {
	_defaultSources = []Source{
		NewSource(ValuesSourceName, func(v Values) (Values, error) {
			return v.Clone(), nil
		}),
		NewSource(URLValuesSourceName, func(v url.Values) (Values, error) {
			return Values(v).Clone(), nil
		}),
		NewSource(MultiMapSourceName, func(m map[string][]string) (Values, error) {
			return Values(m).Clone(), nil
		}),
		NewSource(StringMapSourceName, func(m map[string]string) (Values, error) {
			out := make(Values, len(m))
			for key, value := range m {
				out.Set(key, value)
			}
			return out, nil
		}),
		NewSource(JSONByteSliceSourceName, FromJSON),
		NewSource(HTTPRequestSourceName, func(r *http.Request) (Values, error) {
			return FromRequest(r, RequestOpts{})
		}),
	}

	var err error
	_globalRegistry, err = NewSourceRegistry(SourceRegistryOpts{})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize global source registry: %v", err))
	}
}

// RegisterSource registers a source with the global registry.
func RegisterSource(source Source) error {
	return _globalRegistry.Register(source)
}

// Extract converts src into Values with the global registry.
func Extract(src any) (Values, error) {
	return _globalRegistry.Extract(src)
}

// WithSource returns a SourceRegistryContext from the global registry.
func WithSource(name string) *SourceRegistryContext {
	return _globalRegistry.WithSource(name)
}
