package params

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for parameter lookups.
var (
	// ErrMissingKey indicates the requested key or namespace is absent.
	ErrMissingKey = errors.New("params: required key not found")
	// ErrBadValue indicates a value could not be converted to the requested type.
	ErrBadValue = errors.New("params: value has wrong type or format")
)

// Sep separates namespace components in a key, e.g. "strategy/max_size/weight".
const Sep = "/"

// Provider is a read-only, namespaced string key-value parameter store.
// Implementations must be deterministic: repeated lookups of the same key
// yield the same result for the lifetime of the provider.
type Provider interface {
	// Has reports whether key is present (as a value or a namespace).
	Has(key string) bool
	// String returns the scalar value stored at key.
	String(key string) (string, error)
	// Int returns the integer value stored at key.
	Int(key string) (int, error)
	// Strings returns the ordered list of scalars stored at key.
	Strings(key string) ([]string, error)
	// StringMap returns the immediate children of the namespace key as a
	// string-to-string map.
	StringMap(key string) (map[string]string, error)
	// Sub returns a Provider rooted at the given namespace. Looking up any
	// key in a provider rooted at an absent namespace yields ErrMissingKey.
	Sub(namespace string) Provider
}

// MapProvider implements Provider over nested maps, the natural shape of
// unmarshaled YAML or JSON. Scalar leaves may be strings, integers, floats
// or booleans; they are converted on access.
type MapProvider struct {
	values map[string]any
}

// NewMapProvider wraps the given nested map. The map is used as-is; the
// caller must not mutate it afterwards.
func NewMapProvider(values map[string]any) *MapProvider {
	return &MapProvider{values: values}
}

// lookup walks the namespace components of key through the nested maps.
func (p *MapProvider) lookup(key string) (any, bool) {
	if p == nil || p.values == nil {
		return nil, false
	}
	cur := any(p.values)
	for _, part := range strings.Split(key, Sep) {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}

	return cur, true
}

// Has reports whether key resolves to a value or namespace.
func (p *MapProvider) Has(key string) bool {
	_, ok := p.lookup(key)

	return ok
}

// String returns the scalar at key, converting numeric and boolean leaves
// to their canonical text form.
func (p *MapProvider) String(key string) (string, error) {
	v, ok := p.lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingKey, key)
	}
	s, ok := scalarString(v)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a scalar", ErrBadValue, key)
	}

	return s, nil
}

// Int returns the integer at key. String leaves are parsed in base 10.
func (p *MapProvider) Int(key string) (int, error) {
	v, ok := p.lookup(key)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingKey, key)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrBadValue, key)
		}

		return i, nil
	default:
		return 0, fmt.Errorf("%w: %q is not an integer", ErrBadValue, key)
	}
}

// Strings returns the ordered list of scalars at key.
func (p *MapProvider) Strings(key string) ([]string, error) {
	v, ok := p.lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingKey, key)
	}
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a list", ErrBadValue, key)
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := scalarString(item)
		if !ok {
			return nil, fmt.Errorf("%w: %q[%d] is not a scalar", ErrBadValue, key, i)
		}
		out[i] = s
	}

	return out, nil
}

// StringMap returns the immediate children of the namespace at key.
// Nested namespaces below the children are rejected as non-scalar.
func (p *MapProvider) StringMap(key string) (map[string]string, error) {
	v, ok := p.lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingKey, key)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a namespace", ErrBadValue, key)
	}
	out := make(map[string]string, len(m))
	for k, item := range m {
		s, ok := scalarString(item)
		if !ok {
			return nil, fmt.Errorf("%w: %q/%s is not a scalar", ErrBadValue, key, k)
		}
		out[k] = s
	}

	return out, nil
}

// Sub returns a MapProvider rooted at namespace. An absent namespace
// yields a provider whose every lookup fails with ErrMissingKey.
func (p *MapProvider) Sub(namespace string) Provider {
	v, ok := p.lookup(namespace)
	if !ok {
		return &MapProvider{}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return &MapProvider{}
	}

	return &MapProvider{values: m}
}

// scalarString converts a leaf value to text. Maps and lists are not scalars.
func scalarString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64), true
	case bool:
		return strconv.FormatBool(s), true
	default:
		return "", false
	}
}
