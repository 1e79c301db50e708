package asset

import (
	"context"
	"fmt"
	"strings"

	"asset-loader/core/utils"
)

// Asset is whatever a loader produces. The dispatcher never inspects it.
type Asset = any

// Request is one item to load: a URL string, a Spec (value or pointer), a
// descriptor map with "url" and optional "type" keys, or an Awaitable that is
// passed through unchanged.
type Request = any

// Awaitable is a value that already represents an asset being loaded.
// Requests implementing it skip resolution entirely.
type Awaitable interface {
	Await(ctx context.Context) (Asset, error)
}

// Source selects the loader of a Spec: a registered key or an ad hoc function.
// The zero Source means "infer from the URL extension".
type Source struct {
	key string
	fn  LoadFunc
}

// Type selects the loader registered under key (case-insensitive).
func Type(key string) Source { return Source{key: key} }

// Func selects fn directly, bypassing the registry.
func Func(fn LoadFunc) Source { return Source{fn: fn} }

// IsZero reports whether no loader was selected.
func (s Source) IsZero() bool { return s.key == "" && s.fn == nil }

// String returns the key, "func" for ad hoc loaders, or "" when unset.
func (s Source) String() string {
	if s.fn != nil {
		return "func"
	}
	return s.key
}

// Spec is a request descriptor. Options are handed verbatim to the loader.
type Spec struct {
	URL     string
	Type    Source
	Options map[string]any
}

func (s Spec) isZero() bool {
	return s.URL == "" && s.Type.IsZero() && len(s.Options) == 0
}

// Options is what a loader receives: the URL plus every descriptor field
// except the dispatch key.
type Options struct {
	URL    string
	Values map[string]any
}

// Value returns the raw option stored under key.
func (o Options) Value(key string) (any, bool) {
	v, ok := o.Values[key]
	return v, ok
}

// Has reports whether key was supplied.
func (o Options) Has(key string) bool {
	_, ok := o.Values[key]
	return ok
}

// String returns the option under key as a string.
func (o Options) String(key string) (string, bool) {
	v, ok := o.Values[key]
	if !ok || v == nil {
		return "", false
	}
	return utils.ToString(v), true
}

// Float returns the option under key as a float64.
func (o Options) Float(key string) (float64, bool) {
	v, ok := o.Values[key]
	if !ok {
		return 0, false
	}
	return utils.ToFloat(v)
}

// Int returns the option under key as an int.
func (o Options) Int(key string) (int, bool) {
	v, ok := o.Values[key]
	if !ok {
		return 0, false
	}
	return utils.ToInt(v)
}

// Bool returns the option under key as a bool.
func (o Options) Bool(key string) (bool, bool) {
	v, ok := o.Values[key]
	if !ok {
		return false, false
	}
	return utils.ToBool(v)
}

// Spec turns the options back into a request dispatched to src.
// Custom loaders use it to delegate to a registered loader.
func (o Options) Spec(src Source) Spec {
	return Spec{URL: o.URL, Type: src, Options: cloneValues(o.Values)}
}

// options builds the loader input for s, dropping any dispatch key.
func (s Spec) options() Options {
	values := cloneValues(s.Options)
	delete(values, "type")
	delete(values, "url")
	return Options{URL: s.URL, Values: values}
}

func cloneValues(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// normalize turns req into either a Spec or a pass-through Awaitable.
func normalize(req Request) (Spec, Awaitable, error) {
	switch v := req.(type) {
	case nil:
		return Spec{}, nil, ErrInvalidRequest
	case string:
		if v == "" {
			return Spec{}, nil, ErrInvalidRequest
		}
		return Spec{URL: v}, nil, nil
	case Spec:
		if v.isZero() {
			return Spec{}, nil, ErrInvalidRequest
		}
		return v, nil, nil
	case *Spec:
		if v == nil || v.isZero() {
			return Spec{}, nil, ErrInvalidRequest
		}
		return *v, nil, nil
	case map[string]any:
		return specFromMap(v)
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, s := range v {
			m[k] = s
		}
		return specFromMap(m)
	case *Future:
		if v == nil {
			return Spec{}, nil, ErrInvalidRequest
		}
		return Spec{}, v, nil
	case Awaitable:
		return Spec{}, v, nil
	default:
		return Spec{}, nil, fmt.Errorf("%w: unsupported request of type %T", ErrInvalidRequest, req)
	}
}

func specFromMap(m map[string]any) (Spec, Awaitable, error) {
	if len(m) == 0 {
		return Spec{}, nil, ErrInvalidRequest
	}

	var spec Spec
	switch u := m["url"].(type) {
	case nil:
	case string:
		spec.URL = u
	default:
		return Spec{}, nil, fmt.Errorf("%w: url must be a string, got %T", ErrInvalidRequest, u)
	}

	switch t := m["type"].(type) {
	case nil:
	case string:
		spec.Type = Type(strings.TrimSpace(t))
	case LoadFunc:
		spec.Type = Func(t)
	case func(context.Context, Options) (Asset, error):
		spec.Type = Func(t)
	default:
		return Spec{}, nil, &UnknownTypeError{Type: fmt.Sprint(t)}
	}

	spec.Options = make(map[string]any, len(m))
	for k, v := range m {
		if k == "url" || k == "type" {
			continue
		}
		spec.Options[k] = v
	}
	return spec, nil, nil
}
