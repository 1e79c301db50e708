package asset

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// LoadFunc performs the actual fetch and decode for one asset kind.
type LoadFunc func(ctx context.Context, opts Options) (Asset, error)

// MatchFunc reports whether a loader handles the given extension.
// It receives the extension as it appears in the URL, dot included.
type MatchFunc func(ext string) bool

// Descriptor binds a key and an optional extension matcher to a loader.
// Descriptors without Match are only reachable by explicit type.
type Descriptor struct {
	Key   string
	Match MatchFunc
	Load  LoadFunc
}

// Registry is an ordered, append-only list of descriptors.
// Registration order breaks ties between descriptors matching the same
// extension: the first registered wins.
type Registry struct {
	mu    sync.RWMutex
	descs []Descriptor
}

// NewRegistry creates a registry and registers descs in order.
// It panics on an invalid descriptor, which is a programming error at startup.
func NewRegistry(descs ...Descriptor) *Registry {
	r := &Registry{}
	for _, d := range descs {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
	return r
}

// Register appends d to the registry. The key is lower-cased.
func (r *Registry) Register(d Descriptor) error {
	key := strings.ToLower(strings.TrimSpace(d.Key))
	if key == "" {
		return fmt.Errorf("asset loader descriptor requires a key")
	}
	if d.Load == nil {
		return fmt.Errorf("asset loader %q requires a load function", key)
	}
	d.Key = key

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.descs {
		if existing.Key == key {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}
	}
	r.descs = append(r.descs, d)
	return nil
}

// Keys returns the registered keys in registration order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, len(r.descs))
	for i, d := range r.descs {
		keys[i] = d.Key
	}
	return keys
}

// Descriptors returns a snapshot of the registered descriptors.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Descriptor, len(r.descs))
	copy(out, r.descs)
	return out
}

// Resolve picks the loader for spec.
//
// An ad hoc source is returned as is. A registered key is looked up
// case-insensitively. Without a type, the URL's extension is offered to each
// matcher in registration order.
func (r *Registry) Resolve(spec Spec) (LoadFunc, error) {
	if fn := spec.Type.fn; fn != nil {
		return fn, nil
	}

	if spec.URL == "" {
		return nil, ErrMissingURL
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if spec.Type.key != "" {
		key := strings.ToLower(spec.Type.key)
		for _, d := range r.descs {
			if d.Key == key {
				return d.Load, nil
			}
		}
		return nil, &UnknownTypeError{Type: spec.Type.key}
	}

	ext := Extension(spec.URL)
	if ext == "" {
		return nil, &MissingExtensionError{URL: spec.URL}
	}
	for _, d := range r.descs {
		if d.Match == nil {
			continue
		}
		if d.Match(ext) {
			return d.Load, nil
		}
	}
	return nil, &UnknownExtensionError{Extension: ext}
}
