package printer

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"sync"
)

// ErrUnknownShape is returned by Registry.Render for a type nobody registered.
var ErrUnknownShape = errors.New("printer: no shape registered for type")

type renderFunc func(w io.Writer, v any, level int) error

// Registry maps record types to their root shapes so that values only known
// as `any` can be rendered.
type Registry struct {
	mu        sync.RWMutex
	renderers map[reflect.Type]renderFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[reflect.Type]renderFunc)}
}

// Register binds shape to T. Both T and *T values are accepted by Render.
func Register[T any](r *Registry, shape *Shape[T]) {
	fn := func(w io.Writer, v any, level int) error {
		switch rec := v.(type) {
		case *T:
			return Render(w, shape, rec, level)
		case T:
			return Render(w, shape, &rec, level)
		}
		return fmt.Errorf("%w: %T", ErrUnknownShape, v)
	}
	t := reflect.TypeOf((*T)(nil)).Elem()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[t] = fn
	r.renderers[reflect.PointerTo(t)] = fn
}

// Render writes v with the shape registered for its type. A nil interface
// or nil pointer writes nothing.
func (r *Registry) Render(w io.Writer, v any, level int) error {
	if v == nil {
		return nil
	}
	t := reflect.TypeOf(v)

	r.mu.RLock()
	fn, ok := r.renderers[t]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownShape, t)
	}
	return fn(w, v, level)
}
