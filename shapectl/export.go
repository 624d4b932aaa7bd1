package shapectl

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"honnef.co/go/polygen"
)

// Target receives exported shapes.
type Target interface {
	SetShape(s polygen.Shape) error
	SetHulls(p polygen.Partition) error
}

// Resolver looks up export targets by path. Controllers only hold on to
// paths and resolve them anew for every export.
type Resolver interface {
	Resolve(path string) (Target, error)
}

// ResolverFunc adapts a function to the [Resolver] interface.
type ResolverFunc func(path string) (Target, error)

func (fn ResolverFunc) Resolve(path string) (Target, error) { return fn(path) }

// ErrNoTarget is returned by [Registry.Resolve] for unknown paths.
var ErrNoTarget = errors.New("no target registered")

// TargetError reports a failed export to a single target.
type TargetError struct {
	Path string
	Err  error
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("export target %q: %s", e.Path, e.Err)
}

func (e *TargetError) Unwrap() error { return e.Err }

// Registry is an in-memory [Resolver].
//
// The zero value is an empty registry ready to use.
type Registry struct {
	targets map[string]Target
}

// Register makes t available under path, replacing any previous target.
func (r *Registry) Register(path string, t Target) {
	if r.targets == nil {
		r.targets = make(map[string]Target)
	}
	r.targets[path] = t
}

// Unregister removes the target registered under path.
func (r *Registry) Unregister(path string) {
	delete(r.targets, path)
}

// Paths returns the sorted paths of all registered targets.
func (r *Registry) Paths() []string {
	return slices.Sorted(maps.Keys(r.targets))
}

func (r *Registry) Resolve(path string) (Target, error) {
	t, ok := r.targets[path]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoTarget, path)
	}
	return t, nil
}

// Buffer is a [Target] that keeps the last exported values.
type Buffer struct {
	Shape polygen.Shape
	Hulls polygen.Partition
	// Writes counts the values written.
	Writes int
}

func (b *Buffer) SetShape(s polygen.Shape) error {
	b.Shape = s
	b.Writes++
	return nil
}

func (b *Buffer) SetHulls(p polygen.Partition) error {
	b.Hulls = p.Clone()
	b.Writes++
	return nil
}
