// Package globals holds the small fixed set of process-wide mutable values.
//
// Each value lives in its own Var, guarded by its own mutex and initialized
// lazily from its default on first access. Callers reference variables
// through the exported handles in vars.go, so a misspelled or mistyped
// variable is a compile error rather than a failed lookup.
package globals

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

var (
	ErrPoisoned = errors.New("global variable poisoned") // ErrPoisoned indicates a critical section on the variable aborted
)

// PoisonError is returned by every access to a Var whose lock was held by a
// critical section that panicked.
type PoisonError struct {
	Name string
}

func (e *PoisonError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, ErrPoisoned)
}

func (e *PoisonError) Unwrap() error {
	return ErrPoisoned
}

// Var is a named, lazily initialized value of type T.
// T should have value semantics; Get hands out copies made by assignment.
type Var[T any] struct {
	name string
	init func() T

	mu          sync.Mutex
	value       T
	initialized bool
	poisoned    bool
}

// New returns an unregistered Var whose first access stores init().
func New[T any](name string, init func() T) *Var[T] {
	return &Var[T]{name: name, init: init}
}

func (v *Var[T]) Name() string {
	return v.name
}

// locked runs fn with the lock held and the value initialized. If fn or the
// initializer panics the variable is poisoned before the lock is released.
func (v *Var[T]) locked(fn func()) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.poisoned {
		return &PoisonError{Name: v.name}
	}
	clean := false
	defer func() {
		if !clean {
			v.poisoned = true
		}
	}()
	if !v.initialized {
		v.value = v.init()
		v.initialized = true
	}
	fn()
	clean = true
	return nil
}

// Load returns a copy of the current value.
func (v *Var[T]) Load() (T, error) {
	var out T
	if err := v.locked(func() { out = v.value }); err != nil {
		slog.Error("read global", "name", v.name, "error", err)
		return out, err
	}
	return out, nil
}

// Store replaces the current value.
func (v *Var[T]) Store(x T) error {
	if err := v.locked(func() { v.value = x }); err != nil {
		slog.Error("write global", "name", v.name, "error", err)
		return err
	}
	slog.Debug("global set", "name", v.name, "value", x)
	return nil
}

// Update replaces the value with fn applied to it, under the same lock hold.
// fn must not touch v.
func (v *Var[T]) Update(fn func(T) T) error {
	var out T
	if err := v.locked(func() {
		v.value = fn(v.value)
		out = v.value
	}); err != nil {
		slog.Error("update global", "name", v.name, "error", err)
		return err
	}
	slog.Debug("global updated", "name", v.name, "value", out)
	return nil
}

// Get is Load for callers that treat a poisoned variable as fatal.
// It panics with a *PoisonError.
func (v *Var[T]) Get() T {
	out, err := v.Load()
	if err != nil {
		panic(err)
	}
	return out
}

// Set is Store for callers that treat a poisoned variable as fatal.
// It panics with a *PoisonError.
func (v *Var[T]) Set(x T) {
	if err := v.Store(x); err != nil {
		panic(err)
	}
}

func (v *Var[T]) load() (any, error) {
	return v.Load()
}

// Read returns the value of v.
func Read[T any](v *Var[T]) T {
	return v.Get()
}

// Write sets the value of v.
func Write[T any](v *Var[T], x T) {
	v.Set(x)
}
