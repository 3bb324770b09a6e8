// Package world is the shared-state container the framework runs against.
//
// Resources are stored by their Go type. A resource is read with Get and
// mutated inside Scope, which checks it out exclusively for the duration of
// the callback. Scopes of different resources nest freely, which is how the
// hotkey dispatcher holds its own table while it borrows the action registry.
// Re-borrowing a resource that is already checked out fails with ErrBorrowed
// instead of deadlocking.
//
// The world also owns the deferred command queue. Handlers that must not
// mutate state during a read pass queue work with Defer; the host drains the
// queue with Flush once per frame, in enqueue order.
package world

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var (
	// ErrNoResource reports a scope on a resource that was never inserted.
	ErrNoResource = errors.New("world: resource not present")
	// ErrBorrowed reports a scope on a resource that is already checked out.
	ErrBorrowed = errors.New("world: resource already borrowed")
)

type cell struct {
	value    any
	borrowed bool
}

// World holds type-keyed resources and the deferred command queue.
type World struct {
	mu        sync.Mutex
	resources map[reflect.Type]*cell

	queueMu sync.Mutex
	queue   []Command
}

// New returns an empty world.
func New() *World {
	return &World{resources: make(map[reflect.Type]*cell)}
}

func typeKey[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Insert stores v as the resource of type T, replacing any previous value.
// Replacing a resource that is currently checked out panics.
func Insert[T any](w *World, v *T) {
	key := typeKey[T]()
	w.mu.Lock()
	defer w.mu.Unlock()
	if c, ok := w.resources[key]; ok && c.borrowed {
		panic(fmt.Sprintf("world: insert of borrowed resource %s", key))
	}
	w.resources[key] = &cell{value: v}
}

// InitResource inserts a zero T unless one is already present and returns
// the stored pointer.
func InitResource[T any](w *World) *T {
	key := typeKey[T]()
	w.mu.Lock()
	defer w.mu.Unlock()
	if c, ok := w.resources[key]; ok {
		return c.value.(*T)
	}
	v := new(T)
	w.resources[key] = &cell{value: v}
	return v
}

// Contains reports whether a resource of type T has been inserted, whether or
// not it is currently borrowed.
func Contains[T any](w *World) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.resources[typeKey[T]()]
	return ok
}

// Get returns the resource of type T. It reports false when the resource is
// missing or checked out by an enclosing Scope. Callers must not retain the
// pointer past the current call chain.
func Get[T any](w *World) (*T, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	c, ok := w.resources[typeKey[T]()]
	if !ok || c.borrowed {
		return nil, false
	}
	return c.value.(*T), true
}

// MustGet is Get for resources installed by a plugin at startup.
func MustGet[T any](w *World) *T {
	v, ok := Get[T](w)
	if !ok {
		panic(fmt.Sprintf("world: resource %s unavailable", typeKey[T]()))
	}
	return v
}

// Remove deletes the resource of type T and returns it.
func Remove[T any](w *World) (*T, bool) {
	key := typeKey[T]()
	w.mu.Lock()
	defer w.mu.Unlock()
	c, ok := w.resources[key]
	if !ok || c.borrowed {
		return nil, false
	}
	delete(w.resources, key)
	return c.value.(*T), true
}

// Scope checks out the resource of type T, runs fn with it and checks it back
// in. The error is ErrNoResource or ErrBorrowed (wrapped with the type name)
// when the borrow fails, otherwise whatever fn returned.
func Scope[T any](w *World, fn func(w *World, v *T) error) error {
	key := typeKey[T]()
	w.mu.Lock()
	c, ok := w.resources[key]
	if !ok {
		w.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNoResource, key)
	}
	if c.borrowed {
		w.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrBorrowed, key)
	}
	c.borrowed = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		c.borrowed = false
		w.mu.Unlock()
	}()
	return fn(w, c.value.(*T))
}

// Defer queues cmd to run at the next Flush.
func (w *World) Defer(cmd Command) {
	if cmd == nil {
		return
	}
	w.queueMu.Lock()
	w.queue = append(w.queue, cmd)
	w.queueMu.Unlock()
}

// Pending returns the number of queued commands.
func (w *World) Pending() int {
	w.queueMu.Lock()
	defer w.queueMu.Unlock()
	return len(w.queue)
}

// Flush runs queued commands in enqueue order, including commands queued by
// the commands themselves, and returns how many ran.
func (w *World) Flush() int {
	ran := 0
	for {
		w.queueMu.Lock()
		if len(w.queue) == 0 {
			w.queueMu.Unlock()
			return ran
		}
		cmd := w.queue[0]
		w.queue[0] = nil
		w.queue = w.queue[1:]
		w.queueMu.Unlock()

		cmd(w)
		ran++
	}
}
