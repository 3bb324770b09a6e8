package action

import (
	"reflect"
	"sync"

	"github.com/atomicstack/helium/internal/world"
)

// Unit is the input of actions that take no argument.
type Unit = struct{}

// Storage is a handler with its input type erased. Prepare checks the dynamic
// type of input and returns a command that runs the handler once.
type Storage interface {
	Prepare(input any) (world.Command, error)
	InputType() reflect.Type
}

type lockedSystem[I any] struct {
	mu     sync.Mutex
	system world.System[I]
}

func (l *lockedSystem[I]) run(in I, w *world.World) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.system.Run(in, w)
	l.system.ApplyDeferred(w)
}

type storage[I any] struct {
	handler *lockedSystem[I]
}

// NewStorage erases the input type of system. The system is not initialized.
func NewStorage[I any](system world.System[I]) Storage {
	return &storage[I]{handler: &lockedSystem[I]{system: system}}
}

func (s *storage[I]) InputType() reflect.Type {
	return reflect.TypeFor[I]()
}

func (s *storage[I]) Prepare(input any) (world.Command, error) {
	in, ok := input.(I)
	if !ok {
		return nil, &MismatchInputError{Expected: TypeName(s.InputType()), Found: typeNameOf(input)}
	}
	// The command holds the handler, not the registry slot, so replacing the
	// registration leaves it pointing at the original logic.
	handler := s.handler
	return func(w *world.World) { handler.run(in, w) }, nil
}

// TypeName renders t the way diagnostics print input types.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t == reflect.TypeFor[Unit]() {
		return "()"
	}
	return t.String()
}

func typeNameOf(v any) string {
	if v == nil {
		return "<nil>"
	}
	return TypeName(reflect.TypeOf(v))
}
