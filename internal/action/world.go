package action

import (
	"github.com/atomicstack/helium/internal/logging/events"
	"github.com/atomicstack/helium/internal/world"
)

// Plugin installs an empty Registry unless one is present.
var Plugin = world.PluginFunc(func(w *world.World) {
	if !world.Contains[Registry](w) {
		world.Insert(w, NewRegistry())
	}
})

// Register initializes system against w and stores it under id.
func Register[I any](w *world.World, id ID, description string, system world.System[I]) error {
	return world.Scope(w, func(w *world.World, r *Registry) error {
		system.Initialize(w)
		storage := NewStorage(system)
		r.Insert(id, description, storage)
		events.Action.Registered(id.String(), description, TypeName(storage.InputType()))
		return nil
	})
}

// RegisterFunc registers a plain function as the handler for id.
func RegisterFunc[I any](w *world.World, id ID, description string, fn func(ctx *world.Context, in I)) error {
	return Register(w, id, description, world.IntoSystem(fn))
}

// RunInstant runs the action synchronously. The registry is released before
// the handler runs, so handlers may invoke other actions.
func RunInstant(w *world.World, id ID, input any) error {
	var cmd world.Command
	err := world.Scope(w, func(_ *world.World, r *Registry) error {
		var err error
		cmd, err = r.Prepare(id, input)
		return err
	})
	if err != nil {
		events.Action.Error(id.String(), err)
		return err
	}
	events.Action.Invoked(id.String(), typeNameOf(input), false)
	cmd(w)
	return nil
}

// Run queues the action to run at the next flush of w. Lookup and the input
// check happen immediately.
func Run(w *world.World, id ID, input any) error {
	return world.Scope(w, func(w *world.World, r *Registry) error {
		return r.RunAction(id, input, w)
	})
}
