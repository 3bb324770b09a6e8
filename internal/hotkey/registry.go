package hotkey

import (
	"fmt"
	"strings"

	"github.com/atomicstack/helium/internal/action"
	"github.com/atomicstack/helium/internal/identifier"
	"github.com/atomicstack/helium/internal/input"
	"github.com/atomicstack/helium/internal/logging"
	"github.com/atomicstack/helium/internal/logging/events"
	"github.com/atomicstack/helium/internal/notify"
	"github.com/atomicstack/helium/internal/world"
)

// Registry maps action identifiers to their hotkeys. Actions are visited in
// the order they first received a hotkey.
type Registry struct {
	order   []identifier.Identifier
	hotkeys map[identifier.Identifier][]Hotkey
}

// Add appends hotkeys to the list for id.
func (r *Registry) Add(id identifier.Identifier, hotkeys ...Hotkey) {
	if r.hotkeys == nil {
		r.hotkeys = make(map[identifier.Identifier][]Hotkey)
	}
	if _, ok := r.hotkeys[id]; !ok {
		r.order = append(r.order, id)
	}
	r.hotkeys[id] = append(r.hotkeys[id], hotkeys...)
}

// Get returns the hotkeys bound to id.
func (r *Registry) Get(id identifier.Identifier) []Hotkey {
	return r.hotkeys[id]
}

// IDs returns every bound action in registration order.
func (r *Registry) IDs() []identifier.Identifier {
	return append([]identifier.Identifier(nil), r.order...)
}

func (r *Registry) Len() int { return len(r.order) }

// ErrorPolicy decides what Dispatch does with an invocation that fails after
// the unit-input fallback.
type ErrorPolicy int

const (
	PolicyLog ErrorPolicy = iota
	PolicyNotify
	PolicyIgnore
	PolicyPanic
)

var policyNames = []string{"log", "notify", "ignore", "panic"}

func (p ErrorPolicy) String() string {
	if int(p) >= 0 && int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("ErrorPolicy(%d)", int(p))
}

// ParsePolicy accepts log, notify, ignore or panic. An empty string is log.
func ParsePolicy(s string) (ErrorPolicy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return PolicyLog, nil
	}
	for i, candidate := range policyNames {
		if candidate == name {
			return ErrorPolicy(i), nil
		}
	}
	return 0, fmt.Errorf("hotkey: unknown error policy %q", s)
}

// Policy is the resource holding the dispatch error policy. Without it
// failures are logged.
type Policy struct {
	OnError ErrorPolicy
}

// Plugin installs the hotkey table, the keyboard state and the default
// policy.
var Plugin = world.PluginFunc(func(w *world.World) {
	world.InitResource[Registry](w)
	world.InitResource[Policy](w)
	world.InitResource[input.Keyboard](w)
})

// Register initializes the conditions of hotkeys and appends them to the
// list for id.
func Register(w *world.World, id identifier.Identifier, hotkeys ...Hotkey) error {
	return world.Scope(w, func(w *world.World, r *Registry) error {
		for _, h := range hotkeys {
			if h.When != nil {
				h.When.Initialize(w)
			}
			events.Hotkey.Registered(id.String(), h.Text())
		}
		r.Add(id, hotkeys...)
		return nil
	})
}

// Dispatch evaluates every hotkey against the current keyboard state and runs
// the bound action of each one that fires. The action first receives the
// RuntimeTrigger; when it was registered with another input type it is
// retried with action.Unit. It returns the number of hotkeys that fired.
func Dispatch(w *world.World) (int, error) {
	fired := 0
	err := world.Scope(w, func(w *world.World, r *Registry) error {
		for _, id := range r.order {
			for _, h := range r.hotkeys[id] {
				trigger, ok := h.TriggerResult(w)
				if !ok {
					continue
				}
				fired++
				events.Hotkey.Fired(id.String(), h.Text(), trigger.String())
				if err := invoke(w, id, trigger); err != nil {
					handleError(w, id, err)
				}
			}
		}
		return nil
	})
	return fired, err
}

func invoke(w *world.World, id identifier.Identifier, trigger RuntimeTrigger) error {
	err := action.RunInstant(w, id, trigger)
	if !action.IsMismatchInput(err) {
		return err
	}
	events.Hotkey.Fallback(id.String())
	return action.RunInstant(w, id, action.Unit{})
}

func handleError(w *world.World, id identifier.Identifier, err error) {
	policy := PolicyLog
	if p, ok := world.Get[Policy](w); ok {
		policy = p.OnError
	}
	wrapped := fmt.Errorf("hotkey %s: %w", id, err)
	switch policy {
	case PolicyIgnore:
	case PolicyPanic:
		panic(wrapped)
	case PolicyNotify:
		logging.Error(wrapped)
		notify.Push(w, notify.LevelError, wrapped.Error())
	default:
		logging.Error(wrapped)
	}
}
