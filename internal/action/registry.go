package action

import (
	"slices"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/helium/internal/identifier"
	"github.com/atomicstack/helium/internal/logging/events"
	"github.com/atomicstack/helium/internal/world"
)

// ID names an action.
type ID = identifier.Identifier

// Entry is one registered action.
type Entry struct {
	storage     Storage
	description string
}

func (e *Entry) Description() string { return e.description }
func (e *Entry) Storage() Storage { return e.storage }

// Registry maps identifiers to type-erased handlers. It is installed as a
// world resource by Plugin.
type Registry struct {
	entries map[ID]*Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[ID]*Entry)}
}

// Insert stores storage under id, replacing any previous entry. Commands
// already prepared from the replaced entry keep running the old handler.
func (r *Registry) Insert(id ID, description string, storage Storage) {
	if r.entries == nil {
		r.entries = make(map[ID]*Entry)
	}
	r.entries[id] = &Entry{storage: storage, description: description}
}

func (r *Registry) Get(id ID) (*Entry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

func (r *Registry) Len() int { return len(r.entries) }

// IDs returns every registered identifier in order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, identifier.Compare)
	return ids
}

// Prepare looks id up and checks input against the handler's input type. The
// handler does not run.
func (r *Registry) Prepare(id ID, input any) (world.Command, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return e.storage.Prepare(input)
}

// RunInstant runs the action synchronously against w, including the
// mutations it defers.
func (r *Registry) RunInstant(id ID, input any, w *world.World) error {
	cmd, err := r.Prepare(id, input)
	if err != nil {
		events.Action.Error(id.String(), err)
		return err
	}
	events.Action.Invoked(id.String(), typeNameOf(input), false)
	cmd(w)
	return nil
}

// RunAction checks the invocation now and queues it on w for the next flush.
func (r *Registry) RunAction(id ID, input any, w *world.World) error {
	cmd, err := r.Prepare(id, input)
	if err != nil {
		events.Action.Error(id.String(), err)
		return err
	}
	events.Action.Invoked(id.String(), typeNameOf(input), true)
	w.Defer(cmd)
	return nil
}

// Match is one search hit.
type Match struct {
	ID          ID
	Description string
}

// Search returns actions whose identifier or description fuzzily matches
// query, best match first. An empty query lists every action.
func (r *Registry) Search(query string) []Match {
	ids := r.IDs()
	all := make([]Match, len(ids))
	for i, id := range ids {
		all[i] = Match{ID: id, Description: r.entries[id].description}
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return all
	}
	targets := make([]string, len(all))
	for i, m := range all {
		targets[i] = m.ID.String() + " " + m.Description
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, targets)
	sort.Stable(ranks)
	out := make([]Match, 0, len(ranks))
	for _, rank := range ranks {
		out = append(out, all[rank.OriginalIndex])
	}
	return out
}
