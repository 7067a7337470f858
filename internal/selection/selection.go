// Package selection implements the two-level master/detail drill-down shared
// by the projects and about sections.
package selection

import (
	"slices"
	"sync"
)

// AllTags is the filter value that disables filtering.
const AllTags = "all"

// FirstChildID is where the child selection lands after a top-level change.
// Child ids are 1-based and contiguous.
const FirstChildID = 1

// State is the selection tuple.
type State struct {
	TopLevelID string
	ChildID    int
	Filter     string
}

// Machine holds a State and notifies observers after every mutation.
type Machine struct {
	mu        sync.Mutex
	state     State
	observers map[int]func(State)
	nextID    int
}

// New returns a machine with topLevelID selected, its first child active and
// no filter.
func New(topLevelID string) *Machine {
	return &Machine{
		state:     State{TopLevelID: topLevelID, ChildID: FirstChildID, Filter: AllTags},
		observers: make(map[int]func(State)),
	}
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// SelectTopLevel selects id and resets the child selection, also when id is
// already selected.
func (m *Machine) SelectTopLevel(id string) {
	m.update(func(s *State) {
		s.TopLevelID = id
		s.ChildID = FirstChildID
	})
}

// SelectChild selects a child of the current top-level entity. The id is not
// checked; callers only offer ids taken from the entity itself.
func (m *Machine) SelectChild(id int) {
	m.update(func(s *State) { s.ChildID = id })
}

// SetFilter changes the tag filter. The top-level selection is left alone even
// if the selected entity no longer passes the filter.
func (m *Machine) SetFilter(tag string) {
	if tag == "" {
		tag = AllTags
	}
	m.update(func(s *State) { s.Filter = tag })
}

// Subscribe registers fn to run after each mutation. The returned func
// removes it.
func (m *Machine) Subscribe(fn func(State)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.observers[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.observers, id)
	}
}

func (m *Machine) update(fn func(*State)) {
	m.mu.Lock()
	fn(&m.state)
	s := m.state
	observers := make([]func(State), 0, len(m.observers))
	for _, o := range m.observers {
		observers = append(observers, o)
	}
	m.mu.Unlock()

	for _, o := range observers {
		o(s)
	}
}

// Entity is a top-level entity of a drill-down.
type Entity interface {
	EntityID() string
}

// Tagged entities can be filtered by tag.
type Tagged interface {
	Entity
	EntityTags() []string
}

// Find returns the entity with the given id.
func Find[E Entity](entities []E, id string) (E, bool) {
	for _, e := range entities {
		if e.EntityID() == id {
			return e, true
		}
	}
	var zero E
	return zero, false
}

// Filter returns the entities carrying tag, in order. AllTags returns all of them.
func Filter[E Tagged](entities []E, tag string) []E {
	if tag == AllTags || tag == "" {
		return entities
	}
	var out []E
	for _, e := range entities {
		if slices.Contains(e.EntityTags(), tag) {
			out = append(out, e)
		}
	}
	return out
}

// Tags lists AllTags followed by every distinct tag in first-seen order.
func Tags[E Tagged](entities []E) []string {
	tags := []string{AllTags}
	for _, e := range entities {
		for _, t := range e.EntityTags() {
			if !slices.Contains(tags, t) {
				tags = append(tags, t)
			}
		}
	}
	return tags
}
