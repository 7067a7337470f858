// Package session keeps each visitor's UI state between requests.
package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Zachkp/adi-site/internal/content"
	"github.com/Zachkp/adi-site/internal/radial"
	"github.com/Zachkp/adi-site/internal/selection"
	"github.com/Zachkp/adi-site/internal/view"
)

// DefaultWidth is assumed until the browser reports its viewport.
const DefaultWidth = 1024

// The first entity of each drill-down is selected on mount.
const firstEntityID = "1"

type ProjectsView struct {
	Selection *selection.Machine
	Data      view.Loader[[]content.Project]
}

type AboutView struct {
	Selection *selection.Machine
	Data      view.Loader[[]content.CompanySection]
}

type TeamView struct {
	Data view.Loader[[]content.TeamMember]
}

// State is one visitor's UI state. Section views are rebuilt every time their
// section is mounted, so drill-down selections do not survive navigating away.
type State struct {
	ID       string
	Composer *view.Composer
	Viewport *radial.Viewport
	Menu     *radial.MenuState

	mu       sync.Mutex
	projects *ProjectsView
	about    *AboutView
	team     *TeamView
	lastSeen time.Time

	teardown []func()
}

func newState(id string, transition time.Duration, now time.Time) *State {
	s := &State{
		ID:       id,
		Composer: view.NewComposer(transition),
		Viewport: radial.NewViewport(DefaultWidth),
		Menu:     &radial.MenuState{},
		lastSeen: now,
	}
	s.teardown = append(s.teardown,
		s.Menu.Attach(s.Viewport),
		s.Composer.Subscribe(func(ch view.Change) { s.remount(ch.To) }),
	)
	return s
}

func (s *State) remount(sec view.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch sec {
	case view.Projects:
		s.projects = &ProjectsView{Selection: selection.New(firstEntityID)}
	case view.About:
		s.about = &AboutView{Selection: selection.New(firstEntityID)}
	case view.Team:
		s.team = &TeamView{}
	}
}

func (s *State) Projects() *ProjectsView {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.projects == nil {
		s.projects = &ProjectsView{Selection: selection.New(firstEntityID)}
	}
	return s.projects
}

func (s *State) About() *AboutView {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.about == nil {
		s.about = &AboutView{Selection: selection.New(firstEntityID)}
	}
	return s.about
}

func (s *State) Team() *TeamView {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.team == nil {
		s.team = &TeamView{}
	}
	return s.team
}

func (s *State) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *State) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Close releases the state's listeners and cancels in-flight loads.
func (s *State) Close() {
	for _, fn := range s.teardown {
		fn()
	}
	s.teardown = nil
	s.Composer.Close()
}

// Store maps session ids to states.
type Store struct {
	mu         sync.Mutex
	sessions   map[string]*State
	ttl        time.Duration
	transition time.Duration
	now        func() time.Time
}

func NewStore(ttl, transition time.Duration) *Store {
	return &Store{
		sessions:   make(map[string]*State),
		ttl:        ttl,
		transition: transition,
		now:        time.Now,
	}
}

// Get returns the live state for id and marks it as used.
func (s *Store) Get(id string) (*State, bool) {
	s.mu.Lock()
	st, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return nil, false
	}
	now := s.now()
	if now.Sub(st.idleSince()) > s.ttl {
		s.remove(id)
		return nil, false
	}
	st.touch(now)
	return st, true
}

// Create starts a new session.
func (s *Store) Create() *State {
	st := newState(uuid.NewString(), s.transition, s.now())
	s.mu.Lock()
	s.sessions[st.ID] = st
	s.mu.Unlock()
	return st
}

func (s *Store) remove(id string) {
	s.mu.Lock()
	st, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if ok {
		st.Close()
	}
}

// Sweep closes every session idle for longer than the TTL.
func (s *Store) Sweep() int {
	now := s.now()
	s.mu.Lock()
	var expired []string
	for id, st := range s.sessions {
		if now.Sub(st.idleSince()) > s.ttl {
			expired = append(expired, id)
		}
	}
	s.mu.Unlock()

	for _, id := range expired {
		s.remove(id)
	}
	return len(expired)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Run sweeps periodically until ctx is done, then closes all sessions.
func (s *Store) Run(ctx context.Context) {
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.mu.Lock()
			ids := make([]string, 0, len(s.sessions))
			for id := range s.sessions {
				ids = append(ids, id)
			}
			s.mu.Unlock()
			for _, id := range ids {
				s.remove(id)
			}
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Printf("Expired %d idle sessions", n)
			}
		}
	}
}
