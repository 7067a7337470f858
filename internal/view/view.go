// Package view tracks which section is mounted and the lifetime of its
// transition and data loads.
package view

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type Section string

const (
	Home     Section = "home"
	Projects Section = "projects"
	Team     Section = "team"
	About    Section = "about"
)

var Sections = []Section{Home, Projects, Team, About}

func ParseSection(s string) (Section, error) {
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, nil
		}
	}
	return "", fmt.Errorf("unknown section %q", s)
}

// Transition is the enter/exit animation of a section change.
type Transition struct {
	Seq      uint64
	From, To Section
	Started  time.Time
	Duration time.Duration
}

// Change is delivered to observers after a navigation.
type Change struct {
	From, To   Section
	Transition uint64
}

// Composer holds the mounted section. Each mount gets a context that is
// cancelled when another section replaces it.
type Composer struct {
	mu       sync.Mutex
	active   Section
	duration time.Duration

	mountCtx    context.Context
	mountCancel context.CancelFunc

	seq        uint64
	transition *Transition
	timer      *time.Timer

	observers map[int]func(Change)
	nextID    int
}

// NewComposer mounts Home. duration is how long a transition stays in flight.
func NewComposer(duration time.Duration) *Composer {
	ctx, cancel := context.WithCancel(context.Background())
	return &Composer{
		active:      Home,
		duration:    duration,
		mountCtx:    ctx,
		mountCancel: cancel,
		observers:   make(map[int]func(Change)),
	}
}

func (c *Composer) Active() Section {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// MountContext is cancelled when the current section is unmounted.
func (c *Composer) MountContext() context.Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mountCtx
}

// Transition returns the in-flight transition, if any.
func (c *Composer) Transition() (Transition, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.transition == nil {
		return Transition{}, false
	}
	return *c.transition, true
}

// Navigate mounts to. Navigating to the mounted section does nothing. A new
// section cancels the previous mount and its transition; the latest
// navigation wins.
func (c *Composer) Navigate(to Section) (Change, bool) {
	c.mu.Lock()
	if to == c.active {
		c.mu.Unlock()
		return Change{}, false
	}

	from := c.active
	c.mountCancel()
	if c.timer != nil {
		c.timer.Stop()
	}

	c.active = to
	c.mountCtx, c.mountCancel = context.WithCancel(context.Background())
	c.seq++
	seq := c.seq
	c.transition = &Transition{Seq: seq, From: from, To: to, Started: time.Now(), Duration: c.duration}
	c.timer = time.AfterFunc(c.duration, func() { c.finish(seq) })

	change := Change{From: from, To: to, Transition: seq}
	observers := make([]func(Change), 0, len(c.observers))
	for _, o := range c.observers {
		observers = append(observers, o)
	}
	c.mu.Unlock()

	for _, o := range observers {
		o(change)
	}
	return change, true
}

func (c *Composer) finish(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.transition != nil && c.transition.Seq == seq {
		c.transition = nil
		c.timer = nil
	}
}

// Subscribe registers fn for navigation changes and returns its removal func.
func (c *Composer) Subscribe(fn func(Change)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.observers[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.observers, id)
	}
}

// Close unmounts the current section.
func (c *Composer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mountCancel()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.transition = nil
}
