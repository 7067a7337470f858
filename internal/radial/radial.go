// Package radial lays out the navigation menu: a semicircle of buttons on
// wide viewports and a toggled vertical list on narrow ones.
package radial

import (
	"math"
	"sync"
)

// MobileBreakpoint is the first viewport width that gets the arc layout.
const MobileBreakpoint = 768

// HomeID is the entry the return control navigates to.
const HomeID = "home"

type Entry struct {
	ID    string
	Label string
	Icon  string
}

// Entries is the fixed menu, top of the arc first.
var Entries = []Entry{
	{ID: "home", Label: "Inicio", Icon: "house"},
	{ID: "projects", Label: "Proyectos", Icon: "folder"},
	{ID: "team", Label: "Equipo", Icon: "users"},
	{ID: "about", Label: "Empresa", Icon: "workflow"},
}

// Arc describes the semicircle. Angles are in degrees, 0 pointing up.
type Arc struct {
	Radius   float64
	StartDeg float64
	EndDeg   float64
	OffsetX  float64
}

var DefaultArc = Arc{Radius: 110, StartDeg: 0, EndDeg: 180, OffsetX: 100}

type Point struct {
	X, Y float64
}

type Placement struct {
	Entry
	Angle float64 // degrees
	Point
}

// Step is the angular spacing between n entries. Fewer than two entries have
// no spacing.
func (a Arc) Step(n int) float64 {
	if n < 2 {
		return 0
	}
	return (a.EndDeg - a.StartDeg) / float64(n-1)
}

// At returns the offset of the point at angle degrees.
func (a Arc) At(angle float64) Point {
	rad := angle * math.Pi / 180
	return Point{
		X: math.Sin(rad)*a.Radius + a.OffsetX,
		Y: -math.Cos(rad) * a.Radius,
	}
}

// Place distributes entries evenly from StartDeg to EndDeg.
func (a Arc) Place(entries []Entry) []Placement {
	step := a.Step(len(entries))
	out := make([]Placement, len(entries))
	for i, e := range entries {
		angle := a.StartDeg + float64(i)*step
		out[i] = Placement{Entry: e, Angle: angle, Point: a.At(angle)}
	}
	return out
}

type Mode int

const (
	Desktop Mode = iota
	Mobile
)

func (m Mode) String() string {
	if m == Mobile {
		return "mobile"
	}
	return "desktop"
}

// ModeFor picks the layout for a viewport width.
func ModeFor(width int) Mode {
	if width < MobileBreakpoint {
		return Mobile
	}
	return Desktop
}

// Hub is the control at the center of the arc.
type Hub int

const (
	HubNeutral Hub = iota
	HubReturn
)

// Menu is a composed menu ready to render.
type Menu struct {
	Mode       Mode
	Active     string
	Hub        Hub
	Open       bool        // mobile panel
	Entries    []Entry     // mobile list
	Placements []Placement // desktop arc
}

// Placer computes arc placements. Engine calls it only in desktop mode.
type Placer interface {
	Place(entries []Entry) []Placement
}

type Engine struct {
	Placer  Placer
	Entries []Entry
}

func NewEngine() *Engine {
	return &Engine{Placer: DefaultArc, Entries: Entries}
}

// Compose builds the menu for the viewport width and active entry.
func (e *Engine) Compose(width int, active string, open bool) Menu {
	m := Menu{Mode: ModeFor(width), Active: active}
	if active != HomeID {
		m.Hub = HubReturn
	}
	if m.Mode == Mobile {
		m.Open = open
		m.Entries = e.Entries
		return m
	}
	m.Placements = e.Placer.Place(e.Entries)
	return m
}

// Viewport tracks the reported viewport width and notifies subscribers.
type Viewport struct {
	mu        sync.Mutex
	width     int
	listeners map[int]func(int)
	nextID    int
}

func NewViewport(width int) *Viewport {
	return &Viewport{width: width, listeners: make(map[int]func(int))}
}

func (v *Viewport) Width() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width
}

// Resize records a new width and notifies listeners.
func (v *Viewport) Resize(width int) {
	v.mu.Lock()
	v.width = width
	listeners := make([]func(int), 0, len(v.listeners))
	for _, l := range v.listeners {
		listeners = append(listeners, l)
	}
	v.mu.Unlock()

	for _, l := range listeners {
		l(width)
	}
}

// Subscribe registers fn for resize events and returns its removal func.
func (v *Viewport) Subscribe(fn func(int)) func() {
	v.mu.Lock()
	defer v.mu.Unlock()
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.listeners, id)
	}
}

// Listeners reports how many subscribers are registered.
func (v *Viewport) Listeners() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.listeners)
}

// MenuState is the per-visitor menu: current mode and mobile toggle.
type MenuState struct {
	mu   sync.Mutex
	mode Mode
	open bool
}

// Attach evaluates the mode for v now and on every resize. Call the returned
// func on teardown.
func (s *MenuState) Attach(v *Viewport) func() {
	s.setMode(ModeFor(v.Width()))
	return v.Subscribe(func(width int) { s.setMode(ModeFor(width)) })
}

func (s *MenuState) setMode(m Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
}

func (s *MenuState) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *MenuState) Open() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Toggle flips the mobile panel and reports the new value.
func (s *MenuState) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = !s.open
	return s.open
}

// Close hides the mobile panel, as picking an entry does.
func (s *MenuState) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
}
