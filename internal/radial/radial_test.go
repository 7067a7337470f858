package radial

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestArcStep(t *testing.T) {
	a := Arc{Radius: 110, StartDeg: 0, EndDeg: 180}
	for n := 2; n <= 8; n++ {
		want := 180 / float64(n-1)
		if got := a.Step(n); !near(got, want) {
			t.Errorf("n=%d: expected step %f, got %f", n, want, got)
		}
	}
	if got := a.Step(1); got != 0 {
		t.Errorf("expected 0 step for a single entry, got %f", got)
	}
}

func TestArcPlace(t *testing.T) {
	t.Run("default menu", func(t *testing.T) {
		ps := DefaultArc.Place(Entries)
		if len(ps) != 4 {
			t.Fatalf("expected 4 placements, got %d", len(ps))
		}

		// top of the arc
		if !near(ps[0].X, 100) || !near(ps[0].Y, -110) {
			t.Errorf("entry 0: expected (100, -110), got (%f, %f)", ps[0].X, ps[0].Y)
		}
		// bottom of the arc
		if !near(ps[3].X, 100) || !near(ps[3].Y, 110) {
			t.Errorf("entry 3: expected (100, 110), got (%f, %f)", ps[3].X, ps[3].Y)
		}
		// 60 degrees
		if !near(ps[1].X, math.Sin(math.Pi/3)*110+100) || !near(ps[1].Y, -55) {
			t.Errorf("entry 1: got (%f, %f)", ps[1].X, ps[1].Y)
		}
		for i, p := range ps {
			if p.ID != Entries[i].ID {
				t.Errorf("placement %d: expected %s, got %s", i, Entries[i].ID, p.ID)
			}
		}
	})

	t.Run("spacing and first point for any n", func(t *testing.T) {
		a := Arc{Radius: 50, StartDeg: 30, EndDeg: 150, OffsetX: 7}
		for n := 2; n <= 10; n++ {
			entries := make([]Entry, n)
			ps := a.Place(entries)

			start := a.StartDeg * math.Pi / 180
			if !near(ps[0].X, math.Sin(start)*50+7) || !near(ps[0].Y, -math.Cos(start)*50) {
				t.Errorf("n=%d: unexpected first point (%f, %f)", n, ps[0].X, ps[0].Y)
			}
			for i := 1; i < n; i++ {
				if d := ps[i].Angle - ps[i-1].Angle; !near(d, 120/float64(n-1)) {
					t.Errorf("n=%d: spacing %f at %d", n, d, i)
				}
			}
			if !near(ps[n-1].Angle, a.EndDeg) {
				t.Errorf("n=%d: last angle %f", n, ps[n-1].Angle)
			}
		}
	})
}

func TestModeFor(t *testing.T) {
	tests := []struct {
		width int
		want  Mode
	}{
		{320, Mobile},
		{767, Mobile},
		{768, Desktop},
		{1440, Desktop},
	}
	for _, tt := range tests {
		if got := ModeFor(tt.width); got != tt.want {
			t.Errorf("width %d: expected %s, got %s", tt.width, tt.want, got)
		}
	}
}

type countingPlacer struct {
	calls int
}

func (c *countingPlacer) Place(entries []Entry) []Placement {
	c.calls++
	return DefaultArc.Place(entries)
}

func TestEngineBreakpointBoundary(t *testing.T) {
	t.Run("767 never computes the arc", func(t *testing.T) {
		p := &countingPlacer{}
		e := &Engine{Placer: p, Entries: Entries}

		m := e.Compose(767, "projects", true)
		if p.calls != 0 {
			t.Errorf("expected no arc computation, got %d", p.calls)
		}
		if m.Mode != Mobile || m.Placements != nil || !m.Open || len(m.Entries) != 4 {
			t.Errorf("unexpected mobile menu %+v", m)
		}
	})

	t.Run("768 computes the arc", func(t *testing.T) {
		p := &countingPlacer{}
		e := &Engine{Placer: p, Entries: Entries}

		m := e.Compose(768, "projects", true)
		if p.calls != 1 {
			t.Errorf("expected one arc computation, got %d", p.calls)
		}
		if m.Mode != Desktop || len(m.Placements) != 4 || m.Open {
			t.Errorf("unexpected desktop menu %+v", m)
		}
	})
}

func TestEngineHub(t *testing.T) {
	e := NewEngine()
	if m := e.Compose(1024, HomeID, false); m.Hub != HubNeutral {
		t.Error("expected neutral hub on home")
	}
	for _, id := range []string{"projects", "team", "about"} {
		if m := e.Compose(1024, id, false); m.Hub != HubReturn {
			t.Errorf("expected return hub on %s", id)
		}
		if m := e.Compose(400, id, false); m.Hub != HubReturn {
			t.Errorf("expected return control in mobile list on %s", id)
		}
	}
}

func TestMenuStateAttach(t *testing.T) {
	v := NewViewport(1024)
	var s MenuState

	detach := s.Attach(v)
	if s.Mode() != Desktop {
		t.Errorf("expected desktop, got %s", s.Mode())
	}
	if v.Listeners() != 1 {
		t.Fatalf("expected 1 listener, got %d", v.Listeners())
	}

	v.Resize(500)
	if s.Mode() != Mobile {
		t.Errorf("expected mobile after resize, got %s", s.Mode())
	}

	detach()
	if v.Listeners() != 0 {
		t.Errorf("expected listener removed, got %d", v.Listeners())
	}
	v.Resize(1200)
	if s.Mode() != Mobile {
		t.Error("detached state must not follow resizes")
	}
}

func TestMenuStateToggle(t *testing.T) {
	var s MenuState
	if !s.Toggle() || !s.Open() {
		t.Error("expected open after first toggle")
	}
	if s.Toggle() {
		t.Error("expected closed after second toggle")
	}
	s.Toggle()
	s.Close()
	if s.Open() {
		t.Error("expected closed")
	}
}
