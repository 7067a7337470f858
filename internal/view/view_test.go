package view

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestParseSection(t *testing.T) {
	for _, s := range Sections {
		got, err := ParseSection(string(s))
		if err != nil || got != s {
			t.Errorf("expected %s, got %s (%v)", s, got, err)
		}
	}
	if _, err := ParseSection("contact"); err == nil {
		t.Error("expected error for unknown section")
	}
}

func TestComposerNavigate(t *testing.T) {
	t.Run("starts on home", func(t *testing.T) {
		c := NewComposer(time.Second)
		defer c.Close()
		if c.Active() != Home {
			t.Errorf("expected home, got %s", c.Active())
		}
		if _, ok := c.Transition(); ok {
			t.Error("expected no transition on load")
		}
	})

	t.Run("same section is a no-op", func(t *testing.T) {
		c := NewComposer(time.Second)
		defer c.Close()
		mount := c.MountContext()

		if _, ok := c.Navigate(Home); ok {
			t.Error("expected no change")
		}
		if mount.Err() != nil {
			t.Error("mount context must survive a no-op navigation")
		}
	})

	t.Run("new section cancels previous mount", func(t *testing.T) {
		c := NewComposer(time.Second)
		defer c.Close()
		mount := c.MountContext()

		change, ok := c.Navigate(Projects)
		if !ok || change.From != Home || change.To != Projects {
			t.Fatalf("unexpected change %+v", change)
		}
		if !errors.Is(mount.Err(), context.Canceled) {
			t.Error("expected previous mount context cancelled")
		}
		if c.MountContext().Err() != nil {
			t.Error("expected fresh mount context")
		}
	})

	t.Run("last navigation wins", func(t *testing.T) {
		c := NewComposer(time.Hour)
		defer c.Close()

		c.Navigate(Projects)
		c.Navigate(Team)

		tr, ok := c.Transition()
		if !ok {
			t.Fatal("expected transition in flight")
		}
		if tr.To != Team || tr.From != Projects || tr.Seq != 2 {
			t.Errorf("unexpected transition %+v", tr)
		}
	})

	t.Run("transition finishes", func(t *testing.T) {
		c := NewComposer(5 * time.Millisecond)
		defer c.Close()

		c.Navigate(About)
		deadline := time.Now().Add(time.Second)
		for time.Now().Before(deadline) {
			if _, ok := c.Transition(); !ok {
				return
			}
			time.Sleep(2 * time.Millisecond)
		}
		t.Error("transition never finished")
	})

	t.Run("stale timer does not end newer transition", func(t *testing.T) {
		c := NewComposer(20 * time.Millisecond)
		defer c.Close()

		c.Navigate(About)
		c.finish(99)
		if _, ok := c.Transition(); !ok {
			t.Error("unrelated finish must not clear the transition")
		}
	})
}

func TestComposerSubscribe(t *testing.T) {
	c := NewComposer(time.Second)
	defer c.Close()

	var changes []Change
	unsubscribe := c.Subscribe(func(ch Change) { changes = append(changes, ch) })

	c.Navigate(Projects)
	c.Navigate(Projects)
	c.Navigate(Home)
	unsubscribe()
	c.Navigate(About)

	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %d", len(changes))
	}
	if changes[1].To != Home {
		t.Errorf("expected home, got %s", changes[1].To)
	}
}

func TestComposerClose(t *testing.T) {
	c := NewComposer(time.Hour)
	c.Navigate(Team)
	mount := c.MountContext()
	c.Close()

	if mount.Err() == nil {
		t.Error("expected mount context cancelled on close")
	}
	if _, ok := c.Transition(); ok {
		t.Error("expected no transition after close")
	}
}

func TestLoader(t *testing.T) {
	t.Run("stores result and clears loading", func(t *testing.T) {
		var l Loader[[]string]
		var during bool

		got, err := l.Load(context.Background(), func(ctx context.Context) ([]string, error) {
			during = l.Loading()
			return []string{"a"}, nil
		})
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result %v (%v)", got, err)
		}
		if !during {
			t.Error("expected loading during fetch")
		}
		if l.Loading() {
			t.Error("expected loading cleared")
		}
		if v, ok := l.Get(); !ok || v[0] != "a" {
			t.Error("expected cached value")
		}
	})

	t.Run("clears loading on failure", func(t *testing.T) {
		var l Loader[int]
		boom := errors.New("boom")
		if _, err := l.Load(context.Background(), func(context.Context) (int, error) { return 0, boom }); !errors.Is(err, boom) {
			t.Errorf("expected boom, got %v", err)
		}
		if l.Loading() || !errors.Is(l.Err(), boom) {
			t.Error("expected loading cleared and error kept")
		}
		if _, ok := l.Get(); ok {
			t.Error("expected nothing cached")
		}
	})

	t.Run("discards results after unmount", func(t *testing.T) {
		c := NewComposer(time.Second)
		defer c.Close()
		var l Loader[int]

		_, err := l.Load(c.MountContext(), func(ctx context.Context) (int, error) {
			c.Navigate(Team)
			return 42, nil
		})
		if !errors.Is(err, ErrDiscarded) {
			t.Errorf("expected ErrDiscarded, got %v", err)
		}
		if _, ok := l.Get(); ok {
			t.Error("discarded value must not be cached")
		}
		if l.Loading() {
			t.Error("expected loading cleared")
		}
	})
}

func TestScope(t *testing.T) {
	t.Run("ends with request", func(t *testing.T) {
		req, cancel := context.WithCancel(context.Background())
		ctx, done := Scope(context.Background(), req)
		defer done()

		cancel()
		select {
		case <-ctx.Done():
		case <-time.After(time.Second):
			t.Error("expected scope to end with request")
		}
	})

	t.Run("ends with mount", func(t *testing.T) {
		mount, cancel := context.WithCancel(context.Background())
		ctx, done := Scope(mount, context.Background())
		defer done()

		cancel()
		if ctx.Err() == nil {
			t.Error("expected scope to end with mount")
		}
	})
}
