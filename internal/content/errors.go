package content

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrUnavailable matches every FetchError.
var ErrUnavailable = errors.New("content unavailable")

type FailureKind int

const (
	KindTransport FailureKind = iota
	KindTimeout
	KindCanceled
)

func (k FailureKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindCanceled:
		return "canceled"
	default:
		return "transport"
	}
}

// FetchError reports a failed provider call.
type FetchError struct {
	Op   string
	Kind FailureKind
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrUnavailable }

func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return err
	}
	kind := KindTransport
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = KindTimeout
	case errors.Is(err, context.Canceled):
		kind = KindCanceled
	}
	return &FetchError{Op: op, Kind: kind, Err: err}
}

type guarded struct {
	p       Provider
	timeout time.Duration
}

// Guard bounds every call on p by timeout and turns failures into *FetchError.
// A non-positive timeout only classifies errors.
func Guard(p Provider, timeout time.Duration) Provider {
	return &guarded{p: p, timeout: timeout}
}

func (g *guarded) ctx(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

func (g *guarded) Projects(ctx context.Context) ([]Project, error) {
	ctx, cancel := g.ctx(ctx)
	defer cancel()
	v, err := g.p.Projects(ctx)
	return v, classify("projects", err)
}

func (g *guarded) Team(ctx context.Context) ([]TeamMember, error) {
	ctx, cancel := g.ctx(ctx)
	defer cancel()
	v, err := g.p.Team(ctx)
	return v, classify("team", err)
}

func (g *guarded) CompanySections(ctx context.Context) ([]CompanySection, error) {
	ctx, cancel := g.ctx(ctx)
	defer cancel()
	v, err := g.p.CompanySections(ctx)
	return v, classify("company sections", err)
}

func (g *guarded) Process(ctx context.Context) (Process, error) {
	ctx, cancel := g.ctx(ctx)
	defer cancel()
	v, err := g.p.Process(ctx)
	return v, classify("process", err)
}

func (g *guarded) Repositories(ctx context.Context) ([]Repository, error) {
	ctx, cancel := g.ctx(ctx)
	defer cancel()
	v, err := g.p.Repositories(ctx)
	return v, classify("repositories", err)
}
