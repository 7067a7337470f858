package content

import (
	"context"
	"time"
)

// Latencies of the mock provider, per collection.
const (
	ProjectsLatency        = 300 * time.Millisecond
	CompanySectionsLatency = 400 * time.Millisecond
	TeamLatency            = 500 * time.Millisecond
	ProcessLatency         = 600 * time.Millisecond
	RepositoriesLatency    = 700 * time.Millisecond
)

// Mock serves a catalog from memory after a simulated network delay.
type Mock struct {
	cat     Catalog
	latency bool
}

type MockOption func(*Mock)

// WithoutLatency resolves every call immediately.
func WithoutLatency() MockOption {
	return func(m *Mock) { m.latency = false }
}

func NewMock(cat Catalog, opts ...MockOption) *Mock {
	m := &Mock{cat: cat, latency: true}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Mock) wait(ctx context.Context, d time.Duration) error {
	if !m.latency {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (m *Mock) Projects(ctx context.Context) ([]Project, error) {
	if err := m.wait(ctx, ProjectsLatency); err != nil {
		return nil, err
	}
	return cloneProjects(m.cat.Projects), nil
}

func (m *Mock) Team(ctx context.Context) ([]TeamMember, error) {
	if err := m.wait(ctx, TeamLatency); err != nil {
		return nil, err
	}
	return cloneTeam(m.cat.Team), nil
}

func (m *Mock) CompanySections(ctx context.Context) ([]CompanySection, error) {
	if err := m.wait(ctx, CompanySectionsLatency); err != nil {
		return nil, err
	}
	return cloneSections(m.cat.CompanySections), nil
}

func (m *Mock) Process(ctx context.Context) (Process, error) {
	if err := m.wait(ctx, ProcessLatency); err != nil {
		return Process{}, err
	}
	return Process{Steps: cloneSteps(m.cat.Process.Steps)}, nil
}

func (m *Mock) Repositories(ctx context.Context) ([]Repository, error) {
	if err := m.wait(ctx, RepositoriesLatency); err != nil {
		return nil, err
	}
	out := make([]Repository, len(m.cat.Repositories))
	copy(out, m.cat.Repositories)
	return out, nil
}
