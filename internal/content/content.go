// Package content supplies the static collections rendered by the site.
//
// Consumers depend on Provider only, so the mock catalog can be swapped for
// the sqlite-backed one (or a real backend) without touching the views.
package content

import (
	"context"
	"slices"

	"github.com/Zachkp/adi-site/internal/media"
)

// Provider is the data boundary of the site.
type Provider interface {
	Projects(ctx context.Context) ([]Project, error)
	Team(ctx context.Context) ([]TeamMember, error)
	CompanySections(ctx context.Context) ([]CompanySection, error)
	Process(ctx context.Context) (Process, error)
	Repositories(ctx context.Context) ([]Repository, error)
}

type Link struct {
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url" json:"url"`
}

// ProcessStep is a stage of a project.
type ProcessStep struct {
	ID      int           `yaml:"id" json:"id"`
	Title   string        `yaml:"title" json:"title"`
	Summary string        `yaml:"summary" json:"summary"`
	Media   []media.Media `yaml:"media" json:"media"`
	Links   []Link        `yaml:"links,omitempty" json:"links"`
}

type ProjectLinks struct {
	Demo string `yaml:"demo,omitempty" json:"demo,omitempty"`
	Repo string `yaml:"repo" json:"repo"`
}

type Project struct {
	ID          string        `yaml:"id" json:"id"`
	Title       string        `yaml:"title" json:"title"`
	Description string        `yaml:"description" json:"description"`
	Tags        []string      `yaml:"tags" json:"tags"`
	Stages      []ProcessStep `yaml:"stages" json:"stages"`
	Links       ProjectLinks  `yaml:"links" json:"links"`
}

func (p Project) EntityID() string     { return p.ID }
func (p Project) EntityTags() []string { return p.Tags }

// Stage returns the stage with the given id.
func (p Project) Stage(id int) (ProcessStep, bool) {
	for _, s := range p.Stages {
		if s.ID == id {
			return s, true
		}
	}
	return ProcessStep{}, false
}

type Process struct {
	Steps []ProcessStep `yaml:"steps" json:"steps"`
}

type Repository struct {
	ID        string `yaml:"id" json:"id"`
	Title     string `yaml:"title" json:"title"`
	CodeGIF   string `yaml:"code_gif" json:"codeGif"`
	ResultGIF string `yaml:"result_gif" json:"resultGif"`
	RepoURL   string `yaml:"repo_url" json:"repoUrl"`
}

type MemberLinks struct {
	GitHub string `yaml:"github,omitempty" json:"github,omitempty"`
	Mail   string `yaml:"mail,omitempty" json:"mail,omitempty"`
}

type TeamMember struct {
	Name   string      `yaml:"name" json:"name"`
	Role   string      `yaml:"role" json:"role"`
	Avatar string      `yaml:"avatar" json:"avatar"`
	Skills []string    `yaml:"skills" json:"skills"`
	Links  MemberLinks `yaml:"links" json:"links"`
}

type CompanyItem struct {
	ID          int      `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Image       string   `yaml:"image,omitempty" json:"image,omitempty"`
	Details     []string `yaml:"details,omitempty" json:"details,omitempty"`
}

type CompanySection struct {
	ID          string        `yaml:"id" json:"id"`
	Title       string        `yaml:"title" json:"title"`
	Description string        `yaml:"description" json:"description"`
	Items       []CompanyItem `yaml:"items" json:"items"`
}

func (s CompanySection) EntityID() string { return s.ID }

// Item returns the item with the given id.
func (s CompanySection) Item(id int) (CompanyItem, bool) {
	for _, it := range s.Items {
		if it.ID == id {
			return it, true
		}
	}
	return CompanyItem{}, false
}

// Deep copies. Providers hand out copies so callers cannot mutate the catalog.

func cloneStep(s ProcessStep) ProcessStep {
	s.Media = slices.Clone(s.Media)
	s.Links = slices.Clone(s.Links)
	return s
}

func cloneSteps(steps []ProcessStep) []ProcessStep {
	if steps == nil {
		return nil
	}
	out := make([]ProcessStep, len(steps))
	for i, s := range steps {
		out[i] = cloneStep(s)
	}
	return out
}

func cloneProjects(ps []Project) []Project {
	out := make([]Project, len(ps))
	for i, p := range ps {
		p.Tags = slices.Clone(p.Tags)
		p.Stages = cloneSteps(p.Stages)
		out[i] = p
	}
	return out
}

func cloneTeam(ms []TeamMember) []TeamMember {
	out := make([]TeamMember, len(ms))
	for i, m := range ms {
		m.Skills = slices.Clone(m.Skills)
		out[i] = m
	}
	return out
}

func cloneSections(ss []CompanySection) []CompanySection {
	out := make([]CompanySection, len(ss))
	for i, s := range ss {
		items := make([]CompanyItem, len(s.Items))
		for j, it := range s.Items {
			it.Details = slices.Clone(it.Details)
			items[j] = it
		}
		s.Items = items
		out[i] = s
	}
	return out
}
