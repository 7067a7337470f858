package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Zachkp/adi-site/internal/media"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the full content set behind a provider.
type Catalog struct {
	Projects        []Project        `yaml:"projects"`
	Process         Process          `yaml:"process"`
	Repositories    []Repository     `yaml:"repositories"`
	Team            []TeamMember     `yaml:"team"`
	CompanySections []CompanySection `yaml:"company_sections"`
}

// DefaultCatalog decodes the catalog compiled into the binary.
func DefaultCatalog() (Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}

// Validate checks the invariants the selection views rely on: unique
// top-level ids and child ids numbered 1..n in order.
func (c Catalog) Validate() error {
	seen := make(map[string]bool)
	for _, p := range c.Projects {
		if p.ID == "" || seen[p.ID] {
			return fmt.Errorf("project id %q is empty or duplicated", p.ID)
		}
		seen[p.ID] = true
		if err := validateSteps("project "+p.ID, p.Stages); err != nil {
			return err
		}
	}
	if err := validateSteps("process", c.Process.Steps); err != nil {
		return err
	}

	seen = make(map[string]bool)
	for _, s := range c.CompanySections {
		if s.ID == "" || seen[s.ID] {
			return fmt.Errorf("company section id %q is empty or duplicated", s.ID)
		}
		seen[s.ID] = true
		for i, it := range s.Items {
			if it.ID != i+1 {
				return fmt.Errorf("company section %s: item %d has id %d", s.ID, i+1, it.ID)
			}
		}
	}
	return nil
}

func validateSteps(owner string, steps []ProcessStep) error {
	for i, s := range steps {
		if s.ID != i+1 {
			return fmt.Errorf("%s: stage %d has id %d", owner, i+1, s.ID)
		}
		for _, m := range s.Media {
			if _, err := media.ParseKind(string(m.Kind)); err != nil {
				return fmt.Errorf("%s: stage %d: %w", owner, s.ID, err)
			}
		}
	}
	return nil
}
