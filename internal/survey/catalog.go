package survey

import (
	"fmt"
	"strings"
)

// Role names a canonical column a question can feed.
type Role string

const (
	RoleFullName           Role = "full_name"
	RoleIdentification     Role = "identification"
	RoleExitDate           Role = "exit_date"
	RoleTenure             Role = "tenure"
	RoleArea               Role = "area"
	RoleCountry            Role = "country"
	RoleLastLeader         Role = "last_leader"
	RoleExitReasonCategory Role = "exit_reason_category"
	RoleExitReasonDetail   Role = "exit_reason_detail"
	RoleExperienceRating   Role = "experience_rating"
	RoleWouldRecommend     Role = "would_recommend"
	RoleWouldReturn        Role = "would_return"
	RoleWhatEnjoyed        Role = "what_enjoyed"
	RoleWhatToImprove      Role = "what_to_improve"
	RoleSatisfaction       Role = "satisfaction_ratings"
	RoleNewCompanyInfo     Role = "new_company_info"
)

// Catalog is an ordered, immutable question set for one questionnaire
// variant. Roles is the explicit, versioned mapping from canonical role
// to question number; catalogs without one fall back to prompt-keyword
// inference in the mapper.
type Catalog struct {
	Name      string
	Questions []Question
	Roles     map[Role]int
}

// Validate checks the load-time invariants: at least one question,
// unique numbers, and role targets that actually exist.
func (c *Catalog) Validate() error {
	if len(c.Questions) == 0 {
		return fmt.Errorf("catalog %s has no questions", c.Name)
	}
	seen := make(map[int]bool, len(c.Questions))
	for _, q := range c.Questions {
		if q.Number <= 0 {
			return fmt.Errorf("catalog %s: question %q has non-positive number %d", c.Name, q.Prompt, q.Number)
		}
		if seen[q.Number] {
			return fmt.Errorf("catalog %s: duplicate question number %d", c.Name, q.Number)
		}
		seen[q.Number] = true
	}
	for role, number := range c.Roles {
		if !seen[number] {
			return fmt.Errorf("catalog %s: role %s points at missing question %d", c.Name, role, number)
		}
	}
	return nil
}

// Question returns the question with the given number.
func (c *Catalog) Question(number int) (Question, bool) {
	for _, q := range c.Questions {
		if q.Number == number {
			return q, true
		}
	}
	return Question{}, false
}

// Resolver selects a catalog by organizational area. Catalogs are
// static configuration handed in at construction; resolution is total
// and safe for concurrent use.
type Resolver struct {
	fallback *Catalog
	byArea   map[string]*Catalog
}

// NewResolver builds a resolver over a fallback catalog and a set of
// area-specific catalogs keyed by area name (matched case-insensitively).
// All catalogs are validated up front: a malformed catalog is a
// configuration error, not a runtime concern.
func NewResolver(fallback *Catalog, byArea map[string]*Catalog) (*Resolver, error) {
	if err := fallback.Validate(); err != nil {
		return nil, err
	}
	normalized := make(map[string]*Catalog, len(byArea))
	for area, cat := range byArea {
		if err := cat.Validate(); err != nil {
			return nil, err
		}
		normalized[strings.ToLower(area)] = cat
	}
	return &Resolver{fallback: fallback, byArea: normalized}, nil
}

// Resolve returns the catalog for the given area. Unknown, empty and
// unmatched areas all resolve to the fallback catalog.
func (r *Resolver) Resolve(area string) *Catalog {
	if cat, ok := r.byArea[strings.ToLower(strings.TrimSpace(area))]; ok {
		return cat
	}
	return r.fallback
}

// DefaultResolver wires the two built-in catalogs: the general form for
// every area, and the sales-specific form.
func DefaultResolver() *Resolver {
	r, err := NewResolver(GeneralCatalog(), map[string]*Catalog{
		"sales": SalesCatalog(),
	})
	if err != nil {
		// Built-in catalogs are package constants; failing here is a bug.
		panic(err)
	}
	return r
}
