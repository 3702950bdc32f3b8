package entitlement

import (
	"errors"
	"fmt"
	"slices"
)

// Plan is the display metadata of a purchasable tier.
type Plan struct {
	Tier        Tier     `yaml:"tier" json:"tier"`
	Name        string   `yaml:"name" json:"name"`
	Price       string   `yaml:"price" json:"price"`
	Period      string   `yaml:"period" json:"period"`
	Features    []string `yaml:"features" json:"features"`
	Recommended bool     `yaml:"recommended" json:"recommended"`
}

// PriceLabel joins price and billing period, e.g. "$9.99/month".
func (p Plan) PriceLabel() string {
	return p.Price + p.Period
}

func (p Plan) clone() Plan {
	p.Features = slices.Clone(p.Features)
	return p
}

// Catalog is the static registry of purchasable plans, ordered by tier rank.
type Catalog struct {
	plans []Plan
}

// NewCatalog validates plans and returns them as a catalog.
func NewCatalog(plans ...Plan) (*Catalog, error) {
	if len(plans) == 0 {
		return nil, errors.Join(ErrInvalidPlanConfiguration, errors.New("at least one plan is required"))
	}

	seen := make(map[Tier]struct{}, len(plans))
	list := make([]Plan, 0, len(plans))
	for i, p := range plans {
		if err := validatePlan(p); err != nil {
			return nil, fmt.Errorf("%w: plan %d: %v", ErrInvalidPlanConfiguration, i, err)
		}
		if _, dup := seen[p.Tier]; dup {
			return nil, fmt.Errorf("%w: duplicate plan for tier %q", ErrInvalidPlanConfiguration, p.Tier)
		}
		seen[p.Tier] = struct{}{}
		list = append(list, p.clone())
	}

	slices.SortStableFunc(list, func(a, b Plan) int {
		return a.Tier.Rank() - b.Tier.Rank()
	})

	return &Catalog{plans: list}, nil
}

// ListPlans returns a copy of all plans in tier order.
func (c *Catalog) ListPlans() []Plan {
	out := make([]Plan, len(c.plans))
	for i, p := range c.plans {
		out[i] = p.clone()
	}
	return out
}

// Plan returns the plan that sets tier t.
func (c *Catalog) Plan(t Tier) (Plan, bool) {
	for _, p := range c.plans {
		if p.Tier == t {
			return p.clone(), true
		}
	}
	return Plan{}, false
}

func validatePlan(p Plan) error {
	if !p.Tier.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTierKind, p.Tier)
	}
	if !p.Tier.Paid() {
		return fmt.Errorf("tier %q is not purchasable", p.Tier)
	}
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Price == "" {
		return errors.New("price is required")
	}
	return nil
}
