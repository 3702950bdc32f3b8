package entitlement

import "fmt"

// Policy decides whether a tier grants access to a feature.
type Policy interface {
	HasAccess(tier Tier, feature Feature) (bool, error)
}

// PolicyFunc adapts a function to the Policy interface.
type PolicyFunc func(tier Tier, feature Feature) (bool, error)

func (f PolicyFunc) HasAccess(tier Tier, feature Feature) (bool, error) {
	return f(tier, feature)
}

// DefaultPolicy is the production access rule.
var DefaultPolicy Policy = PolicyFunc(HasAccess)

// HasAccess reports whether tier unlocks feature.
//
// Free never has access. Basic and pro both unlock every protected feature;
// the two paid tiers are not differentiated per feature yet.
// An unknown feature or tier is returned as an error, never as a decision.
func HasAccess(tier Tier, feature Feature) (bool, error) {
	if !tier.Valid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidTierKind, tier)
	}

	switch feature {
	case FeatureInterviewReport:
		return tier.Paid(), nil
	case FeatureResumeReport:
		return tier.Paid(), nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidFeatureKind, feature)
	}
}

// Check is HasAccess in error form: nil when granted, ErrAccessDenied when not.
func Check(p Policy, tier Tier, feature Feature) error {
	ok, err := p.HasAccess(tier, feature)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s requires a paid plan, current plan is %s", ErrAccessDenied, feature, tier)
	}
	return nil
}
