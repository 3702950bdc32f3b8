package entitlement

import "fmt"

// Tier is a subscription tier. The set is closed: only the constants below are valid.
type Tier string

const (
	TierFree  Tier = "free"
	TierBasic Tier = "basic"
	TierPro   Tier = "pro"
)

// Tiers returns every tier ordered by entitlement breadth.
func Tiers() []Tier {
	return []Tier{TierFree, TierBasic, TierPro}
}

// ParseTier converts a raw identifier into a Tier.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTierKind, s)
	}
	return t, nil
}

func (t Tier) Valid() bool {
	switch t {
	case TierFree, TierBasic, TierPro:
		return true
	default:
		return false
	}
}

// Rank orders tiers: free < basic < pro. Unknown tiers rank -1.
func (t Tier) Rank() int {
	switch t {
	case TierFree:
		return 0
	case TierBasic:
		return 1
	case TierPro:
		return 2
	default:
		return -1
	}
}

// Paid reports whether the tier is a purchased one.
func (t Tier) Paid() bool {
	return t == TierBasic || t == TierPro
}

func (t Tier) String() string {
	return string(t)
}

// UnmarshalText parses a tier, rejecting unknown values with ErrInvalidTierKind.
func (t *Tier) UnmarshalText(b []byte) error {
	parsed, err := ParseTier(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
