package entitlement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dmitrymomot/interviewpro/pkg/entitlement"
)

func TestHasAccess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		tier    entitlement.Tier
		feature entitlement.Feature
		want    bool
	}{
		{"free interview report", entitlement.TierFree, entitlement.FeatureInterviewReport, false},
		{"free resume report", entitlement.TierFree, entitlement.FeatureResumeReport, false},
		{"basic interview report", entitlement.TierBasic, entitlement.FeatureInterviewReport, true},
		{"basic resume report", entitlement.TierBasic, entitlement.FeatureResumeReport, true},
		{"pro interview report", entitlement.TierPro, entitlement.FeatureInterviewReport, true},
		{"pro resume report", entitlement.TierPro, entitlement.FeatureResumeReport, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := entitlement.HasAccess(tt.tier, tt.feature)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasAccess_UnknownFeature(t *testing.T) {
	t.Parallel()

	got, err := entitlement.HasAccess(entitlement.TierPro, entitlement.Feature("nonexistent-feature"))
	require.ErrorIs(t, err, entitlement.ErrInvalidFeatureKind)
	assert.False(t, got)
}

func TestHasAccess_UnknownTier(t *testing.T) {
	t.Parallel()

	_, err := entitlement.HasAccess(entitlement.Tier("enterprise"), entitlement.FeatureResumeReport)
	require.ErrorIs(t, err, entitlement.ErrInvalidTierKind)
}

func TestHasAccess_Properties(t *testing.T) {
	t.Parallel()

	t.Run("free never has access", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			feature := rapid.SampledFrom(entitlement.Features()).Draw(rt, "feature")
			ok, err := entitlement.HasAccess(entitlement.TierFree, feature)
			if err != nil {
				rt.Fatalf("unexpected error: %v", err)
			}
			if ok {
				rt.Fatalf("free tier unlocked %s", feature)
			}
		})
	})

	t.Run("paid tiers always have access", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			feature := rapid.SampledFrom(entitlement.Features()).Draw(rt, "feature")
			tier := rapid.SampledFrom([]entitlement.Tier{entitlement.TierBasic, entitlement.TierPro}).Draw(rt, "tier")
			ok, err := entitlement.HasAccess(tier, feature)
			if err != nil {
				rt.Fatalf("unexpected error: %v", err)
			}
			if !ok {
				rt.Fatalf("%s tier denied %s", tier, feature)
			}
		})
	})

	t.Run("anything outside the feature set is rejected", func(t *testing.T) {
		rapid.Check(t, func(rt *rapid.T) {
			raw := rapid.String().Filter(func(s string) bool {
				return !entitlement.Feature(s).Valid()
			}).Draw(rt, "feature")
			tier := rapid.SampledFrom(entitlement.Tiers()).Draw(rt, "tier")

			_, err := entitlement.HasAccess(tier, entitlement.Feature(raw))
			if err == nil {
				rt.Fatalf("feature %q was not rejected", raw)
			}
		})
	})
}

func TestCheck(t *testing.T) {
	t.Parallel()

	t.Run("denied", func(t *testing.T) {
		t.Parallel()
		err := entitlement.Check(entitlement.DefaultPolicy, entitlement.TierFree, entitlement.FeatureResumeReport)
		assert.ErrorIs(t, err, entitlement.ErrAccessDenied)
	})

	t.Run("granted", func(t *testing.T) {
		t.Parallel()
		err := entitlement.Check(entitlement.DefaultPolicy, entitlement.TierBasic, entitlement.FeatureResumeReport)
		assert.NoError(t, err)
	})

	t.Run("unknown feature is not a denial", func(t *testing.T) {
		t.Parallel()
		err := entitlement.Check(entitlement.DefaultPolicy, entitlement.TierBasic, entitlement.Feature("x"))
		assert.ErrorIs(t, err, entitlement.ErrInvalidFeatureKind)
		assert.NotErrorIs(t, err, entitlement.ErrAccessDenied)
	})

	t.Run("custom policy", func(t *testing.T) {
		t.Parallel()
		allowAll := entitlement.PolicyFunc(func(entitlement.Tier, entitlement.Feature) (bool, error) {
			return true, nil
		})
		assert.NoError(t, entitlement.Check(allowAll, entitlement.TierFree, entitlement.FeatureResumeReport))
	})
}
