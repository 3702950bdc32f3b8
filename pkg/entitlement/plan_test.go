package entitlement_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/interviewpro/pkg/entitlement"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	c := entitlement.DefaultCatalog()
	plans := c.ListPlans()
	require.Len(t, plans, 2)

	basic := plans[0]
	assert.Equal(t, entitlement.TierBasic, basic.Tier)
	assert.Equal(t, "Basic", basic.Name)
	assert.Equal(t, "$9.99/month", basic.PriceLabel())
	assert.Len(t, basic.Features, 4)
	assert.False(t, basic.Recommended)

	pro := plans[1]
	assert.Equal(t, entitlement.TierPro, pro.Tier)
	assert.Equal(t, "Pro", pro.Name)
	assert.Equal(t, "$19.99/month", pro.PriceLabel())
	assert.Contains(t, pro.Features, "Export reports as PDF")
	assert.True(t, pro.Recommended)

	_, ok := c.Plan(entitlement.TierFree)
	assert.False(t, ok)
	p, ok := c.Plan(entitlement.TierPro)
	require.True(t, ok)
	assert.Equal(t, "Pro", p.Name)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	t.Parallel()

	c := entitlement.DefaultCatalog()
	plans := c.ListPlans()
	plans[0].Name = "changed"
	plans[0].Features[0] = "changed"

	again := c.ListPlans()
	assert.Equal(t, "Basic", again[0].Name)
	assert.NotEqual(t, "changed", again[0].Features[0])
}

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	valid := entitlement.Plan{Tier: entitlement.TierBasic, Name: "Basic", Price: "$1"}

	tests := []struct {
		name  string
		plans []entitlement.Plan
	}{
		{"empty", nil},
		{"free tier", []entitlement.Plan{{Tier: entitlement.TierFree, Name: "Free", Price: "$0"}}},
		{"unknown tier", []entitlement.Plan{{Tier: "gold", Name: "Gold", Price: "$99"}}},
		{"missing name", []entitlement.Plan{{Tier: entitlement.TierPro, Price: "$2"}}},
		{"missing price", []entitlement.Plan{{Tier: entitlement.TierPro, Name: "Pro"}}},
		{"duplicate tier", []entitlement.Plan{valid, valid}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := entitlement.NewCatalog(tt.plans...)
			assert.ErrorIs(t, err, entitlement.ErrInvalidPlanConfiguration)
		})
	}

	t.Run("sorted by tier rank", func(t *testing.T) {
		t.Parallel()
		c, err := entitlement.NewCatalog(
			entitlement.Plan{Tier: entitlement.TierPro, Name: "Pro", Price: "$2"},
			valid,
		)
		require.NoError(t, err)
		plans := c.ListPlans()
		assert.Equal(t, entitlement.TierBasic, plans[0].Tier)
		assert.Equal(t, entitlement.TierPro, plans[1].Tier)
	})
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	t.Run("valid yaml", func(t *testing.T) {
		t.Parallel()
		src := `
plans:
  - tier: pro
    name: Team
    price: "$49"
    period: /seat
    recommended: true
    features: [SSO]
`
		c, err := entitlement.LoadCatalog(strings.NewReader(src))
		require.NoError(t, err)
		p, ok := c.Plan(entitlement.TierPro)
		require.True(t, ok)
		assert.Equal(t, "$49/seat", p.PriceLabel())
		assert.Equal(t, []string{"SSO"}, p.Features)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		_, err := entitlement.LoadCatalog(strings.NewReader("plans:\n  - tier: pro\n    cost: 1\n"))
		assert.ErrorIs(t, err, entitlement.ErrFailedToLoadPlans)
	})

	t.Run("invalid plan", func(t *testing.T) {
		t.Parallel()
		_, err := entitlement.LoadCatalog(strings.NewReader("plans:\n  - tier: free\n    name: Free\n    price: $0\n"))
		assert.ErrorIs(t, err, entitlement.ErrInvalidPlanConfiguration)
	})

	t.Run("from file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "plans.yaml")
		require.NoError(t, os.WriteFile(path, []byte("plans:\n  - tier: basic\n    name: Starter\n    price: $5\n"), 0o600))

		c, err := entitlement.LoadCatalogFile(path)
		require.NoError(t, err)
		p, ok := c.Plan(entitlement.TierBasic)
		require.True(t, ok)
		assert.Equal(t, "Starter", p.Name)

		_, err = entitlement.LoadCatalogFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, entitlement.ErrFailedToLoadPlans)
	})
}
