package binder_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/interviewpro/pkg/binder"
	"github.com/dmitrymomot/interviewpro/pkg/entitlement"
)

func mapExtractor(params map[string]string) binder.Extractor {
	return func(_ *http.Request, name string) string {
		return params[name]
	}
}

func TestPath(t *testing.T) {
	t.Parallel()

	type request struct {
		Tier     entitlement.Tier     `path:"tier"`
		Feature  *entitlement.Feature `path:"feature"`
		Page     int                  `path:"page"`
		Draft    bool
		Name     string `path:"name,omitempty"`
		Internal string `path:"-"`
		hidden   string
	}

	t.Run("binds tagged and untagged fields", func(t *testing.T) {
		t.Parallel()

		bind := binder.Path(mapExtractor(map[string]string{
			"tier":     "pro",
			"feature":  "resume-report",
			"page":     "3",
			"draft":    "true",
			"name":     "alice",
			"internal": "nope",
		}))

		var req request
		require.NoError(t, bind(httptest.NewRequest(http.MethodGet, "/", nil), &req))
		assert.Equal(t, entitlement.TierPro, req.Tier)
		require.NotNil(t, req.Feature)
		assert.Equal(t, entitlement.FeatureResumeReport, *req.Feature)
		assert.Equal(t, 3, req.Page)
		assert.True(t, req.Draft)
		assert.Equal(t, "alice", req.Name)
		assert.Empty(t, req.Internal)
		assert.Empty(t, req.hidden)
	})

	t.Run("unknown enum value is rejected", func(t *testing.T) {
		t.Parallel()

		bind := binder.Path(mapExtractor(map[string]string{"tier": "enterprise"}))

		var req request
		err := bind(httptest.NewRequest(http.MethodGet, "/", nil), &req)
		require.ErrorIs(t, err, binder.ErrFailedToParsePath)
		require.ErrorIs(t, err, entitlement.ErrInvalidTierKind)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()

		bind := binder.Path(mapExtractor(map[string]string{"page": "x"}))

		var req request
		require.ErrorIs(t, bind(httptest.NewRequest(http.MethodGet, "/", nil), &req), binder.ErrFailedToParsePath)
	})

	t.Run("invalid targets", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		bind := binder.Path(mapExtractor(nil))

		var s string
		require.ErrorIs(t, bind(r, &s), binder.ErrFailedToParsePath)
		require.ErrorIs(t, bind(r, request{}), binder.ErrFailedToParsePath)
		require.ErrorIs(t, binder.Path(nil)(r, &request{}), binder.ErrFailedToParsePath)
	})
}

func TestChiPath(t *testing.T) {
	t.Parallel()

	type request struct {
		Tier entitlement.Tier `path:"tier"`
	}

	var got request
	var bindErr error
	r := chi.NewRouter()
	r.Post("/plan/{tier}", func(w http.ResponseWriter, req *http.Request) {
		bindErr = binder.ChiPath()(req, &got)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/plan/basic", nil))
	require.NoError(t, bindErr)
	assert.Equal(t, entitlement.TierBasic, got.Tier)
}
