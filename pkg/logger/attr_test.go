package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/interviewpro/pkg/logger"
)

func TestError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestErrors(t *testing.T) {
	t.Parallel()

	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)

	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{name: "tier", attr: logger.Tier("pro"), key: "tier", want: "pro"},
		{name: "feature", attr: logger.Feature("resume-report"), key: "feature", want: "resume-report"},
		{name: "access", attr: logger.Access(true), key: "access", want: true},
		{name: "session", attr: logger.SessionID("abc"), key: "session_id", want: "abc"},
		{name: "request", attr: logger.RequestID("r1"), key: "request_id", want: "r1"},
		{name: "component", attr: logger.Component("gate"), key: "component", want: "gate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}

	assert.True(t, logger.SessionID(nil).Equal(slog.Attr{}))
}

func TestTierChange(t *testing.T) {
	t.Parallel()

	attr := logger.TierChange("free", "basic")
	require.Equal(t, "tier", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "free", g[0].Value.String())
	assert.Equal(t, "basic", g[1].Value.String())
}
