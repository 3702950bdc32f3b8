package entitlement_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/interviewpro/pkg/entitlement"
)

func TestNewState(t *testing.T) {
	t.Parallel()

	s := entitlement.NewState()
	assert.Equal(t, entitlement.TierFree, s.Tier())
	assert.Equal(t, 0, s.Listeners())

	s, err := entitlement.NewStateWithTier(entitlement.TierPro)
	require.NoError(t, err)
	assert.Equal(t, entitlement.TierPro, s.Tier())

	_, err = entitlement.NewStateWithTier("platinum")
	assert.ErrorIs(t, err, entitlement.ErrInvalidTierKind)
}

func TestState_SetTier(t *testing.T) {
	t.Parallel()

	t.Run("every transition is allowed", func(t *testing.T) {
		t.Parallel()

		for _, from := range entitlement.Tiers() {
			for _, to := range entitlement.Tiers() {
				s, err := entitlement.NewStateWithTier(from)
				require.NoError(t, err)
				require.NoError(t, s.SetTier(to))
				assert.Equal(t, to, s.Tier())
			}
		}
	})

	t.Run("invalid tier is rejected and state kept", func(t *testing.T) {
		t.Parallel()

		s := entitlement.NewState()
		var calls int
		s.Subscribe(func(entitlement.Change) { calls++ })

		err := s.SetTier("gold")
		require.ErrorIs(t, err, entitlement.ErrInvalidTierKind)
		assert.Equal(t, entitlement.TierFree, s.Tier())
		assert.Zero(t, calls)
	})

	t.Run("no-op sets notify once per call", func(t *testing.T) {
		t.Parallel()

		s := entitlement.NewState()
		var changes []entitlement.Change
		s.Subscribe(func(c entitlement.Change) { changes = append(changes, c) })

		require.NoError(t, s.SetTier(entitlement.TierPro))
		require.NoError(t, s.SetTier(entitlement.TierPro))

		require.Len(t, changes, 2)
		assert.Equal(t, entitlement.Change{From: entitlement.TierFree, To: entitlement.TierPro}, changes[0])
		assert.True(t, changes[0].Changed())
		assert.Equal(t, entitlement.Change{From: entitlement.TierPro, To: entitlement.TierPro}, changes[1])
		assert.False(t, changes[1].Changed())
	})

	t.Run("listeners run in registration order before SetTier returns", func(t *testing.T) {
		t.Parallel()

		s := entitlement.NewState()
		var order []int
		for i := range 3 {
			s.Subscribe(func(c entitlement.Change) {
				// the new tier is already visible to listeners
				assert.Equal(t, c.To, s.Tier())
				order = append(order, i)
			})
		}

		require.NoError(t, s.SetTier(entitlement.TierBasic))
		assert.Equal(t, []int{0, 1, 2}, order)
	})
}

func TestState_Subscribe(t *testing.T) {
	t.Parallel()

	t.Run("unsubscribe stops notifications", func(t *testing.T) {
		t.Parallel()

		s := entitlement.NewState()
		var a, b int
		unsubA := s.Subscribe(func(entitlement.Change) { a++ })
		s.Subscribe(func(entitlement.Change) { b++ })
		require.Equal(t, 2, s.Listeners())

		require.NoError(t, s.SetTier(entitlement.TierBasic))
		unsubA()
		unsubA()
		require.NoError(t, s.SetTier(entitlement.TierPro))

		assert.Equal(t, 1, a)
		assert.Equal(t, 2, b)
		assert.Equal(t, 1, s.Listeners())
	})

	t.Run("nil listener panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { entitlement.NewState().Subscribe(nil) })
	})

	t.Run("unsubscribing during notification is safe", func(t *testing.T) {
		t.Parallel()

		s := entitlement.NewState()
		var calls int
		var unsub func()
		unsub = s.Subscribe(func(entitlement.Change) {
			calls++
			unsub()
		})

		require.NoError(t, s.SetTier(entitlement.TierBasic))
		require.NoError(t, s.SetTier(entitlement.TierPro))
		assert.Equal(t, 1, calls)
	})
}

func TestState_ConcurrentWriters(t *testing.T) {
	t.Parallel()

	s := entitlement.NewState()
	var (
		mu      sync.Mutex
		changes []entitlement.Change
	)
	s.Subscribe(func(c entitlement.Change) {
		mu.Lock()
		changes = append(changes, c)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.SetTier(entitlement.Tiers()[i%3])
		}()
	}
	wg.Wait()

	require.Len(t, changes, 50)
	// serialised writers: each notification starts where the previous one ended
	for i := 1; i < len(changes); i++ {
		assert.Equal(t, changes[i-1].To, changes[i].From)
	}
	assert.Equal(t, changes[len(changes)-1].To, s.Tier())
}
