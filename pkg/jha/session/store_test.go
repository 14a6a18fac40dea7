package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreIsolatesSessions(t *testing.T) {
	s := NewStore(0)
	a, b := NewID(), NewID()
	require.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	require.NoError(t, err)

	require.NoError(t, s.Do(a, func(e *Editor) error {
		e.Select("North")
		return e.Set(FieldTask, "mine")
	}))
	require.NoError(t, s.Do(b, func(e *Editor) error {
		assert.Equal(t, "", e.Division())
		assert.Equal(t, "", e.Text(FieldTask))
		return nil
	}))
	require.NoError(t, s.Do(a, func(e *Editor) error {
		assert.Equal(t, "mine", e.Text(FieldTask))
		return nil
	}))
	assert.Equal(t, 2, s.Len())

	s.Drop(a)
	assert.Equal(t, 1, s.Len())
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore(0)
	id := NewID()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Do(id, func(e *Editor) error {
				e.Select("North")
				e.Seed(FieldTask, "seed")
				return nil
			})
		}()
	}
	wg.Wait()

	require.NoError(t, s.Do(id, func(e *Editor) error {
		assert.Equal(t, "seed", e.Text(FieldTask))
		return nil
	}))
	assert.Equal(t, 1, s.Len())
}

func TestStoreFailedCallKeepsNoSession(t *testing.T) {
	s := NewStore(0)
	boom := errors.New("boom")

	err := s.Do(NewID(), func(e *Editor) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, s.Len())

	// An existing session survives a failed call
	id := NewID()
	require.NoError(t, s.Do(id, func(e *Editor) error { e.Select("North"); return nil }))
	assert.ErrorIs(t, s.Do(id, func(e *Editor) error { return boom }), boom)
	assert.Equal(t, 1, s.Len())
}

func TestStoreLookupDoesNotCreate(t *testing.T) {
	s := NewStore(0)
	for i := 0; i < 500; i++ {
		require.NoError(t, s.Lookup(NewID(), func(e *Editor) error {
			assert.Equal(t, "", e.Division())
			e.Select("North")
			return nil
		}))
	}
	assert.Equal(t, 0, s.Len())

	id := NewID()
	require.NoError(t, s.Do(id, func(e *Editor) error { e.Select("South"); return nil }))
	require.NoError(t, s.Lookup(id, func(e *Editor) error {
		assert.Equal(t, "South", e.Division())
		return nil
	}))
}

func TestStoreIdleExpiry(t *testing.T) {
	s := NewStore(time.Minute)
	clock := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }

	stale, fresh := NewID(), NewID()
	require.NoError(t, s.Do(stale, func(e *Editor) error { e.Select("North"); return nil }))

	clock = clock.Add(45 * time.Second)
	require.NoError(t, s.Do(fresh, func(e *Editor) error { e.Select("South"); return nil }))
	assert.Equal(t, 2, s.Len())

	// stale is idle for 61s; the next Do sweeps it
	clock = clock.Add(16 * time.Second)
	require.NoError(t, s.Do(fresh, func(e *Editor) error { return nil }))
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Lookup(stale, func(e *Editor) error {
		assert.Equal(t, "", e.Division(), "expired session reads as blank")
		return nil
	}))

	// Lookup on an expired id drops it
	clock = clock.Add(2 * time.Minute)
	require.NoError(t, s.Lookup(fresh, func(e *Editor) error {
		assert.Equal(t, "", e.Division())
		return nil
	}))
	assert.Equal(t, 0, s.Len())
}
