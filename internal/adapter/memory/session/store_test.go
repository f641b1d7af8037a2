package session

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/infofinder-backend/internal/domain"
)

func newTestStore(t *testing.T, capacity int) *Store {
	t.Helper()
	s, err := NewStore(capacity, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return s
}

func TestStore_CreateAndGet(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, 4)
	sess := s.Create()
	assert.Equal(t, domain.DefaultCategory, sess.Category)

	got, err := s.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)
}

func TestStore_Get_NotFound(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, 4)

	for _, id := range []string{"", "not-a-uuid", "1b4e28ba-2fa1-11d2-883f-0016d3cca427"} {
		_, err := s.Get(id)
		assert.ErrorIs(t, err, ErrSessionNotFound, id)
		assert.ErrorIs(t, err, domain.ErrNotFound, id)
	}
}

func TestStore_GetOrCreate(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, 4)
	existing := s.Create()

	assert.Same(t, existing, s.GetOrCreate(existing.ID))

	fresh := s.GetOrCreate("")
	assert.NotEqual(t, existing.ID, fresh.ID)

	unknown := s.GetOrCreate("1b4e28ba-2fa1-11d2-883f-0016d3cca427")
	assert.NotEqual(t, "1b4e28ba-2fa1-11d2-883f-0016d3cca427", unknown.ID)
	assert.Equal(t, 3, s.Len())
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, 4)
	sess := s.Create()

	assert.True(t, s.Delete(sess.ID))
	assert.False(t, s.Delete(sess.ID))

	_, err := s.Get(sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStore_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, 2)
	first := s.Create()
	second := s.Create()

	_, err := s.Get(first.ID)
	require.NoError(t, err)

	s.Create()

	_, err = s.Get(second.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = s.Get(first.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestStore_InvalidCapacity(t *testing.T) {
	t.Parallel()

	_, err := NewStore(0, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

func TestStore_Concurrent(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, 64)

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess := s.Create()
			_, _ = s.Get(sess.ID)
		}()
	}
	wg.Wait()

	assert.Equal(t, 32, s.Len())
}
