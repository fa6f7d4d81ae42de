package bookmark

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubStorage struct {
	mu     sync.Mutex
	values map[string]string
	getErr error
	setErr error
	sets   int
}

func newStubStorage() *stubStorage {
	return &stubStorage{values: map[string]string{}}
}

func (s *stubStorage) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *stubStorage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.sets++
	s.values[key] = value
	return nil
}

type countingRecorder struct {
	ops []string
}

func (r *countingRecorder) ObserveMutation(op string, _ int) {
	r.ops = append(r.ops, op)
}

func TestStore_AddThenIsBookmarked(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	storage := newStubStorage()
	store := NewStore(ctx, storage)

	require.NoError(t, store.Add(ctx, 7))
	assert.True(t, store.IsBookmarked(7))
	assert.False(t, store.IsBookmarked(8))
	assert.Equal(t, `[7]`, storage.values[StorageKey])
}

func TestStore_AddTwiceKeepsSingleEntry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	storage := newStubStorage()
	rec := &countingRecorder{}
	store := NewStore(ctx, storage, WithRecorder(rec))

	require.NoError(t, store.Add(ctx, 3))
	require.NoError(t, store.Add(ctx, 3))

	assert.Equal(t, []int{3}, store.List())
	assert.Equal(t, 1, storage.sets, "idempotent add must not rewrite storage")
	assert.Equal(t, []string{"add"}, rec.ops)
}

func TestStore_RemoveThenIsBookmarked(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	storage := newStubStorage()
	store := NewStore(ctx, storage)

	require.NoError(t, store.Add(ctx, 1))
	require.NoError(t, store.Add(ctx, 2))
	require.NoError(t, store.Remove(ctx, 1))

	assert.False(t, store.IsBookmarked(1))
	assert.Equal(t, []int{2}, store.List())
	assert.Equal(t, `[2]`, storage.values[StorageKey])
}

func TestStore_RemoveAbsentIsNoop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	storage := newStubStorage()
	store := NewStore(ctx, storage)

	require.NoError(t, store.Remove(ctx, 42))
	assert.Zero(t, storage.sets)
	assert.Empty(t, store.List())
}

func TestStore_RoundTripAcrossSessions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	storage := newStubStorage()

	first := NewStore(ctx, storage)
	for _, id := range []int{9, 2, 5} {
		require.NoError(t, first.Add(ctx, id))
	}

	second := NewStore(ctx, storage)
	assert.Equal(t, first.List(), second.List())
	assert.Equal(t, []int{2, 5, 9}, second.List())
	assert.Equal(t, 3, second.Count())
}

func TestStore_RestoreDeduplicatesPersistedIDs(t *testing.T) {
	t.Parallel()

	storage := newStubStorage()
	storage.values[StorageKey] = `[4,4,1]`

	store := NewStore(context.Background(), storage)
	assert.Equal(t, []int{1, 4}, store.List())
}

func TestStore_RestoreDropsNonPositiveIDs(t *testing.T) {
	t.Parallel()

	storage := newStubStorage()
	storage.values[StorageKey] = `[0,-3,2]`

	core, logs := observer.New(zap.WarnLevel)
	store := NewStore(context.Background(), storage, WithLogger(zap.New(core)))

	assert.Equal(t, []int{2}, store.List())
	assert.Equal(t, 1, store.Count())
	assert.False(t, store.IsBookmarked(0))
	assert.False(t, store.IsBookmarked(-3))
	assert.Equal(t, 2, logs.FilterMessage("discarding invalid bookmark id").Len())
}

func TestStore_MalformedDataStartsEmpty(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{`not json`, `{"a":1}`, `["x"]`, ``} {
		storage := newStubStorage()
		storage.values[StorageKey] = raw

		core, logs := observer.New(zap.WarnLevel)
		store := NewStore(context.Background(), storage, WithLogger(zap.New(core)))

		assert.Empty(t, store.List(), "raw=%q", raw)
		assert.Equal(t, 1, logs.FilterMessage("discarding malformed bookmarks").Len(), "raw=%q", raw)
	}
}

func TestStore_ReadFailureStartsEmpty(t *testing.T) {
	t.Parallel()

	storage := newStubStorage()
	storage.getErr = errors.New("disk gone")

	store := NewStore(context.Background(), storage)
	assert.Empty(t, store.List())
}

func TestStore_PersistFailureRollsBack(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	storage := newStubStorage()
	store := NewStore(ctx, storage)
	require.NoError(t, store.Add(ctx, 1))

	storage.setErr = errors.New("quota exceeded")

	err := store.Add(ctx, 2)
	require.ErrorIs(t, err, ErrPersist)
	assert.False(t, store.IsBookmarked(2))

	err = store.Remove(ctx, 1)
	require.ErrorIs(t, err, ErrPersist)
	assert.True(t, store.IsBookmarked(1))
	assert.Equal(t, `[1]`, storage.values[StorageKey])
}

func TestStore_CustomKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	storage := newStubStorage()
	store := NewStore(ctx, storage, WithKey("tenant:bookmarks"))

	require.NoError(t, store.Add(ctx, 11))
	assert.Equal(t, `[11]`, storage.values["tenant:bookmarks"])
	_, ok := storage.values[StorageKey]
	assert.False(t, ok)
}

func TestStore_RejectsInvalidID(t *testing.T) {
	t.Parallel()

	store := NewStore(context.Background(), newStubStorage())
	assert.ErrorIs(t, store.Add(context.Background(), 0), ErrInvalidID)
}

func TestStore_ConcurrentAdds(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	storage := newStubStorage()
	store := NewStore(ctx, storage)

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_ = store.Add(ctx, id)
			_ = store.Add(ctx, id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, store.Count())

	reloaded := NewStore(ctx, storage)
	assert.Equal(t, store.List(), reloaded.List())
}
