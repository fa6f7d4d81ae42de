package bookmark

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// Recorder はブックマーク操作の計測先です。
type Recorder interface {
	ObserveMutation(op string, size int)
}

type noopRecorder struct{}

func (noopRecorder) ObserveMutation(string, int) {}

// Option は Store の構築オプションです。
type Option func(*Store)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithRecorder(rec Recorder) Option {
	return func(s *Store) {
		if rec != nil {
			s.recorder = rec
		}
	}
}

// WithKey は保存先キーを差し替えます。空文字列は無視されます。
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// Store はブックマークされた社員 ID の集合を保持し、変更のたびに Storage へ書き込みます。
//
// 集合は Directory の社員一覧と独立しており、一覧に存在しない ID も保持し続けます。
type Store struct {
	storage  Storage
	key      string
	logger   *zap.Logger
	recorder Recorder

	mu  sync.RWMutex
	ids map[int]struct{}
}

// NewStore は Storage から保存済みの集合を読み込んで Store を生成します。
//
// 値が存在しない、読み込みに失敗した、または壊れている場合は空集合から開始します。
func NewStore(ctx context.Context, storage Storage, opts ...Option) *Store {
	s := &Store{
		storage:  storage,
		key:      StorageKey,
		logger:   zap.NewNop(),
		recorder: noopRecorder{},
		ids:      map[int]struct{}{},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.ids = s.restore(ctx)
	return s
}

func (s *Store) restore(ctx context.Context) map[int]struct{} {
	raw, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("failed to read bookmarks, starting empty", zap.String("key", s.key), zap.Error(err))
		return map[int]struct{}{}
	}
	if !ok {
		return map[int]struct{}{}
	}

	ids, err := decode(raw)
	if err != nil {
		s.logger.Warn("discarding malformed bookmarks", zap.String("key", s.key), zap.Error(err))
		return map[int]struct{}{}
	}

	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if id <= 0 {
			s.logger.Warn("discarding invalid bookmark id", zap.String("key", s.key), zap.Int("id", id))
			continue
		}
		set[id] = struct{}{}
	}
	return set
}

// Add は id を集合へ追加します。既に存在する場合は何もしません。
func (s *Store) Add(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[id]; ok {
		return nil
	}

	s.ids[id] = struct{}{}
	if err := s.persistLocked(ctx); err != nil {
		delete(s.ids, id)
		return err
	}

	s.recorder.ObserveMutation("add", len(s.ids))
	return nil
}

// Remove は id を集合から削除します。存在しない場合は何もしません。
func (s *Store) Remove(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ids[id]; !ok {
		return nil
	}

	delete(s.ids, id)
	if err := s.persistLocked(ctx); err != nil {
		s.ids[id] = struct{}{}
		return err
	}

	s.recorder.ObserveMutation("remove", len(s.ids))
	return nil
}

// IsBookmarked は id が集合に含まれるかを返します。
func (s *Store) IsBookmarked(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[id]
	return ok
}

// List は集合を昇順のスライスで返します。
func (s *Store) List() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked()
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

func (s *Store) sortedLocked() []int {
	ids := make([]int, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (s *Store) persistLocked(ctx context.Context) error {
	payload, err := json.Marshal(s.sortedLocked())
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrPersist, err)
	}
	if err := s.storage.Set(ctx, s.key, string(payload)); err != nil {
		s.logger.Error("failed to persist bookmarks", zap.String("key", s.key), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

func decode(raw string) ([]int, error) {
	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
