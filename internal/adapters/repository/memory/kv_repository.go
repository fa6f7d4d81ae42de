package memory

import (
	"context"
	"sync"
)

// KVRepository はプロセス内のみで保持するキーバリューストアです。プロセス終了で内容は失われます。
type KVRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewKVRepository() *KVRepository {
	return &KVRepository{values: map[string]string{}}
}

func (r *KVRepository) Get(_ context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok, nil
}

func (r *KVRepository) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}
