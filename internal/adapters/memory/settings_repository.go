package memory

import (
	"context"
	"maps"
	"sync"

	"shelfbox/internal/ports"
)

// SettingsRepository implements ports.SettingsRepository in memory
type SettingsRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ ports.SettingsRepository = (*SettingsRepository)(nil)

// NewSettingsRepository creates an empty in-memory settings repository
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{values: make(map[string]string)}
}

func (r *SettingsRepository) Get(_ context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.values[key]
	return value, ok, nil
}

func (r *SettingsRepository) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}

func (r *SettingsRepository) Remove(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	return nil
}

func (r *SettingsRepository) GetAll(_ context.Context) (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.values), nil
}
