package clinic

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// SettingsReader is the read side of the settings store, accepted by
// components that only need to look configuration up.
type SettingsReader interface {
	Get(ctx context.Context, orgID string) (*Settings, error)
}

// Store provides persistence for clinic settings.
type Store struct {
	redis *redis.Client
}

// NewStore creates a new clinic settings store.
func NewStore(redisClient *redis.Client) *Store {
	return &Store{redis: redisClient}
}

func (s *Store) key(orgID string) string {
	return fmt.Sprintf("clinic:settings:%s", orgID)
}

// Get retrieves clinic settings, returning defaults if not found.
func (s *Store) Get(ctx context.Context, orgID string) (*Settings, error) {
	data, err := s.redis.Get(ctx, s.key(orgID)).Bytes()
	if err == redis.Nil {
		return DefaultSettings(orgID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("clinic: get settings: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("clinic: unmarshal settings: %w", err)
	}

	return &settings, nil
}

// Set saves clinic settings.
func (s *Store) Set(ctx context.Context, settings *Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("clinic: marshal settings: %w", err)
	}

	if err := s.redis.Set(ctx, s.key(settings.OrgID), data, 0).Err(); err != nil {
		return fmt.Errorf("clinic: set settings: %w", err)
	}

	return nil
}
