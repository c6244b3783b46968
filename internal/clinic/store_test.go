package clinic

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestStoreGetReturnsDefaultsWhenMissing(t *testing.T) {
	store := NewStore(setupTestRedis(t))

	settings, err := store.Get(context.Background(), "org-unknown")
	require.NoError(t, err)
	assert.Equal(t, "org-unknown", settings.OrgID)
	assert.Equal(t, DefaultWorkingHours(), settings.WorkingHours)
}

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(setupTestRedis(t))
	ctx := context.Background()

	saved := DefaultSettings("org-1")
	saved.Name = "Harborlight Family Clinic"
	saved.AverageTicketCents = 42000
	saved.OccupancyTargetPct = 80
	saved.WorkingHours.WorkDays = append(saved.WorkingHours.WorkDays, time.Saturday)

	require.NoError(t, store.Set(ctx, saved))

	got, err := store.Get(ctx, "org-1")
	require.NoError(t, err)
	assert.Equal(t, saved, got)
	assert.True(t, got.WorkingHours.IsWorkDay(time.Saturday))
}
