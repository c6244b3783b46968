package dashboard

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	obsmetrics "github.com/harborlight-health/clinic-platform/internal/observability/metrics"
	"github.com/harborlight-health/clinic-platform/pkg/logging"
)

var dashboardTracer = otel.Tracer("clinic.internal.dashboard")

// snapshotKeyGranularity is the resolution the reference instant is truncated
// to before it enters the cache key. Under a live clock every request carries
// a distinct Now; keying on the raw instant would mean no two requests ever
// share an entry. One minute is far finer than any calendar window boundary.
const snapshotKeyGranularity = time.Minute

// SnapshotCache memoizes Compute keyed on a digest of its inputs, so the host
// application can re-request metrics on every data-layer update without
// paying for redundant recomputation. The engine itself stays pure; this
// wrapper is the caller-side memoization discipline.
type SnapshotCache struct {
	redis   *redis.Client
	ttl     time.Duration
	metrics *obsmetrics.DashboardMetrics
	logger  *logging.Logger
}

// NewSnapshotCache creates a snapshot cache. redisClient may be nil, in which
// case every request computes directly. collectors may be nil.
func NewSnapshotCache(redisClient *redis.Client, ttl time.Duration, collectors *obsmetrics.DashboardMetrics, logger *logging.Logger) *SnapshotCache {
	if logger == nil {
		logger = logging.Default()
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SnapshotCache{
		redis:   redisClient,
		ttl:     ttl,
		metrics: collectors,
		logger:  logger,
	}
}

// Snapshot returns the metrics for the given input, serving from cache when
// an identical input has been computed recently. Cache failures degrade to a
// direct computation and never surface to the caller.
func (c *SnapshotCache) Snapshot(ctx context.Context, orgID string, in Input) Metrics {
	ctx, span := dashboardTracer.Start(ctx, "dashboard.snapshot", trace.WithAttributes(
		attribute.String("clinic.org_id", orgID),
		attribute.Int("clinic.appointment_count", len(in.Appointments)),
	))
	defer span.End()

	key, ok := c.snapshotKey(orgID, in)
	if ok && c.redis != nil {
		if cached, found := c.lookup(ctx, key); found {
			span.SetAttributes(attribute.Bool("clinic.cache_hit", true))
			c.metrics.ObserveCacheLookup("hit")
			return cached
		}
		c.metrics.ObserveCacheLookup("miss")
	}
	span.SetAttributes(attribute.Bool("clinic.cache_hit", false))

	start := time.Now()
	m := Compute(in)
	c.metrics.ObserveCompute("ok", time.Since(start).Seconds())

	if ok && c.redis != nil {
		c.store(ctx, key, m)
	}
	return m
}

func (c *SnapshotCache) snapshotKey(orgID string, in Input) (string, bool) {
	in.Now = in.Now.Truncate(snapshotKeyGranularity)
	data, err := json.Marshal(in)
	if err != nil {
		c.logger.Warn("snapshot cache: digest input", "org_id", orgID, "error", err)
		return "", false
	}
	sum := sha256.Sum256(data)
	return fmt.Sprintf("dashboard:snapshot:%s:%s", orgID, hex.EncodeToString(sum[:16])), true
}

func (c *SnapshotCache) lookup(ctx context.Context, key string) (Metrics, bool) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return Metrics{}, false
	}
	if err != nil {
		c.logger.Warn("snapshot cache: get", "key", key, "error", err)
		return Metrics{}, false
	}

	var m Metrics
	if err := json.Unmarshal(data, &m); err != nil {
		// Corrupt entry: recompute rather than fail.
		c.logger.Warn("snapshot cache: unmarshal", "key", key, "error", err)
		return Metrics{}, false
	}
	return m, true
}

func (c *SnapshotCache) store(ctx context.Context, key string, m Metrics) {
	data, err := json.Marshal(m)
	if err != nil {
		c.logger.Warn("snapshot cache: marshal", "key", key, "error", err)
		return
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("snapshot cache: set", "key", key, "error", err)
	}
}
