package logic

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/vctstats/cluster-dashboard/internal/cache"
	"github.com/vctstats/cluster-dashboard/internal/metrics"
)

// cachedView returns the cached rendering of a view or computes and stores
// it. Cache failures are logged and the view is computed directly.
func cachedView[T any](ctx context.Context, c cache.Cache, logger *zap.SugaredLogger, key, view string, compute func() (T, error)) (T, error) {
	var zero T
	if c == nil {
		return compute()
	}

	if raw, ok, err := c.Get(ctx, key); err != nil {
		logger.Warnw("View cache read failed", "key", key, "error", err)
	} else if ok {
		var out T
		if err := json.Unmarshal(raw, &out); err == nil {
			metrics.ViewCache.WithLabelValues(view, "hit").Inc()
			return out, nil
		}
		logger.Warnw("Discarding undecodable cache entry", "key", key)
	}
	metrics.ViewCache.WithLabelValues(view, "miss").Inc()

	out, err := compute()
	if err != nil {
		return zero, err
	}

	raw, err := json.Marshal(out)
	if err != nil {
		logger.Warnw("View not cacheable", "key", key, "error", err)
		return out, nil
	}
	if err := c.Set(ctx, key, raw); err != nil {
		logger.Warnw("View cache write failed", "key", key, "error", err)
	}
	return out, nil
}
