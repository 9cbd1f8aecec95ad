package inference

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/vctstats/cluster-dashboard/internal/metrics"
)

// Provider hands out the model used for a prediction
type Provider interface {
	Model(ctx context.Context) (Model, error)
}

// LoaderFunc reads a model from a path
type LoaderFunc func(path string) (Model, error)

func load(loader LoaderFunc, path string, logger *zap.SugaredLogger) (Model, error) {
	if loader == nil {
		loader = LoadModel
	}
	start := time.Now()
	m, err := loader(path)
	metrics.ModelLoadDuration.Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		metrics.ModelLoads.WithLabelValues("ok").Inc()
	case errors.Is(err, ErrModelNotFound):
		metrics.ModelLoads.WithLabelValues("not_found").Inc()
		logger.Warnw("Prediction model not found", "path", path)
	default:
		metrics.ModelLoads.WithLabelValues("error").Inc()
		logger.Errorw("Failed to load prediction model", "path", path, "error", err)
	}
	return m, err
}

// ReloadingProvider reads the artifact on every call, so a replaced file
// takes effect on the next prediction.
type ReloadingProvider struct {
	path   string
	loader LoaderFunc
	logger *zap.SugaredLogger
}

func NewReloadingProvider(path string, loader LoaderFunc, logger *zap.Logger) *ReloadingProvider {
	return &ReloadingProvider{path: path, loader: loader, logger: logger.Sugar()}
}

func (p *ReloadingProvider) Model(ctx context.Context) (Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return load(p.loader, p.path, p.logger)
}

// CachedProvider loads the artifact once and reuses it. Concurrent first
// calls share one load. A failed load is not remembered.
type CachedProvider struct {
	path   string
	loader LoaderFunc
	logger *zap.SugaredLogger

	group singleflight.Group
	mu    sync.RWMutex
	model Model
}

func NewCachedProvider(path string, loader LoaderFunc, logger *zap.Logger) *CachedProvider {
	return &CachedProvider{path: path, loader: loader, logger: logger.Sugar()}
}

func (p *CachedProvider) Model(ctx context.Context) (Model, error) {
	p.mu.RLock()
	m := p.model
	p.mu.RUnlock()
	if m != nil {
		return m, nil
	}

	ch := p.group.DoChan(p.path, func() (interface{}, error) {
		p.mu.RLock()
		cached := p.model
		p.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		loaded, err := load(p.loader, p.path, p.logger)
		if err != nil {
			return nil, err
		}
		p.mu.Lock()
		p.model = loaded
		p.mu.Unlock()
		p.logger.Infow("Prediction model cached", "path", p.path, "features", loaded.FeatureNames())
		return loaded, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(Model), nil
	}
}

// Reset drops the cached model so the next call reads the artifact again
func (p *CachedProvider) Reset() {
	p.mu.Lock()
	p.model = nil
	p.mu.Unlock()
}
