package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"github.com/vctstats/cluster-dashboard/internal/cache"
	"github.com/vctstats/cluster-dashboard/internal/dataset"
	"github.com/vctstats/cluster-dashboard/internal/logic"
	"github.com/vctstats/cluster-dashboard/internal/models"
)

func TestPool_RunsEveryJob(t *testing.T) {
	p := NewPool(PoolConfig{WorkerCount: 3, QueueSize: 100, Logger: zap.NewNop()})
	p.Start(context.Background())

	var ran, failed atomic.Int32
	for i := 0; i < 50; i++ {
		fail := i%10 == 0
		ok := p.Enqueue(Job{Name: "job", Run: func(ctx context.Context) error {
			ran.Add(1)
			if fail {
				failed.Add(1)
				return errors.New("boom")
			}
			return nil
		}})
		if !ok {
			t.Fatalf("job %d rejected", i)
		}
	}
	p.Drain()

	if ran.Load() != 50 || failed.Load() != 5 {
		t.Errorf("ran=%d failed=%d, want 50 and 5", ran.Load(), failed.Load())
	}
}

func TestPool_FullQueueDrops(t *testing.T) {
	// not started, so nothing consumes the queue
	p := NewPool(PoolConfig{WorkerCount: 1, QueueSize: 2})
	noop := Job{Name: "noop", Run: func(ctx context.Context) error { return nil }}

	if !p.Enqueue(noop) || !p.Enqueue(noop) {
		t.Fatal("queue should accept up to its size")
	}
	if p.Enqueue(noop) {
		t.Error("full queue should drop the job")
	}
	if p.QueueDepth() != 2 {
		t.Errorf("QueueDepth = %d, want 2", p.QueueDepth())
	}
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	p := NewPool(PoolConfig{WorkerCount: 2})
	p.Start(context.Background())
	p.Stop()

	if p.Enqueue(Job{Name: "late", Run: func(ctx context.Context) error { return nil }}) {
		t.Error("stopped pool should reject jobs")
	}
}

func TestPool_ConcurrentEnqueueAndStop(t *testing.T) {
	p := NewPool(PoolConfig{WorkerCount: 2, QueueSize: 10})
	p.Start(context.Background())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				p.Enqueue(Job{Name: "race", Run: func(ctx context.Context) error { return nil }})
			}
		}()
	}
	p.Stop()
	wg.Wait()
}

func TestWarmupJobs_FillViewCache(t *testing.T) {
	ds, err := dataset.NewCSVSource("../dataset/testdata/clustered_players.csv", dataset.Options{}).Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	data := staticDataset{ds}
	c := cache.NewLRUCache(64, 0)
	logger := zap.NewNop()

	jobs := WarmupJobs(ds, Views{
		Options:    logic.NewOptionsService(data, c, logger),
		Overview:   logic.NewOverviewService(data, c, logger, 5),
		TeamStats:  logic.NewTeamStatsService(data, c, logger),
		Tournament: logic.NewTournamentService(data, c, logger),
	})
	// options + 3 clusters x 2 tournaments + 3 teams + list + 2 tournaments
	if len(jobs) != 13 {
		t.Fatalf("jobs = %d, want 13", len(jobs))
	}

	p := NewPool(PoolConfig{WorkerCount: 4, QueueSize: len(jobs), Logger: logger})
	p.Start(context.Background())
	if n := Warm(p, jobs); n != len(jobs) {
		t.Fatalf("accepted %d of %d jobs", n, len(jobs))
	}
	p.Drain()

	// every job but options is cached
	if c.Len() != 12 {
		t.Errorf("cache entries = %d, want 12", c.Len())
	}
}

func TestWarmupJobs_SkipsNilServices(t *testing.T) {
	ds, err := dataset.NewCSVSource("../dataset/testdata/clustered_players.csv", dataset.Options{}).Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if jobs := WarmupJobs(ds, Views{}); len(jobs) != 0 {
		t.Errorf("jobs = %d, want 0", len(jobs))
	}
}

type staticDataset struct{ ds *models.Dataset }

func (s staticDataset) Dataset() (*models.Dataset, error) { return s.ds, nil }
