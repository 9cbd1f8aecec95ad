package logic

import (
	"context"
	"testing"

	"github.com/vctstats/cluster-dashboard/internal/dataset"
	"github.com/vctstats/cluster-dashboard/internal/inference"
	"github.com/vctstats/cluster-dashboard/internal/models"
)

const fixturePath = "../dataset/testdata/clustered_players.csv"

func loadFixture(t testing.TB) *models.Dataset {
	t.Helper()
	ds, err := dataset.NewCSVSource(fixturePath, dataset.Options{}).Load(context.Background())
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	return ds
}

type MockDatasetProvider struct {
	DS  *models.Dataset
	Err error
}

func (m *MockDatasetProvider) Dataset() (*models.Dataset, error) {
	return m.DS, m.Err
}

type MockPredictor struct {
	PredictFunc func(ctx context.Context, f inference.Features) (models.Label, error)
}

func (m *MockPredictor) Predict(ctx context.Context, f inference.Features) (models.Label, error) {
	return m.PredictFunc(ctx, f)
}

func intPtr(i int) *int { return &i }
