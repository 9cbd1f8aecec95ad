package handlers

import (
	"context"

	"github.com/vctstats/cluster-dashboard/internal/models"
)

// MockOptionsService
type MockOptionsService struct {
	GetOptionsFunc            func(ctx context.Context) (*models.Options, error)
	GetClusterTournamentsFunc func(ctx context.Context, cluster int) ([]string, error)
	GetTeamPlayersFunc        func(ctx context.Context, team string) ([]string, error)
}

func (m *MockOptionsService) GetOptions(ctx context.Context) (*models.Options, error) {
	if m.GetOptionsFunc != nil {
		return m.GetOptionsFunc(ctx)
	}
	return &models.Options{}, nil
}

func (m *MockOptionsService) GetClusterTournaments(ctx context.Context, cluster int) ([]string, error) {
	if m.GetClusterTournamentsFunc != nil {
		return m.GetClusterTournamentsFunc(ctx, cluster)
	}
	return []string{}, nil
}

func (m *MockOptionsService) GetTeamPlayers(ctx context.Context, team string) ([]string, error) {
	if m.GetTeamPlayersFunc != nil {
		return m.GetTeamPlayersFunc(ctx, team)
	}
	return []string{}, nil
}

// MockOverviewService
type MockOverviewService struct {
	GetOverviewFunc          func(ctx context.Context, cluster int, tournament string) (*models.OverallView, error)
	GetTournamentScatterFunc func(ctx context.Context, tournament, x, y string) (*models.ScatterPlot, error)
	GetDistributionFunc      func(ctx context.Context, cluster int, tournament, feature string) (*models.Histogram, error)
}

func (m *MockOverviewService) GetOverview(ctx context.Context, cluster int, tournament string) (*models.OverallView, error) {
	if m.GetOverviewFunc != nil {
		return m.GetOverviewFunc(ctx, cluster, tournament)
	}
	return &models.OverallView{Cluster: cluster, Tournament: tournament}, nil
}

func (m *MockOverviewService) GetTournamentScatter(ctx context.Context, tournament, x, y string) (*models.ScatterPlot, error) {
	if m.GetTournamentScatterFunc != nil {
		return m.GetTournamentScatterFunc(ctx, tournament, x, y)
	}
	return &models.ScatterPlot{X: x, Y: y}, nil
}

func (m *MockOverviewService) GetDistribution(ctx context.Context, cluster int, tournament, feature string) (*models.Histogram, error) {
	if m.GetDistributionFunc != nil {
		return m.GetDistributionFunc(ctx, cluster, tournament, feature)
	}
	return &models.Histogram{Feature: feature}, nil
}

// MockPredictionService
type MockPredictionService struct {
	PredictFunc func(ctx context.Context, req models.PredictionRequest) (*models.ClusterPrediction, error)
}

func (m *MockPredictionService) Predict(ctx context.Context, req models.PredictionRequest) (*models.ClusterPrediction, error) {
	if m.PredictFunc != nil {
		return m.PredictFunc(ctx, req)
	}
	return &models.ClusterPrediction{Cluster: "2", Input: req}, nil
}

// MockReadiness
type MockReadiness struct {
	ChecksFunc func(ctx context.Context) map[string]bool
}

func (m *MockReadiness) Checks(ctx context.Context) map[string]bool {
	return m.ChecksFunc(ctx)
}
