package logic

import (
	"context"

	"github.com/vctstats/cluster-dashboard/internal/models"
)

// DatasetProvider returns the session dataset, or the error that kept it from loading
type DatasetProvider interface {
	Dataset() (*models.Dataset, error)
}

type OptionsService interface {
	GetOptions(ctx context.Context) (*models.Options, error)
	GetClusterTournaments(ctx context.Context, cluster int) ([]string, error)
	GetTeamPlayers(ctx context.Context, team string) ([]string, error)
}

type OverviewService interface {
	GetOverview(ctx context.Context, cluster int, tournament string) (*models.OverallView, error)
	GetTournamentScatter(ctx context.Context, tournament, x, y string) (*models.ScatterPlot, error)
	GetDistribution(ctx context.Context, cluster int, tournament, feature string) (*models.Histogram, error)
}

type TeamStatsService interface {
	GetTeamView(ctx context.Context, team string) (*models.TeamView, error)
	GetTeamScatter(ctx context.Context, team, x, y string) (*models.ScatterPlot, error)
	GetPlayerSeries(ctx context.Context, team, player, metric string) (*models.LineSeries, error)
	GetTeamSeries(ctx context.Context, team, metric string) ([]*models.LineSeries, error)
}

type TournamentService interface {
	ListTournaments(ctx context.Context) ([]models.TournamentSummary, error)
	GetTournament(ctx context.Context, name string) (*models.TournamentSummary, error)
}

type PredictionService interface {
	Predict(ctx context.Context, req models.PredictionRequest) (*models.ClusterPrediction, error)
}
