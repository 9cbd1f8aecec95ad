package logic

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vctstats/cluster-dashboard/internal/cache"
	"github.com/vctstats/cluster-dashboard/internal/models"
)

type teamStatsService struct {
	viewBase
}

func NewTeamStatsService(data DatasetProvider, c cache.Cache, logger *zap.Logger) TeamStatsService {
	return &teamStatsService{viewBase: newViewBase(data, c, logger)}
}

// teamSubset validates team and returns its records
func (s *teamStatsService) teamSubset(team string, sel models.FilterSelection) (*models.Dataset, *models.Dataset, error) {
	ds, err := s.data.Dataset()
	if err != nil {
		return nil, nil, err
	}
	sel.Team = team
	if err := ValidateSelection(ds, sel); err != nil {
		return nil, nil, err
	}
	return ds, FilterByTeam(ds, team), nil
}

// GetTeamView returns every record of a team with the describe block of each numeric column
func (s *teamStatsService) GetTeamView(ctx context.Context, team string) (*models.TeamView, error) {
	ds, subset, err := s.teamSubset(team, models.FilterSelection{})
	if err != nil {
		return nil, err
	}

	key := cache.Key(ds.Fingerprint, "team", team)
	return cachedView(ctx, s.cache, s.logger, key, "team", func() (*models.TeamView, error) {
		stats, err := Aggregate(subset, models.StatDescribe)
		if err != nil {
			return nil, fmt.Errorf("describe team %q: %w", team, err)
		}
		return &models.TeamView{
			Team:        team,
			PlayerCount: subset.Len(),
			Players:     Players(subset),
			Records:     Table(subset),
			Statistics:  stats,
		}, nil
	})
}

// GetTeamScatter plots a team's records coloured by player
func (s *teamStatsService) GetTeamScatter(ctx context.Context, team, x, y string) (*models.ScatterPlot, error) {
	ds, subset, err := s.teamSubset(team, models.FilterSelection{FeatureX: x, FeatureY: y})
	if err != nil {
		return nil, err
	}

	key := cache.Key(ds.Fingerprint, "team_scatter", team, x, y)
	return cachedView(ctx, s.cache, s.logger, key, "team_scatter", func() (*models.ScatterPlot, error) {
		return Scatter(subset, x, y, models.ColumnPlayer)
	})
}

// GetPlayerSeries returns one player's metric across the team's tournaments.
// The player must have played for the team.
func (s *teamStatsService) GetPlayerSeries(ctx context.Context, team, player, metric string) (*models.LineSeries, error) {
	ds, subset, err := s.teamSubset(team, models.FilterSelection{Player: player, Metric: metric})
	if err != nil {
		return nil, err
	}
	if FilterByPlayer(subset, player).Len() == 0 {
		return nil, fmt.Errorf("%w: player %q is not on team %q", ErrUnknownValue, player, team)
	}

	key := cache.Key(ds.Fingerprint, "player_series", team, player, metric)
	return cachedView(ctx, s.cache, s.logger, key, "player_series", func() (*models.LineSeries, error) {
		return PlayerSeries(subset, player, metric)
	})
}

func (s *teamStatsService) GetTeamSeries(ctx context.Context, team, metric string) ([]*models.LineSeries, error) {
	ds, subset, err := s.teamSubset(team, models.FilterSelection{Metric: metric})
	if err != nil {
		return nil, err
	}

	key := cache.Key(ds.Fingerprint, "team_series", team, metric)
	return cachedView(ctx, s.cache, s.logger, key, "team_series", func() ([]*models.LineSeries, error) {
		return TeamSeries(subset, metric)
	})
}
