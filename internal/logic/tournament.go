package logic

import (
	"context"

	"go.uber.org/zap"

	"github.com/vctstats/cluster-dashboard/internal/cache"
	"github.com/vctstats/cluster-dashboard/internal/models"
)

type tournamentService struct {
	viewBase
}

func NewTournamentService(data DatasetProvider, c cache.Cache, logger *zap.Logger) TournamentService {
	return &tournamentService{viewBase: newViewBase(data, c, logger)}
}

func summarize(ds *models.Dataset, name string, withMean bool) (*models.TournamentSummary, error) {
	subset := FilterByTournament(ds, name)
	summary := &models.TournamentSummary{
		Name:        name,
		PlayerCount: subset.Len(),
		Teams:       Teams(subset),
		Clusters:    ClusterCounts(subset),
	}
	if withMean {
		mean, err := Aggregate(subset, models.StatMean)
		if err != nil {
			return nil, err
		}
		summary.Mean = mean
	}
	return summary, nil
}

// ListTournaments summarizes every tournament in first-seen order, without means
func (s *tournamentService) ListTournaments(ctx context.Context) ([]models.TournamentSummary, error) {
	ds, err := s.data.Dataset()
	if err != nil {
		return nil, err
	}

	key := cache.Key(ds.Fingerprint, "tournaments")
	return cachedView(ctx, s.cache, s.logger, key, "tournaments", func() ([]models.TournamentSummary, error) {
		names := Tournaments(ds)
		out := make([]models.TournamentSummary, 0, len(names))
		for _, name := range names {
			summary, err := summarize(ds, name, false)
			if err != nil {
				return nil, err
			}
			out = append(out, *summary)
		}
		return out, nil
	})
}

func (s *tournamentService) GetTournament(ctx context.Context, name string) (*models.TournamentSummary, error) {
	ds, err := s.data.Dataset()
	if err != nil {
		return nil, err
	}
	if err := ValidateSelection(ds, models.FilterSelection{Tournament: name}); err != nil {
		return nil, err
	}

	key := cache.Key(ds.Fingerprint, "tournament", name)
	return cachedView(ctx, s.cache, s.logger, key, "tournament", func() (*models.TournamentSummary, error) {
		return summarize(ds, name, true)
	})
}
