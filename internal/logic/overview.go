package logic

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/vctstats/cluster-dashboard/internal/cache"
	"github.com/vctstats/cluster-dashboard/internal/models"
)

// viewBase carries what every dataset-backed service needs
type viewBase struct {
	data   DatasetProvider
	cache  cache.Cache
	logger *zap.SugaredLogger
}

func newViewBase(data DatasetProvider, c cache.Cache, logger *zap.Logger) viewBase {
	if c == nil {
		c = cache.Noop{}
	}
	return viewBase{data: data, cache: c, logger: logger.Sugar()}
}

type optionsService struct {
	viewBase
}

func NewOptionsService(data DatasetProvider, c cache.Cache, logger *zap.Logger) OptionsService {
	return &optionsService{viewBase: newViewBase(data, c, logger)}
}

func (s *optionsService) GetOptions(ctx context.Context) (*models.Options, error) {
	ds, err := s.data.Dataset()
	if err != nil {
		return nil, err
	}
	return &models.Options{
		Clusters:    DistinctClusters(ds),
		Tournaments: Tournaments(ds),
		Teams:       Teams(ds),
		Features:    FeatureColumns(ds),
	}, nil
}

// GetClusterTournaments lists the tournaments that have players in cluster
func (s *optionsService) GetClusterTournaments(ctx context.Context, cluster int) ([]string, error) {
	ds, err := s.data.Dataset()
	if err != nil {
		return nil, err
	}
	if err := ValidateSelection(ds, models.FilterSelection{Cluster: &cluster}); err != nil {
		return nil, err
	}
	return Tournaments(FilterByCluster(ds, cluster)), nil
}

func (s *optionsService) GetTeamPlayers(ctx context.Context, team string) ([]string, error) {
	ds, err := s.data.Dataset()
	if err != nil {
		return nil, err
	}
	if err := ValidateSelection(ds, models.FilterSelection{Team: team}); err != nil {
		return nil, err
	}
	return Players(FilterByTeam(ds, team)), nil
}

type overviewService struct {
	viewBase
	bins int
}

// NewOverviewService builds the cluster view service. bins <= 0 uses DefaultHistogramBins.
func NewOverviewService(data DatasetProvider, c cache.Cache, logger *zap.Logger, bins int) OverviewService {
	if bins <= 0 {
		bins = DefaultHistogramBins
	}
	return &overviewService{viewBase: newViewBase(data, c, logger), bins: bins}
}

// GetOverview returns the players of one cluster in one tournament with their
// mean and median. The pair may match no rows; the view is then empty with
// undefined aggregates.
func (s *overviewService) GetOverview(ctx context.Context, cluster int, tournament string) (*models.OverallView, error) {
	ds, err := s.data.Dataset()
	if err != nil {
		return nil, err
	}
	if err := ValidateSelection(ds, models.FilterSelection{Cluster: &cluster, Tournament: tournament}); err != nil {
		return nil, err
	}

	key := cache.Key(ds.Fingerprint, "overview", strconv.Itoa(cluster), tournament)
	return cachedView(ctx, s.cache, s.logger, key, "overview", func() (*models.OverallView, error) {
		subset := FilterByTournament(FilterByCluster(ds, cluster), tournament)
		view := &models.OverallView{
			Cluster:     cluster,
			Tournament:  tournament,
			PlayerCount: subset.Len(),
			Players:     Table(subset),
		}

		var err error
		if view.Mean, err = Aggregate(subset, models.StatMean); err != nil {
			return nil, fmt.Errorf("mean: %w", err)
		}
		if view.Median, err = Aggregate(subset, models.StatMedian); err != nil {
			return nil, fmt.Errorf("median: %w", err)
		}
		return view, nil
	})
}

// GetTournamentScatter plots every player of a tournament, coloured by cluster
func (s *overviewService) GetTournamentScatter(ctx context.Context, tournament, x, y string) (*models.ScatterPlot, error) {
	ds, err := s.data.Dataset()
	if err != nil {
		return nil, err
	}
	if err := ValidateSelection(ds, models.FilterSelection{Tournament: tournament, FeatureX: x, FeatureY: y}); err != nil {
		return nil, err
	}

	key := cache.Key(ds.Fingerprint, "scatter", tournament, x, y)
	return cachedView(ctx, s.cache, s.logger, key, "scatter", func() (*models.ScatterPlot, error) {
		return Scatter(FilterByTournament(ds, tournament), x, y, models.ColumnCluster)
	})
}

// GetDistribution bins one feature over the players of a cluster in a tournament
func (s *overviewService) GetDistribution(ctx context.Context, cluster int, tournament, feature string) (*models.Histogram, error) {
	ds, err := s.data.Dataset()
	if err != nil {
		return nil, err
	}
	if err := ValidateSelection(ds, models.FilterSelection{Cluster: &cluster, Tournament: tournament, Feature: feature}); err != nil {
		return nil, err
	}

	key := cache.Key(ds.Fingerprint, "histogram", strconv.Itoa(cluster), tournament, feature, strconv.Itoa(s.bins))
	return cachedView(ctx, s.cache, s.logger, key, "histogram", func() (*models.Histogram, error) {
		subset := FilterByTournament(FilterByCluster(ds, cluster), tournament)
		return Histogram(subset, feature, s.bins)
	})
}
