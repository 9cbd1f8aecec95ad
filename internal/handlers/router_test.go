package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/vctstats/cluster-dashboard/internal/cache"
	"github.com/vctstats/cluster-dashboard/internal/dataset"
	"github.com/vctstats/cluster-dashboard/internal/inference"
	"github.com/vctstats/cluster-dashboard/internal/logic"
	"github.com/vctstats/cluster-dashboard/internal/models"
	"github.com/vctstats/cluster-dashboard/internal/session"
)

type missingSource struct{}

func (missingSource) Load(ctx context.Context) (*models.Dataset, error) {
	return nil, fmt.Errorf("%w: clustered_players.csv", dataset.ErrNotFound)
}

func newTestServer(t *testing.T, src dataset.Source, modelPath string) *httptest.Server {
	t.Helper()
	logger := zap.NewNop()
	s := session.NewWithSource(context.Background(), src,
		inference.NewReloadingProvider(modelPath, nil, logger),
		cache.NewLRUCache(64, 0), logger)

	h := New(Config{
		Readiness:  s,
		Logger:     logger,
		Options:    logic.NewOptionsService(s, s.Cache, logger),
		Overview:   logic.NewOverviewService(s, s.Cache, logger, 5),
		TeamStats:  logic.NewTeamStatsService(s, s.Cache, logger),
		Tournament: logic.NewTournamentService(s, s.Cache, logger),
		Prediction: logic.NewPredictionService(inference.NewPredictor(s.Models), logger),
	})
	srv := httptest.NewServer(h.Router(RouterConfig{AllowedOrigins: []string{"*"}}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRouter_Dataset(t *testing.T) {
	srv := newTestServer(t,
		dataset.NewCSVSource("../dataset/testdata/clustered_players.csv", dataset.Options{}),
		"../inference/testdata/centroid_model.json")

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Health", "/health", http.StatusOK},
		{"Ready", "/ready", http.StatusOK},
		{"Metrics", "/metrics", http.StatusOK},
		{"Options", "/api/v1/options", http.StatusOK},
		{"Cluster Tournaments", "/api/v1/clusters/0/tournaments", http.StatusOK},
		{"Overview", "/api/v1/overview?cluster=2&tournament=Masters%20Madrid", http.StatusOK},
		{"Overview Empty Intersection", "/api/v1/overview?cluster=0&tournament=Champions%20Seoul", http.StatusOK},
		{"Overview Unknown Tournament", "/api/v1/overview?cluster=2&tournament=Lock", http.StatusBadRequest},
		{"Overview Unknown Cluster", "/api/v1/overview?cluster=7&tournament=Masters%20Madrid", http.StatusBadRequest},
		{"Scatter", "/api/v1/overview/scatter?tournament=Masters%20Madrid&x=Kills:Deaths&y=Average%20Combat%20Score", http.StatusOK},
		{"Scatter Unknown Axis", "/api/v1/overview/scatter?tournament=Masters%20Madrid&x=Team&y=Average%20Combat%20Score", http.StatusBadRequest},
		{"Histogram", "/api/v1/overview/histogram?cluster=2&tournament=Masters%20Madrid&feature=Average%20Damage%20Per%20Round", http.StatusOK},
		{"Team", "/api/v1/teams/Sentinels", http.StatusOK},
		{"Team Unknown", "/api/v1/teams/Paper%20Rex", http.StatusBadRequest},
		{"Team Players", "/api/v1/teams/Sentinels/players", http.StatusOK},
		{"Team Scatter", "/api/v1/teams/Sentinels/scatter?x=Kills:Deaths&y=Average%20Combat%20Score", http.StatusOK},
		{"Team Series", "/api/v1/teams/Sentinels/series?metric=Rating", http.StatusOK},
		{"Player Series", "/api/v1/teams/Sentinels/players/TenZ/series?metric=Rating", http.StatusOK},
		{"Player Not On Team", "/api/v1/teams/Sentinels/players/aspas/series?metric=Rating", http.StatusBadRequest},
		{"Series Missing Metric", "/api/v1/teams/Sentinels/players/TenZ/series", http.StatusBadRequest},
		{"Tournaments", "/api/v1/tournaments", http.StatusOK},
		{"Tournament", "/api/v1/tournaments/Champions%20Seoul", http.StatusOK},
		{"Tournament Unknown", "/api/v1/tournaments/Lock", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			if err != nil {
				t.Fatalf("GET %s: %v", tt.path, err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.status {
				t.Errorf("status = %v, want %v", resp.StatusCode, tt.status)
			}
		})
	}
}

func TestRouter_OverviewBody(t *testing.T) {
	srv := newTestServer(t,
		dataset.NewCSVSource("../dataset/testdata/clustered_players.csv", dataset.Options{}),
		"../inference/testdata/centroid_model.json")

	// served twice so the second read comes from the view cache
	for i := 0; i < 2; i++ {
		resp, err := http.Get(srv.URL + "/api/v1/overview?cluster=0&tournament=Champions%20Seoul")
		if err != nil {
			t.Fatal(err)
		}
		var view models.OverallView
		err = json.NewDecoder(resp.Body).Decode(&view)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if view.PlayerCount != 0 {
			t.Errorf("player_count = %d, want 0", view.PlayerCount)
		}
		if view.Mean == nil || len(view.Mean.Columns) == 0 {
			t.Fatal("empty subset should still report every numeric column")
		}
	}
}

func TestRouter_Predict(t *testing.T) {
	srv := newTestServer(t,
		dataset.NewCSVSource("../dataset/testdata/clustered_players.csv", dataset.Options{}),
		"../inference/testdata/centroid_model.json")

	body := `{"average_combat_score":245,"kills_deaths":1.4,"average_damage_per_round":160}`
	resp, err := http.Post(srv.URL+"/api/v1/predict", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %v, want 200", resp.StatusCode)
	}

	var pred models.ClusterPrediction
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		t.Fatal(err)
	}
	if pred.Cluster != "1" {
		t.Errorf("cluster = %q, want 1", pred.Cluster)
	}
	if pred.PredictionID == "" {
		t.Error("prediction id should be set")
	}
}

func TestRouter_MissingFiles(t *testing.T) {
	srv := newTestServer(t, missingSource{}, t.TempDir()+"/absent.json")

	tests := []struct {
		name    string
		method  string
		path    string
		body    string
		status  int
		message string
	}{
		{"Options", "GET", "/api/v1/options", "", http.StatusServiceUnavailable, session.DatasetMissingMessage},
		{"Overview", "GET", "/api/v1/overview?cluster=1&tournament=A", "", http.StatusServiceUnavailable, session.DatasetMissingMessage},
		{"Team", "GET", "/api/v1/teams/Sentinels", "", http.StatusServiceUnavailable, session.DatasetMissingMessage},
		{"Predict", "POST", "/api/v1/predict", `{"average_combat_score":200,"kills_deaths":1,"average_damage_per_round":140}`, http.StatusServiceUnavailable, session.ModelMissingMessage},
		{"Ready", "GET", "/ready", "", http.StatusServiceUnavailable, ""},
		{"Health", "GET", "/health", "", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, srv.URL+tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %v, want %v", resp.StatusCode, tt.status)
			}
			if tt.message != "" {
				var body map[string]string
				json.NewDecoder(resp.Body).Decode(&body)
				if body["error"] != tt.message {
					t.Errorf("error = %q, want %q", body["error"], tt.message)
				}
			}
		})
	}
}
