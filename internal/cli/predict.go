package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vctstats/cluster-dashboard/internal/models"
)

// Flags for predict
const (
	FlagCombatScore    = "acs"
	FlagKillsDeaths    = "kd"
	FlagDamagePerRound = "adr"
	FlagTimeout        = "timeout"
)

func newPredictCmd(v *viper.Viper) *cobra.Command {
	var req models.PredictionRequest
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Ask the dashboard API which cluster a player belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			pred, err := requestPrediction(ctx, v.GetString(FlagAPI), req, timeout)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "The player is predicted to belong to Cluster %s\n", pred.Cluster)
			return nil
		},
	}

	cmd.Flags().IntVar(&req.AverageCombatScore, FlagCombatScore, 0, "average combat score (0-500)")
	cmd.Flags().Float64Var(&req.KillsDeaths, FlagKillsDeaths, 0, "kills per death (0-5)")
	cmd.Flags().IntVar(&req.AverageDamagePerRound, FlagDamagePerRound, 0, "average damage per round (0-500)")
	cmd.Flags().DurationVar(&timeout, FlagTimeout, 5*time.Second, "request timeout")
	for _, name := range []string{FlagCombatScore, FlagKillsDeaths, FlagDamagePerRound} {
		cmd.MarkFlagRequired(name)
	}
	return cmd
}

func requestPrediction(ctx context.Context, api string, req models.PredictionRequest, timeout time.Duration) (*models.ClusterPrediction, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "encode request")
	}

	url := strings.TrimRight(api, "/") + "/api/v1/predict"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrapf(err, "POST %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return nil, errors.Errorf("predict failed (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return nil, errors.Errorf("predict failed: %s", resp.Status)
	}

	var pred models.ClusterPrediction
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		return nil, errors.Wrap(err, "decode prediction")
	}
	return &pred, nil
}
