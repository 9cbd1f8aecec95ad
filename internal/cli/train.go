package cli

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vctstats/cluster-dashboard/internal/dataset"
	"github.com/vctstats/cluster-dashboard/internal/training"
)

// Flags for train
const (
	FlagData         = "data"
	FlagEncoding     = "encoding"
	FlagFeatureStart = "feature-start"
	FlagFeatureEnd   = "feature-end"
	FlagClusters     = "clusters"
	FlagRounds       = "rounds"
	FlagOutput       = "out"
)

func newTrainCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Fit a centroid model artifact from the clustered players CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataPath, err := expandPath(v.GetString(FlagData))
			if err != nil {
				return err
			}
			outPath, err := expandPath(v.GetString(FlagOutput))
			if err != nil {
				return err
			}

			src := dataset.NewCSVSource(dataPath, dataset.Options{
				FeatureStart: v.GetInt(FlagFeatureStart),
				FeatureEnd:   v.GetInt(FlagFeatureEnd),
			})
			src.Encoding = v.GetString(FlagEncoding)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ds, err := src.Load(ctx)
			if err != nil {
				return errors.Wrap(err, "load dataset")
			}

			res, err := training.FitCentroids(ds, training.Options{
				Clusters: v.GetInt(FlagClusters),
				Rounds:   v.GetInt(FlagRounds),
			})
			if err != nil {
				return errors.Wrap(err, "fit centroids")
			}
			if err := training.WriteArtifact(outPath, res.Artifact); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Fitted %d centroids on %d rows, labels %v\nWrote %s\n",
				len(res.Artifact.Centroids), res.Rows, res.Artifact.Labels, outPath)
			return nil
		},
	}

	cmd.Flags().String(FlagData, "clustered_players.csv", "clustered players CSV")
	cmd.Flags().String(FlagEncoding, "", "CSV text encoding, e.g. windows-1252 (default UTF-8)")
	cmd.Flags().Int(FlagFeatureStart, dataset.DefaultFeatureStart, "first feature column position")
	cmd.Flags().Int(FlagFeatureEnd, dataset.DefaultFeatureEnd, "end of the feature column window (exclusive)")
	cmd.Flags().IntP(FlagClusters, "k", 3, "number of clusters")
	cmd.Flags().Int(FlagRounds, training.DefaultRounds, "k-means iterations")
	cmd.Flags().StringP(FlagOutput, "o", "player_performance_model.json", "artifact output path")
	for _, name := range []string{FlagData, FlagEncoding, FlagFeatureStart, FlagFeatureEnd, FlagClusters, FlagRounds, FlagOutput} {
		v.BindPFlag(name, cmd.Flags().Lookup(name))
	}
	return cmd
}
