// Package cli implements vctctl, the operator tool for the dashboard: it fits
// model artifacts from a dataset and sends predict requests to a running API.
package cli

import (
	"io"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Global flags
const (
	FlagConfig = "config"
	FlagAPI    = "api"
)

const DefaultAPI = "http://localhost:8080"

// NewRootCmd builds the vctctl command tree. Settings resolve from flags,
// then VCTCTL_* environment variables, then ~/.vctctl.yaml.
func NewRootCmd(out io.Writer) *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           "vctctl",
		Short:         "Train and query the VCT player cluster model",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
	}
	root.SetOut(out)
	root.SetErr(out)

	root.PersistentFlags().StringVar(&cfgFile, FlagConfig, "", "config file (default $HOME/.vctctl.yaml)")
	root.PersistentFlags().String(FlagAPI, DefaultAPI, "dashboard API base URL")
	v.BindPFlag(FlagAPI, root.PersistentFlags().Lookup(FlagAPI))

	root.AddCommand(newPredictCmd(v), newTrainCmd(v))
	return root
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return errors.Wrap(err, "find home directory")
		}
		v.AddConfigPath(home)
		v.SetConfigName(".vctctl")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("VCTCTL")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			return nil
		}
		return errors.Wrap(err, "read config")
	}
	return nil
}

// expandPath resolves a leading ~ in user supplied paths
func expandPath(p string) (string, error) {
	expanded, err := homedir.Expand(p)
	if err != nil {
		return "", errors.Wrapf(err, "expand path %s", p)
	}
	return filepath.Clean(expanded), nil
}
