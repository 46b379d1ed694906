package main

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/uberbrodt/postuple/tuple"
)

const (
	envPrefix = "TUPLEDEMO"

	cfgKeyPermissive = "permissive"
	cfgKeyDebug      = "debug"
)

// Flags are bound into viper so TUPLEDEMO_PERMISSIVE and TUPLEDEMO_DEBUG
// apply when the flag is not given.
func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "tupledemo",
		Short:        "Build a few indexed tuples and print their slots",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New()
			logger.SetOutput(cmd.ErrOrStderr())
			logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

			debug := v.GetBool(cfgKeyDebug)
			if debug {
				logger.SetLevel(log.DebugLevel)
			}
			tuple.Logger = logger.WithField("component", "tuple")
			tuple.SetDebugLog(debug)

			permissive := v.GetBool(cfgKeyPermissive)
			logger.Debugf("running scenarios, permissive=%t", permissive)
			return runScenarios(cmd.OutOrStdout(), permissive)
		},
	}

	cmd.Flags().Bool(cfgKeyPermissive, false, "first duplicate tag wins and untagged slots hold zero values")
	cmd.Flags().Bool(cfgKeyDebug, false, "log tuple construction and slot access")

	_ = v.BindPFlags(cmd.Flags())
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}
