/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package elitecore

import (
	"fmt"
	"os"

	"github.com/dburkart/elitecore/cmd/elitecore/parse"
	"github.com/dburkart/elitecore/cmd/elitecore/query"
	"github.com/dburkart/elitecore/cmd/elitecore/random"
	"github.com/dburkart/elitecore/cmd/elitecore/repl"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "elitecore",
		Short: "elitecore parses loosely formatted values and queries lines of text",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
		},
		SilenceUsage: true,
		Version:      Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format of results [text, csv, json, yaml]")
	rootCmd.PersistentFlags().String("metrics", "", "Write prometheus metrics to this file when done")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the elitecore config file (default ./config.toml)")

	// Bind viper config to the root flags
	viper.BindPFlag("elitecore.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("elitecore.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("elitecore.output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("elitecore.metrics", rootCmd.PersistentFlags().Lookup("metrics"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("elitecore version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	viper.AutomaticEnv()

	// Register commands on the root binary command
	for _, c := range []*cobra.Command{parse.Command, query.Command, repl.Command, random.Command} {
		c.Version = rootCmd.Version
		rootCmd.AddCommand(c)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}
