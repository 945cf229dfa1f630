/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package random

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dburkart/elitecore/pkg/platform"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "random MIN MAX",
	Short: "Print cryptographically random integers in [MIN, MAX]",
	Args:  cobra.ExactArgs(2),

	RunE: func(cmd *cobra.Command, args []string) error {
		min, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.Wrap(err, "MIN must be an integer")
		}
		max, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Wrap(err, "MAX must be an integer")
		}

		return Run(cmd.Context(), cmd.OutOrStdout(), min, max, viper.GetInt("random.count"), viper.GetDuration("random.interval"))
	},
}

// Run prints count numbers, waiting interval between each.
func Run(ctx context.Context, w io.Writer, min, max, count int, interval time.Duration) error {
	for i := 0; i < count; i++ {
		if i > 0 && interval > 0 {
			if err := platform.Delay(ctx, interval); err != nil {
				return err
			}
		}

		n, err := platform.RandomInt(min, max)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	// Flags for this command
	Command.Flags().IntP("count", "n", 1, "Number of values to print")
	Command.Flags().Duration("interval", 0, "Wait between values")

	// Bind flags to viper
	viper.BindPFlag("random.count", Command.Flags().Lookup("count"))
	viper.BindPFlag("random.interval", Command.Flags().Lookup("interval"))
}
