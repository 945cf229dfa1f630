/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"time"

	"github.com/dburkart/elitecore/pkg/convert"
	"github.com/dburkart/elitecore/pkg/input"
	"github.com/dburkart/elitecore/pkg/metrics"
	"github.com/dburkart/elitecore/pkg/output"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "parse TYPE [VALUE...]",
	Short: "Convert values to the given type, reading stdin when no values are given",
	Args:  cobra.MinimumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		log := viper.Get("logger").(zerolog.Logger)
		store := metrics.NewStore()

		values := args[1:]
		if len(values) == 0 {
			var err error
			values, err = input.ReadLines(cmd.InOrStdin())
			if err != nil {
				return err
			}
		}

		writer := output.NewOutputWriter(cmd.OutOrStdout(), viper.GetString("elitecore.output"))
		err := Run(writer, args[0], values, store)

		if path := viper.GetString("elitecore.metrics"); path != "" {
			if merr := store.WriteFile(path); merr != nil {
				log.Error().Err(merr).Send()
			}
		}
		return err
	},
}

// Run parses every value as tag and writes one row per value.
func Run(w output.OutputWriter, tag string, values []string, store metrics.Store) error {
	if _, err := convert.ParseType(tag); err != nil {
		store.ObserveParse(tag, metrics.OutcomeError, 0)
		return err
	}

	t := output.Table{Header: []string{"input", "kind", "value"}}
	for _, v := range values {
		start := time.Now()
		parsed, err := convert.ParseString(tag, v)
		elapsed := time.Since(start).Nanoseconds()
		if err != nil {
			store.ObserveParse(tag, metrics.OutcomeError, elapsed)
			return err
		}

		if parsed == nil {
			store.ObserveParse(tag, metrics.OutcomeAbsent, elapsed)
			t.Rows = append(t.Rows, []string{v, "null", convert.Format(nil)})
			continue
		}

		store.ObserveParse(tag, metrics.OutcomeParsed, elapsed)
		t.Rows = append(t.Rows, []string{v, parsed.Kind().String(), parsed.String()})
	}

	return w.Write(t)
}

