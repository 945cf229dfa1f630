/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dburkart/elitecore/cmd/elitecore/parse"
	"github.com/dburkart/elitecore/pkg/convert"
	"github.com/dburkart/elitecore/pkg/metrics"
	"github.com/dburkart/elitecore/pkg/output"
	"github.com/dburkart/elitecore/pkg/strutil"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errExit = errors.New("exit")

var Command = &cobra.Command{
	Use:   "repl",
	Short: "Interactively convert values, one `TYPE VALUE...` per line",

	RunE: func(cmd *cobra.Command, args []string) error {
		log := viper.Get("logger").(zerolog.Logger)
		writer := output.NewOutputWriter(os.Stdout, viper.GetString("elitecore.output"))
		store := metrics.NewStore()

		err := readlinePrompt(log, writer, store)

		if path := viper.GetString("elitecore.metrics"); path != "" {
			if merr := store.WriteFile(path); merr != nil {
				log.Error().Err(merr).Send()
			}
		}
		return err
	},
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func makeTypeOptions() []readline.PrefixCompleterInterface {
	ret := []readline.PrefixCompleterInterface{}
	for _, t := range convert.Types() {
		ret = append(ret, readline.PcItem(t))
	}
	return ret
}

func readlinePrompt(log zerolog.Logger, writer output.OutputWriter, store metrics.Store) error {
	// Configure the completer
	items := append(makeTypeOptions(), readline.PcItem("help"), readline.PcItem("exit"))
	completer := readline.NewPrefixCompleter(items...)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return errors.Wrap(err, "unable to start prompt")
	}
	defer rl.Close()

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}

		err := Evaluate(ln.Line, rl.Stdout(), writer, store)
		if errors.Is(err, errExit) {
			break
		}
		if err != nil {
			log.Error().Err(err).Send()
		}
	}
	rl.Clean()
	return nil
}

// Evaluate runs a single prompt line. Usage text goes to w, results to writer.
func Evaluate(line string, w io.Writer, writer output.OutputWriter, store metrics.Store) error {
	if strutil.IsBlank(&line) {
		return nil
	}

	fields := strings.Fields(line)
	switch {
	case strutil.Equal(fields[0], "help", true):
		fmt.Fprintln(w, "usage: TYPE VALUE...")
		fmt.Fprintf(w, "types: %s\n", strings.Join(convert.Types(), ", "))
		return nil
	case strutil.Equal(fields[0], "exit", true):
		return errExit
	case len(fields) < 2:
		return errors.Errorf("expected a value after %q", fields[0])
	}

	return parse.Run(writer, fields[0], fields[1:], store)
}
