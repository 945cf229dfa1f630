/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package query

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dburkart/elitecore/pkg/convert"
	"github.com/dburkart/elitecore/pkg/linq"
	"github.com/dburkart/elitecore/pkg/luapred"
	"github.com/dburkart/elitecore/pkg/input"
	"github.com/dburkart/elitecore/pkg/metrics"
	"github.com/dburkart/elitecore/pkg/output"
	"github.com/dburkart/elitecore/pkg/platform"
	"github.com/dburkart/elitecore/pkg/strutil"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "query",
	Short: "Filter, sort and summarise lines of text",

	RunE: func(cmd *cobra.Command, args []string) error {
		log := viper.Get("logger").(zerolog.Logger)
		store := metrics.NewStore()

		in := cmd.InOrStdin()
		if path := viper.GetString("query.file"); path != "" {
			f, err := os.Open(path)
			if err != nil {
				return errors.Wrap(err, "unable to open input")
			}
			defer f.Close()
			in = f
		}

		opts := Options{
			Type:      viper.GetString("query.type"),
			Lua:       viper.GetString("query.lua"),
			DropBlank: viper.GetBool("query.drop-blank"),
			Sort:      viper.GetBool("query.sort"),
			Desc:      viper.GetBool("query.desc"),
			Scalar:    Scalar(viper.GetString("query.scalar")),
			Format:    viper.GetString("elitecore.output"),
		}

		err := Run(in, cmd.OutOrStdout(), opts, log, store)

		if path := viper.GetString("elitecore.metrics"); path != "" {
			if merr := store.WriteFile(path); merr != nil {
				log.Error().Err(merr).Send()
			}
		}
		return err
	},
}

// Scalar selects a single answer instead of the matching lines.
type Scalar string

const (
	ScalarNone   Scalar = ""
	ScalarCount  Scalar = "count"
	ScalarFirst  Scalar = "first"
	ScalarIndex  Scalar = "index"
	ScalarExists Scalar = "exists"
	ScalarAll    Scalar = "all"
)

type Options struct {
	// Type keeps lines that parse as this type tag.
	Type string
	// Lua keeps lines accepted by this snippet.
	Lua       string
	DropBlank bool
	Sort      bool
	Desc      bool
	Scalar    Scalar
	Format    string
}

type pipeline struct {
	opts  Options
	log   zerolog.Logger
	store metrics.Store

	typ   convert.Type
	typed bool
	match linq.Predicate[string]
}

func Run(r io.Reader, w io.Writer, opts Options, log zerolog.Logger, store metrics.Store) error {
	p := pipeline{opts: opts, log: log, store: store}

	switch opts.Scalar {
	case ScalarNone, ScalarCount, ScalarFirst, ScalarIndex, ScalarExists, ScalarAll:
	default:
		return errors.Errorf("unknown scalar %q", opts.Scalar)
	}

	if opts.Type != "" {
		typ, err := convert.ParseType(opts.Type)
		if err != nil {
			return err
		}
		p.typ, p.typed = typ, true
	}

	var lua *luapred.Predicate
	if opts.Lua != "" {
		var err error
		lua, err = luapred.Compile(opts.Lua)
		if err != nil {
			return err
		}
		defer lua.Close()
	}
	p.match = p.predicate(lua)

	lines, err := input.ReadLines(r)
	if err != nil {
		return err
	}

	lines = p.stage(p.dropBlank, lines)

	switch opts.Scalar {
	case ScalarAll:
		ok, err := linq.AllMatch(lines, p.match)
		if err != nil {
			return errors.Wrap(err, "--scalar all needs --type or --lua")
		}
		_, err = fmt.Fprintln(w, ok)
		return err
	case ScalarIndex:
		answer := convert.Format(nil)
		if idx, ok := linq.FirstMatchIndex(lines, p.match); ok {
			answer = strconv.Itoa(idx)
		}
		_, err = fmt.Fprintln(w, answer)
		return err
	case ScalarExists:
		_, err = fmt.Fprintln(w, linq.Exists(lines, p.match))
		return err
	case ScalarCount:
		n := linq.Count(lines, p.match)
		p.log.Info().Msgf("%s of %s lines matched", humanize.Comma(int64(n)), humanize.Comma(int64(len(lines))))
		_, err = fmt.Fprintln(w, n)
		return err
	}

	lines = p.stage(p.keepMatching, lines)
	lines = p.stage(p.sort, lines)

	if opts.Scalar == ScalarFirst {
		first, ok := linq.FirstMatch(lines, nil)
		if !ok {
			first = convert.Format(nil)
		}
		_, err = fmt.Fprintln(w, first)
		return err
	}

	return output.NewOutputWriter(w, opts.Format).Write(p.table(lines))
}

// predicate combines the type and Lua filters. It is nil when neither is set.
func (p *pipeline) predicate(lua *luapred.Predicate) linq.Predicate[string] {
	switch {
	case p.typed && lua != nil:
		return func(s string) bool { return p.typ.Parse(s) != nil && lua.Match(s) }
	case p.typed:
		return func(s string) bool { return p.typ.Parse(s) != nil }
	case lua != nil:
		return lua.Match
	}
	return nil
}

func (p *pipeline) stage(fn func([]string) []string, in []string) []string {
	out := fn(in)
	name := platform.NameOf(fn)
	p.store.ObserveQuery(name, len(in), len(out))
	p.log.Debug().Str("stage", name).Int("in", len(in)).Int("out", len(out)).Send()
	return out
}

func (p *pipeline) dropBlank(lines []string) []string {
	if !p.opts.DropBlank {
		return lines
	}
	return linq.RemoveWhere(lines, func(s string) bool { return strutil.IsBlank(&s) })
}

func (p *pipeline) keepMatching(lines []string) []string {
	return linq.Filter(lines, p.match)
}

func (p *pipeline) sort(lines []string) []string {
	if !p.opts.Sort {
		return lines
	}

	if !p.typed {
		return linq.OrderBy(lines, func(s string) string { return s }, p.opts.Desc)
	}
	if p.typ == convert.TypeGUID {
		return linq.OrderBy(lines, func(s string) string { return convert.Format(p.typ.Parse(s)) }, p.opts.Desc)
	}
	return linq.OrderBy(lines, func(s string) float64 {
		f, _ := convert.Numeric(p.typ.Parse(s))
		return f
	}, p.opts.Desc)
}

func (p *pipeline) table(lines []string) output.Table {
	if !p.typed {
		t := output.Table{Header: []string{"line"}}
		for _, l := range lines {
			t.Rows = append(t.Rows, []string{l})
		}
		return t
	}

	t := output.Table{Header: []string{"line", p.typ.String()}}
	for _, l := range lines {
		t.Rows = append(t.Rows, []string{l, convert.Format(p.typ.Parse(l))})
	}
	return t
}


func init() {
	// Flags for this command
	Command.Flags().StringP("file", "f", "", "Read lines from this file instead of stdin")
	Command.Flags().StringP("type", "t", "", "Keep lines that parse as this type")
	Command.Flags().String("lua", "", "Keep lines for which this Lua snippet is truthy (the line is bound to `value`)")
	Command.Flags().Bool("drop-blank", false, "Remove blank lines before anything else")
	Command.Flags().Bool("sort", false, "Sort lines, by parsed value when --type is given")
	Command.Flags().Bool("desc", false, "Sort in descending order")
	Command.Flags().String("scalar", "", "Print a single answer instead of lines [count, first, index, exists, all]")

	// Bind flags to viper
	viper.BindPFlag("query.file", Command.Flags().Lookup("file"))
	viper.BindPFlag("query.type", Command.Flags().Lookup("type"))
	viper.BindPFlag("query.lua", Command.Flags().Lookup("lua"))
	viper.BindPFlag("query.drop-blank", Command.Flags().Lookup("drop-blank"))
	viper.BindPFlag("query.sort", Command.Flags().Lookup("sort"))
	viper.BindPFlag("query.desc", Command.Flags().Lookup("desc"))
	viper.BindPFlag("query.scalar", Command.Flags().Lookup("scalar"))
}
