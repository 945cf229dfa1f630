/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package output renders tabular results as text tables, CSV, JSON or YAML.
package output

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var Formats = []string{"text", "csv", "json", "yaml"}

type Printable interface {
	Headers() []string
	Values() [][]string
}

// Table is the simplest Printable.
type Table struct {
	Header []string
	Rows   [][]string
}

func (t Table) Headers() []string  { return t.Header }
func (t Table) Values() [][]string { return t.Rows }

type OutputWriter interface {
	Write(v Printable) error
}

type CSVWriter struct {
	w io.Writer
}

type TextWriter struct {
	w io.Writer
}

type JSONWriter struct {
	w io.Writer
}

type YAMLWriter struct {
	w io.Writer
}

// NewOutputWriter picks a writer by format name, falling back to text.
func NewOutputWriter(w io.Writer, t string) OutputWriter {
	switch t {
	case "csv":
		return CSVWriter{
			w,
		}
	case "json":
		return JSONWriter{
			w,
		}
	case "yaml":
		return YAMLWriter{
			w,
		}
	}
	return TextWriter{
		w,
	}
}

func (w CSVWriter) Write(v Printable) error {
	wtr := csv.NewWriter(w.w)
	if err := wtr.Write(v.Headers()); err != nil {
		return errors.Wrap(err, "unable to write csv header")
	}
	return errors.Wrap(wtr.WriteAll(v.Values()), "unable to write csv rows")
}

func (w TextWriter) Write(v Printable) error {
	header := make([]any, 0, len(v.Headers()))
	for _, h := range v.Headers() {
		header = append(header, h)
	}

	table := tablewriter.NewWriter(w.w)
	table.Header(header...)
	if err := table.Bulk(v.Values()); err != nil {
		return errors.Wrap(err, "unable to build table")
	}
	return errors.Wrap(table.Render(), "unable to render table")
}

func (w JSONWriter) Write(v Printable) error {
	enc := json.NewEncoder(w.w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(records(v)), "unable to encode json")
}

func (w YAMLWriter) Write(v Printable) error {
	enc := yaml.NewEncoder(w.w)
	enc.SetIndent(2)
	if err := enc.Encode(records(v)); err != nil {
		return errors.Wrap(err, "unable to encode yaml")
	}
	return errors.Wrap(enc.Close(), "unable to flush yaml")
}

// records keys each row by header so structured formats are self describing.
func records(v Printable) []map[string]string {
	headers := v.Headers()
	res := make([]map[string]string, 0, len(v.Values()))
	for _, row := range v.Values() {
		rec := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = row[i]
			}
		}
		res = append(res, rec)
	}
	return res
}
