/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package metrics counts parse outcomes and query stages for the command line
// tools and writes them in the Prometheus text format.
package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Store interface {
	Registry() *prometheus.Registry
	WriteFile(path string) error

	// Collection
	ObserveParse(typ, outcome string, ns int64)
	ObserveQuery(stage string, in, out int)
}

type metricsStore struct {
	registry  *prometheus.Registry
	Parses    *prometheus.CounterVec
	ParseNS   *prometheus.HistogramVec
	StageRows *prometheus.CounterVec
}

var (
	TypeLabel    = "type"
	OutcomeLabel = "outcome"
	StageLabel   = "stage"
	FlowLabel    = "flow"
)

const (
	OutcomeParsed = "parsed"
	OutcomeAbsent = "absent"
	OutcomeError  = "error"
)

func NewStore() Store {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(2*i*int(time.Microsecond)))
	}

	factory := promauto.With(reg)
	return &metricsStore{
		registry: reg,
		Parses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "elitecore_parse_total",
			Help: "Parsed values by type tag and outcome",
		}, []string{TypeLabel, OutcomeLabel}),
		ParseNS: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "elitecore_parse_ns",
			Help:    "Time spent converting a single value",
			Buckets: buckets,
		}, []string{TypeLabel}),
		StageRows: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "elitecore_query_rows_total",
			Help: "Rows entering and leaving each query stage",
		}, []string{StageLabel, FlowLabel}),
	}
}

func (ms *metricsStore) Registry() *prometheus.Registry {
	return ms.registry
}

func (ms *metricsStore) WriteFile(path string) error {
	return errors.Wrapf(prometheus.WriteToTextfile(path, ms.registry), "unable to write metrics to %s", path)
}

func (ms *metricsStore) ObserveParse(typ, outcome string, ns int64) {
	ms.Parses.With(prometheus.Labels{TypeLabel: typ, OutcomeLabel: outcome}).Inc()
	ms.ParseNS.With(prometheus.Labels{TypeLabel: typ}).Observe(float64(ns))
}

func (ms *metricsStore) ObserveQuery(stage string, in, out int) {
	ms.StageRows.With(prometheus.Labels{StageLabel: stage, FlowLabel: "in"}).Add(float64(in))
	ms.StageRows.With(prometheus.Labels{StageLabel: stage, FlowLabel: "out"}).Add(float64(out))
}
