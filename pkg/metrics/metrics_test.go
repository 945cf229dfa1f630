/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveParse(t *testing.T) {
	s := NewStore()
	s.ObserveParse("int", OutcomeParsed, 1200)
	s.ObserveParse("int", OutcomeParsed, 800)
	s.ObserveParse("int", OutcomeAbsent, 500)

	ms := s.(*metricsStore)
	assert.Equal(t, 2.0, testutil.ToFloat64(ms.Parses.WithLabelValues("int", OutcomeParsed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(ms.Parses.WithLabelValues("int", OutcomeAbsent)))
}

func TestObserveQuery(t *testing.T) {
	s := NewStore()
	s.ObserveQuery("filter", 10, 4)

	ms := s.(*metricsStore)
	assert.Equal(t, 10.0, testutil.ToFloat64(ms.StageRows.WithLabelValues("filter", "in")))
	assert.Equal(t, 4.0, testutil.ToFloat64(ms.StageRows.WithLabelValues("filter", "out")))
}

func TestWriteFile(t *testing.T) {
	s := NewStore()
	s.ObserveParse("guid", OutcomeParsed, 100)

	path := filepath.Join(t.TempDir(), "elitecore.prom")
	require.NoError(t, s.WriteFile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `elitecore_parse_total{outcome="parsed",type="guid"} 1`)
}
