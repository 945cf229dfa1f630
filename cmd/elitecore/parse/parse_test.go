/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"bytes"
	"testing"

	"github.com/andreyvit/diff"
	"github.com/dburkart/elitecore/pkg/convert"
	"github.com/dburkart/elitecore/pkg/metrics"
	"github.com/dburkart/elitecore/pkg/output"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	tt := []struct {
		test     string
		tag      string
		values   []string
		expected string
	}{
		{
			"ints",
			"int",
			[]string{"42", "abc"},
			"input,kind,value\n42,int,42\nabc,null,null\n",
		},
		{
			"guid",
			"guid",
			[]string{"0123456789abcdef0123456789abcdef"},
			"input,kind,value\n0123456789abcdef0123456789abcdef,guid,01234567-89ab-cdef-0123-456789abcdef\n",
		},
		{
			"timestamp",
			"Timestamp",
			[]string{"2024-03-15"},
			"input,kind,value\n2024-03-15,timestamp,1710460800000\n",
		},
		{
			"no values",
			"float",
			nil,
			"input,kind,value\n",
		},
	}

	for _, tc := range tt {
		t.Run(tc.test, func(t *testing.T) {
			var buf bytes.Buffer
			err := Run(output.NewOutputWriter(&buf, "csv"), tc.tag, tc.values, metrics.NewStore())
			require.NoError(t, err)

			if actual := buf.String(); actual != tc.expected {
				t.Errorf("output differs:\n%v", diff.LineDiff(tc.expected, actual))
			}
		})
	}
}

func TestRunUnsupportedType(t *testing.T) {
	var buf bytes.Buffer
	err := Run(output.NewOutputWriter(&buf, "csv"), "bogus-tag", []string{"x"}, metrics.NewStore())
	assert.True(t, errors.Is(err, convert.ErrUnsupportedType))
	assert.Empty(t, buf.String())
}
