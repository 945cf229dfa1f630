/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"testing"

	"github.com/dburkart/elitecore/pkg/convert"
	"github.com/dburkart/elitecore/pkg/metrics"
	"github.com/dburkart/elitecore/pkg/output"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluate(line string) (string, string, error) {
	var usage, results bytes.Buffer
	err := Evaluate(line, &usage, output.NewOutputWriter(&results, "csv"), metrics.NewStore())
	return usage.String(), results.String(), err
}

func TestEvaluate(t *testing.T) {
	_, results, err := evaluate("int 1 two 3")
	require.NoError(t, err)
	assert.Equal(t, "input,kind,value\n1,int,1\ntwo,null,null\n3,int,3\n", results)
}

func TestEvaluateHelp(t *testing.T) {
	usage, results, err := evaluate("HELP")
	require.NoError(t, err)
	assert.Contains(t, usage, "datetime")
	assert.Empty(t, results)
}

func TestEvaluateBlank(t *testing.T) {
	usage, results, err := evaluate("   ")
	require.NoError(t, err)
	assert.Empty(t, usage)
	assert.Empty(t, results)
}

func TestEvaluateExit(t *testing.T) {
	_, _, err := evaluate("exit")
	assert.True(t, errors.Is(err, errExit))
}

func TestEvaluateErrors(t *testing.T) {
	_, _, err := evaluate("int")
	assert.Error(t, err)

	_, _, err = evaluate("colour red")
	assert.True(t, errors.Is(err, convert.ErrUnsupportedType))
}
