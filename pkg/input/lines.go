/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package input reads line oriented input for the command line tools.
package input

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// MaxLineSize is the longest line ReadLines accepts.
const MaxLineSize = 16 * 1024 * 1024

// ReadLines returns every line of r without its line ending. Empty input
// yields a nil slice.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, errors.Wrap(scanner.Err(), "unable to read input")
}
