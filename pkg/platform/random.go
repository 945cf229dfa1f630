/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package platform wraps the few runtime facilities the rest of elitecore
// leans on: secure random numbers, waiting, and function names.
package platform

import (
	"crypto/rand"
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// RandomInt returns a cryptographically random integer in [min, max].
// Draws that would bias the modulo are rejected and retried.
func RandomInt(min, max int) (int, error) {
	if max < min {
		return 0, errors.Errorf("invalid range [%d, %d]", min, max)
	}

	// span is zero only when [min, max] covers every int
	span := uint64(max-min) + 1
	limit := uint64(math.MaxUint64)
	if span != 0 {
		limit -= limit % span
	}

	var buf [8]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return 0, errors.Wrap(err, "unable to read random bytes")
		}

		n := binary.LittleEndian.Uint64(buf[:])
		if span == 0 {
			return int(n), nil
		}
		if n < limit {
			return min + int(n%span), nil
		}
	}
}
