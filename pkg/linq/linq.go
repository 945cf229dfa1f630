/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package linq implements query operations over ordinary slices.
//
// A nil slice is treated as an absent sequence and never causes an error on
// its own. A nil Predicate means "no constraint"; what that implies differs
// per operation and is documented on each function.
package linq

import (
	"cmp"
	"slices"

	"github.com/pkg/errors"
)

var ErrPredicateRequired = errors.New("predicate is required")

type Predicate[E any] func(E) bool

func (p Predicate[E]) test(e E) bool {
	return p == nil || p(e)
}

// Filter returns the elements of s accepted by p, in their original order.
// A nil p accepts everything.
func Filter[E any](s []E, p Predicate[E]) []E {
	res := make([]E, 0, len(s))
	for _, e := range s {
		if p.test(e) {
			res = append(res, e)
		}
	}
	return res
}

// Exists reports whether s has any element accepted by p. With a nil p it
// reports whether s is non-empty.
func Exists[E any](s []E, p Predicate[E]) bool {
	for _, e := range s {
		if p.test(e) {
			return true
		}
	}
	return false
}

// AllMatch reports whether every element of s satisfies p. An absent s is
// false, not vacuously true; an empty but present s is true. A nil p on a
// present s is a usage error.
func AllMatch[E any](s []E, p Predicate[E]) (bool, error) {
	if s == nil {
		return false, nil
	}
	if p == nil {
		return false, ErrPredicateRequired
	}

	for _, e := range s {
		if !p(e) {
			return false, nil
		}
	}
	return true, nil
}

// Count returns how many elements of s p accepts.
func Count[E any](s []E, p Predicate[E]) int {
	if p == nil {
		return len(s)
	}

	n := 0
	for _, e := range s {
		if p(e) {
			n++
		}
	}
	return n
}

// FirstMatch returns the first element accepted by p.
func FirstMatch[E any](s []E, p Predicate[E]) (E, bool) {
	for _, e := range s {
		if p.test(e) {
			return e, true
		}
	}

	var zero E
	return zero, false
}

// FirstMatchIndex returns the index of the first element satisfying p, or
// (-1, false). A nil p never matches.
func FirstMatchIndex[E any](s []E, p Predicate[E]) (int, bool) {
	if p == nil {
		return -1, false
	}

	for i, e := range s {
		if p(e) {
			return i, true
		}
	}
	return -1, false
}

// OrderBy returns s sorted by the key extracted from each element. Keys are
// extracted once per element, and elements with equal keys keep their input
// order whether sorting ascending or descending.
func OrderBy[E any, K cmp.Ordered](s []E, key func(E) K, descending bool) []E {
	type keyed struct {
		key  K
		elem E
	}

	entries := make([]keyed, len(s))
	for i, e := range s {
		entries[i] = keyed{key(e), e}
	}

	slices.SortStableFunc(entries, func(a, b keyed) int {
		if descending {
			return cmp.Compare(b.key, a.key)
		}
		return cmp.Compare(a.key, b.key)
	})

	res := make([]E, len(entries))
	for i, entry := range entries {
		res[i] = entry.elem
	}
	return res
}

// RemoveWhere returns the elements of s rejected by p, the complement of
// Filter. A nil p removes nothing.
func RemoveWhere[E any](s []E, p Predicate[E]) []E {
	res := make([]E, 0, len(s))
	for _, e := range s {
		if p == nil || !p(e) {
			res = append(res, e)
		}
	}
	return res
}
