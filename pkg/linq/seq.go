/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package linq

// Seq wraps a slice so queries can be chained:
//
//	n := linq.From(lines).RemoveWhere(blank).Where(numeric).Count(nil)
//
// OrderBy is a free function because it needs its own key type parameter;
// use SortBy to stay in a chain.
type Seq[E any] struct {
	items []E
}

func From[E any](s []E) Seq[E] {
	return Seq[E]{s}
}

// Slice returns the wrapped elements. It is nil only for a Seq built from an
// absent slice that has not been through any query.
func (q Seq[E]) Slice() []E {
	return q.items
}

func (q Seq[E]) Where(p Predicate[E]) Seq[E] {
	return Seq[E]{Filter(q.items, p)}
}

func (q Seq[E]) RemoveWhere(p Predicate[E]) Seq[E] {
	return Seq[E]{RemoveWhere(q.items, p)}
}

func (q Seq[E]) Any(p Predicate[E]) bool {
	return Exists(q.items, p)
}

func (q Seq[E]) All(p Predicate[E]) (bool, error) {
	return AllMatch(q.items, p)
}

func (q Seq[E]) Count(p Predicate[E]) int {
	return Count(q.items, p)
}

func (q Seq[E]) First(p Predicate[E]) (E, bool) {
	return FirstMatch(q.items, p)
}

func (q Seq[E]) FirstIndex(p Predicate[E]) (int, bool) {
	return FirstMatchIndex(q.items, p)
}

// SortBy orders q by a string key.
func (q Seq[E]) SortBy(key func(E) string, descending bool) Seq[E] {
	return Seq[E]{OrderBy(q.items, key, descending)}
}
