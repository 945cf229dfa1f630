/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package strutil classifies optional strings as absent, blank or present and
// compares loosely typed values with an optional case-insensitive mode.
package strutil

import (
	"reflect"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IsAbsent reports whether v carries no value at all.
func IsAbsent(v *string) bool {
	return v == nil
}

// IsBlank reports whether v is absent, empty, or made only of white space.
func IsBlank(v *string) bool {
	if v == nil {
		return true
	}
	return strings.IndexFunc(*v, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

// IsEmpty reports whether v is absent or has zero length.
func IsEmpty(v *string) bool {
	return v == nil || len(*v) == 0
}

func EmptyToAbsent(v *string) *string {
	if IsEmpty(v) {
		return nil
	}
	return v
}

func BlankToAbsent(v *string) *string {
	if IsBlank(v) {
		return nil
	}
	return v
}

// Concat joins parts, treating absent parts as empty strings.
func Concat(parts ...*string) string {
	var b strings.Builder
	for _, p := range parts {
		if p != nil {
			b.WriteString(*p)
		}
	}
	return b.String()
}

// Equal compares a and b. Absent values (nil, or a nil *string) never equal
// anything, including another absent value. Strings only equal strings; with
// caseInsensitive set they are compared after Unicode upper-casing. Any other
// pair is equal when both share a dynamic type, hold comparable values and
// compare ==.
func Equal(a, b any, caseInsensitive bool) bool {
	a, b = normalize(a), normalize(b)
	if a == nil || b == nil {
		return false
	}

	as, aok := a.(string)
	bs, bok := b.(string)
	if aok != bok {
		return false
	}
	if aok {
		if caseInsensitive {
			// Casers keep state and cannot be shared
			upper := cases.Upper(language.Und)
			return upper.String(as) == upper.String(bs)
		}
		return as == bs
	}

	// Value.Comparable looks inside interface fields, which == would panic on
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Type() != bv.Type() || !av.Comparable() || !bv.Comparable() {
		return false
	}
	return a == b
}

func normalize(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case *string:
		if x == nil {
			return nil
		}
		return *x
	}
	return v
}
