/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

type box struct{ X any }

func TestClassifiers(t *testing.T) {
	tt := []struct {
		test   string
		input  *string
		absent bool
		empty  bool
		blank  bool
	}{
		{"absent", nil, true, true, true},
		{"empty", ptr(""), false, true, true},
		{"single space", ptr(" "), false, false, true},
		{"mixed white space", ptr(" \t\r\n "), false, false, true},
		{"non-breaking space", ptr("\u00a0"), false, false, true},
		{"word", ptr("fossil"), false, false, false},
		{"padded word", ptr("  fossil  "), false, false, false},
	}

	for _, tc := range tt {
		t.Run(tc.test, func(t *testing.T) {
			assert.Equal(t, tc.absent, IsAbsent(tc.input), "IsAbsent")
			assert.Equal(t, tc.empty, IsEmpty(tc.input), "IsEmpty")
			assert.Equal(t, tc.blank, IsBlank(tc.input), "IsBlank")
		})
	}
}

func TestToAbsent(t *testing.T) {
	assert.Nil(t, EmptyToAbsent(nil))
	assert.Nil(t, EmptyToAbsent(ptr("")))
	assert.Equal(t, ptr(" "), EmptyToAbsent(ptr(" ")))

	assert.Nil(t, BlankToAbsent(nil))
	assert.Nil(t, BlankToAbsent(ptr("   ")))
	assert.Equal(t, ptr(" x "), BlankToAbsent(ptr(" x ")))
}

func TestConcat(t *testing.T) {
	assert.Equal(t, "", Concat())
	assert.Equal(t, "", Concat(nil, nil))
	assert.Equal(t, "ab", Concat(ptr("a"), nil, ptr(""), ptr("b")))
}

func TestEqual(t *testing.T) {
	var absent *string

	tt := []struct {
		test            string
		a, b            any
		caseInsensitive bool
		want            bool
	}{
		{"nil and nil", nil, nil, false, false},
		{"absent pointers", absent, absent, false, false},
		{"nil and absent pointer", nil, absent, true, false},
		{"absent and string", nil, "a", false, false},
		{"same string", "abc", "abc", false, true},
		{"pointer and string", ptr("abc"), "abc", false, true},
		{"case differs", "abc", "ABC", false, false},
		{"case differs insensitive", "abc", "ABC", true, true},
		{"sharp s folds to SS", "straße", "STRASSE", true, true},
		{"string and int", "1", 1, false, false},
		{"ints", 42, 42, false, true},
		{"different ints", 42, 43, false, false},
		{"int and int64", 42, int64(42), false, false},
		{"slices are not comparable", []int{1}, []int{1}, false, false},
		{"struct holding a slice", box{[]int{1}}, box{[]int{1}}, false, false},
		{"struct holding a map", box{map[string]int{}}, box{map[string]int{}}, false, false},
		{"struct holding equal ints", box{1}, box{1}, false, true},
		{"struct holding different ints", box{1}, box{2}, false, false},
	}

	for _, tc := range tt {
		t.Run(tc.test, func(t *testing.T) {
			assert.Equal(t, tc.want, Equal(tc.a, tc.b, tc.caseInsensitive))
		})
	}
}
