/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package convert turns free-form strings into typed values selected by a
// type tag such as "int", "guid" or "date".
//
// Input that cannot be converted is not an error: Parse returns a nil Value.
// Only an unrecognised type tag is reported as an error.
package convert

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/dburkart/elitecore/pkg/dates"
	"github.com/dburkart/elitecore/pkg/strutil"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrUnsupportedType = errors.New("unsupported type")

type Type int

const (
	TypeInt Type = iota
	TypeLong
	TypeFloat
	TypeDecimal
	TypeDouble
	TypeGUID
	TypeTimestamp
	TypeDate
	TypeDateTime
)

var typeNames = [...]string{
	TypeInt:       "int",
	TypeLong:      "long",
	TypeFloat:     "float",
	TypeDecimal:   "decimal",
	TypeDouble:    "double",
	TypeGUID:      "guid",
	TypeTimestamp: "timestamp",
	TypeDate:      "date",
	TypeDateTime:  "datetime",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

// Types lists every supported tag in declaration order.
func Types() []string {
	return append([]string(nil), typeNames[:]...)
}

// ParseType resolves a tag, ignoring case.
func ParseType(tag string) (Type, error) {
	for t, name := range typeNames {
		if strutil.Equal(tag, name, true) {
			return Type(t), nil
		}
	}
	return 0, errors.Wrapf(ErrUnsupportedType, "type [%s]", tag)
}

type parseFunc func(string) Value

var parsers = map[Type]parseFunc{
	TypeInt:       parseInt,
	TypeLong:      parseNumber,
	TypeFloat:     parseNumber,
	TypeDecimal:   parseNumber,
	TypeDouble:    parseNumber,
	TypeGUID:      parseGUID,
	TypeTimestamp: parseTimestamp,
	TypeDate:      parseDate,
	TypeDateTime:  parseDate,
}

// Parse converts value according to tag. An absent value yields a nil Value
// without looking at the tag.
func Parse(tag string, value *string) (Value, error) {
	if value == nil {
		return nil, nil
	}

	t, err := ParseType(tag)
	if err != nil {
		return nil, errors.Wrapf(ErrUnsupportedType, "could not convert value [%s] to type [%s]", *value, tag)
	}
	return t.Parse(*value), nil
}

// ParseString is Parse for a value that is known to be present.
func ParseString(tag, value string) (Value, error) {
	return Parse(tag, &value)
}

// Parse converts s, returning nil when s does not hold a value of type t.
func (t Type) Parse(s string) Value {
	fn, ok := parsers[t]
	if !ok {
		return nil
	}
	return fn(s)
}

var intPrefix = regexp.MustCompile(`^[+-]?[0-9]+`)

// parseInt reads a leading base 10 integer and ignores anything after it.
func parseInt(s string) Value {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	digits := intPrefix.FindString(s)
	if digits == "" {
		return nil
	}

	i, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return nil
	}
	return MakeInt(i)
}

var (
	decimalNumber  = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
	prefixedNumber = regexp.MustCompile(`^0([xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
	infinity       = regexp.MustCompile(`^[+-]?Infinity$`)
)

// parseNumber accepts the whole trimmed string as a number or nothing.
func parseNumber(s string) Value {
	s = strings.TrimSpace(s)

	switch {
	case decimalNumber.MatchString(s):
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil
		}
		return MakeNumber(f)
	case prefixedNumber.MatchString(s):
		u, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return nil
		}
		return MakeNumber(float64(u))
	case infinity.MatchString(s):
		if s[0] == '-' {
			return MakeNumber(math.Inf(-1))
		}
		return MakeNumber(math.Inf(1))
	}
	return nil
}

var hexRun = regexp.MustCompile(`([0-9a-fA-F]{8})([0-9a-fA-F]{4})([0-9a-fA-F]{4})([0-9a-fA-F]{4})([0-9a-fA-F]{12})`)

// parseGUID hyphenates the first run of 32 hex digits. Beyond being 36
// characters long the result must also parse as a UUID, so stray non-hex
// characters are rejected, and it is returned in lower case.
func parseGUID(s string) Value {
	if loc := hexRun.FindStringIndex(s); loc != nil {
		s = s[:loc[0]] + hexRun.ReplaceAllString(s[loc[0]:loc[1]], "$1-$2-$3-$4-$5") + s[loc[1]:]
	}
	if len(s) != 36 {
		return nil
	}

	u, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return MakeGUID(u)
}

func parseTimestamp(s string) Value {
	ms, err := dates.Timestamp(s)
	if err != nil {
		return nil
	}
	return MakeTimestamp(ms)
}

func parseDate(s string) Value {
	tm, err := dates.Time(s)
	if err != nil {
		return nil
	}
	return MakeDate(tm)
}
