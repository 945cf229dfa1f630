/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package convert

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

type Kind int

const (
	Int Kind = iota
	Number
	GUID
	Timestamp
	Date
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Number:
		return "number"
	case GUID:
		return "guid"
	case Timestamp:
		return "timestamp"
	case Date:
		return "date"
	}
	return "unknown"
}

// Value is a successfully parsed input. Parsing that finds nothing usable
// yields a nil Value rather than an error.
type Value interface {
	Kind() Kind
	String() string
}

type (
	intVal       int64
	numberVal    float64
	guidVal      uuid.UUID
	timestampVal int64
	dateVal      time.Time
)

func (intVal) Kind() Kind       { return Int }
func (numberVal) Kind() Kind    { return Number }
func (guidVal) Kind() Kind      { return GUID }
func (timestampVal) Kind() Kind { return Timestamp }
func (dateVal) Kind() Kind      { return Date }

func (v intVal) String() string       { return strconv.FormatInt(int64(v), 10) }
func (v numberVal) String() string    { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v guidVal) String() string      { return uuid.UUID(v).String() }
func (v timestampVal) String() string { return strconv.FormatInt(int64(v), 10) }
func (v dateVal) String() string      { return time.Time(v).Format(time.RFC3339) }

func MakeInt(i int64) Value        { return intVal(i) }
func MakeNumber(f float64) Value   { return numberVal(f) }
func MakeGUID(u uuid.UUID) Value   { return guidVal(u) }
func MakeTimestamp(ms int64) Value { return timestampVal(ms) }
func MakeDate(t time.Time) Value   { return dateVal(t.UTC()) }

func IntVal(v Value) int64 {
	switch x := v.(type) {
	case intVal:
		return int64(x)
	default:
		panic("Not an int")
	}
}

func NumberVal(v Value) float64 {
	switch x := v.(type) {
	case numberVal:
		return float64(x)
	default:
		panic("Not a number")
	}
}

func GUIDVal(v Value) uuid.UUID {
	switch x := v.(type) {
	case guidVal:
		return uuid.UUID(x)
	default:
		panic("Not a guid")
	}
}

func TimestampVal(v Value) int64 {
	switch x := v.(type) {
	case timestampVal:
		return int64(x)
	default:
		panic("Not a timestamp")
	}
}

func DateVal(v Value) time.Time {
	switch x := v.(type) {
	case dateVal:
		return time.Time(x)
	default:
		panic("Not a date")
	}
}

// Numeric returns v as a float64 for ordering. GUIDs have no numeric form.
func Numeric(v Value) (float64, bool) {
	switch x := v.(type) {
	case intVal:
		return float64(x), true
	case numberVal:
		return float64(x), true
	case timestampVal:
		return float64(x), true
	case dateVal:
		return float64(time.Time(x).UnixMilli()), true
	}
	return 0, false
}

// Format renders v, or "null" when v is absent.
func Format(v Value) string {
	if v == nil {
		return "null"
	}
	return v.String()
}
