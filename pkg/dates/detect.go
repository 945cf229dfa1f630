/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package dates finds a numeric date inside free text and works out whether it
// is written in ISO, European or US order.
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Convention int

const (
	ISO Convention = iota
	EU
	US
)

func (c Convention) String() string {
	switch c {
	case ISO:
		return "iso"
	case EU:
		return "eu"
	case US:
		return "us"
	}
	return fmt.Sprintf("Convention(%d)", int(c))
}

var (
	ErrDateNotDetected   = errors.New("date not detected")
	ErrInsufficientParts = errors.New("date needs at least 3 parts")
	ErrInvalidDate       = errors.New("invalid date")
)

var datePattern = regexp.MustCompile(`\d*[-./]\d*[-./]\d*`)

// The separator that first splits the match into three or more parts decides
// the convention.
var separators = [...]struct {
	sep        string
	convention Convention
}{
	{"-", ISO},
	{".", EU},
	{"/", US},
}

// Parts is a detected date. Year has four digits, Month and Day two.
type Parts struct {
	Year       string
	Month      string
	Day        string
	Convention Convention
}

// Detect extracts the first date-shaped substring from text.
func Detect(text string) (Parts, error) {
	text = strings.ReplaceAll(text, " ", "")

	match := datePattern.FindString(text)
	if match == "" {
		log.Warn().Str("input", text).Msg("date not detected")
		return Parts{}, ErrDateNotDetected
	}

	var pieces []string
	convention := ISO
	for _, s := range separators {
		pieces = strings.Split(match, s.sep)
		if len(pieces) >= 3 {
			convention = s.convention
			break
		}
	}
	if len(pieces) < 3 {
		log.Warn().Str("input", text).Str("match", match).Msg("date needs at least 3 parts")
		return Parts{}, ErrInsufficientParts
	}

	first, middle, last := pieces[0], pieces[1], pieces[2]
	p := Parts{Convention: convention}

	switch {
	case len(first) == 4:
		p.Year, p.Month, p.Day = first, middle, last
	case len(last) == 4 && convention == US:
		p.Year, p.Month, p.Day = last, first, middle
	case len(last) == 4:
		p.Year, p.Month, p.Day = last, middle, first
	default:
		log.Warn().Str("input", text).Str("match", match).Msg("no four digit year in date")
		return Parts{}, ErrDateNotDetected
	}

	p.Month = pad2(p.Month)
	p.Day = pad2(p.Day)
	return p, nil
}

// pad2 left pads with zeros and keeps the last two characters.
func pad2(s string) string {
	s = "00" + s
	return s[len(s)-2:]
}

// Layouts tried in order against a detected date. The second takes the same
// parts in month-day-year order.
var layouts = [...]struct {
	layout string
	format func(Parts) string
}{
	{time.RFC3339, func(p Parts) string { return p.Year + "-" + p.Month + "-" + p.Day + "T00:00:00Z" }},
	{"01-02-2006Z07:00", func(p Parts) string { return p.Month + "-" + p.Day + "-" + p.Year + "Z" }},
}

// Time returns the date found in text at midnight UTC.
func Time(text string) (time.Time, error) {
	p, err := Detect(text)
	if err != nil {
		return time.Time{}, err
	}
	return p.Time()
}

// Timestamp returns the date found in text as Unix milliseconds at midnight
// UTC.
func Timestamp(text string) (int64, error) {
	tm, err := Time(text)
	if err != nil {
		return 0, err
	}
	return tm.UnixMilli(), nil
}

func (p Parts) Time() (time.Time, error) {
	var lastErr error
	for _, l := range layouts {
		tm, err := time.Parse(l.layout, l.format(p))
		if err == nil {
			return tm.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, errors.Wrapf(ErrInvalidDate, "%s-%s-%s: %v", p.Year, p.Month, p.Day, lastErr)
}
