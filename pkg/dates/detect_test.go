/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package dates

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tt := []struct {
		test    string
		input   string
		want    Parts
		wantErr error
	}{
		{"iso", "2024-03-15", Parts{"2024", "03", "15", ISO}, nil},
		{"iso day first", "15-03-2024", Parts{"2024", "03", "15", ISO}, nil},
		{"eu", "15.03.2024", Parts{"2024", "03", "15", EU}, nil},
		{"eu year first", "2024.3.5", Parts{"2024", "03", "05", EU}, nil},
		{"us", "03/15/2024", Parts{"2024", "03", "15", US}, nil},
		{"us year first", "2024/03/15", Parts{"2024", "03", "15", US}, nil},
		{"padding", "1/2/2024", Parts{"2024", "01", "02", US}, nil},
		{"embedded in text", "due on 2024-03-15 at noon", Parts{"2024", "03", "15", ISO}, nil},
		{"spaces removed", "15 . 03 . 2024", Parts{"2024", "03", "15", EU}, nil},
		{"time suffix ignored", "2024-03-15T10:11:12Z", Parts{"2024", "03", "15", ISO}, nil},
		{"no date", "hello", Parts{}, ErrDateNotDetected},
		{"empty", "", Parts{}, ErrDateNotDetected},
		{"mixed separators", "2024-03/15", Parts{}, ErrInsufficientParts},
		{"two digit year", "03/15/24", Parts{}, ErrDateNotDetected},
	}

	for _, tc := range tt {
		t.Run(tc.test, func(t *testing.T) {
			got, err := Detect(tc.input)
			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "got error %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConventionsAgree(t *testing.T) {
	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	for _, input := range []string{"2024-03-15", "03/15/2024", "15.03.2024"} {
		t.Run(input, func(t *testing.T) {
			tm, err := Time(input)
			require.NoError(t, err)
			assert.True(t, tm.Equal(want), "wanted %s, got %s", want, tm)
			assert.Equal(t, time.UTC, tm.Location())

			ts, err := Timestamp(input)
			require.NoError(t, err)
			assert.Equal(t, want.UnixMilli(), ts)
		})
	}
}

func TestInvalidCalendarDate(t *testing.T) {
	_, err := Timestamp("2024-13-01")
	assert.True(t, errors.Is(err, ErrInvalidDate))

	_, err = Timestamp("2023-02-29")
	assert.True(t, errors.Is(err, ErrInvalidDate))

	ts, err := Timestamp("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, int64(1709164800000), ts)
}

func TestPad2(t *testing.T) {
	assert.Equal(t, "00", pad2(""))
	assert.Equal(t, "05", pad2("5"))
	assert.Equal(t, "12", pad2("12"))
	assert.Equal(t, "23", pad2("123"))
}

func TestConventionString(t *testing.T) {
	assert.Equal(t, "iso", ISO.String())
	assert.Equal(t, "eu", EU.String())
	assert.Equal(t, "us", US.String())
}
