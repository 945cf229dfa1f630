/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package platform

import (
	"reflect"
	"runtime"
	"strings"
)

// NameOf returns the bare name of a function or method value, so callers can
// refer to it without a string literal that a rename would miss.
func NameOf(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}

	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}

	name := strings.TrimSuffix(f.Name(), "-fm")
	return name[strings.LastIndex(name, ".")+1:]
}
