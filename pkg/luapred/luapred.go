/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package luapred compiles small Lua snippets into string predicates.
//
// A snippet is either an expression, such as `#value > 3`, or a function body
// containing its own return statement. The input line is bound to `value`.
// Only the base, string and table libraries are opened, and the base library
// loses dofile and loadfile so snippets cannot read files.
package luapred

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
)

const entryPoint = "__elitecore_keep"

// Predicate is not safe for concurrent use; it owns a single Lua state.
type Predicate struct {
	L   *lua.LState
	fn  lua.LValue
	err error
}

func Compile(snippet string) (*Predicate, error) {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})

	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
	} {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	for _, name := range []string{"dofile", "loadfile"} {
		L.SetGlobal(name, lua.LNil)
	}

	// Expressions are tried first; a snippet only counts as a function body
	// when it does not parse as an expression.
	err := define(L, "return (\n"+snippet+"\n)")
	if err != nil {
		if bodyErr := define(L, snippet); bodyErr != nil {
			L.Close()
			return nil, errors.Wrapf(err, "unable to compile lua predicate %q", snippet)
		}
	}

	return &Predicate{L: L, fn: L.GetGlobal(entryPoint)}, nil
}

func define(L *lua.LState, body string) error {
	return L.DoString("function " + entryPoint + "(value)\n" + body + "\nend")
}

// Match runs the snippet against s. Lua truthiness applies: only nil and
// false reject. A runtime error rejects s and is kept for Err.
func (p *Predicate) Match(s string) bool {
	err := p.L.CallByParam(lua.P{
		Fn:      p.fn,
		NRet:    1,
		Protect: true,
	}, lua.LString(s))
	if err != nil {
		if p.err == nil {
			log.Warn().Err(err).Str("input", s).Msg("lua predicate failed")
		}
		p.err = err
		return false
	}

	ret := p.L.Get(-1)
	p.L.Pop(1)
	return lua.LVAsBool(ret)
}

// Err returns the most recent runtime error raised by the snippet.
func (p *Predicate) Err() error {
	return p.err
}

func (p *Predicate) Close() {
	p.L.Close()
}
