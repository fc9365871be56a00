package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/vimbridge/internal/editor"
	"github.com/dshills/vimbridge/internal/input/key"
)

// InstallAPI exposes the editor to Lua under the global vimbridge table:
//
//	vimbridge.register.set(name, keys)  -- keys in vim map notation
//	vimbridge.register.get(name)        -- returns keys or nil
//	vimbridge.macro.run(name [, count])
//	vimbridge.text()
//	vimbridge.set_text(text)
func (s *State) InstallAPI(ed *editor.Editor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	L := s.L
	root := L.NewTable()

	register := L.NewTable()
	L.SetField(register, "set", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		keys := L.CheckString(2)

		reg, ok := singleRune(name)
		if !ok {
			L.ArgError(1, "register name must be a single character")
			return 0
		}
		seq, err := key.ParseSequence(keys)
		if err != nil {
			L.RaiseError("parsing keys: %v", err)
			return 0
		}
		if err := ed.Recorder().Set(reg, seq); err != nil {
			L.RaiseError("setting register: %v", err)
			return 0
		}
		return 0
	}))
	L.SetField(register, "get", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)

		reg, ok := singleRune(name)
		if !ok {
			L.ArgError(1, "register name must be a single character")
			return 0
		}
		seq := ed.Recorder().Get(reg)
		if len(seq) == 0 {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(lua.LString(key.FormatSequence(seq)))
		return 1
	}))
	L.SetField(root, "register", register)

	macroTbl := L.NewTable()
	L.SetField(macroTbl, "run", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		count := L.OptInt(2, 1)

		reg, ok := singleRune(name)
		if !ok {
			L.ArgError(1, "register name must be a single character")
			return 0
		}
		if err := ed.Player().Run(reg, count); err != nil {
			L.RaiseError("running macro: %v", err)
			return 0
		}
		return 0
	}))
	L.SetField(root, "macro", macroTbl)

	L.SetField(root, "text", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(ed.Text()))
		return 1
	}))
	L.SetField(root, "set_text", L.NewFunction(func(L *lua.LState) int {
		ed.SetText(L.CheckString(1))
		return 0
	}))

	L.SetGlobal("vimbridge", root)
}

func singleRune(s string) (rune, bool) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, false
	}
	return runes[0], true
}
