// Package tcellhost adapts tcell terminal key events into host commands,
// playing the role a native frontend would in an embedded build.
package tcellhost

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vimbridge/internal/host"
	"github.com/dshills/vimbridge/internal/input/key"
)

// Translate converts a terminal key event into the host command the
// frontend would issue for it. It returns false for keys that have no
// host command, such as function keys and control chords; callers handle
// those directly.
func Translate(ev *tcell.EventKey) (host.Command, bool) {
	mods := convertMod(ev.Modifiers())

	if ev.Key() == tcell.KeyRune {
		return typeChar(ev.Rune(), mods), true
	}

	shift := mods.HasShift()
	id, ok := commandFor(ev.Key(), shift)
	if !ok {
		return host.Command{}, false
	}

	// Shifted navigation becomes the extend-selection variant; the
	// shift is consumed by the variant itself.
	if shift {
		mods = mods.Without(key.ModShift)
	}

	return host.Command{Group: host.EditorGroup, ID: id, Modifiers: mods}, true
}

// commandFor maps a special key, with or without shift, to an editor
// command identifier.
func commandFor(k tcell.Key, shift bool) (uint32, bool) {
	switch k {
	case tcell.KeyEscape:
		return host.CmdCancel, true
	case tcell.KeyEnter:
		return host.CmdReturn, true
	case tcell.KeyTab:
		if shift {
			return host.CmdBackTab, true
		}
		return host.CmdTab, true
	case tcell.KeyBacktab:
		return host.CmdBackTab, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return host.CmdBackspace, true
	case tcell.KeyDelete:
		return host.CmdDelete, true
	case tcell.KeyInsert:
		return host.CmdToggleOvertype, true
	case tcell.KeyLeft:
		return extVariant(host.CmdLeft, host.CmdLeftExt, shift), true
	case tcell.KeyRight:
		return extVariant(host.CmdRight, host.CmdRightExt, shift), true
	case tcell.KeyUp:
		return extVariant(host.CmdUp, host.CmdUpExt, shift), true
	case tcell.KeyDown:
		return extVariant(host.CmdDown, host.CmdDownExt, shift), true
	case tcell.KeyHome:
		return extVariant(host.CmdLineStart, host.CmdLineStartExt, shift), true
	case tcell.KeyEnd:
		return extVariant(host.CmdLineEnd, host.CmdLineEndExt, shift), true
	case tcell.KeyPgUp:
		return extVariant(host.CmdPageUp, host.CmdPageUpExt, shift), true
	case tcell.KeyPgDn:
		return extVariant(host.CmdPageDown, host.CmdPageDownExt, shift), true
	default:
		return 0, false
	}
}

func extVariant(plain, ext uint32, shift bool) uint32 {
	if shift {
		return ext
	}
	return plain
}

// typeChar builds a CmdTypeChar command carrying r as payload.
func typeChar(r rune, mods key.Modifier) host.Command {
	buf := make([]byte, utf8.RuneLen(r))
	utf8.EncodeRune(buf, r)
	return host.Command{
		Group:     host.EditorGroup,
		ID:        host.CmdTypeChar,
		Payload:   buf,
		Modifiers: mods,
	}
}

// convertMod converts tcell modifier flags to key modifiers.
func convertMod(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	return mods
}
