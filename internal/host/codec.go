package host

import (
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dshills/vimbridge/internal/input/key"
)

// commandKey identifies a command within its group for table lookup.
type commandKey struct {
	group uuid.UUID
	id    uint32
}

// keyDesc describes the key event a command decodes to.
type keyDesc struct {
	key   key.Key
	shift bool // host applies Shift for the extend-selection family
	kind  Kind
}

// decodeTable maps (group, id) to a key description. Incoming translation
// is many-to-one: several command ids may decode to the same key.
//
// Quirk preserved from the host: the End and Home physical keys are
// reported with the line-end/line-start command ids, not CmdDocumentEnd
// and CmdDocumentStart, so only the line commands map to the keys.
var decodeTable = map[commandKey]keyDesc{
	{EditorGroup, CmdReturn}:    {key: key.KeyEnter, kind: UserInput},
	{EditorGroup, CmdTab}:       {key: key.KeyTab, kind: UserInput},
	{EditorGroup, CmdBackTab}:   {key: key.KeyTab, shift: true, kind: UserInput},
	{EditorGroup, CmdBackspace}: {key: key.KeyBackspace, kind: UserInput},
	{EditorGroup, CmdDelete}:    {key: key.KeyDelete, kind: UserInput},

	{EditorGroup, CmdLeft}:           {key: key.KeyLeft, kind: UserInput},
	{EditorGroup, CmdLeftExt}:        {key: key.KeyLeft, shift: true, kind: HostCommand},
	{EditorGroup, CmdLeftExtColumn}:  {key: key.KeyLeft, shift: true, kind: HostCommand},
	{EditorGroup, CmdRight}:          {key: key.KeyRight, kind: UserInput},
	{EditorGroup, CmdRightExt}:       {key: key.KeyRight, shift: true, kind: HostCommand},
	{EditorGroup, CmdRightExtColumn}: {key: key.KeyRight, shift: true, kind: HostCommand},
	{EditorGroup, CmdUp}:             {key: key.KeyUp, kind: UserInput},
	{EditorGroup, CmdUpExt}:          {key: key.KeyUp, shift: true, kind: HostCommand},
	{EditorGroup, CmdDown}:           {key: key.KeyDown, kind: UserInput},
	{EditorGroup, CmdDownExt}:        {key: key.KeyDown, shift: true, kind: HostCommand},

	{EditorGroup, CmdPageUp}:      {key: key.KeyPageUp, kind: UserInput},
	{EditorGroup, CmdPageUpExt}:   {key: key.KeyPageUp, shift: true, kind: HostCommand},
	{EditorGroup, CmdPageDown}:    {key: key.KeyPageDown, kind: UserInput},
	{EditorGroup, CmdPageDownExt}: {key: key.KeyPageDown, shift: true, kind: HostCommand},

	{EditorGroup, CmdLineStart}:          {key: key.KeyHome, kind: UserInput},
	{EditorGroup, CmdLineStartExt}:       {key: key.KeyHome, shift: true, kind: HostCommand},
	{EditorGroup, CmdLineStartExtColumn}: {key: key.KeyHome, shift: true, kind: HostCommand},
	{EditorGroup, CmdLineEnd}:            {key: key.KeyEnd, kind: UserInput},
	{EditorGroup, CmdLineEndExt}:         {key: key.KeyEnd, shift: true, kind: HostCommand},
	{EditorGroup, CmdLineEndExtColumn}:   {key: key.KeyEnd, shift: true, kind: HostCommand},

	// Both escape ids decode to the single abstract Escape key.
	{EditorGroup, CmdCancel}:   {key: key.KeyEscape, kind: UserInput},
	{StandardGroup, StdEscape}: {key: key.KeyEscape, kind: UserInput},

	{StandardGroup, StdDelete}:    {key: key.KeyDelete, kind: UserInput},
	{StandardGroup, StdBackspace}: {key: key.KeyBackspace, kind: UserInput},

	{EditorGroup, CmdToggleOvertype}: {key: key.KeyInsert, kind: UserInput},
}

// encodeTable maps special keys to their primary editor-group command id.
// Outgoing translation is one-to-one.
var encodeTable = map[key.Key]uint32{
	key.KeyEnter:     CmdReturn,
	key.KeyTab:       CmdTab,
	key.KeyBackspace: CmdBackspace,
	key.KeyDelete:    CmdDelete,
	key.KeyLeft:      CmdLeft,
	key.KeyRight:     CmdRight,
	key.KeyUp:        CmdUp,
	key.KeyDown:      CmdDown,
	key.KeyPageUp:    CmdPageUp,
	key.KeyPageDown:  CmdPageDown,
	key.KeyHome:      CmdLineStart,
	key.KeyEnd:       CmdLineEnd,
	key.KeyEscape:    CmdCancel,
	key.KeyInsert:    CmdToggleOvertype,
}

// Decode translates a host command into an EditCommand.
//
// CmdTypeChar requires a single-character UTF-8 payload. Commands absent
// from the table fail with ErrNoMapping so the caller can hand the
// command back to the host.
func Decode(cmd Command) (EditCommand, error) {
	if cmd.Group == EditorGroup && cmd.ID == CmdTypeChar {
		r, err := payloadRune(cmd)
		if err != nil {
			return EditCommand{}, err
		}
		return EditCommand{
			Event: key.NewRuneEvent(r, cmd.Modifiers),
			Kind:  UserInput,
		}, nil
	}

	desc, ok := decodeTable[commandKey{cmd.Group, cmd.ID}]
	if !ok {
		return EditCommand{}, decodeErr(cmd, ErrNoMapping)
	}

	mods := cmd.Modifiers
	if desc.shift {
		mods = mods.With(key.ModShift)
	}
	return EditCommand{
		Event: key.NewSpecialEvent(desc.key, mods),
		Kind:  desc.kind,
	}, nil
}

// payloadRune extracts the single typed character from a CmdTypeChar
// payload.
func payloadRune(cmd Command) (rune, error) {
	if len(cmd.Payload) == 0 {
		return 0, decodeErr(cmd, ErrMissingPayload)
	}
	r, size := utf8.DecodeRune(cmd.Payload)
	if r == utf8.RuneError || size != len(cmd.Payload) {
		return 0, decodeErr(cmd, ErrBadPayload)
	}
	return r, nil
}

// Encode translates a key event into the host command that produces it.
//
// forTextInput selects the insertion-context encoding: character events
// become CmdTypeChar with the character as payload, and keypad keys
// collapse to their plain equivalents (digits, operators, Enter). The
// collapse loses the keypad identity and is the documented exception to
// the decode/encode round-trip. When forTextInput is false, character
// events have no single native representation and fail with ErrNoMapping.
func Encode(ev key.Event, forTextInput bool) (Command, error) {
	if ev.Key == key.KeyRune {
		if !forTextInput || !unicode.IsPrint(ev.Rune) {
			return Command{}, encodeErr(ev.String(), ErrNoMapping)
		}
		return typeChar(ev.Rune, ev.Modifiers), nil
	}

	if ev.Key.IsKeypadKey() {
		return encodeKeypad(ev, forTextInput)
	}

	id, ok := encodeTable[ev.Key]
	if !ok {
		return Command{}, encodeErr(ev.String(), ErrNoMapping)
	}

	mods := ev.Modifiers
	if ev.Key == key.KeyTab && mods.HasShift() {
		// Backtab is its own command; Shift is implied by the id.
		id = CmdBackTab
		mods = mods.Without(key.ModShift)
	}

	return Command{Group: EditorGroup, ID: id, Modifiers: mods}, nil
}

// encodeKeypad collapses keypad keys to their plain equivalents.
func encodeKeypad(ev key.Event, forTextInput bool) (Command, error) {
	if ev.Key == key.KeyKPEnter {
		return Command{Group: EditorGroup, ID: CmdReturn, Modifiers: ev.Modifiers}, nil
	}

	if !forTextInput {
		return Command{}, encodeErr(ev.String(), ErrNoMapping)
	}

	if r, ok := ev.Key.DigitEquivalent(); ok {
		return typeChar(r, ev.Modifiers), nil
	}

	switch ev.Key {
	case key.KeyKPAdd:
		return typeChar('+', ev.Modifiers), nil
	case key.KeyKPSubtract:
		return typeChar('-', ev.Modifiers), nil
	case key.KeyKPMultiply:
		return typeChar('*', ev.Modifiers), nil
	case key.KeyKPDivide:
		return typeChar('/', ev.Modifiers), nil
	case key.KeyKPDecimal:
		return typeChar('.', ev.Modifiers), nil
	}

	return Command{}, encodeErr(ev.String(), ErrNoMapping)
}

func typeChar(r rune, mods key.Modifier) Command {
	buf := make([]byte, utf8.RuneLen(r))
	utf8.EncodeRune(buf, r)
	return Command{
		Group:     EditorGroup,
		ID:        CmdTypeChar,
		Payload:   buf,
		Modifiers: mods,
	}
}
