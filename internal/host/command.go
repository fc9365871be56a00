package host

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/vimbridge/internal/input/key"
)

// Command groups. The host routes every command through one of these; the
// editor-level group carries per-keystroke editing commands, the standard
// group carries application-level ones.
var (
	// EditorGroup identifies the per-keystroke editing command set.
	EditorGroup = uuid.MustParse("8f3c1b57-2a6e-4d09-9c41-7b5a2e90d614")

	// StandardGroup identifies the application-level command set.
	StandardGroup = uuid.MustParse("d41f0a23-6c88-4b17-b5e2-0f9dca37a851")
)

// Editor group command identifiers.
const (
	CmdTypeChar uint32 = iota + 1
	CmdReturn
	CmdTab
	CmdBackTab
	CmdBackspace
	CmdDelete
	CmdLeft
	CmdLeftExt
	CmdLeftExtColumn
	CmdRight
	CmdRightExt
	CmdRightExtColumn
	CmdUp
	CmdUpExt
	CmdDown
	CmdDownExt
	CmdPageUp
	CmdPageUpExt
	CmdPageDown
	CmdPageDownExt
	CmdLineStart
	CmdLineStartExt
	CmdLineStartExtColumn
	CmdLineEnd
	CmdLineEndExt
	CmdLineEndExtColumn
	CmdDocumentStart
	CmdDocumentEnd
	CmdCancel
	CmdToggleOvertype
)

// Standard group command identifiers.
const (
	StdEscape uint32 = iota + 100
	StdDelete
	StdBackspace
)

// Command is the host-facing representation of a keystroke or editing
// command.
type Command struct {
	// Group identifies the command set this command belongs to.
	Group uuid.UUID

	// ID is the command identifier within the group.
	ID uint32

	// Payload carries command arguments; for CmdTypeChar it holds the
	// typed character encoded as UTF-8.
	Payload []byte

	// Modifiers are the modifier keys the host reported alongside the
	// command.
	Modifiers key.Modifier
}

// String returns a short description for logging.
func (c Command) String() string {
	group := "unknown"
	switch c.Group {
	case EditorGroup:
		group = "editor"
	case StandardGroup:
		group = "standard"
	}
	return fmt.Sprintf("%s:%d", group, c.ID)
}

// Kind classifies a decoded command.
type Kind int

const (
	// UserInput marks commands the editor core interprets itself.
	UserInput Kind = iota

	// HostCommand marks commands that belong to the native environment,
	// such as the extend-selection family. They carry a key event for
	// identification but must never be treated as editor input.
	HostCommand
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case UserInput:
		return "UserInput"
	case HostCommand:
		return "HostCommand"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// EditCommand is the decoded form of a host command: the abstract key
// event plus its classification.
type EditCommand struct {
	Event key.Event
	Kind  Kind
}

// IsUserInput returns true if the command should be interpreted by the
// editor core.
func (e EditCommand) IsUserInput() bool {
	return e.Kind == UserInput
}
