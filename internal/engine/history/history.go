package history

import "errors"

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("history: nothing to undo")
	ErrNothingToRedo = errors.New("history: nothing to redo")
)

// Operation describes one committed edit: the text removed at Start, the
// text inserted in its place, and the caret offsets around the edit.
type Operation struct {
	Start       int
	Deleted     string
	Inserted    string
	CaretBefore int
	CaretAfter  int
}

// Applier applies operations to the underlying buffer during undo and
// redo. The history never touches the buffer directly.
type Applier interface {
	// Replace substitutes length characters at start with text.
	Replace(start, length int, text string) error

	// SetCaret moves the caret to the given offset.
	SetCaret(offset int)
}

// entry is one undo unit: a single operation or a transaction group.
type entry struct {
	name string
	ops  []Operation
}

// History manages the undo and redo stacks for one editing session.
type History struct {
	undoStack []entry
	redoStack []entry

	// Transaction state. depth counts nested Begin calls; operations
	// recorded while depth > 0 accumulate into groupOps.
	depth     int
	groupName string
	groupOps  []Operation

	maxEntries int
}

// New creates a history manager.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	return &History{maxEntries: maxEntries}
}

// Record adds an operation that has already been applied to the buffer.
func (h *History) Record(op Operation) {
	if h.depth > 0 {
		h.groupOps = append(h.groupOps, op)
		return
	}
	h.push(entry{ops: []Operation{op}})
}

func (h *History) push(e entry) {
	h.undoStack = append(h.undoStack, e)
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// CanUndo reports whether an undo entry is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo reports whether a redo entry is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// InTransaction reports whether a transaction is currently open.
func (h *History) InTransaction() bool {
	return h.depth > 0
}

// Undo reverts the most recent entry, applying its operations in reverse
// order and restoring the caret to its position before the entry.
func (h *History) Undo(a Applier) error {
	if len(h.undoStack) == 0 {
		return ErrNothingToUndo
	}

	e := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]

	for i := len(e.ops) - 1; i >= 0; i-- {
		op := e.ops[i]
		if err := a.Replace(op.Start, len(op.Inserted), op.Deleted); err != nil {
			return err
		}
	}
	if len(e.ops) > 0 {
		a.SetCaret(e.ops[0].CaretBefore)
	}

	h.redoStack = append(h.redoStack, e)
	return nil
}

// Redo reapplies the most recently undone entry.
func (h *History) Redo(a Applier) error {
	if len(h.redoStack) == 0 {
		return ErrNothingToRedo
	}

	e := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]

	for _, op := range e.ops {
		if err := a.Replace(op.Start, len(op.Deleted), op.Inserted); err != nil {
			return err
		}
	}
	if len(e.ops) > 0 {
		a.SetCaret(e.ops[len(e.ops)-1].CaretAfter)
	}

	h.undoStack = append(h.undoStack, e)
	return nil
}

// Depth returns the number of entries on the undo stack.
func (h *History) Depth() int {
	return len(h.undoStack)
}
