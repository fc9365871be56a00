package history

// Transaction groups the operations recorded while it is open into one
// undo entry. Usage:
//
//	txn := h.Begin("run macro")
//	defer txn.Complete()
//	// ... edits ...
//
// Nested Begin calls join the outer transaction; only the outermost
// Complete flushes the group. Complete and Cancel are safe to call more
// than once; only the first call has effect.
type Transaction struct {
	history *History
	active  bool
}

// Begin opens a transaction. If one is already open the returned
// transaction joins it.
func (h *History) Begin(name string) *Transaction {
	if h.depth == 0 {
		h.groupName = name
		h.groupOps = nil
	}
	h.depth++
	return &Transaction{history: h, active: true}
}

// Complete closes the transaction. When the outermost transaction closes,
// the accumulated operations become a single undo entry; an empty group
// is dropped.
func (t *Transaction) Complete() {
	if !t.active {
		return
	}
	t.active = false

	h := t.history
	h.depth--
	if h.depth > 0 {
		return
	}

	if len(h.groupOps) > 0 {
		h.push(entry{name: h.groupName, ops: h.groupOps})
	}
	h.groupOps = nil
}

// Cancel closes the transaction and discards the group from the undo
// stack. Operations already applied still affect the buffer; they are
// simply no longer undoable as a unit.
func (t *Transaction) Cancel() {
	if !t.active {
		return
	}
	t.active = false

	h := t.history
	h.depth--
	if h.depth > 0 {
		return
	}
	h.groupOps = nil
}
