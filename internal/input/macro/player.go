package macro

import (
	"fmt"

	"github.com/dshills/vimbridge/internal/dispatcher"
	"github.com/dshills/vimbridge/internal/input/key"
)

// Transaction is the undo scope opened for a macro run.
type Transaction interface {
	Complete()
	Cancel()
}

// UndoManager opens undo transactions. A nil manager disables undo
// grouping without affecting replay.
type UndoManager interface {
	Begin(name string) Transaction
}

// Player replays recorded macros through the dispatch entry point used
// for live input.
type Player struct {
	recorder *Recorder
	dispatch dispatcher.Dispatcher
	undo     UndoManager

	// depth counts nested runs. Only the outermost run owns the undo
	// transaction; inner runs share it.
	depth int
}

// NewPlayer creates a player over the given recorder and dispatcher.
func NewPlayer(recorder *Recorder, dispatch dispatcher.Dispatcher, undo UndoManager) *Player {
	return &Player{
		recorder: recorder,
		dispatch: dispatch,
		undo:     undo,
	}
}

// IsReplaying returns true while a replay (at any depth) is in progress.
func (p *Player) IsReplaying() bool {
	return p.depth > 0
}

// ReplayDepth returns the current replay nesting depth.
func (p *Player) ReplayDepth() int {
	return p.depth
}

// Run replays the named register count times sequentially (minimum 1)
// inside one undo transaction covering the whole run.
//
// Each stored event re-enters the dispatcher exactly as live input
// would. The first dispatch error terminates the remainder of the run,
// remaining repeats included; edits already committed are retained and
// the transaction still closes, so the error-terminated prefix undoes as
// one unit. A macro that runs another macro (or itself) nests through
// this same path and shares the outer transaction.
func (p *Player) Run(register rune, count int) error {
	if !IsValidName(register) {
		return fmt.Errorf("%w: %c", ErrInvalidRegister, register)
	}

	events := p.recorder.Get(register)
	if len(events) == 0 {
		return fmt.Errorf("%w: %c", ErrEmptyRegister, NormalizeName(register))
	}

	if count < 1 {
		count = 1
	}

	p.recorder.SetLastRun(NormalizeName(register))

	p.depth++
	var txn Transaction
	if p.depth == 1 && p.undo != nil {
		txn = p.undo.Begin(fmt.Sprintf("macro @%c", NormalizeName(register)))
	}
	defer func() {
		if txn != nil {
			txn.Complete()
		}
		p.depth--
	}()

	for i := 0; i < count; i++ {
		for _, ev := range events {
			if err := p.step(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Player) step(ev key.Event) error {
	if _, err := p.dispatch.Dispatch(ev); err != nil {
		return fmt.Errorf("macro: replay of %s: %w", ev.VimString(), err)
	}
	return nil
}

// RunLast replays the most recently run register once.
func (p *Player) RunLast() error {
	register := p.recorder.LastRun()
	if register == 0 {
		return ErrNoLastMacro
	}
	return p.Run(register, 1)
}
