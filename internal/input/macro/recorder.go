package macro

import (
	"fmt"
	"sync"

	"github.com/dshills/vimbridge/internal/input/key"
)

// Recorder records key sequences and owns the session's register map.
// One Recorder exists per editing session; its registers live as long as
// the session does.
type Recorder struct {
	mu        sync.Mutex
	recording bool
	register  rune // name as requested, possibly uppercase
	buffer    *key.Sequence
	registers map[rune]*key.Sequence
	lastRun   rune
}

// NewRecorder creates a recorder with empty registers.
func NewRecorder() *Recorder {
	return &Recorder{
		registers: make(map[rune]*key.Sequence),
	}
}

// StartRecording begins recording to the named register. An uppercase
// name records normally but appends to the lowercase register when the
// recording stops.
func (r *Recorder) StartRecording(register rune) error {
	if !IsValidName(register) {
		return fmt.Errorf("%w: %c", ErrInvalidRegister, register)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		return fmt.Errorf("%w (register %c)", ErrAlreadyRecording, r.register)
	}

	r.recording = true
	r.register = register
	r.buffer = key.NewSequence()
	return nil
}

// Record appends a key event to the recording in progress. The event is
// the raw pre-interpretation key, not its effect. Does nothing when not
// recording.
func (r *Recorder) Record(event key.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		r.buffer.Add(event)
	}
}

// StopRecording ends the recording and flushes the buffer into the
// register store: overwrite for lowercase names, append for uppercase.
// Stopping an empty lowercase recording clears the register.
func (r *Recorder) StopRecording() ([]key.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording {
		return nil, ErrNotRecording
	}

	r.recording = false
	recorded := r.buffer
	r.buffer = nil

	target := NormalizeName(r.register)
	if IsAppendName(r.register) {
		r.appendLocked(target, recorded)
	} else {
		r.setLocked(target, recorded)
	}

	return recorded.Events, nil
}

// IsRecording returns true while a recording is active.
func (r *Recorder) IsRecording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// RecordingRegister returns the register being recorded to, or 0.
func (r *Recorder) RecordingRegister() rune {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.recording {
		return r.register
	}
	return 0
}

// Get returns a copy of the sequence stored in a register. Uppercase
// names read their lowercase counterpart. The result is empty for
// unknown or empty registers.
func (r *Recorder) Get(register rune) []key.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	seq, ok := r.registers[NormalizeName(register)]
	if !ok || seq.IsEmpty() {
		return nil
	}
	return seq.Clone().Events
}

// Set stores a sequence, replacing any existing content. Uppercase names
// append instead, matching the register-update rule.
func (r *Recorder) Set(register rune, events []key.Event) error {
	if !IsValidName(register) {
		return fmt.Errorf("%w: %c", ErrInvalidRegister, register)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	seq := key.NewSequenceFrom(events...)
	target := NormalizeName(register)
	if IsAppendName(register) {
		r.appendLocked(target, seq)
	} else {
		r.setLocked(target, seq)
	}
	return nil
}

func (r *Recorder) setLocked(target rune, seq *key.Sequence) {
	if seq.IsEmpty() {
		delete(r.registers, target)
		return
	}
	r.registers[target] = seq.Clone()
}

func (r *Recorder) appendLocked(target rune, seq *key.Sequence) {
	if seq.IsEmpty() {
		return
	}
	stored, ok := r.registers[target]
	if !ok {
		stored = key.NewSequence()
		r.registers[target] = stored
	}
	for _, ev := range seq.Events {
		stored.Add(ev)
	}
}

// Clear removes the named register's contents.
func (r *Recorder) Clear(register rune) error {
	if !IsValidName(register) {
		return fmt.Errorf("%w: %c", ErrInvalidRegister, register)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.registers, NormalizeName(register))
	return nil
}

// HasMacro returns true if the register holds a recorded sequence.
func (r *Recorder) HasMacro(register rune) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	seq, ok := r.registers[NormalizeName(register)]
	return ok && !seq.IsEmpty()
}

// Registers returns the names of all non-empty registers.
func (r *Recorder) Registers() []rune {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]rune, 0, len(r.registers))
	for name, seq := range r.registers {
		if !seq.IsEmpty() {
			names = append(names, name)
		}
	}
	return names
}

// SetLastRun records the register most recently run.
func (r *Recorder) SetLastRun(register rune) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastRun = register
}

// LastRun returns the register most recently run, or 0.
func (r *Recorder) LastRun() rune {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastRun
}
