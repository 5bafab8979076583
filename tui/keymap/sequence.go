package keymap

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// SequenceState buffers keys for multi-key bindings such as gg or zR. The
// buffer is dropped when the next key arrives after the timeout.
type SequenceState struct {
	buffer     string
	lastUpdate time.Time
	timeout    time.Duration
}

// NewSequenceState creates a sequence buffer with a one second timeout.
func NewSequenceState() *SequenceState {
	return NewSequenceStateWithTimeout(time.Second)
}

func NewSequenceStateWithTimeout(timeout time.Duration) *SequenceState {
	return &SequenceState{timeout: timeout}
}

// Update appends msg to the buffer and returns it.
func (s *SequenceState) Update(msg tea.KeyMsg) string {
	return s.UpdateKey(msg.String())
}

// UpdateKey appends keyStr to the buffer and returns it.
func (s *SequenceState) UpdateKey(keyStr string) string {
	if s.timeout > 0 && time.Since(s.lastUpdate) > s.timeout {
		s.buffer = ""
	}
	s.lastUpdate = time.Now()
	s.buffer += keyStr
	return s.buffer
}

// Clear resets the buffer. Call it after a match or a miss.
func (s *SequenceState) Clear() {
	s.buffer = ""
}

func (s *SequenceState) Buffer() string {
	return s.buffer
}

// IsPending reports whether keys are waiting for completion.
func (s *SequenceState) IsPending() bool {
	return s.buffer != ""
}

// Matches reports whether one of the binding's keys equals buffer.
func Matches(buffer string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == buffer {
			return true
		}
	}
	return false
}

// MatchesAny returns the index of the first binding matching buffer.
func MatchesAny(buffer string, bindings ...key.Binding) (int, bool) {
	for i, binding := range bindings {
		if Matches(buffer, binding) {
			return i, true
		}
	}
	return -1, false
}

// IsPrefix reports whether buffer is a strict prefix of one of the
// binding's keys, e.g. "z" for "zR".
func IsPrefix(buffer string, binding key.Binding) bool {
	if buffer == "" {
		return false
	}
	for _, k := range binding.Keys() {
		if len(buffer) < len(k) && strings.HasPrefix(k, buffer) {
			return true
		}
	}
	return false
}

func IsPrefixOfAny(buffer string, bindings ...key.Binding) bool {
	for _, binding := range bindings {
		if IsPrefix(buffer, binding) {
			return true
		}
	}
	return false
}

// SequenceResult is the outcome of feeding one key into a SequenceState.
type SequenceResult int

const (
	// SequenceNone means the buffer matches nothing and leads nowhere.
	SequenceNone SequenceResult = iota
	// SequencePending means the buffer is a prefix of some binding.
	SequencePending
	// SequenceMatch means the buffer completes a binding.
	SequenceMatch
)

// Process feeds msg into the buffer and classifies the result against
// bindings. On SequenceMatch the index of the binding is returned.
//
//	result, idx := seq.Process(msg, keymap.SequenceBindings(m.keys)...)
//	switch result {
//	case keymap.SequenceMatch:
//	    seq.Clear()
//	case keymap.SequencePending:
//	    return m, nil
//	case keymap.SequenceNone:
//	    seq.Clear()
//	}
func (s *SequenceState) Process(msg tea.KeyMsg, bindings ...key.Binding) (SequenceResult, int) {
	return s.ProcessKey(msg.String(), bindings...)
}

// ProcessKey is Process for a key string.
func (s *SequenceState) ProcessKey(keyStr string, bindings ...key.Binding) (SequenceResult, int) {
	buffer := s.UpdateKey(keyStr)

	if idx, ok := MatchesAny(buffer, bindings...); ok {
		return SequenceMatch, idx
	}
	if IsPrefixOfAny(buffer, bindings...) {
		return SequencePending, -1
	}
	return SequenceNone, -1
}

// SequenceBindings returns the bindings of base that may span several keys,
// in a fixed order: Top, Toggle, OpenAll, CloseAll.
func SequenceBindings(base Base) []key.Binding {
	return []key.Binding{
		base.Top,      // gg
		base.Toggle,   // za
		base.OpenAll,  // zR
		base.CloseAll, // zM
	}
}
