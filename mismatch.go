package ruler

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Mismatch is the immutable result of a failed match attempt. Position is
// a byte offset into the original input, not into any sub-rule's local
// remainder; sequences rebase sub-rule positions as failures propagate
// up, so the value the caller receives is always absolute.
type Mismatch struct {
	position    int
	description string
}

func newMismatch(position int, description string) *Mismatch {
	return &Mismatch{position: position, description: description}
}

// Position returns the byte offset at which matching could proceed no
// further.
func (m *Mismatch) Position() int {
	return m.position
}

// Description returns the human-readable failure reason. When an
// alternation fails on several branches at the same position the
// description holds their distinct reasons joined with newlines.
func (m *Mismatch) Description() string {
	return m.description
}

// Render produces a caret diagnostic for the input the mismatch was
// reported against:
//
//	Mismatch at 21:
//	  Peter likes to drink coffee.
//	                       ^
//	"coffee." does not match "juice"
//
// The reported number is the byte offset; the caret indent counts
// runes so the caret lines up with the failing character even when the
// preceding text holds multi-byte runes.
func (m *Mismatch) Render(original string) string {
	indent := m.position
	if indent <= len(original) {
		indent = utf8.RuneCountInString(original[:m.position])
	}
	return fmt.Sprintf("Mismatch at %d:\n  %s\n  %s^\n%s",
		m.position, original, strings.Repeat(" ", indent), m.description)
}
