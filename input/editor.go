package input

import (
	"unicode"

	"github.com/lixenwraith/neon-snake/parameter"
)

// NameEditor is the single-line buffer for the leaderboard name
type NameEditor struct {
	buf []rune
}

// NewNameEditor creates an empty editor
func NewNameEditor() *NameEditor {
	return &NameEditor{buf: make([]rune, 0, parameter.NameMaxLength)}
}

// Insert appends a printable rune; input past NameMaxLength is ignored
func (e *NameEditor) Insert(r rune) bool {
	if !unicode.IsPrint(r) || len(e.buf) >= parameter.NameMaxLength {
		return false
	}
	e.buf = append(e.buf, r)
	return true
}

// Backspace drops the last rune
func (e *NameEditor) Backspace() {
	if len(e.buf) > 0 {
		e.buf = e.buf[:len(e.buf)-1]
	}
}

// Text returns the current draft
func (e *NameEditor) Text() string {
	return string(e.buf)
}

// Len returns the draft length in runes
func (e *NameEditor) Len() int {
	return len(e.buf)
}

// Take returns the draft and clears the buffer
func (e *NameEditor) Take() string {
	s := string(e.buf)
	e.buf = e.buf[:0]
	return s
}
