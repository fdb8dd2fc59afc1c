package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/neon-snake/engine"
)

// Handler turns terminal events into engine intents for the current session phase
type Handler struct {
	keys   *KeyTable
	editor *NameEditor
}

// NewHandler creates a handler with the default key table
func NewHandler() *Handler {
	return &Handler{
		keys:   DefaultKeyTable(),
		editor: NewNameEditor(),
	}
}

// Draft returns the name typed so far
func (h *Handler) Draft() string {
	return h.editor.Text()
}

// Translate maps one event; ok is false when the event carries no intent
func (h *Handler) Translate(ev tcell.Event, phase engine.SessionPhase) (engine.Intent, bool) {
	key, isKey := ev.(*tcell.EventKey)
	if !isKey {
		return engine.Intent{}, false
	}

	switch phase {
	case engine.PhaseAwaitingName:
		return h.nameKey(key)
	case engine.PhaseRecorded:
		return h.lookup(key, h.keys.RecordedRunes, true)
	}
	return h.lookup(key, h.keys.PlayRunes, false)
}

func (h *Handler) lookup(key *tcell.EventKey, runes map[rune]engine.Intent, enterConfirms bool) (engine.Intent, bool) {
	if key.Key() == tcell.KeyRune {
		in, ok := runes[key.Rune()]
		return in, ok
	}
	if enterConfirms && key.Key() == tcell.KeyEnter {
		return engine.Confirm(""), true
	}
	in, ok := h.keys.SpecialKeys[key.Key()]
	if ok && in.Kind == engine.IntentMove && enterConfirms {
		return engine.Intent{}, false
	}
	return in, ok
}

// nameKey edits the draft; only Enter produces an intent, besides Ctrl+C and Esc which quit with the draft
func (h *Handler) nameKey(key *tcell.EventKey) (engine.Intent, bool) {
	switch key.Key() {
	case tcell.KeyRune:
		h.editor.Insert(key.Rune())
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		h.editor.Backspace()
	case tcell.KeyEnter:
		return engine.Confirm(h.editor.Take()), true
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return engine.QuitAs(h.editor.Take()), true
	}
	return engine.Intent{}, false
}
