package ui

import (
	"github.com/gdamore/tcell/v2"
)

// Editor manages inline text editing of the node under the cursor
type Editor struct {
	text      []rune
	cursorPos int
	active    bool
}

// NewEditor creates a new Editor seeded with the node's current text
func NewEditor(text string) *Editor {
	runes := []rune(text)
	return &Editor{
		text:      runes,
		cursorPos: len(runes),
		active:    true,
	}
}

// IsActive returns whether the editor is active
func (e *Editor) IsActive() bool {
	return e.active
}

// Stop deactivates the editor and returns the final text
func (e *Editor) Stop() string {
	e.active = false
	return string(e.text)
}

// HandleKey handles a key press during editing. Returns false when the key
// signals the end of editing (Escape or Enter); the caller decides whether
// that is a commit.
func (e *Editor) HandleKey(ev *tcell.EventKey) bool {
	if !e.active {
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyEnter:
		return false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if e.cursorPos > 0 {
			e.text = append(e.text[:e.cursorPos-1], e.text[e.cursorPos:]...)
			e.cursorPos--
		}
	case tcell.KeyDelete:
		if e.cursorPos < len(e.text) {
			e.text = append(e.text[:e.cursorPos], e.text[e.cursorPos+1:]...)
		}
	case tcell.KeyLeft:
		if e.cursorPos > 0 {
			e.cursorPos--
		}
	case tcell.KeyRight:
		if e.cursorPos < len(e.text) {
			e.cursorPos++
		}
	case tcell.KeyHome, tcell.KeyCtrlA:
		e.cursorPos = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		e.cursorPos = len(e.text)
	case tcell.KeyCtrlU:
		// Delete from start to cursor
		e.text = append([]rune{}, e.text[e.cursorPos:]...)
		e.cursorPos = 0
	case tcell.KeyCtrlK:
		// Delete from cursor to end
		e.text = e.text[:e.cursorPos]
	default:
		ch := ev.Rune()
		if ch >= ' ' {
			e.text = append(e.text[:e.cursorPos], append([]rune{ch}, e.text[e.cursorPos:]...)...)
			e.cursorPos++
		}
	}

	return true
}

// Render renders the editor text with its cursor at the given position
func (e *Editor) Render(screen *Screen, x, y int, maxWidth int) {
	if maxWidth <= 0 {
		return
	}
	style := screen.EditorStyle()
	cursorStyle := screen.EditorCursorStyle()

	// Slide the visible window so the cursor stays in view
	start := 0
	if e.cursorPos >= maxWidth {
		start = e.cursorPos - maxWidth + 1
	}
	visible := e.text[start:]

	col := x
	for i, r := range visible {
		if col >= x+maxWidth {
			break
		}
		charStyle := style
		if start+i == e.cursorPos {
			charStyle = cursorStyle
		}
		screen.SetCell(col, y, r, charStyle)
		col += RuneWidth(r)
	}

	// Cursor sits past the last character while appending
	if e.cursorPos >= len(e.text) && col < x+maxWidth {
		screen.SetCell(col, y, ' ', cursorStyle)
		col++
	}

	for col < x+maxWidth {
		screen.SetCell(col, y, ' ', style)
		col++
	}
}

// GetText returns the current text
func (e *Editor) GetText() string {
	return string(e.text)
}

// GetCursorPos returns the cursor position in runes
func (e *Editor) GetCursorPos() int {
	return e.cursorPos
}
