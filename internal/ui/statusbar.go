package ui

import (
	"fmt"

	"github.com/pstuifzand/tui-mindmap/internal/editor"
)

// StatusBar renders the bottom status line: mode indicator, transient
// message or confirmation prompt, and the unsaved-changes marker
type StatusBar struct {
	Message  string
	Prompt   string
	Modified bool
}

// NewStatusBar creates a new StatusBar
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// Render draws the status bar on the given row
func (b *StatusBar) Render(screen *Screen, mode editor.Mode, y int) {
	width := screen.GetWidth()
	for x := 0; x < width; x++ {
		screen.SetCell(x, y, ' ', screen.BackgroundStyle())
	}

	modeLabel := fmt.Sprintf(" %s ", mode)
	screen.DrawString(0, y, modeLabel, screen.StatusModeStyle())
	x := StringWidth(modeLabel) + 1

	if b.Prompt != "" {
		screen.DrawStringLimited(x, y, b.Prompt, width-x-2, screen.StatusPromptStyle())
	} else if b.Message != "" {
		screen.DrawStringLimited(x, y, b.Message, width-x-2, screen.StatusMessageStyle())
	}

	if b.Modified {
		marker := "[+]"
		screen.DrawString(width-len(marker)-1, y, marker, screen.StatusModifiedStyle())
	}
}
