package ui

import "fmt"

// KeyBindingInfo represents a keybinding for display
type KeyBindingInfo interface {
	GetKey() rune
	GetDescription() string
}

// PendingKeyBindingInfo represents a two-key sequence binding for display
type PendingKeyBindingInfo interface {
	GetKey() rune
	GetDescription() string
	GetSequences() map[rune]string // Returns map of second key to description
}

// HelpScreen manages the help display
type HelpScreen struct {
	visible     bool
	keybindings []KeyBindingInfo
}

// NewHelpScreen creates a new HelpScreen
func NewHelpScreen() *HelpScreen {
	return &HelpScreen{
		visible:     false,
		keybindings: []KeyBindingInfo{},
	}
}

// SetKeybindings sets the keybindings to display
func (h *HelpScreen) SetKeybindings(keybindings []KeyBindingInfo) {
	h.keybindings = keybindings
}

// Toggle toggles the help screen visibility
func (h *HelpScreen) Toggle() {
	h.visible = !h.visible
}

// IsVisible returns whether the help screen is visible
func (h *HelpScreen) IsVisible() bool {
	return h.visible
}

// GetKeybindings returns a formatted list of keybindings
func (h *HelpScreen) GetKeybindings() []string {
	var result []string

	result = append(result, "Keybindings:")
	result = append(result, "")

	for _, kb := range h.keybindings {
		if pkb, ok := kb.(PendingKeyBindingInfo); ok {
			line := fmt.Sprintf("  %c  - %s", pkb.GetKey(), pkb.GetDescription())
			result = append(result, line)

			for seqKey, seqDesc := range pkb.GetSequences() {
				line := fmt.Sprintf("    %c%c  - %s", pkb.GetKey(), seqKey, seqDesc)
				result = append(result, line)
			}
		} else {
			line := fmt.Sprintf("  %c  - %s", kb.GetKey(), kb.GetDescription())
			result = append(result, line)
		}
	}

	result = append(result, "")
	result = append(result, "Special Keys:")
	result = append(result, "  Tab         - New child, start typing")
	result = append(result, "  Enter       - New sibling, start typing")
	result = append(result, "  Escape      - Commit edit / cancel prompt")
	result = append(result, "  Ctrl+R      - Redo")
	result = append(result, "  Ctrl+S      - Save workspace")
	result = append(result, "  Arrow Keys  - Navigate (alternative to hjkl)")

	return result
}

// Render renders the help screen
func (h *HelpScreen) Render(screen *Screen) {
	if !h.visible {
		return
	}

	contentStyle := screen.HelpStyle()
	borderStyle := screen.HelpBorderStyle()
	titleStyle := screen.HelpTitleStyle()

	// Clear the whole screen behind the help box
	for y := 0; y < screen.GetHeight(); y++ {
		for x := 0; x < screen.GetWidth(); x++ {
			screen.SetCell(x, y, ' ', contentStyle)
		}
	}

	startY := 2
	startX := 5
	boxWidth := screen.GetWidth() - 10
	height := screen.GetHeight() - 4

	keybindings := h.GetKeybindings()

	// Top border
	screen.SetCell(startX, startY, '┌', borderStyle)
	for i := 1; i < boxWidth-1; i++ {
		screen.SetCell(startX+i, startY, '─', borderStyle)
	}
	screen.SetCell(startX+boxWidth-1, startY, '┐', borderStyle)

	// Title with side borders
	title := " Keybindings (? to close) "
	screen.SetCell(startX, startY+1, '│', borderStyle)
	screen.DrawString(startX+2, startY+1, title, titleStyle)
	screen.SetCell(startX+boxWidth-1, startY+1, '│', borderStyle)

	// Middle border
	screen.SetCell(startX, startY+2, '├', borderStyle)
	for i := 1; i < boxWidth-1; i++ {
		screen.SetCell(startX+i, startY+2, '─', borderStyle)
	}
	screen.SetCell(startX+boxWidth-1, startY+2, '┤', borderStyle)

	// Keybinding rows with side borders
	y := startY + 3
	for _, binding := range keybindings {
		if y >= startY+height-1 {
			break
		}
		screen.SetCell(startX, y, '│', borderStyle)
		screen.DrawStringLimited(startX+2, y, binding, boxWidth-4, contentStyle)
		screen.SetCell(startX+boxWidth-1, y, '│', borderStyle)
		y++
	}

	// Bottom border
	screen.SetCell(startX, y, '└', borderStyle)
	for i := 1; i < boxWidth-1; i++ {
		screen.SetCell(startX+i, y, '─', borderStyle)
	}
	screen.SetCell(startX+boxWidth-1, y, '┘', borderStyle)
}
