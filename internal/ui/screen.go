package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-mindmap/internal/config"
	"github.com/pstuifzand/tui-mindmap/internal/theme"
)

// Screen manages the tcell screen and rendering
type Screen struct {
	tcellScreen tcell.Screen
	width       int
	height      int
	Theme       *theme.Theme
}

// NewScreen creates a new Screen instance with the configured theme
func NewScreen() (*Screen, error) {
	// Load config to get the theme name
	cfg, err := config.Load()
	if err != nil {
		// If config fails to load, use Default as fallback
		return NewScreenWithTheme(theme.Default())
	}

	// Try to load from TOML files first, fall back to built-in themes
	t := theme.LoadThemeOrDefault(cfg.Theme)
	return NewScreenWithTheme(t)
}

// NewScreenWithTheme creates a new Screen instance with a specific theme
func NewScreenWithTheme(t *theme.Theme) (*Screen, error) {
	tcellScreen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	if err := tcellScreen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}

	width, height := tcellScreen.Size()
	return &Screen{
		tcellScreen: tcellScreen,
		width:       width,
		height:      height,
		Theme:       t,
	}, nil
}

// Close closes the screen
func (s *Screen) Close() error {
	s.tcellScreen.Fini()
	return nil
}

// Clear clears the entire screen
func (s *Screen) Clear() {
	s.tcellScreen.Clear()
}

// Fill paints the whole screen with the theme background
func (s *Screen) Fill() {
	style := s.BackgroundStyle()
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.tcellScreen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// SetCell sets a cell at the given position
func (s *Screen) SetCell(x, y int, r rune, style tcell.Style) {
	if x >= 0 && x < s.width && y >= 0 && y < s.height {
		s.tcellScreen.SetContent(x, y, r, nil, style)
	}
}

// DrawString draws a string at the given position with the given style
func (s *Screen) DrawString(x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		s.SetCell(col, y, r, style)
		col += RuneWidth(r)
	}
}

// DrawStringLimited draws a string, truncating it if it exceeds maxWidth
func (s *Screen) DrawStringLimited(x, y int, text string, maxWidth int, style tcell.Style) {
	if maxWidth <= 0 {
		return
	}
	s.DrawString(x, y, TruncateToWidth(text, maxWidth), style)
}

// PollEvent polls for the next event (key press, resize, etc.)
func (s *Screen) PollEvent() tcell.Event {
	return s.tcellScreen.PollEvent()
}

// PostEvent posts an event into the screen's event stream
func (s *Screen) PostEvent(ev tcell.Event) error {
	return s.tcellScreen.PostEvent(ev)
}

// Show shows the screen
func (s *Screen) Show() {
	s.tcellScreen.Show()
}

// Size returns the width and height of the screen
func (s *Screen) Size() (int, int) {
	w, h := s.tcellScreen.Size()
	s.width = w
	s.height = h
	return w, h
}

// GetWidth returns the width of the screen
func (s *Screen) GetWidth() int {
	s.width, _ = s.tcellScreen.Size()
	return s.width
}

// GetHeight returns the height of the screen
func (s *Screen) GetHeight() int {
	_, s.height = s.tcellScreen.Size()
	return s.height
}

// DefaultStyle returns the default terminal style
func DefaultStyle() tcell.Style {
	return tcell.StyleDefault
}

// StyleReverse returns a reverse video style
func StyleReverse() tcell.Style {
	return tcell.StyleDefault.Reverse(true)
}

// Theme-aware style methods

// NodeStyle returns the style for node text
func (s *Screen) NodeStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.NodeText, s.Theme.Colors.Background)
}

// NodeBorderStyle returns the style for node box borders
func (s *Screen) NodeBorderStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.NodeBorder, s.Theme.Colors.Background)
}

// RootNodeStyle returns the style for the root node's text
func (s *Screen) RootNodeStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.RootText, s.Theme.Colors.Background).Bold(true)
}

// CursorNodeStyle returns the style for the node under the cursor
func (s *Screen) CursorNodeStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.CursorText, s.Theme.Colors.CursorBg).Bold(true)
}

// EdgeStyle returns the style for parent-child connector lines
func (s *Screen) EdgeStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.EdgeLine, s.Theme.Colors.Background)
}

// EditorStyle returns the style for inline editor text
func (s *Screen) EditorStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.EditorText, s.Theme.Colors.CursorBg)
}

// EditorCursorStyle returns the style for the inline editor cursor
func (s *Screen) EditorCursorStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.CursorBg, s.Theme.Colors.EditorCursor)
}

// TabActiveStyle returns the style for the active tab
func (s *Screen) TabActiveStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.TabActive, s.Theme.Colors.TabActiveBg).Bold(true)
}

// TabInactiveStyle returns the style for inactive tabs
func (s *Screen) TabInactiveStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.TabInactive, s.Theme.Colors.Background)
}

// TabPendingStyle returns the style for a tab with a close confirmation pending
func (s *Screen) TabPendingStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.TabPending, s.Theme.Colors.Background).Bold(true)
}

// SearchLabelStyle returns the style for the search prompt label
func (s *Screen) SearchLabelStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.SearchLabel)
}

// SearchTextStyle returns the style for search input text
func (s *Screen) SearchTextStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.SearchText)
}

// SearchResultCountStyle returns the style for the match counter
func (s *Screen) SearchResultCountStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.SearchResultCount)
}

// HelpStyle returns the style for help background
func (s *Screen) HelpStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.HelpContent, s.Theme.Colors.HelpBackground)
}

// HelpBorderStyle returns the style for help borders
func (s *Screen) HelpBorderStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.HelpBorder, s.Theme.Colors.HelpBackground)
}

// HelpTitleStyle returns the style for help title
func (s *Screen) HelpTitleStyle() tcell.Style {
	return theme.ColorPairToStyle(s.Theme.Colors.HelpTitle, s.Theme.Colors.HelpBackground).Bold(true)
}

// StatusModeStyle returns the style for the mode indicator
func (s *Screen) StatusModeStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.StatusMode).Bold(true)
}

// StatusMessageStyle returns the style for status messages
func (s *Screen) StatusMessageStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.StatusMessage)
}

// StatusModifiedStyle returns the style for the unsaved-changes indicator
func (s *Screen) StatusModifiedStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.StatusModified)
}

// StatusPromptStyle returns the style for confirmation prompts
func (s *Screen) StatusPromptStyle() tcell.Style {
	return theme.ColorToStyle(s.Theme.Colors.StatusPrompt).Bold(true)
}

// BackgroundStyle returns the default background style for the application
func (s *Screen) BackgroundStyle() tcell.Style {
	return tcell.StyleDefault.Background(s.Theme.Colors.Background)
}
