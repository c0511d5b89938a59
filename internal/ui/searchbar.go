package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-mindmap/internal/model"
	"github.com/pstuifzand/tui-mindmap/internal/search"
)

// SearchBar manages the incremental search prompt and the match cursor.
// Matches refresh on every keystroke; n/N in normal mode cycle through the
// last accepted result set.
type SearchBar struct {
	query   string
	active  bool
	matches *search.Cursor
}

// NewSearchBar creates a new SearchBar
func NewSearchBar() *SearchBar {
	return &SearchBar{}
}

// Start begins a new search
func (s *SearchBar) Start() {
	s.active = true
	s.query = ""
	s.matches = nil
}

// Stop leaves search input mode, keeping the current result set for cycling
func (s *SearchBar) Stop() {
	s.active = false
}

// IsActive returns whether the search prompt is accepting input
func (s *SearchBar) IsActive() bool {
	return s.active
}

// Query returns the current query string
func (s *SearchBar) Query() string {
	return s.query
}

// Matches returns the current match cursor, which may be nil
func (s *SearchBar) Matches() *search.Cursor {
	return s.matches
}

// HandleKey handles a key press while the prompt is active. Returns false
// when the key ends search input (Escape cancels, Enter accepts).
func (s *SearchBar) HandleKey(ev *tcell.EventKey, tree *model.Tree) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		s.active = false
		s.matches = nil
		return false
	case tcell.KeyEnter:
		s.active = false
		return false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(s.query) > 0 {
			runes := []rune(s.query)
			s.query = string(runes[:len(runes)-1])
		}
	default:
		ch := ev.Rune()
		if ch >= ' ' {
			s.query += string(ch)
		}
	}

	s.matches = search.NewCursor(tree, s.query)
	return true
}

// CurrentMatch returns the node id of the match under the cursor
func (s *SearchBar) CurrentMatch() (string, bool) {
	if s.matches == nil {
		return "", false
	}
	m, ok := s.matches.Current()
	return m.ID, ok
}

// NextMatch advances to the next match and returns its node id
func (s *SearchBar) NextMatch() (string, bool) {
	if s.matches == nil {
		return "", false
	}
	m, ok := s.matches.Next()
	return m.ID, ok
}

// PrevMatch moves to the previous match and returns its node id
func (s *SearchBar) PrevMatch() (string, bool) {
	if s.matches == nil {
		return "", false
	}
	m, ok := s.matches.Prev()
	return m.ID, ok
}

// Render draws the search prompt on the given row
func (s *SearchBar) Render(screen *Screen, y int) {
	if !s.active {
		return
	}
	width := screen.GetWidth()
	for x := 0; x < width; x++ {
		screen.SetCell(x, y, ' ', screen.BackgroundStyle())
	}

	screen.DrawString(0, y, "/", screen.SearchLabelStyle())
	screen.DrawStringLimited(1, y, s.query, width-12, screen.SearchTextStyle())

	if s.matches != nil {
		count := fmt.Sprintf("(%d/%d)", s.matches.Position(), s.matches.Count())
		screen.DrawString(width-len(count)-1, y, count, screen.SearchResultCountStyle())
	}
}
