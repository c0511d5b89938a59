// Package search finds nodes in a document tree by fuzzy text matching
package search

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/pstuifzand/tui-mindmap/internal/model"
)

// Match is one matching node, in tree traversal order
type Match struct {
	ID   string
	Text string
}

// FindNodes returns the nodes whose text fuzzy-matches the term
// (case-insensitive), in depth-first traversal order so results follow the
// visual top-to-bottom layout order. An empty term matches nothing.
func FindNodes(tree *model.Tree, term string) []Match {
	if tree == nil || strings.TrimSpace(term) == "" {
		return nil
	}

	term = strings.ToLower(term)
	var matches []Match
	tree.Walk(func(node *model.Node, depth int) {
		if fuzzy.MatchFold(term, strings.ToLower(node.Text)) {
			matches = append(matches, Match{ID: node.ID, Text: node.Text})
		}
	})
	return matches
}

// Cursor tracks the current position within a result set, cycling in both
// directions
type Cursor struct {
	matches []Match
	index   int
}

// NewCursor creates a cursor over the matches for term in tree
func NewCursor(tree *model.Tree, term string) *Cursor {
	return &Cursor{matches: FindNodes(tree, term)}
}

// Count returns the number of matches
func (c *Cursor) Count() int {
	return len(c.matches)
}

// Current returns the match under the cursor, or false if there are none
func (c *Cursor) Current() (Match, bool) {
	if len(c.matches) == 0 {
		return Match{}, false
	}
	return c.matches[c.index], true
}

// Position returns the 1-based index of the current match
func (c *Cursor) Position() int {
	if len(c.matches) == 0 {
		return 0
	}
	return c.index + 1
}

// Next advances to the next match, wrapping at the end
func (c *Cursor) Next() (Match, bool) {
	if len(c.matches) == 0 {
		return Match{}, false
	}
	c.index = (c.index + 1) % len(c.matches)
	return c.matches[c.index], true
}

// Prev moves to the previous match, wrapping at the start
func (c *Cursor) Prev() (Match, bool) {
	if len(c.matches) == 0 {
		return Match{}, false
	}
	c.index = (c.index - 1 + len(c.matches)) % len(c.matches)
	return c.matches[c.index], true
}
