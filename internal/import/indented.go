// Package import_parser builds a document tree from plain text outlines,
// the inverse of the text exporter.
package import_parser

import (
	"bufio"
	"strings"

	"github.com/pstuifzand/tui-mindmap/internal/model"
)

// ParseIndented converts indentation-structured text to a tree. Two spaces
// (or one tab) deepen the hierarchy by one level; a leading "- " or "* "
// bullet is stripped. The first line becomes the root; later lines at the
// top level are treated as children of the root so the result stays a
// single tree.
func ParseIndented(content string) (*model.Tree, error) {
	tree := model.NewTree()

	scanner := bufio.NewScanner(strings.NewReader(content))
	var stack []string // stack[i] holds the id of the last node at depth i
	rootSet := false

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		level := getIndentLevel(line)
		text := stripBullet(strings.TrimSpace(line))
		if text == "" {
			continue
		}

		if !rootSet {
			tree.Root().Text = text
			stack = []string{tree.RootID}
			rootSet = true
			continue
		}

		if level < 1 {
			level = 1
		}
		if level > len(stack) {
			level = len(stack)
		}

		parent := tree.Node(stack[level-1])
		node := &model.Node{
			ID:          model.NewNodeID(),
			Text:        text,
			ParentID:    parent.ID,
			ChildrenIDs: []string{},
		}
		tree.Nodes[node.ID] = node
		parent.ChildrenIDs = append(parent.ChildrenIDs, node.ID)

		stack = append(stack[:level], node.ID)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	tree.CursorID = tree.RootID
	return tree, nil
}

// stripBullet removes a leading list bullet from a line
func stripBullet(text string) string {
	for _, prefix := range []string{"- ", "* "} {
		if strings.HasPrefix(text, prefix) {
			return strings.TrimSpace(text[len(prefix):])
		}
	}
	return text
}

// getIndentLevel calculates the indentation level (0-based).
// Counts tabs and spaces (tab = 2 spaces), 2 spaces = 1 level.
func getIndentLevel(line string) int {
	indent := 0
	for i := 0; i < len(line); i++ {
		if line[i] == '\t' {
			indent += 2
		} else if line[i] == ' ' {
			indent++
		} else {
			break
		}
	}
	return indent / 2
}
