package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/pstuifzand/tui-mindmap/internal/model"
)

// ExportToText exports a tree to a text file as an indented bullet list.
// The root text becomes the first line; each level below it indents by two
// spaces.
func ExportToText(tree *model.Tree, filePath string) error {
	var sb strings.Builder

	writeNodeAsText(&sb, tree, tree.RootID, 0, map[string]bool{})

	if err := os.WriteFile(filePath, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write text file: %w", err)
	}

	return nil
}

// writeNodeAsText recursively writes a node and its children as bullets.
// Nodes with blank text are skipped but their children are still written, at
// the same depth.
func writeNodeAsText(sb *strings.Builder, tree *model.Tree, id string, depth int, seen map[string]bool) {
	node := tree.Node(id)
	if node == nil || seen[id] {
		return
	}
	seen[id] = true

	if strings.TrimSpace(node.Text) == "" {
		for _, childID := range node.ChildrenIDs {
			writeNodeAsText(sb, tree, childID, depth, seen)
		}
		return
	}

	indent := strings.Repeat("  ", depth)
	sb.WriteString(indent)
	sb.WriteString("- ")
	sb.WriteString(node.Text)
	sb.WriteString("\n")

	for _, childID := range node.ChildrenIDs {
		writeNodeAsText(sb, tree, childID, depth+1, seen)
	}
}
