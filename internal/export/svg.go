// Package export renders a document tree to files: an SVG picture of the
// laid-out map, or a plain indented text outline.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/pstuifzand/tui-mindmap/internal/layout"
	"github.com/pstuifzand/tui-mindmap/internal/model"
	"github.com/pstuifzand/tui-mindmap/internal/theme"
)

const (
	nodeCornerRadius = 8.0
	fontSize         = 14.0
	maxLabelChars    = 22
)

// RenderSVG draws the tree as a standalone SVG document using the theme's
// colors. Node boxes and edge curves use the same geometry the terminal
// view scales from, so the picture matches what the user sees.
func RenderSVG(tree *model.Tree, th *theme.Theme) []byte {
	if th == nil {
		th = theme.TokyoNight()
	}
	l := layout.Compute(tree)

	bg := theme.ColorToHex(th.Colors.Background, "#1a1b26")
	nodeText := theme.ColorToHex(th.Colors.NodeText, "#c0caf5")
	nodeBorder := theme.ColorToHex(th.Colors.NodeBorder, "#3b4261")
	rootText := theme.ColorToHex(th.Colors.RootText, "#bb9af7")
	edgeLine := theme.ColorToHex(th.Colors.EdgeLine, "#565f89")

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		l.ContentWidth, l.ContentHeight, l.ContentWidth, l.ContentHeight)
	fmt.Fprintf(&sb, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", bg)

	// Edges first so node boxes cover the curve endpoints.
	for _, edge := range layout.Edges(tree, l) {
		fmt.Fprintf(&sb, `  <path d="%s" fill="none" stroke="%s" stroke-width="1.5"/>`+"\n",
			edge.Curve.SVGPath(), edgeLine)
	}

	if tree != nil {
		tree.Walk(func(node *model.Node, depth int) {
			pos, ok := l.Positions[node.ID]
			if !ok {
				return
			}
			textColor := nodeText
			if node.IsRoot() {
				textColor = rootText
			}
			fmt.Fprintf(&sb, `  <rect x="%.1f" y="%.1f" width="%.0f" height="%.0f" rx="%.0f" fill="%s" stroke="%s"/>`+"\n",
				pos.X, pos.Y, layout.NodeWidth, layout.NodeHeight, nodeCornerRadius, bg, nodeBorder)
			fmt.Fprintf(&sb, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%.0f" fill="%s" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
				pos.X+layout.NodeWidth/2, pos.Y+layout.NodeHeight/2, fontSize, textColor,
				escapeText(truncateLabel(node.Text)))
		})
	}

	sb.WriteString("</svg>\n")
	return []byte(sb.String())
}

// ExportToSVG writes the rendered tree to an SVG file.
func ExportToSVG(tree *model.Tree, th *theme.Theme, filePath string) error {
	if err := os.WriteFile(filePath, RenderSVG(tree, th), 0o644); err != nil {
		return fmt.Errorf("failed to write svg file: %w", err)
	}
	return nil
}

// truncateLabel shortens long node text so it stays inside the node box.
func truncateLabel(text string) string {
	runes := []rune(text)
	if len(runes) <= maxLabelChars {
		return text
	}
	return string(runes[:maxLabelChars-1]) + "…"
}

// escapeText escapes the XML special characters in node text.
func escapeText(text string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return replacer.Replace(text)
}
