package ui

import (
	"fmt"

	"github.com/pstuifzand/tui-mindmap/internal/workspace"
)

const tabLabelWidth = 16

// TabBar renders the workspace's open documents as a row of tabs
type TabBar struct{}

// NewTabBar creates a new TabBar
func NewTabBar() *TabBar {
	return &TabBar{}
}

// Render draws the tab bar on the given row. Each tab shows the document's
// root text; the pending-close tab gets the warning style.
func (t *TabBar) Render(screen *Screen, ws *workspace.Workspace, y int) {
	pendingID, hasPending := ws.PendingClose()

	x := 0
	for i, tab := range ws.Tabs {
		doc := ws.Document(tab.DocID)
		if doc == nil {
			continue
		}

		label := tabLabel(doc.Root().Text, i)
		style := screen.TabInactiveStyle()
		switch {
		case hasPending && tab.DocID == pendingID:
			style = screen.TabPendingStyle()
		case tab.DocID == ws.ActiveDocID:
			style = screen.TabActiveStyle()
		}

		screen.DrawString(x, y, label, style)
		x += StringWidth(label)
		screen.DrawString(x, y, " ", screen.BackgroundStyle())
		x++
		if x >= screen.GetWidth() {
			break
		}
	}

	// Clear the rest of the row
	for ; x < screen.GetWidth(); x++ {
		screen.SetCell(x, y, ' ', screen.BackgroundStyle())
	}
}

func tabLabel(rootText string, index int) string {
	title := rootText
	if title == "" {
		title = fmt.Sprintf("Map %d", index+1)
	}
	return " " + PadStringToWidth(TruncateToWidthWithEllipsis(title, tabLabelWidth), tabLabelWidth) + " "
}
