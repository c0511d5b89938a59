package theme

import (
	"github.com/gdamore/tcell/v2"
)

// Colors holds all the color definitions for the theme
type Colors struct {
	Background tcell.Color

	// Map view colors
	NodeText     tcell.Color
	NodeBorder   tcell.Color
	CursorText   tcell.Color
	CursorBg     tcell.Color
	EdgeLine     tcell.Color
	RootText     tcell.Color

	// Inline editor colors
	EditorText   tcell.Color
	EditorCursor tcell.Color

	// Tab bar colors
	TabActive     tcell.Color
	TabActiveBg   tcell.Color
	TabInactive   tcell.Color
	TabPending    tcell.Color

	// Search bar colors
	SearchLabel       tcell.Color
	SearchText        tcell.Color
	SearchResultCount tcell.Color

	// Help overlay colors
	HelpBackground tcell.Color
	HelpBorder     tcell.Color
	HelpTitle      tcell.Color
	HelpContent    tcell.Color

	// Status line colors
	StatusMode     tcell.Color
	StatusMessage  tcell.Color
	StatusModified tcell.Color
	StatusPrompt   tcell.Color
}

// Theme represents a complete color theme
type Theme struct {
	Name   string
	Colors Colors
}

// Default returns a default theme using terminal defaults
func Default() *Theme {
	return &Theme{
		Name: "default",
		Colors: Colors{
			Background:        tcell.ColorDefault,
			NodeText:          tcell.ColorDefault,
			NodeBorder:        tcell.ColorDefault,
			CursorText:        tcell.ColorDefault,
			CursorBg:          tcell.ColorDefault,
			EdgeLine:          tcell.ColorDefault,
			RootText:          tcell.ColorDefault,
			EditorText:        tcell.ColorDefault,
			EditorCursor:      tcell.ColorDefault,
			TabActive:         tcell.ColorDefault,
			TabActiveBg:       tcell.ColorDefault,
			TabInactive:       tcell.ColorDefault,
			TabPending:        tcell.ColorDefault,
			SearchLabel:       tcell.ColorDefault,
			SearchText:        tcell.ColorDefault,
			SearchResultCount: tcell.ColorDefault,
			HelpBackground:    tcell.ColorDefault,
			HelpBorder:        tcell.ColorDefault,
			HelpTitle:         tcell.ColorDefault,
			HelpContent:       tcell.ColorDefault,
			StatusMode:        tcell.ColorDefault,
			StatusMessage:     tcell.ColorDefault,
			StatusModified:    tcell.ColorDefault,
			StatusPrompt:      tcell.ColorDefault,
		},
	}
}

// TokyoNight returns the Tokyo Night theme
func TokyoNight() *Theme {
	return &Theme{
		Name: "tokyo-night",
		Colors: Colors{
			// Tokyo Night palette
			Background:        HexToColor("#1a1b26"), // Dark background
			NodeText:          HexToColor("#c0caf5"), // Light gray-blue
			NodeBorder:        HexToColor("#3b4261"), // Dimmed border
			CursorText:        HexToColor("#1a1b26"), // Dark on blue
			CursorBg:          HexToColor("#7aa2f7"), // Blue
			EdgeLine:          HexToColor("#565f89"), // Comment gray
			RootText:          HexToColor("#bb9af7"), // Magenta
			EditorText:        HexToColor("#c0caf5"), // Light gray-blue
			EditorCursor:      HexToColor("#7aa2f7"), // Blue
			TabActive:         HexToColor("#7aa2f7"), // Blue
			TabActiveBg:       HexToColor("#292e42"), // Raised background
			TabInactive:       HexToColor("#565f89"), // Comment gray
			TabPending:        HexToColor("#f7768e"), // Red
			SearchLabel:       HexToColor("#bb9af7"), // Magenta
			SearchText:        HexToColor("#c0caf5"), // Light gray-blue
			SearchResultCount: HexToColor("#9ece6a"), // Green
			HelpBackground:    HexToColor("#1a1b26"), // Dark background
			HelpBorder:        HexToColor("#7dcfff"), // Cyan
			HelpTitle:         HexToColor("#bb9af7"), // Magenta
			HelpContent:       HexToColor("#c0caf5"), // Light gray-blue
			StatusMode:        HexToColor("#bb9af7"), // Magenta
			StatusMessage:     HexToColor("#9ece6a"), // Green
			StatusModified:    HexToColor("#f7768e"), // Red
			StatusPrompt:      HexToColor("#e0af68"), // Yellow
		},
	}
}
