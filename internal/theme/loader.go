package theme

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

// ThemeConfig represents the raw TOML theme configuration
type ThemeConfig struct {
	Name   string `toml:"name"`
	Colors struct {
		Background        string `toml:"background"`
		NodeText          string `toml:"node_text"`
		NodeBorder        string `toml:"node_border"`
		CursorText        string `toml:"cursor_text"`
		CursorBg          string `toml:"cursor_bg"`
		EdgeLine          string `toml:"edge_line"`
		RootText          string `toml:"root_text"`
		EditorText        string `toml:"editor_text"`
		EditorCursor      string `toml:"editor_cursor"`
		TabActive         string `toml:"tab_active"`
		TabActiveBg       string `toml:"tab_active_bg"`
		TabInactive       string `toml:"tab_inactive"`
		TabPending        string `toml:"tab_pending"`
		SearchLabel       string `toml:"search_label"`
		SearchText        string `toml:"search_text"`
		SearchResultCount string `toml:"search_result_count"`
		HelpBackground    string `toml:"help_background"`
		HelpBorder        string `toml:"help_border"`
		HelpTitle         string `toml:"help_title"`
		HelpContent       string `toml:"help_content"`
		StatusMode        string `toml:"status_mode"`
		StatusMessage     string `toml:"status_message"`
		StatusModified    string `toml:"status_modified"`
		StatusPrompt      string `toml:"status_prompt"`
	} `toml:"colors"`
}

// getThemePaths returns the search paths for theme files
func getThemePaths() []string {
	paths := []string{}

	// User config directory
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "tui-mindmap", "themes"))
	}

	// User local share directory
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".local", "share", "tui-mindmap", "themes"))
	}

	return paths
}

// findThemeFile searches for a theme file in standard locations
func findThemeFile(themeName string) (string, error) {
	filename := themeName + ".toml"

	for _, dir := range getThemePaths() {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("theme file not found: %s", filename)
}

// LoadThemeFromFile loads a theme from a TOML file
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var config ThemeConfig
	err = toml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	return configToTheme(config), nil
}

// LoadTheme loads a theme by name, searching standard theme directories
func LoadTheme(themeName string) (*Theme, error) {
	filePath, err := findThemeFile(themeName)
	if err != nil {
		return nil, err
	}

	return LoadThemeFromFile(filePath)
}

// configToTheme converts a ThemeConfig to a Theme, with fallback to Tokyo Night for missing colors
func configToTheme(config ThemeConfig) *Theme {
	// Start with Tokyo Night as base
	t := TokyoNight()

	overrides := []struct {
		value  string
		target *tcell.Color
	}{
		{config.Colors.Background, &t.Colors.Background},
		{config.Colors.NodeText, &t.Colors.NodeText},
		{config.Colors.NodeBorder, &t.Colors.NodeBorder},
		{config.Colors.CursorText, &t.Colors.CursorText},
		{config.Colors.CursorBg, &t.Colors.CursorBg},
		{config.Colors.EdgeLine, &t.Colors.EdgeLine},
		{config.Colors.RootText, &t.Colors.RootText},
		{config.Colors.EditorText, &t.Colors.EditorText},
		{config.Colors.EditorCursor, &t.Colors.EditorCursor},
		{config.Colors.TabActive, &t.Colors.TabActive},
		{config.Colors.TabActiveBg, &t.Colors.TabActiveBg},
		{config.Colors.TabInactive, &t.Colors.TabInactive},
		{config.Colors.TabPending, &t.Colors.TabPending},
		{config.Colors.SearchLabel, &t.Colors.SearchLabel},
		{config.Colors.SearchText, &t.Colors.SearchText},
		{config.Colors.SearchResultCount, &t.Colors.SearchResultCount},
		{config.Colors.HelpBackground, &t.Colors.HelpBackground},
		{config.Colors.HelpBorder, &t.Colors.HelpBorder},
		{config.Colors.HelpTitle, &t.Colors.HelpTitle},
		{config.Colors.HelpContent, &t.Colors.HelpContent},
		{config.Colors.StatusMode, &t.Colors.StatusMode},
		{config.Colors.StatusMessage, &t.Colors.StatusMessage},
		{config.Colors.StatusModified, &t.Colors.StatusModified},
		{config.Colors.StatusPrompt, &t.Colors.StatusPrompt},
	}
	for _, o := range overrides {
		if o.value != "" {
			*o.target = ParseColorString(o.value)
		}
	}

	if config.Name != "" {
		t.Name = config.Name
	}

	return t
}

// LoadThemeOrDefault loads a theme by name, or returns Tokyo Night if not found
func LoadThemeOrDefault(themeName string) *Theme {
	if themeName == "default" {
		return Default()
	}

	theme, err := LoadTheme(themeName)
	if err != nil {
		// Fall back to Tokyo Night
		return TokyoNight()
	}

	return theme
}
