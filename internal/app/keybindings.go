package app

import (
	"github.com/pstuifzand/tui-mindmap/internal/action"
	"github.com/pstuifzand/tui-mindmap/internal/editor"
	"github.com/pstuifzand/tui-mindmap/internal/ui"
)

// KeyBinding represents a key binding with its description and handler
type KeyBinding struct {
	Key         rune
	Description string
	Handler     func(*App)
}

// GetKey returns the key of this keybinding
func (kb *KeyBinding) GetKey() rune {
	return kb.Key
}

// GetDescription returns the description of this keybinding
func (kb *KeyBinding) GetDescription() string {
	return kb.Description
}

// PendingKeyBinding represents a pending key (like 'g' or 'd') that waits for a second key
type PendingKeyBinding struct {
	Prefix      rune                // The first key (e.g., 'g' or 'd')
	Description string              // Description of what the pending key does
	Sequences   map[rune]KeyBinding // Map of second key to keybinding
}

// GetKey returns the prefix key
func (pkb *PendingKeyBinding) GetKey() rune {
	return pkb.Prefix
}

// GetDescription returns the description
func (pkb *PendingKeyBinding) GetDescription() string {
	return pkb.Description
}

// GetSequences returns a map of second key to description for display in help
func (pkb *PendingKeyBinding) GetSequences() map[rune]string {
	result := make(map[rune]string)
	for key, binding := range pkb.Sequences {
		result[key] = binding.Description
	}
	return result
}

// InitializeKeybindings sets up all the key bindings
func (a *App) InitializeKeybindings() []KeyBinding {
	return []KeyBinding{
		{
			Key:         'h',
			Description: "Move to parent",
			Handler: func(app *App) {
				app.apply(action.Action{Op: action.OpMoveCursor, Direction: editor.DirParent})
			},
		},
		{
			Key:         'l',
			Description: "Move to first child",
			Handler: func(app *App) {
				app.apply(action.Action{Op: action.OpMoveCursor, Direction: editor.DirChild})
			},
		},
		{
			Key:         'j',
			Description: "Move to next sibling",
			Handler: func(app *App) {
				app.apply(action.Action{Op: action.OpMoveCursor, Direction: editor.DirNextSibling})
			},
		},
		{
			Key:         'k',
			Description: "Move to previous sibling",
			Handler: func(app *App) {
				app.apply(action.Action{Op: action.OpMoveCursor, Direction: editor.DirPrevSibling})
			},
		},
		{
			Key:         'J',
			Description: "Swap with next sibling",
			Handler: func(app *App) {
				if app.apply(action.Action{Op: action.OpSwapSibling, Swap: editor.SwapDown}) {
					app.SetStatus("Moved node down")
				}
			},
		},
		{
			Key:         'K',
			Description: "Swap with previous sibling",
			Handler: func(app *App) {
				if app.apply(action.Action{Op: action.OpSwapSibling, Swap: editor.SwapUp}) {
					app.SetStatus("Moved node up")
				}
			},
		},
		{
			Key:         'i',
			Description: "Edit node text",
			Handler: func(app *App) {
				if app.apply(action.Action{Op: action.OpEnterInsert}) {
					doc := app.ws.ActiveDocument()
					app.editor = ui.NewEditor(doc.Cursor().Text)
				}
			},
		},
		{
			Key:         'a',
			Description: "Add child node",
			Handler: func(app *App) {
				if app.apply(action.Action{Op: action.OpAddChild}) {
					app.SetStatus("Added child")
				}
			},
		},
		{
			Key:         'o',
			Description: "Add sibling node",
			Handler: func(app *App) {
				if app.apply(action.Action{Op: action.OpAddSibling}) {
					app.SetStatus("Added sibling")
				}
			},
		},
		{
			Key:         'u',
			Description: "Undo",
			Handler: func(app *App) {
				if app.apply(action.Action{Op: action.OpUndo}) {
					app.SetStatus("Undo")
				} else {
					app.SetStatus("Nothing to undo")
				}
			},
		},
		{
			Key:         't',
			Description: "New map in a new tab",
			Handler: func(app *App) {
				if app.apply(action.Action{Op: action.OpNewDocument}) {
					app.SetStatus("Created new map")
				}
			},
		},
		{
			Key:         'c',
			Description: "Close current map (asks to confirm)",
			Handler: func(app *App) {
				if !app.apply(action.Action{Op: action.OpRequestClose}) {
					app.SetStatus("Cannot close the last map")
				}
			},
		},
		{
			Key:         '/',
			Description: "Search nodes",
			Handler: func(app *App) {
				app.searchBar.Start()
			},
		},
		{
			Key:         'n',
			Description: "Next search match",
			Handler: func(app *App) {
				if id, ok := app.searchBar.NextMatch(); ok {
					app.jumpTo(id)
				} else {
					app.SetStatus("No active search")
				}
			},
		},
		{
			Key:         'N',
			Description: "Previous search match",
			Handler: func(app *App) {
				if id, ok := app.searchBar.PrevMatch(); ok {
					app.jumpTo(id)
				} else {
					app.SetStatus("No active search")
				}
			},
		},
		{
			Key:         'e',
			Description: "Export map as SVG",
			Handler: func(app *App) {
				app.exportActive(true)
			},
		},
		{
			Key:         'E',
			Description: "Export map as text outline",
			Handler: func(app *App) {
				app.exportActive(false)
			},
		},
		{
			Key:         'B',
			Description: "Backup workspace",
			Handler: func(app *App) {
				if err := app.Backup(); err != nil {
					app.SetStatus("Backup failed: " + err.Error())
				} else {
					app.SetStatus("Backup created")
				}
			},
		},
		{
			Key:         '?',
			Description: "Toggle help",
			Handler: func(app *App) {
				app.help.Toggle()
			},
		},
		{
			Key:         'q',
			Description: "Quit",
			Handler: func(app *App) {
				app.Quit()
			},
		},
	}
}

// InitializePendingKeybindings sets up pending key bindings (keys that wait for a second key)
func (a *App) InitializePendingKeybindings() []PendingKeyBinding {
	return []PendingKeyBinding{
		{
			Prefix:      'd',
			Description: "Delete... (d + key)",
			Sequences: map[rune]KeyBinding{
				'd': {
					Key:         'd',
					Description: "Delete node, children move up",
					Handler: func(app *App) {
						if app.apply(action.Action{Op: action.OpDeleteNode}) {
							app.SetStatus("Deleted node")
						} else {
							app.SetStatus("Cannot delete the root")
						}
					},
				},
			},
		},
		{
			Prefix:      'g',
			Description: "Go to... (g + key)",
			Sequences: map[rune]KeyBinding{
				'g': {
					Key:         'g',
					Description: "Go to root",
					Handler: func(app *App) {
						doc := app.ws.ActiveDocument()
						if doc != nil {
							app.jumpTo(doc.RootID)
						}
					},
				},
				't': {
					Key:         't',
					Description: "Go to next tab",
					Handler: func(app *App) {
						app.apply(action.Action{Op: action.OpNextDocument})
					},
				},
				'T': {
					Key:         'T',
					Description: "Go to previous tab",
					Handler: func(app *App) {
						app.apply(action.Action{Op: action.OpPreviousDocument})
					},
				},
				'd': {
					Key:         'd',
					Description: "Dump workspace state to the log",
					Handler: func(app *App) {
						app.DumpState()
						app.SetStatus("Dumped workspace state")
					},
				},
			},
		},
	}
}

// GetKeybindingByKey returns a keybinding for a given key
func (a *App) GetKeybindingByKey(key rune) *KeyBinding {
	for _, kb := range a.keybindings {
		if kb.Key == key {
			return &kb
		}
	}
	return nil
}

// GetPendingKeyBindingByPrefix returns a pending keybinding for a prefix key
func (a *App) GetPendingKeyBindingByPrefix(prefix rune) *PendingKeyBinding {
	for i := range a.pendingKeybindings {
		if a.pendingKeybindings[i].Prefix == prefix {
			return &a.pendingKeybindings[i]
		}
	}
	return nil
}

// IsPendingKeyPrefix checks if a key is a pending key prefix
func (a *App) IsPendingKeyPrefix(key rune) bool {
	return a.GetPendingKeyBindingByPrefix(key) != nil
}
