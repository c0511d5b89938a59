package app

import (
	"fmt"
	"log"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/tui-mindmap/internal/action"
	"github.com/pstuifzand/tui-mindmap/internal/config"
	"github.com/pstuifzand/tui-mindmap/internal/editor"
	"github.com/pstuifzand/tui-mindmap/internal/export"
	"github.com/pstuifzand/tui-mindmap/internal/history"
	"github.com/pstuifzand/tui-mindmap/internal/storage"
	"github.com/pstuifzand/tui-mindmap/internal/ui"
	"github.com/pstuifzand/tui-mindmap/internal/workspace"
)

// App is the main application controller. It owns the workspace, the edit
// session, and the widgets, and converts key events into actions.
type App struct {
	screen    *ui.Screen
	ws        *workspace.Workspace
	session   *editor.Session
	store     *storage.Store
	backups   *storage.BackupManager
	histories *history.Manager
	cfg       *config.Config
	mapView   *ui.MapView
	tabBar    *ui.TabBar
	statusBar *ui.StatusBar
	searchBar *ui.SearchBar
	help      *ui.HelpScreen
	editor    *ui.Editor

	keybindings        []KeyBinding
	pendingKeybindings []PendingKeyBinding
	pendingPrefix      rune

	statusMsg    string
	statusTime   time.Time
	dirty        bool
	autoSaveTime time.Time
	quit         bool
	debugMode    bool
}

// NewApp creates a new App instance. An empty filePath uses the default
// workspace location.
func NewApp(filePath string) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		cfg = nil
	}

	if filePath == "" {
		if cfg != nil && cfg.WorkspacePath != "" {
			filePath = cfg.WorkspacePath
		} else {
			filePath, err = storage.DefaultPath()
			if err != nil {
				return nil, fmt.Errorf("failed to resolve workspace path: %w", err)
			}
		}
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	store := storage.NewStore(filePath)
	ws, err := store.Load()
	if err != nil {
		screen.Close()
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}

	backups, err := storage.NewBackupManager(storage.DefaultBackupDir())
	if err != nil {
		log.Printf("backups disabled: %v", err)
		backups = nil
	}

	histories, err := history.NewManager()
	if err != nil {
		log.Printf("search history disabled: %v", err)
		histories = nil
	}

	a := &App{
		screen:       screen,
		ws:           ws,
		session:      editor.NewSession(),
		store:        store,
		backups:      backups,
		histories:    histories,
		cfg:          cfg,
		mapView:      ui.NewMapView(),
		tabBar:       ui.NewTabBar(),
		statusBar:    ui.NewStatusBar(),
		searchBar:    ui.NewSearchBar(),
		help:         ui.NewHelpScreen(),
		statusMsg:    "Ready",
		statusTime:   time.Now(),
		autoSaveTime: time.Now(),
	}
	a.keybindings = a.InitializeKeybindings()
	a.pendingKeybindings = a.InitializePendingKeybindings()

	var helpInfo []ui.KeyBindingInfo
	for i := range a.keybindings {
		helpInfo = append(helpInfo, &a.keybindings[i])
	}
	for i := range a.pendingKeybindings {
		helpInfo = append(helpInfo, &a.pendingKeybindings[i])
	}
	a.help.SetKeybindings(helpInfo)

	return a, nil
}

// Run starts the main event loop
func (a *App) Run() error {
	defer a.Close()

	eventChan := make(chan tcell.Event)

	go func() {
		for {
			event := a.screen.PollEvent()
			eventChan <- event
			if event == nil {
				break
			}
		}
	}()

	ticker := time.NewTicker(50 * time.Millisecond) // ~20 FPS
	defer ticker.Stop()

	autosave := 5 * time.Second
	if a.cfg != nil {
		autosave = time.Duration(a.cfg.AutosaveInterval) * time.Second
	}

	for !a.quit {
		select {
		case ev := <-eventChan:
			if ev != nil {
				a.handleRawEvent(ev)
			}
		case <-ticker.C:
			a.render()

			if a.dirty && time.Since(a.autoSaveTime) > autosave {
				if err := a.Save(); err != nil {
					a.SetStatus("Failed to save: " + err.Error())
				} else {
					a.SetStatus("Saved")
				}
			}
		}
	}

	// Final save so nothing typed in the last interval is lost
	if a.dirty {
		if err := a.Save(); err != nil {
			return fmt.Errorf("failed to save on exit: %w", err)
		}
	}
	return nil
}

// Close closes the application
func (a *App) Close() error {
	if a.screen != nil {
		return a.screen.Close()
	}
	return nil
}

// apply runs one action through the dispatcher, marking the workspace dirty
// when it changed anything
func (a *App) apply(act action.Action) bool {
	changed := action.Apply(a.session, a.ws, act)
	if changed {
		switch act.Op {
		case action.OpMoveCursor, action.OpEnterInsert, action.OpRequestClose, action.OpCancelClose:
			// Mode and prompt transitions are not document changes
		default:
			a.dirty = true
		}
	}
	return changed
}

// render renders the current state to the screen
func (a *App) render() {
	a.screen.Size()
	a.screen.Clear()
	a.screen.Fill()

	height := a.screen.GetHeight()

	a.tabBar.Render(a.screen, a.ws, 0)

	mapTop := 1
	mapHeight := height - 2
	if a.searchBar.IsActive() {
		mapHeight--
	}

	doc := a.ws.ActiveDocument()
	if doc != nil {
		a.mapView.Render(a.screen, doc.Tree, mapTop, mapHeight, a.editor)
	}

	if a.searchBar.IsActive() {
		a.searchBar.Render(a.screen, height-2)
	}

	a.statusBar.Modified = a.dirty
	a.statusBar.Prompt = ""
	if _, pending := a.ws.PendingClose(); pending {
		a.statusBar.Prompt = "Close this map? (y/n)"
	}
	a.statusBar.Message = ""
	if a.statusMsg != "Ready" && time.Since(a.statusTime) <= 3*time.Second {
		a.statusBar.Message = a.statusMsg
	}
	a.statusBar.Render(a.screen, a.session.Mode(), height-1)

	a.help.Render(a.screen)

	a.screen.Show()
}

// handleRawEvent processes raw input events
func (a *App) handleRawEvent(ev tcell.Event) {
	keyEv, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	// Help overlay swallows everything except its close keys
	if a.help.IsVisible() {
		if keyEv.Key() == tcell.KeyEscape || keyEv.Rune() == '?' {
			a.help.Toggle()
		}
		return
	}

	// Search prompt input
	if a.searchBar.IsActive() {
		doc := a.ws.ActiveDocument()
		if !a.searchBar.HandleKey(keyEv, doc.Tree) {
			if id, ok := a.searchBar.CurrentMatch(); ok {
				a.jumpTo(id)
			}
			// Escape clears the matches; only an accepted search is
			// worth remembering
			if a.histories != nil && a.searchBar.Matches() != nil && a.searchBar.Query() != "" {
				if err := a.histories.Append("search.toml", a.searchBar.Query(), 50); err != nil {
					log.Printf("failed to save search history: %v", err)
				}
			}
			return
		}
		// Follow the first match while typing
		if id, ok := a.searchBar.CurrentMatch(); ok {
			a.jumpTo(id)
		}
		return
	}

	// Inline editor input while an insert is pending
	if a.editor != nil && a.editor.IsActive() {
		if a.editor.HandleKey(keyEv) {
			a.apply(action.Action{Op: action.OpSetText, Text: a.editor.GetText()})
			return
		}
		// Enter and Escape both commit; an unchanged text costs no
		// history entry
		a.editor.Stop()
		a.editor = nil
		a.apply(action.Action{Op: action.OpCommitInsert})
		return
	}

	// Close confirmation prompt
	if _, pending := a.ws.PendingClose(); pending {
		switch keyEv.Rune() {
		case 'y', 'Y':
			if a.apply(action.Action{Op: action.OpConfirmClose}) {
				a.SetStatus("Closed map")
			}
		case 'n', 'N':
			a.apply(action.Action{Op: action.OpCancelClose})
			a.SetStatus("Close cancelled")
		default:
			if keyEv.Key() == tcell.KeyEscape {
				a.apply(action.Action{Op: action.OpCancelClose})
				a.SetStatus("Close cancelled")
			}
		}
		return
	}

	a.handleKeypress(keyEv)
}

// handleKeypress handles a single keypress in normal mode
func (a *App) handleKeypress(ev *tcell.EventKey) {
	if a.debugMode {
		a.SetStatus(fmt.Sprintf("Key: %v | Rune: %q | Modifiers: %v", ev.Key(), ev.Rune(), ev.Modifiers()))
	}

	// Second key of a pending sequence
	if a.pendingPrefix != 0 {
		prefix := a.pendingPrefix
		a.pendingPrefix = 0
		if pkb := a.GetPendingKeyBindingByPrefix(prefix); pkb != nil {
			if binding, ok := pkb.Sequences[ev.Rune()]; ok {
				binding.Handler(a)
			}
		}
		return
	}

	// Special keys first
	switch ev.Key() {
	case tcell.KeyDown:
		a.apply(action.Action{Op: action.OpMoveCursor, Direction: editor.DirNextSibling})
		return
	case tcell.KeyUp:
		a.apply(action.Action{Op: action.OpMoveCursor, Direction: editor.DirPrevSibling})
		return
	case tcell.KeyLeft:
		a.apply(action.Action{Op: action.OpMoveCursor, Direction: editor.DirParent})
		return
	case tcell.KeyRight:
		a.apply(action.Action{Op: action.OpMoveCursor, Direction: editor.DirChild})
		return
	case tcell.KeyTab:
		a.startInsert(action.OpAddChildAndInsert)
		return
	case tcell.KeyEnter:
		a.startInsert(action.OpAddSiblingAndInsert)
		return
	case tcell.KeyCtrlR:
		if a.apply(action.Action{Op: action.OpRedo}) {
			a.SetStatus("Redo")
		} else {
			a.SetStatus("Nothing to redo")
		}
		return
	case tcell.KeyCtrlS:
		if err := a.Save(); err != nil {
			a.SetStatus("Failed to save: " + err.Error())
		} else {
			a.SetStatus("Saved")
		}
		return
	case tcell.KeyCtrlQ:
		a.quit = true
		return
	}

	r := ev.Rune()
	if a.IsPendingKeyPrefix(r) {
		a.pendingPrefix = r
		return
	}
	if kb := a.GetKeybindingByKey(r); kb != nil {
		kb.Handler(a)
	}
}

// startInsert creates a node via op and opens the inline editor on it
func (a *App) startInsert(op action.Op) {
	if !a.apply(action.Action{Op: op}) {
		return
	}
	doc := a.ws.ActiveDocument()
	a.editor = ui.NewEditor(doc.Cursor().Text)
}

// jumpTo moves the cursor of the active document straight to a node
func (a *App) jumpTo(id string) {
	doc := a.ws.ActiveDocument()
	if doc != nil && doc.Node(id) != nil {
		doc.CursorID = id
	}
}

// Save saves the workspace to disk
func (a *App) Save() error {
	if err := a.store.Save(a.ws); err != nil {
		return err
	}
	a.dirty = false
	a.autoSaveTime = time.Now()
	return nil
}

// Backup writes a timestamped copy of the workspace to the backup directory
func (a *App) Backup() error {
	if a.backups == nil {
		return fmt.Errorf("backups are disabled")
	}
	return a.backups.CreateBackup(a.ws)
}

// DumpState writes the full workspace state to the log, for debugging
func (a *App) DumpState() {
	log.Printf("workspace dump:\n%s", spew.Sdump(a.ws))
}

// SetStatus sets the status message
func (a *App) SetStatus(msg string) {
	a.statusMsg = msg
	a.statusTime = time.Now()
}

// Quit signals the app to quit
func (a *App) Quit() {
	a.quit = true
}

// SetDebugMode enables or disables debug mode
func (a *App) SetDebugMode(debug bool) {
	a.debugMode = debug
}

// exportActive writes the active document next to the workspace file
func (a *App) exportActive(svg bool) {
	doc := a.ws.ActiveDocument()
	if doc == nil {
		return
	}
	name := doc.Root().Text
	if name == "" {
		name = "mindmap"
	}
	var err error
	var path string
	if svg {
		path = name + ".svg"
		err = export.ExportToSVG(doc.Tree, a.screen.Theme, path)
	} else {
		path = name + ".txt"
		err = export.ExportToText(doc.Tree, path)
	}
	if err != nil {
		a.SetStatus("Export failed: " + err.Error())
		return
	}
	a.SetStatus("Exported " + path)
}
