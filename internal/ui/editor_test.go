package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func keyEvent(key tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(key, r, tcell.ModNone)
}

func typeString(e *Editor, s string) {
	for _, r := range s {
		e.HandleKey(keyEvent(tcell.KeyRune, r))
	}
}

func TestEditorTypesAtEnd(t *testing.T) {
	e := NewEditor("hi")
	typeString(e, " there")

	if got := e.GetText(); got != "hi there" {
		t.Errorf("Expected 'hi there', got %q", got)
	}
	if e.GetCursorPos() != 8 {
		t.Errorf("Expected cursor at 8, got %d", e.GetCursorPos())
	}
}

func TestEditorInsertInMiddle(t *testing.T) {
	e := NewEditor("hed")
	e.HandleKey(keyEvent(tcell.KeyLeft, 0))
	typeString(e, "llo worl")

	if got := e.GetText(); got != "hello world" {
		t.Errorf("Expected 'hello world', got %q", got)
	}
}

func TestEditorBackspaceAndDelete(t *testing.T) {
	e := NewEditor("abc")
	e.HandleKey(keyEvent(tcell.KeyBackspace2, 0))
	if got := e.GetText(); got != "ab" {
		t.Fatalf("Expected 'ab' after backspace, got %q", got)
	}

	e.HandleKey(keyEvent(tcell.KeyHome, 0))
	e.HandleKey(keyEvent(tcell.KeyDelete, 0))
	if got := e.GetText(); got != "b" {
		t.Errorf("Expected 'b' after delete at start, got %q", got)
	}
}

func TestEditorKillLineShortcuts(t *testing.T) {
	e := NewEditor("hello world")
	e.HandleKey(keyEvent(tcell.KeyLeft, 0))
	e.HandleKey(keyEvent(tcell.KeyLeft, 0))
	e.HandleKey(keyEvent(tcell.KeyCtrlK, 0))
	if got := e.GetText(); got != "hello wor" {
		t.Fatalf("Expected 'hello wor' after Ctrl+K, got %q", got)
	}

	e.HandleKey(keyEvent(tcell.KeyCtrlU, 0))
	if got := e.GetText(); got != "" {
		t.Errorf("Expected empty text after Ctrl+U at end, got %q", got)
	}
}

func TestEditorUnicodeInput(t *testing.T) {
	e := NewEditor("")
	typeString(e, "日本語")

	if got := e.GetText(); got != "日本語" {
		t.Errorf("Expected '日本語', got %q", got)
	}
	if e.GetCursorPos() != 3 {
		t.Errorf("Expected cursor at rune 3, got %d", e.GetCursorPos())
	}

	e.HandleKey(keyEvent(tcell.KeyBackspace, 0))
	if got := e.GetText(); got != "日本" {
		t.Errorf("Backspace should remove one rune, got %q", got)
	}
}

func TestEditorTerminationKeys(t *testing.T) {
	e := NewEditor("x")
	if e.HandleKey(keyEvent(tcell.KeyEnter, 0)) {
		t.Error("Enter should signal end of editing")
	}
	if e.HandleKey(keyEvent(tcell.KeyEscape, 0)) {
		t.Error("Escape should signal end of editing")
	}

	if got := e.Stop(); got != "x" {
		t.Errorf("Stop should return the text, got %q", got)
	}
	if e.IsActive() {
		t.Error("Editor should be inactive after Stop")
	}
}
