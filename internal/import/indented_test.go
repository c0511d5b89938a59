package import_parser

import (
	"testing"
)

func TestParseIndentedBuildsHierarchy(t *testing.T) {
	content := `- Project
  - Backend
    - Database
  - Frontend
`
	tree, err := ParseIndented(content)
	if err != nil {
		t.Fatalf("ParseIndented failed: %v", err)
	}
	if err := tree.Validate(); err != nil {
		t.Fatalf("Parsed tree is invalid: %v", err)
	}

	root := tree.Root()
	if root.Text != "Project" {
		t.Errorf("Expected root 'Project', got %q", root.Text)
	}
	if len(root.ChildrenIDs) != 2 {
		t.Fatalf("Expected 2 children of root, got %d", len(root.ChildrenIDs))
	}

	backend := tree.Node(root.ChildrenIDs[0])
	if backend.Text != "Backend" {
		t.Errorf("Expected first child 'Backend', got %q", backend.Text)
	}
	if len(backend.ChildrenIDs) != 1 || tree.Node(backend.ChildrenIDs[0]).Text != "Database" {
		t.Error("Expected 'Database' nested under 'Backend'")
	}

	frontend := tree.Node(root.ChildrenIDs[1])
	if frontend.Text != "Frontend" {
		t.Errorf("Expected second child 'Frontend', got %q", frontend.Text)
	}
}

func TestParseIndentedHandlesOutdent(t *testing.T) {
	content := `Top
  Level one
    Level two
  Back to one
`
	tree, err := ParseIndented(content)
	if err != nil {
		t.Fatalf("ParseIndented failed: %v", err)
	}

	root := tree.Root()
	if len(root.ChildrenIDs) != 2 {
		t.Fatalf("Expected 2 children after outdent, got %d", len(root.ChildrenIDs))
	}
	if tree.Node(root.ChildrenIDs[1]).Text != "Back to one" {
		t.Errorf("Outdented line should be a sibling of 'Level one'")
	}
}

func TestParseIndentedExtraTopLevelLinesBecomeChildren(t *testing.T) {
	content := `First
Second
Third
`
	tree, err := ParseIndented(content)
	if err != nil {
		t.Fatalf("ParseIndented failed: %v", err)
	}

	root := tree.Root()
	if root.Text != "First" {
		t.Errorf("Expected root 'First', got %q", root.Text)
	}
	if len(root.ChildrenIDs) != 2 {
		t.Fatalf("Expected later top-level lines as children, got %d", len(root.ChildrenIDs))
	}
}

func TestParseIndentedSkipsBlankAndJumpyIndent(t *testing.T) {
	content := "Root\n\n\t\t\t\tDeep\n"

	tree, err := ParseIndented(content)
	if err != nil {
		t.Fatalf("ParseIndented failed: %v", err)
	}
	if err := tree.Validate(); err != nil {
		t.Fatalf("Parsed tree is invalid: %v", err)
	}

	// Indent deeper than the stack clamps to the deepest existing level
	root := tree.Root()
	if len(root.ChildrenIDs) != 1 || tree.Node(root.ChildrenIDs[0]).Text != "Deep" {
		t.Error("Over-indented line should attach to the deepest available parent")
	}
}

func TestParseIndentedEmptyInputKeepsEmptyRoot(t *testing.T) {
	tree, err := ParseIndented("")
	if err != nil {
		t.Fatalf("ParseIndented failed: %v", err)
	}
	if tree.Len() != 1 {
		t.Errorf("Expected a bare root, got %d nodes", tree.Len())
	}
	if tree.CursorID != tree.RootID {
		t.Error("Cursor should start at the root")
	}
}
