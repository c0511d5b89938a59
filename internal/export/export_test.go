package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pstuifzand/tui-mindmap/internal/model"
	"github.com/pstuifzand/tui-mindmap/internal/theme"
)

func buildTree(texts map[string]string, children map[string][]string) *model.Tree {
	tree := &model.Tree{
		RootID:   "r",
		CursorID: "r",
		Nodes:    map[string]*model.Node{},
	}
	var add func(id, parentID string)
	add = func(id, parentID string) {
		kids := children[id]
		if kids == nil {
			kids = []string{}
		}
		tree.Nodes[id] = &model.Node{ID: id, Text: texts[id], ParentID: parentID, ChildrenIDs: kids}
		for _, childID := range kids {
			add(childID, id)
		}
	}
	add("r", "")
	return tree
}

func TestExportToText(t *testing.T) {
	tree := buildTree(
		map[string]string{
			"r":  "Project",
			"a":  "Backend",
			"a1": "Database",
			"b":  "Frontend",
		},
		map[string][]string{"r": {"a", "b"}, "a": {"a1"}},
	)

	tempDir := t.TempDir()
	outputFile := filepath.Join(tempDir, "test_output.txt")

	if err := ExportToText(tree, outputFile); err != nil {
		t.Fatalf("ExportToText failed: %v", err)
	}

	content, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	expectedContent := `- Project
  - Backend
    - Database
  - Frontend
`

	if string(content) != expectedContent {
		t.Errorf("Output mismatch.\nExpected:\n%s\n\nGot:\n%s", expectedContent, string(content))
	}
}

func TestExportToTextSkipsBlankNodes(t *testing.T) {
	tree := buildTree(
		map[string]string{
			"r": "Project",
			"a": "   ",
			"b": "Kept child",
		},
		map[string][]string{"r": {"a"}, "a": {"b"}},
	)

	tempDir := t.TempDir()
	outputFile := filepath.Join(tempDir, "test_blank.txt")

	if err := ExportToText(tree, outputFile); err != nil {
		t.Fatalf("ExportToText failed: %v", err)
	}

	content, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	expectedContent := `- Project
  - Kept child
`

	if string(content) != expectedContent {
		t.Errorf("Output mismatch.\nExpected:\n%s\n\nGot:\n%s", expectedContent, string(content))
	}
}

func TestRenderSVGContainsNodesAndEdges(t *testing.T) {
	tree := buildTree(
		map[string]string{"r": "Root topic", "a": "Child one", "b": "Child two"},
		map[string][]string{"r": {"a", "b"}},
	)

	svg := string(RenderSVG(tree, theme.TokyoNight()))

	if !strings.HasPrefix(svg, "<svg") {
		t.Fatalf("Expected svg document, got: %.60s", svg)
	}
	for _, want := range []string{"Root topic", "Child one", "Child two"} {
		if !strings.Contains(svg, want) {
			t.Errorf("Missing node label %q", want)
		}
	}
	// One containment edge per child.
	if got := strings.Count(svg, "<path "); got != 2 {
		t.Errorf("Expected 2 edge paths, got %d", got)
	}
	if got := strings.Count(svg, "<rect x="); got != 3 {
		t.Errorf("Expected 3 node boxes, got %d", got)
	}
}

func TestRenderSVGEscapesText(t *testing.T) {
	tree := buildTree(map[string]string{"r": `a < b & "c"`}, nil)

	svg := string(RenderSVG(tree, theme.Default()))

	if strings.Contains(svg, `a < b`) {
		t.Error("Node text was not escaped")
	}
	if !strings.Contains(svg, "a &lt; b &amp; &quot;c&quot;") {
		t.Errorf("Expected escaped label, got:\n%s", svg)
	}
}

func TestRenderSVGNilTree(t *testing.T) {
	svg := string(RenderSVG(nil, nil))

	if !strings.HasPrefix(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Fatalf("Expected an empty but well-formed svg document, got: %.60s", svg)
	}
	if strings.Contains(svg, "<path ") || strings.Contains(svg, "<rect x=") {
		t.Error("A nil tree must render no nodes or edges")
	}
}

func TestExportToSVGWritesFile(t *testing.T) {
	tree := buildTree(map[string]string{"r": "Only"}, nil)

	tempDir := t.TempDir()
	outputFile := filepath.Join(tempDir, "map.svg")

	if err := ExportToSVG(tree, nil, outputFile); err != nil {
		t.Fatalf("ExportToSVG failed: %v", err)
	}

	content, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if !strings.Contains(string(content), "</svg>") {
		t.Error("Output file is not a complete svg document")
	}
}
