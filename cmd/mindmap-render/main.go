// mindmap-render renders a saved workspace file to an SVG or PNG image
// without starting the interactive editor. By default it renders the
// workspace's active map; -doc selects another one by tab position.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/pstuifzand/tui-mindmap/internal/export"
	"github.com/pstuifzand/tui-mindmap/internal/layout"
	"github.com/pstuifzand/tui-mindmap/internal/model"
	"github.com/pstuifzand/tui-mindmap/internal/storage"
	"github.com/pstuifzand/tui-mindmap/internal/theme"
)

func main() {
	workspacePath := flag.String("workspace", "", "Workspace file to read (default: the standard location)")
	docIndex := flag.Int("doc", -1, "Tab position of the map to render, 1-based (default: the active map)")
	themeName := flag.String("theme", "tokyo-night", "Theme name for colors")
	output := flag.String("o", "mindmap.svg", "Output file, .svg or .png")
	flag.Parse()

	if err := run(*workspacePath, *docIndex, *themeName, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(workspacePath string, docIndex int, themeName, output string) error {
	if workspacePath == "" {
		var err error
		workspacePath, err = storage.DefaultPath()
		if err != nil {
			return err
		}
	}

	store := storage.NewStore(workspacePath)
	if !store.FileExists() {
		return fmt.Errorf("workspace file not found: %s", workspacePath)
	}
	ws, err := store.Load()
	if err != nil {
		return err
	}

	doc := ws.ActiveDocument()
	if docIndex > 0 {
		if docIndex > len(ws.Tabs) {
			return fmt.Errorf("no tab %d, workspace has %d", docIndex, len(ws.Tabs))
		}
		doc = ws.Document(ws.Tabs[docIndex-1].DocID)
	}
	if doc == nil {
		return fmt.Errorf("no map to render")
	}

	th := theme.LoadThemeOrDefault(themeName)
	svg := export.RenderSVG(doc.Tree, th)

	switch {
	case strings.HasSuffix(output, ".png"):
		return writePNG(doc.Tree, svg, output)
	default:
		return os.WriteFile(output, svg, 0o644)
	}
}

// writePNG rasterizes the SVG at the layout's natural pixel size
func writePNG(tree *model.Tree, svg []byte, output string) error {
	l := layout.Compute(tree)
	width := int(l.ContentWidth)
	height := int(l.ContentHeight)

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return fmt.Errorf("failed to parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	rasterizer := rasterx.NewDasher(width, height, scanner)
	icon.Draw(rasterizer, 1.0)

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, rgba); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
