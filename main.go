package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pstuifzand/tui-mindmap/internal/app"
	import_parser "github.com/pstuifzand/tui-mindmap/internal/import"
	"github.com/pstuifzand/tui-mindmap/internal/storage"
)

func main() {
	logFile, err := os.Create("tmm.log")
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	debug := flag.Bool("debug", false, "Enable debug mode (shows key events in status)")
	importFile := flag.String("import", "", "Import an indented text outline as a new map and exit")
	flag.Parse()

	args := flag.Args()
	var filePath string

	if len(args) > 0 {
		filePath = args[0]
	}
	// filePath stays empty when no argument is given; the app falls back to
	// the configured workspace location

	if *importFile != "" {
		if err := importOutline(filePath, *importFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Imported %s\n", *importFile)
		return
	}

	application, err := app.NewApp(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *debug {
		application.SetDebugMode(true)
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Runtime error: %v\n", err)
		os.Exit(1)
	}
}

// importOutline parses an indented text file into a new map in the
// workspace and saves it
func importOutline(workspacePath, importPath string) error {
	if workspacePath == "" {
		var err error
		workspacePath, err = storage.DefaultPath()
		if err != nil {
			return err
		}
	}

	content, err := os.ReadFile(importPath)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	tree, err := import_parser.ParseIndented(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse outline: %w", err)
	}

	store := storage.NewStore(workspacePath)
	ws, err := store.Load()
	if err != nil {
		return err
	}

	doc := ws.CreateDocument()
	doc.Tree = tree

	return store.Save(ws)
}
