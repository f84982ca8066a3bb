package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"listpick/internal/catalog"
	"listpick/internal/config"
	"listpick/internal/discovery"
	"listpick/internal/ui"
)

func main() {
	// Parse command line arguments
	var targetDir string
	flag.StringVar(&targetDir, "dir", "", "Directory containing the list files")
	flag.StringVar(&targetDir, "d", "", "Directory containing the list files (shorthand)")
	exitDelay := flag.Int("exit-delay", -1, "Seconds to wait after saving before exit (-1 uses settings)")
	flag.Parse()

	// If no directory specified, check for remaining args
	if targetDir == "" && flag.NArg() > 0 {
		targetDir = flag.Arg(0)
	}

	// Set up logging
	logFile, err := os.OpenFile("listpick.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Load settings, falling back to defaults on first run or parse failure
	settingsSvc := config.NewSettingsService()
	settings, err := settingsSvc.Load()
	if err != nil {
		log.Printf("Error loading settings: %v", err)
		settings = config.DefaultSettings()
	}

	// If still no directory, use the configured one
	if targetDir == "" {
		targetDir = settings.ListsDir
	}

	// Resolve to absolute path
	absDir, err := filepath.Abs(targetDir)
	if err != nil {
		fmt.Printf("Error resolving path: %v\n", err)
		os.Exit(1)
	}

	delaySeconds := settings.UI.ExitDelaySeconds
	if *exitDelay >= 0 {
		delaySeconds = *exitDelay
	}

	// Scan for candidate list files (creates the directory if missing)
	names, err := discovery.FindListFiles(absDir)
	if err != nil {
		fmt.Printf("Error scanning lists directory: %v\n", err)
		os.Exit(1)
	}

	// Load the previously persisted selection
	store := config.NewSelectionStore(absDir)
	persisted, err := store.Load()
	if err != nil {
		fmt.Printf("Error loading selection: %v\n", err)
		os.Exit(1)
	}

	// Build the catalog and run the UI
	cat := catalog.Build(names, persisted)
	model := ui.NewModel(cat, store, absDir, settings.UI, time.Duration(delaySeconds)*time.Second)

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	// Ready marker for the e2e pty driver
	if os.Getenv("LISTPICK_E2E_TEST") == "1" {
		fmt.Fprintln(os.Stderr, "__READY__")
	}

	log.Printf("Starting UI with %d items", cat.Len())
	finalModel, err := p.Run()
	if err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// A save failure quits the UI first so the terminal is restored before
	// the error is reported.
	if m, ok := finalModel.(*ui.Model); ok && m.Err() != nil {
		fmt.Printf("Error: %v\n", m.Err())
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}
