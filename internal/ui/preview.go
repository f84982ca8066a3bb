package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// Previewer shows a list file's contents in the ov pager
type Previewer struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPreviewer creates a new previewer
func NewPreviewer() *Previewer {
	return &Previewer{}
}

// SetProgram sets the program reference
func (p *Previewer) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowFileInPager displays the file at path using the ov pager. The Bubble
// Tea program releases the terminal while ov runs and restores it afterwards,
// even if ov fails.
func (p *Previewer) ShowFileInPager(path string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	root, err := oviewer.Open(path)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
