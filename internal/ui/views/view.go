package views

import (
	"fmt"
	"strings"

	"listpick/internal/domain"
)

// Localized display strings. Internal identifiers stay English; the action
// rows render under these labels, matching the original tool.
const (
	HeaderText = "Используйте ↑↓ для навигации, ПРОБЕЛ или ENTER для выбора, ENTER на СОХРАНИТЬ/ОТМЕНА для завершения"

	SaveLabel   = "СОХРАНИТЬ СПИСОК"
	CancelLabel = "ОТМЕНА"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Items         []domain.Item
	Cursor        int
	StatusMessage string
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete frame. Every row has a fixed format (cursor
// marker, selection marker, name) so successive frames overwrite each other
// exactly and the terminal never needs a mid-session clear.
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Header.Render(HeaderText))
	content.WriteString("\n\n")

	for i, item := range state.Items {
		cursorMark := " "
		if i == state.Cursor {
			cursorMark = ">"
		}

		selectionMark := " "
		if item.Kind == domain.KindEntry && item.Entry.Selected {
			selectionMark = "*"
		}

		line := fmt.Sprintf("%s [%s] %s", cursorMark, selectionMark, DisplayName(item))
		if i == state.Cursor {
			line = r.styles.CursorLine.Render(line)
		}
		content.WriteString(line)
		content.WriteString("\n")
	}

	if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Success.Render(state.StatusMessage))
		content.WriteString("\n")
	}

	if state.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	return content.String()
}

// DisplayName returns the label a catalog item renders under
func DisplayName(item domain.Item) string {
	if item.Kind == domain.KindEntry {
		return item.Entry.Name
	}
	switch item.Action {
	case domain.ActionSave:
		return SaveLabel
	case domain.ActionCancel:
		return CancelLabel
	}
	return ""
}
