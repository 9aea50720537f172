package notes

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jotlabs/jot/internal/note"
	"github.com/jotlabs/jot/utils"
)

const snippetLength = 80

type ListItem struct {
	note    note.Note
	snippet string
}

func NewListItem(n note.Note) ListItem {
	return ListItem{
		note:    n,
		snippet: utils.Snippet(n.Content, snippetLength),
	}
}

func (i ListItem) Note() note.Note {
	return i.note
}

func (i ListItem) Title() string {
	title := i.note.DisplayTitle()

	style := lipgloss.NewStyle()
	styled := false
	if i.note.TitleBold {
		style = style.Bold(true)
		styled = true
	}
	if i.note.TitleColor != "" {
		style = style.Foreground(lipgloss.Color(i.note.TitleColor))
		styled = true
	}
	if !styled {
		return title
	}
	return style.Render(title)
}

func (i ListItem) Description() string {
	edited := fmt.Sprintf("edited %s", i.note.UpdatedAt)
	if i.snippet == "" {
		return edited
	}
	return fmt.Sprintf("%s | %s", edited, i.snippet)
}

func (i ListItem) FilterValue() string {
	return i.note.Title
}
