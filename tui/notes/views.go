package notes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jotlabs/jot/internal/note"
	"github.com/jotlabs/jot/utils"
)

func (m NoteListModel) View() string {
	switch m.mode {
	case modeSearch:
		return appStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.listSection(),
			inputStyle.Render(fmt.Sprintf("Search (%s): %s", m.session.Scope, m.searchInput.View())),
		))

	case modeEditTitle:
		return appStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.listSection(),
			inputStyle.Render("Title: "+m.titleInput.View()),
		))

	case modeEditContent:
		editor := lipgloss.JoinVertical(
			lipgloss.Left,
			titleStyle.Render(m.editingTitle()),
			m.contentArea.View(),
			dimStyle.Render("esc saves"),
		)
		layout := lipgloss.JoinHorizontal(lipgloss.Top, m.listSection(), previewStyle.Render(editor))
		return appStyle.Render(layout)

	case modeRecent:
		return appStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.listSection(),
			recentStyle.Render(m.recentSection()),
		))

	case modeConfirmDelete:
		prompt := fmt.Sprintf("Delete %q? (y/n)", m.confirmTitle())
		return appStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.listSection(),
			inputStyle.Render(prompt),
		))
	}

	layout := lipgloss.JoinHorizontal(lipgloss.Top, m.listSection(), m.previewSection())
	return appStyle.Render(layout)
}

func (m NoteListModel) listSection() string {
	return listStyle.Render(m.list.View())
}

func (m NoteListModel) previewSection() string {
	return previewStyle.Render(
		lipgloss.NewStyle().
			Height(m.list.Height()).
			MaxHeight(m.list.Height()).
			Render(fmt.Sprintf("%s\n%s", titleStyle.Render("Preview"), m.previewContent)),
	)
}

func (m NoteListModel) recentSection() string {
	recent := m.session.Recent()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Recent searches"))
	b.WriteString("\n")
	for i, term := range recent {
		if i == m.recentIndex {
			b.WriteString(recentSelectedStyle.Render("> " + term))
		} else {
			b.WriteString("  " + term)
		}
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("enter picks · x removes · esc closes"))
	return b.String()
}

func (m NoteListModel) editingTitle() string {
	if selected, ok := m.controller.Selected(); ok {
		return selected.DisplayTitle()
	}
	return note.DefaultTitle
}

func (m NoteListModel) confirmTitle() string {
	if selected, ok := m.controller.Selected(); ok {
		return selected.DisplayTitle()
	}
	return ""
}

func renderPreview(n note.Note, width int) string {
	titleLine := n.DisplayTitle()
	style := lipgloss.NewStyle()
	if n.TitleBold {
		style = style.Bold(true)
	}
	if n.TitleColor != "" {
		style = style.Foreground(lipgloss.Color(n.TitleColor))
	}

	meta := dimStyle.Render(fmt.Sprintf("created %s · edited %s", n.CreatedAt, n.UpdatedAt))
	body := utils.RenderMarkdownPreview(n.Content, width)

	return fmt.Sprintf("%s\n%s\n%s", style.Render(titleLine), meta, body)
}
