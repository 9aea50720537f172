package notes

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func newItemDelegate(keys *delegateKeyMap) list.DefaultDelegate {
	d := list.NewDefaultDelegate()

	d.Styles.SelectedTitle = selectedItemStyle
	d.Styles.SelectedDesc = selectedItemStyle

	d.UpdateFunc = func(msg tea.Msg, m *list.Model) tea.Cmd {
		i, ok := m.SelectedItem().(ListItem)
		if !ok {
			return nil
		}

		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch {
			case key.Matches(msg, keys.copyContent):
				if err := clipboard.WriteAll(i.Note().Content); err != nil {
					return m.NewStatusMessage(statusMessageStyle("Copy failed"))
				}
				return m.NewStatusMessage(statusMessageStyle("Copied " + i.Note().DisplayTitle()))
			}
		}

		return nil
	}

	shortHelp := []key.Binding{keys.copyContent}
	d.ShortHelpFunc = func() []key.Binding {
		return shortHelp
	}
	d.FullHelpFunc = func() [][]key.Binding {
		return [][]key.Binding{shortHelp}
	}

	return d
}

type delegateKeyMap struct {
	copyContent key.Binding
}

func newDelegateKeyMap() *delegateKeyMap {
	return &delegateKeyMap{
		copyContent: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
	}
}
