package notes

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	search        key.Binding
	recentQueries key.Binding
	cycleScope    key.Binding
	create        key.Binding
	delete        key.Binding
	editTitle     key.Binding
	editContent   key.Binding
	toggleHelp    key.Binding
	quit          key.Binding
	submitInput   key.Binding
	exitInput     key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		recentQueries: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "recent searches"),
		),
		cycleScope: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle scope"),
		),
		create: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new note"),
		),
		delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		editTitle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "edit title"),
		),
		editContent: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("↵/e", "edit content"),
		),
		toggleHelp: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "toggle help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		submitInput: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "submit"),
		),
		exitInput: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

func (m listKeyMap) fullHelp() []key.Binding {
	return []key.Binding{
		m.search,
		m.recentQueries,
		m.cycleScope,
		m.create,
		m.delete,
		m.editTitle,
		m.editContent,
		m.toggleHelp,
	}
}
