package notes

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/jotlabs/jot/internal/auth"
	"github.com/jotlabs/jot/internal/cache"
	"github.com/jotlabs/jot/internal/note"
	"github.com/jotlabs/jot/internal/search"
	"github.com/jotlabs/jot/internal/state"
	syncctl "github.com/jotlabs/jot/internal/sync"
)

const commitTimeout = 15 * time.Second

type NoteListModel struct {
	state      *state.State
	controller *syncctl.Controller
	session    *search.Session

	list         list.Model
	keys         *listKeyMap
	delegateKeys *delegateKeyMap

	searchInput textinput.Model
	titleInput  textinput.Model
	contentArea textarea.Model

	previewContent string
	previewCache   *cache.LRUCache

	mode        mode
	recentIndex int
	width       int
	height      int

	snapshots  chan []note.Note
	identities chan identityMsg
}

func NewNoteListModel(
	s *state.State,
	controller *syncctl.Controller,
	session *search.Session,
	snapshots chan []note.Note,
	identities chan identityMsg,
) NoteListModel {
	delegateKeys := newDelegateKeyMap()
	listKeys := newListKeyMap()

	delegate := newItemDelegate(delegateKeys)
	noteList := list.New([]list.Item{}, delegate, 0, 0)
	noteList.Title = "Notes"
	noteList.Styles.Title = titleStyle
	// The session owns filtering; the list's built-in filter would re-sort by
	// fuzzy rank and break mirror order.
	noteList.SetFilteringEnabled(false)

	noteList.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			listKeys.search,
			listKeys.create,
			listKeys.delete,
		}
	}
	noteList.AdditionalFullHelpKeys = listKeys.fullHelp

	searchInput := textinput.New()
	searchInput.Placeholder = "Search notes..."
	searchInput.Cursor.Style = cursorStyle

	titleInput := textinput.New()
	titleInput.Placeholder = note.DefaultTitle
	titleInput.Cursor.Style = cursorStyle
	titleInput.CharLimit = 120

	contentArea := textarea.New()
	contentArea.Placeholder = "Write something..."

	return NoteListModel{
		state:        s,
		controller:   controller,
		session:      session,
		list:         noteList,
		keys:         listKeys,
		delegateKeys: delegateKeys,
		searchInput:  searchInput,
		titleInput:   titleInput,
		contentArea:  contentArea,
		previewCache: cache.NewLRUCache(100),
		snapshots:    snapshots,
		identities:   identities,
	}
}

func (m NoteListModel) Init() tea.Cmd {
	return tea.Batch(m.waitForSnapshot(), m.waitForIdentity(), textinput.Blink)
}

func (m NoteListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := appStyle.GetFrameSize()
		m.list.SetSize((msg.Width-h)/2, msg.Height-v)
		m.contentArea.SetWidth(msg.Width/2 - h)
		m.contentArea.SetHeight(msg.Height - v - 4)
		return m, nil

	case snapshotMsg:
		m.controller.ApplySnapshot([]note.Note(msg))
		cmd := m.refreshItems()
		return m, tea.Batch(cmd, m.waitForSnapshot())

	case identityMsg:
		if !msg.signedIn || !auth.Allowed(m.state.Config.AllowedEmail, msg.identity) {
			return m, tea.Quit
		}
		return m, m.waitForIdentity()

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeEditTitle:
			return m.updateEditTitle(msg)
		case modeEditContent:
			return m.updateEditContent(msg)
		case modeRecent:
			return m.updateRecent(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m NoteListModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.search):
		m.mode = modeSearch
		m.searchInput.SetValue(m.session.Query)
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.recentQueries):
		if len(m.session.Recent()) == 0 {
			return m, m.list.NewStatusMessage(statusMessageStyle("No recent searches"))
		}
		m.mode = modeRecent
		m.recentIndex = 0
		return m, nil

	case key.Matches(msg, m.keys.cycleScope):
		m.session.Scope = m.session.Scope.Next()
		cmd := m.refreshItems()
		status := m.list.NewStatusMessage(
			statusMessageStyle(fmt.Sprintf("Scope: %s", m.session.Scope)),
		)
		return m, tea.Batch(cmd, status)

	case key.Matches(msg, m.keys.create):
		ctx, cancel := context.WithTimeout(context.Background(), commitTimeout)
		defer cancel()

		created, err := m.controller.Create(ctx)
		if err != nil {
			return m, m.list.NewStatusMessage(statusMessageStyle(fmt.Sprintf("Create Error: %s", err)))
		}

		cmd := m.refreshItems()
		m.mode = modeEditTitle
		m.titleInput.SetValue("")
		m.titleInput.Focus()
		m.controller.SetDraftTitle("")
		status := m.list.NewStatusMessage(statusMessageStyle("Created " + created.DisplayTitle()))
		return m, tea.Batch(cmd, status, textinput.Blink)

	case key.Matches(msg, m.keys.delete):
		if _, ok := m.controller.Selected(); !ok {
			return m, nil
		}
		m.mode = modeConfirmDelete
		return m, nil

	case key.Matches(msg, m.keys.editTitle):
		if _, ok := m.controller.Selected(); !ok {
			return m, nil
		}
		m.mode = modeEditTitle
		m.titleInput.SetValue(m.controller.Draft().Title)
		m.titleInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.editContent):
		if _, ok := m.controller.Selected(); !ok {
			return m, nil
		}
		m.mode = modeEditContent
		m.contentArea.SetValue(m.controller.Draft().Content)
		return m, m.contentArea.Focus()

	case key.Matches(msg, m.keys.toggleHelp):
		m.list.SetShowHelp(!m.list.ShowHelp())
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.syncSelection()
	m.handlePreview()
	return m, cmd
}

func (m NoteListModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.submitInput):
		m.session.Submit(m.searchInput.Value())
		m.searchInput.Blur()
		m.mode = modeBrowse
		return m, m.refreshItems()

	case key.Matches(msg, m.keys.exitInput):
		m.searchInput.SetValue(m.session.Query)
		m.searchInput.Blur()
		m.mode = modeBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m NoteListModel) updateEditTitle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.submitInput), key.Matches(msg, m.keys.exitInput):
		// Leaving the field is the blur that commits.
		m.controller.SetDraftTitle(m.titleInput.Value())

		ctx, cancel := context.WithTimeout(context.Background(), commitTimeout)
		defer cancel()

		var status tea.Cmd
		if err := m.controller.CommitTitle(ctx); err != nil {
			status = m.list.NewStatusMessage(statusMessageStyle(fmt.Sprintf("Save Error: %s", err)))
		}

		m.titleInput.SetValue(m.controller.Draft().Title)
		m.titleInput.Blur()
		m.mode = modeBrowse
		return m, status
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	m.controller.SetDraftTitle(m.titleInput.Value())
	return m, cmd
}

func (m NoteListModel) updateEditContent(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.exitInput):
		m.controller.SetDraftContent(m.contentArea.Value())

		ctx, cancel := context.WithTimeout(context.Background(), commitTimeout)
		defer cancel()

		var status tea.Cmd
		if err := m.controller.CommitContent(ctx); err != nil {
			status = m.list.NewStatusMessage(statusMessageStyle(fmt.Sprintf("Save Error: %s", err)))
		}

		m.contentArea.Blur()
		m.mode = modeBrowse
		return m, status
	}

	var cmd tea.Cmd
	m.contentArea, cmd = m.contentArea.Update(msg)
	m.controller.SetDraftContent(m.contentArea.Value())
	return m, cmd
}

func (m NoteListModel) updateRecent(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	recent := m.session.Recent()
	if len(recent) == 0 {
		m.mode = modeBrowse
		return m, nil
	}
	if m.recentIndex >= len(recent) {
		m.recentIndex = len(recent) - 1
	}

	switch msg.String() {
	case "up", "k":
		if m.recentIndex > 0 {
			m.recentIndex--
		}
		return m, nil

	case "down", "j":
		if m.recentIndex < len(recent)-1 {
			m.recentIndex++
		}
		return m, nil

	case "x":
		m.session.RemoveRecent(recent[m.recentIndex])
		if len(m.session.Recent()) == 0 {
			m.mode = modeBrowse
		}
		return m, nil

	case "enter":
		value := m.session.PickRecent(recent[m.recentIndex])
		m.searchInput.SetValue(value)
		m.mode = modeBrowse
		return m, m.refreshItems()

	case "esc":
		m.mode = modeBrowse
		return m, nil
	}

	return m, nil
}

func (m NoteListModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = modeBrowse
		selected, ok := m.controller.Selected()
		if !ok {
			return m, nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), commitTimeout)
		defer cancel()

		// The mirror is left as-is; the next snapshot removes the entry and
		// re-runs selection fallback.
		if err := m.controller.Delete(ctx, selected.ID); err != nil {
			return m, m.list.NewStatusMessage(statusMessageStyle(fmt.Sprintf("Delete Error: %s", err)))
		}
		return m, m.list.NewStatusMessage(statusMessageStyle("Deleted " + selected.DisplayTitle()))

	case "n", "N", "esc":
		m.mode = modeBrowse
		return m, nil
	}

	return m, nil
}

// refreshItems re-derives the visible subset from the mirror and the active
// search state, then moves the cursor to the controller's selection.
func (m *NoteListModel) refreshItems() tea.Cmd {
	visible := m.session.Filter(m.controller.Mirror())
	items := make([]list.Item, 0, len(visible))
	for _, n := range visible {
		items = append(items, NewListItem(n))
	}
	cmd := m.list.SetItems(items)

	if selected, ok := m.controller.Selected(); ok {
		for i, n := range visible {
			if n.ID == selected.ID {
				m.list.Select(i)
				break
			}
		}
	}

	m.handlePreview()
	return cmd
}

// syncSelection follows cursor movement with the controller's selected slot.
func (m *NoteListModel) syncSelection() {
	item, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		return
	}

	if selected, selOK := m.controller.Selected(); !selOK || selected.ID != item.Note().ID {
		m.controller.Select(item.Note())
	}
}

func (m *NoteListModel) handlePreview() {
	item, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		m.previewContent = ""
		return
	}

	n := item.Note()
	cacheKey := n.ID + "|" + n.UpdatedAt
	if cached, exists := m.previewCache.Get(cacheKey); exists {
		m.previewContent = cached
		return
	}

	rendered := renderPreview(n, m.width/2)
	m.previewCache.Put(cacheKey, rendered)
	m.previewContent = rendered
}

func (m NoteListModel) waitForSnapshot() tea.Cmd {
	return func() tea.Msg {
		notes, ok := <-m.snapshots
		if !ok {
			return tea.Quit()
		}
		return snapshotMsg(notes)
	}
}

func (m NoteListModel) waitForIdentity() tea.Cmd {
	return func() tea.Msg {
		id, ok := <-m.identities
		if !ok {
			return tea.Quit()
		}
		return id
	}
}

// Run starts the subscription and the program, releasing both on exit.
func Run(s *state.State) error {
	identity, signedIn := s.Auth.Identity()
	if !signedIn {
		return fmt.Errorf("not signed in. Please run 'jot login' first")
	}
	if !auth.Allowed(s.Config.AllowedEmail, identity) {
		return fmt.Errorf("access restricted: %s is not the allow-listed account", identity.Email)
	}

	scope, err := search.ParseScope(s.Config.Search.Scope)
	if err != nil {
		return err
	}

	controller := syncctl.NewController(s.Store, s.Log)
	session := search.NewSession(scope)

	snapshots := make(chan []note.Note, 8)
	identities := make(chan identityMsg, 1)

	sub, err := s.Store.Subscribe(context.Background(), func(notes []note.Note) {
		snapshots <- notes
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to notes: %w", err)
	}
	defer sub.Stop()

	stopAuth := s.Auth.Notify(func(id auth.Identity, ok bool) {
		select {
		case identities <- identityMsg{identity: id, signedIn: ok}:
		default:
		}
	})
	defer stopAuth()

	// Save the current terminal state
	originalState, err := term.GetState(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Failed to get original terminal state: %v", err)
	}

	defer func() {
		if err := term.Restore(int(os.Stdin.Fd()), originalState); err != nil {
			log.Fatalf("Failed to restore original terminal state: %v", err)
		}
	}()

	model := NewNoteListModel(s, controller, session, snapshots, identities)
	if _, err := tea.NewProgram(model, tea.WithInput(os.Stdin), tea.WithAltScreen()).Run(); err != nil {
		if strings.Contains(err.Error(), "resource temporarily unavailable") {
			os.Exit(0) // exit gracefully
		}
		return err
	}

	return nil
}
