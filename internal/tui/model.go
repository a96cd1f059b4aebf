// Package tui implements the interactive prospect browser: a login
// view for anonymous sessions and a filterable, sortable list view
// with multi-select batch actions.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/prospectly/prospectctl/internal/batch"
	"github.com/prospectly/prospectctl/internal/collection"
	"github.com/prospectly/prospectctl/internal/health"
	"github.com/prospectly/prospectctl/internal/prospect"
	"github.com/prospectly/prospectctl/internal/routes"
	"github.com/prospectly/prospectctl/internal/session"
)

// ViewType identifies the view being displayed.
type ViewType int

const (
	// ViewLogin is the email/password form, shown to anonymous sessions.
	ViewLogin ViewType = iota
	// ViewList is the prospect table.
	ViewList
	// ViewDetail shows one prospect.
	ViewDetail
)

// route maps each view to its guard declaration.
func (v ViewType) route() routes.Route {
	switch v {
	case ViewLogin:
		return routes.Login
	case ViewDetail:
		return routes.Detail
	default:
		return routes.Prospects
	}
}

// Messages produced by background commands.
type (
	prospectsLoadedMsg struct{ prospects []prospect.Prospect }
	prospectLoadedMsg  struct{ prospect *prospect.Prospect }
	loginDoneMsg       struct{}
	batchDoneMsg       struct{}
	healthMsg          struct{ result *health.Result }
	healthTickMsg      struct{}
	errMsg             struct{ err error }
)

// Model is the browser state.
type Model struct {
	sessions  *session.Manager
	prospects *prospect.Service
	batches   *batch.Orchestrator
	checker   *health.Checker

	// Collection state
	source    []prospect.Prospect
	visible   []prospect.Prospect
	filter    collection.FilterState
	sort      collection.SortState
	selection *collection.Selection
	cursor    int

	// Detail state
	detail *prospect.Prospect

	// Login form
	emailInput    textinput.Model
	passwordInput textinput.Model
	loginFocus    int

	// Search input, active while filtering
	searchInput textinput.Model
	searching   bool

	// UI state
	currentView ViewType
	backend     *health.Result
	loading     bool
	lastError   string
	width       int
	height      int
	quitting    bool

	styles Styles
}

// New creates the browser model. The initial view follows the guard:
// an authenticated session lands on the list, an anonymous one on login.
func New(sessions *session.Manager, prospects *prospect.Service, batches *batch.Orchestrator, checker *health.Checker) Model {
	email := textinput.New()
	email.Placeholder = "email"
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	search := textinput.New()
	search.Placeholder = "search name, email, website"

	m := Model{
		sessions:      sessions,
		prospects:     prospects,
		batches:       batches,
		checker:       checker,
		selection:     collection.NewSelection(),
		sort:          collection.SortState{Field: collection.SortByName},
		emailInput:    email,
		passwordInput: password,
		searchInput:   search,
		currentView:   ViewLogin,
		styles:        DefaultStyles(),
	}

	m.currentView = m.resolveView(ViewList)
	return m
}

// resolveView runs the target view through the route guard.
func (m Model) resolveView(target ViewType) ViewType {
	switch routes.Resolve(target.route(), m.sessions.IsAuthenticated()) {
	case routes.RedirectLogin:
		return ViewLogin
	case routes.RedirectHome:
		return ViewList
	default:
		return target
	}
}

// Init starts the health watcher and, when already authenticated, the
// initial prospect load.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.checkHealthCmd()}
	if m.currentView == ViewList {
		cmds = append(cmds, m.loadProspectsCmd())
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.currentView {
		case ViewLogin:
			return m.updateLogin(msg)
		case ViewDetail:
			return m.updateDetail(msg)
		default:
			return m.updateList(msg)
		}

	case prospectsLoadedMsg:
		m.loading = false
		m.lastError = ""
		m.source = msg.prospects
		m.recompute()
		return m, nil

	case prospectLoadedMsg:
		m.loading = false
		m.detail = msg.prospect
		m.currentView = m.resolveView(ViewDetail)
		return m, nil

	case loginDoneMsg:
		m.loading = false
		m.lastError = ""
		m.currentView = m.resolveView(ViewList)
		return m, m.loadProspectsCmd()

	case batchDoneMsg:
		m.loading = false
		// Reload so new statuses and drafts show up.
		return m, m.loadProspectsCmd()

	case healthMsg:
		m.backend = msg.result
		return m, m.healthTickCmd()

	case healthTickMsg:
		return m, m.checkHealthCmd()

	case errMsg:
		m.loading = false
		m.lastError = msg.err.Error()
		if !m.sessions.IsAuthenticated() {
			// A failed refresh landed the session in anonymous.
			m.currentView = ViewLogin
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.loginFocus = 1 - m.loginFocus
		if m.loginFocus == 0 {
			m.emailInput.Focus()
			m.passwordInput.Blur()
		} else {
			m.emailInput.Blur()
			m.passwordInput.Focus()
		}
		return m, nil

	case "enter":
		if m.emailInput.Value() == "" || m.passwordInput.Value() == "" {
			m.lastError = "email and password are required"
			return m, nil
		}
		m.loading = true
		return m, m.loginCmd(m.emailInput.Value(), m.passwordInput.Value())

	case "q":
		if m.emailInput.Value() == "" && m.passwordInput.Value() == "" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.emailInput, cmd = m.emailInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "enter", "esc":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			m.filter.Search = m.searchInput.Value()
			m.recompute()
			return m, cmd
		}
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case "enter":
		if p := m.cursorProspect(); p != nil {
			m.loading = true
			return m, m.loadProspectCmd(p.ID)
		}

	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "s":
		m.sort.Field = nextSortField(m.sort.Field)
		m.recompute()

	case "d":
		if m.sort.Direction == collection.Ascending {
			m.sort.Direction = collection.Descending
		} else {
			m.sort.Direction = collection.Ascending
		}
		m.recompute()

	case "f":
		m.filter.Status = nextStatusFilter(m.filter.Status)
		m.recompute()

	case "e":
		m.filter.HasEmail = nextTriState(m.filter.HasEmail)
		m.recompute()

	case "t":
		m.filter.HasContact = nextTriState(m.filter.HasContact)
		m.recompute()

	case " ":
		if p := m.cursorProspect(); p != nil {
			m.selection.Toggle(p.ID)
		}

	case "a":
		if m.selection.AllSelected(m.visible) {
			m.selection.Clear()
		} else {
			m.selection.SelectAll(m.visible)
		}

	case "c":
		m.selection.Clear()

	case "R":
		if ids := m.selection.IDs(m.visible); len(ids) > 0 {
			m.loading = true
			return m, m.batchResearchCmd(ids)
		}
		m.lastError = "no prospects selected"

	case "E":
		if ids := m.selection.IDs(m.visible); len(ids) > 0 {
			m.loading = true
			return m, m.batchEmailCmd(ids)
		}
		m.lastError = "no prospects selected"

	case "r":
		m.loading = true
		return m, m.loadProspectsCmd()

	case "L":
		if err := m.sessions.Logout(); err == nil {
			m.currentView = m.resolveView(ViewList)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.detail = nil
		m.currentView = m.resolveView(ViewList)
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// recompute re-applies filter and sort, clamping the cursor.
func (m *Model) recompute() {
	m.visible = collection.Apply(m.source, m.filter, m.sort)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) cursorProspect() *prospect.Prospect {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil
	}
	return &m.visible[m.cursor]
}

func nextSortField(field collection.SortField) collection.SortField {
	switch field {
	case collection.SortByName:
		return collection.SortByEmail
	case collection.SortByEmail:
		return collection.SortByStatus
	case collection.SortByStatus:
		return collection.SortByCreated
	default:
		return collection.SortByName
	}
}

// nextStatusFilter cycles any → New → ... → Archived → any.
func nextStatusFilter(current *prospect.Status) *prospect.Status {
	all := prospect.AllStatuses()
	if current == nil {
		return &all[0]
	}
	for i, status := range all {
		if status == *current {
			if i == len(all)-1 {
				return nil
			}
			return &all[i+1]
		}
	}
	return nil
}

func nextTriState(current collection.TriState) collection.TriState {
	switch current {
	case collection.TriAny:
		return collection.TriYes
	case collection.TriYes:
		return collection.TriNo
	default:
		return collection.TriAny
	}
}

// Background commands

func (m Model) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		err := m.sessions.Login(context.Background(), session.LoginRequest{
			Email:    email,
			Password: password,
		})
		if err != nil {
			return errMsg{err}
		}
		return loginDoneMsg{}
	}
}

func (m Model) loadProspectsCmd() tea.Cmd {
	return func() tea.Msg {
		prospects, err := m.prospects.List(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return prospectsLoadedMsg{prospects}
	}
}

func (m Model) loadProspectCmd(id string) tea.Cmd {
	return func() tea.Msg {
		p, err := m.prospects.Get(context.Background(), id)
		if err != nil {
			return errMsg{err}
		}
		return prospectLoadedMsg{p}
	}
}

func (m Model) batchResearchCmd(ids []string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.batches.RunSoftData(context.Background(), ids, ""); err != nil {
			return errMsg{err}
		}
		return batchDoneMsg{}
	}
}

func (m Model) batchEmailCmd(ids []string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.batches.RunEmail(context.Background(), ids, "", true, ""); err != nil {
			return errMsg{err}
		}
		return batchDoneMsg{}
	}
}

func (m Model) checkHealthCmd() tea.Cmd {
	return func() tea.Msg {
		return healthMsg{m.checker.Check(context.Background())}
	}
}

func (m Model) healthTickCmd() tea.Cmd {
	return tea.Tick(health.WatchInterval, func(time.Time) tea.Msg {
		return healthTickMsg{}
	})
}
