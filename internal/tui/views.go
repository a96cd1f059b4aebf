package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/prospectly/prospectctl/internal/batch"
	"github.com/prospectly/prospectctl/internal/collection"
	"github.com/prospectly/prospectctl/internal/prospect"
)

// Styles contains lipgloss styles for the browser.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default lipgloss styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")). // Purple
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")), // Red
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")), // Green
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")), // Yellow
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")), // Cyan
		Cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")), // Pink
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

// View renders the current view.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.currentView {
	case ViewLogin:
		return m.renderLogin()
	case ViewDetail:
		return m.renderDetail()
	default:
		return m.renderList()
	}
}

func (m Model) renderLogin() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Prospectly"))
	b.WriteString("\n\n")
	b.WriteString("Email:    " + m.emailInput.View())
	b.WriteString("\n")
	b.WriteString("Password: " + m.passwordInput.View())
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.styles.Muted.Render("Logging in..."))
		b.WriteString("\n")
	}
	if m.lastError != "" {
		b.WriteString(m.styles.Error.Render(m.lastError))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("tab: switch field • enter: login • ctrl+c: quit"))
	b.WriteString("\n")
	b.WriteString(m.renderBackendLine())
	return b.String()
}

func (m Model) renderList() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Prospects"))
	b.WriteString("\n")

	if m.searching {
		b.WriteString("Search: " + m.searchInput.View())
		b.WriteString("\n")
	}
	b.WriteString(m.renderFilterLine())
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.styles.Muted.Render("Loading..."))
		b.WriteString("\n")
	}

	for i := range m.visible {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}
	if len(m.visible) == 0 && !m.loading {
		b.WriteString(m.styles.Muted.Render("No prospects match."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatsLine())
	b.WriteString("\n")

	if note := batch.SharedNotifier().Current(); note != nil {
		style := m.styles.Success
		if note.Outcome == batch.OutcomePartial {
			style = m.styles.Warning
		}
		b.WriteString(style.Render(fmt.Sprintf("Batch %s: %s", note.Outcome, note.Message)))
		b.WriteString("\n")
	}
	if m.lastError != "" {
		b.WriteString(m.styles.Error.Render(m.lastError))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(
		"↑/↓: move • space: select • a: all • enter: open • /: search • " +
			"f: status • e: email • t: contact • s/d: sort • R: research • E: draft • r: reload • L: logout • q: quit"))
	b.WriteString("\n")
	b.WriteString(m.renderBackendLine())
	return b.String()
}

func (m Model) renderRow(i int) string {
	p := &m.visible[i]

	cursor := "  "
	if i == m.cursor {
		cursor = m.styles.Cursor.Render("> ")
	}

	check := "[ ]"
	if m.selection.IsSelected(p.ID) {
		check = m.styles.Selected.Render("[x]")
	}

	line := fmt.Sprintf("%s%s %-30s %-12s %s",
		cursor, check, truncate(p.Name, 30), p.Status, p.PrimaryEmail())
	if i == m.cursor {
		return m.styles.Cursor.Render(line)
	}
	return line
}

func (m Model) renderFilterLine() string {
	parts := []string{
		"sort: " + string(m.sort.Field) + directionArrow(m.sort.Direction),
	}
	if m.filter.Status != nil {
		parts = append(parts, "status: "+m.filter.Status.String())
	}
	if m.filter.HasEmail != collection.TriAny {
		parts = append(parts, "email: "+triLabel(m.filter.HasEmail))
	}
	if m.filter.HasContact != collection.TriAny {
		parts = append(parts, "contact: "+triLabel(m.filter.HasContact))
	}
	if m.filter.Search != "" && !m.searching {
		parts = append(parts, "search: "+m.filter.Search)
	}
	return m.styles.Subtitle.Render(strings.Join(parts, " • "))
}

func (m Model) renderStatsLine() string {
	stats := collection.ComputeStats(m.source, m.visible, m.filter)

	line := fmt.Sprintf("%d prospects", stats.Total)
	if stats.IsFiltered {
		line = fmt.Sprintf("showing %d of %d prospects", stats.Showing, stats.Total)
	}
	if count := m.selection.Count(); count > 0 {
		line += fmt.Sprintf(" • %d selected", count)
	}
	return m.styles.Muted.Render(line)
}

func (m Model) renderDetail() string {
	if m.detail == nil {
		return m.styles.Muted.Render("Nothing to show.")
	}
	p := m.detail

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(p.Name))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Status:  %s\n", p.Status))
	b.WriteString(fmt.Sprintf("Created: %s\n", p.CreatedUTC.Format("2006-01-02")))

	if email := p.PrimaryEmail(); email != "" {
		b.WriteString(fmt.Sprintf("Email:   %s\n", email))
	}
	if site := p.PrimaryWebsite(); site != "" {
		b.WriteString(fmt.Sprintf("Website: %s\n", site))
	}
	if p.Notes != nil && *p.Notes != "" {
		b.WriteString("\n" + *p.Notes + "\n")
	}

	if data := p.SoftCompanyData; data != nil {
		parsed := data.Parse()
		header := fmt.Sprintf("Research (%d days old)", data.AgeDays())
		if data.IsStale(prospect.DefaultStaleAfter) {
			header = m.styles.Warning.Render(header + ", stale")
		}
		b.WriteString("\n" + header + "\n")
		for _, hook := range parsed.Hooks {
			b.WriteString("  • " + hook.Text + "\n")
		}
		for _, item := range parsed.News {
			b.WriteString("  • " + item.Headline + "\n")
		}
	}

	if p.MailTitle != nil && *p.MailTitle != "" {
		b.WriteString("\n" + m.styles.Subtitle.Render("Draft: "+*p.MailTitle) + "\n")
		if p.MailBodyPlain != nil {
			b.WriteString(*p.MailBodyPlain + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("esc: back • q: quit"))
	return b.String()
}

func (m Model) renderBackendLine() string {
	if m.backend == nil {
		return m.styles.Muted.Render("backend: checking...")
	}
	if m.backend.Healthy() {
		return m.styles.Success.Render("backend: online")
	}
	return m.styles.Error.Render("backend: " + m.backend.Status.String())
}

func directionArrow(d collection.Direction) string {
	if d == collection.Descending {
		return " ↓"
	}
	return " ↑"
}

func triLabel(t collection.TriState) string {
	if t == collection.TriYes {
		return "yes"
	}
	return "no"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
