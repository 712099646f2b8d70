// Package tui renders the button variants and the disclosure menu in the
// terminal.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nigellippett2/nrml/internal/menu"
	"github.com/nigellippett2/nrml/internal/variant"
)

const menuTrigger = "Options ▾"

// Model represents the state of the showcase.
type Model struct {
	scheme variant.Scheme
	menu   *menu.Menu
	width  int

	help     help.Model
	keyMap   KeyMap
	showHelp bool

	status string
}

// DefaultMenu returns the demo menu shown by the showcase.
func DefaultMenu() *menu.Menu {
	return menu.New([]menu.Item{
		menu.Action("Dashboard", "/dashboard"),
		menu.Action("Settings", "/settings"),
		menu.Separator(),
		menu.Action("Sign Out", "/signout"),
	})
}

// New creates a showcase model in the light scheme driving m.
func New(m *menu.Menu) Model {
	return Model{
		scheme: variant.SchemeLight,
		menu:   m,
		help:   help.New(),
		keyMap: DefaultKeyMap(),
		status: "Press m to open the menu, t to switch scheme.",
	}
}

// Scheme returns the active color scheme.
func (m Model) Scheme() variant.Scheme { return m.scheme }

// Status returns the status line text.
func (m Model) Status() string { return m.status }

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

// handleMouse mirrors pointer behavior in the browser: hovering an action
// highlights it, leaving the list clears the highlight, and a left click
// on an action activates it.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if !m.menu.IsOpen() {
		return
	}

	i, inList := m.itemAt(msg.X, msg.Y)
	onAction := inList && !m.menu.Items()[i].IsSeparator()

	switch msg.Action {
	case tea.MouseActionMotion:
		switch {
		case onAction:
			m.report(m.menu.Highlight(i))
		case !inList:
			m.report(m.menu.ClearHighlight())
		}

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !onAction {
			return
		}
		item, err := m.menu.Activate(i)
		if err != nil {
			m.report(err)
			return
		}
		m.status = fmt.Sprintf("Selected %s (%s)", item.Label, item.Href)
	}
}

// itemAt maps a screen cell to an item index of the open menu. The rows
// follow the layout produced by View.
func (m Model) itemAt(x, y int) (int, bool) {
	p := schemePalette(m.scheme)
	top := 2 + lipgloss.Height(m.renderGrid(p)) + 1 + lipgloss.Height(m.renderTrigger()) + 1

	i := y - top
	if i < 0 || i >= len(m.menu.Items()) {
		return -1, false
	}
	if x < 0 || x >= lipgloss.Width(m.renderList(p)) {
		return -1, false
	}
	return i, true
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case key.Matches(msg, m.keyMap.Theme):
		if m.scheme == variant.SchemeDark {
			m.scheme = variant.SchemeLight
		} else {
			m.scheme = variant.SchemeDark
		}
		m.status = "Scheme: " + string(m.scheme)

	case key.Matches(msg, m.keyMap.Menu):
		m.menu.Toggle()

	case key.Matches(msg, m.keyMap.Close):
		m.menu.Close()

	case key.Matches(msg, m.keyMap.Down):
		m.menu.Open()
		m.report(m.menu.HighlightNext())

	case key.Matches(msg, m.keyMap.Up):
		m.menu.Open()
		m.report(m.menu.HighlightPrev())

	case key.Matches(msg, m.keyMap.First):
		if m.menu.IsOpen() {
			m.report(m.menu.HighlightFirst())
		}

	case key.Matches(msg, m.keyMap.Last):
		if m.menu.IsOpen() {
			m.report(m.menu.HighlightLast())
		}

	case key.Matches(msg, m.keyMap.Select):
		if !m.menu.IsOpen() {
			m.menu.Open()
			break
		}
		item, err := m.menu.ActivateHighlighted()
		if errors.Is(err, menu.ErrNothingHighlighted) {
			m.status = "Nothing highlighted. Use ↑/↓ to pick an item."
			break
		}
		if err != nil {
			m.report(err)
			break
		}
		m.status = fmt.Sprintf("Selected %s (%s)", item.Label, item.Href)
	}
	return m, nil
}

func (m *Model) report(err error) {
	if err != nil {
		m.status = "Error: " + err.Error()
	}
}

// View renders the UI.
func (m Model) View() string {
	p := schemePalette(m.scheme)

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(p.accent).
		Render("nrml design system")
	scheme := lipgloss.NewStyle().
		Foreground(p.muted).
		Render("  " + string(m.scheme) + " scheme")

	var content strings.Builder
	content.WriteString(title + scheme)
	content.WriteString("\n\n")
	content.WriteString(m.renderGrid(p))
	content.WriteString("\n\n")
	content.WriteString(m.renderMenu(p))
	content.WriteString("\n\n")
	content.WriteString(lipgloss.NewStyle().Foreground(p.muted).Render(m.status))
	content.WriteString("\n\n")
	content.WriteString(m.help.View(m.keyMap))
	content.WriteString("\n")

	return content.String()
}

// renderGrid renders every role and size combination from the resolver.
func (m Model) renderGrid(p palette) string {
	labelStyle := lipgloss.NewStyle().
		Width(12).
		Foreground(p.text)

	rows := make([]string, 0, len(variant.Roles()))
	for _, role := range variant.Roles() {
		cells := []string{labelStyle.Render(role.Label())}
		for _, size := range variant.Sizes() {
			b := variant.MustResolve(role, size)
			cells = append(cells, "  ", ButtonStyle(b, m.scheme).Render(size.Label()))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderMenu renders the trigger and, when open, the item list.
func (m Model) renderMenu(p palette) string {
	trigger := m.renderTrigger()
	if !m.menu.IsOpen() {
		return trigger
	}
	return lipgloss.JoinVertical(lipgloss.Left, trigger, m.renderList(p))
}

func (m Model) renderTrigger() string {
	return ButtonStyle(variant.MustResolve(variant.RoleOutline, variant.SizeSmall), m.scheme).
		Render(menuTrigger)
}

func (m Model) renderList(p palette) string {
	itemStyle := lipgloss.NewStyle().
		Foreground(p.text).
		Padding(0, 1)
	focusStyle := itemStyle.
		Background(p.highlight).
		Bold(true)
	separatorStyle := lipgloss.NewStyle().
		Foreground(p.muted)

	highlighted, _ := m.menu.Highlighted()
	lines := make([]string, 0, len(m.menu.Items()))
	for i, item := range m.menu.Items() {
		switch {
		case item.IsSeparator():
			lines = append(lines, separatorStyle.Render(strings.Repeat("─", 14)))
		case i == highlighted:
			lines = append(lines, focusStyle.Render("› "+item.Label))
		default:
			lines = append(lines, itemStyle.Render("  "+item.Label))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.muted).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
