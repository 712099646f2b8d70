// Package menu implements the disclosure menu behind the dropdown control:
// a trigger-opened list of actions with one highlighted item at a time.
//
// A Menu is owned by a single caller and is not safe for concurrent use.
package menu

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned by item operations while the menu is closed.
	ErrClosed = errors.New("menu is closed")
	// ErrOutOfRange is returned for an index outside the item sequence.
	ErrOutOfRange = errors.New("menu index out of range")
	// ErrSeparator is returned for an index that addresses a separator.
	ErrSeparator = errors.New("menu index addresses a separator")
	// ErrNoActions is returned by navigation when every item is a separator.
	ErrNoActions = errors.New("menu has no actions")
	// ErrNothingHighlighted is returned by ActivateHighlighted with no highlight.
	ErrNothingHighlighted = errors.New("no menu item is highlighted")
)

// Item is either an action or a separator.
type Item struct {
	Label string
	// Href is the navigation target, if any.
	Href string
	// OnSelect runs when the item is activated.
	OnSelect func()

	separator bool
}

// Action builds an action item.
func Action(label, href string) Item {
	return Item{Label: label, Href: href}
}

// Callback builds an action item that invokes fn.
func Callback(label string, fn func()) Item {
	return Item{Label: label, OnSelect: fn}
}

// Separator builds a separator item.
func Separator() Item {
	return Item{separator: true}
}

// IsSeparator reports whether the item is a separator.
func (i Item) IsSeparator() bool { return i.separator }

// State is a comparable snapshot of a menu. Highlighted is -1 when nothing
// is highlighted, and always -1 while closed.
type State struct {
	Open        bool
	Highlighted int
}

// Closed is the state every menu starts in and returns to.
var Closed = State{Open: false, Highlighted: -1}

// Option configures a Menu.
type Option func(*Menu)

// WithNavigator sets the effect used for actions that carry an Href.
func WithNavigator(navigate func(href string)) Option {
	return func(m *Menu) { m.navigate = navigate }
}

// Menu is a disclosure menu.
type Menu struct {
	items    []Item
	navigate func(string)
	state    State
}

// New creates a closed menu over a private copy of items.
func New(items []Item, opts ...Option) *Menu {
	m := &Menu{
		items: append([]Item(nil), items...),
		state: Closed,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Items returns a copy of the menu items.
func (m *Menu) Items() []Item {
	return append([]Item(nil), m.items...)
}

// State returns the current state.
func (m *Menu) State() State { return m.state }

// IsOpen reports whether the menu is open.
func (m *Menu) IsOpen() bool { return m.state.Open }

// Highlighted returns the highlighted index, if any.
func (m *Menu) Highlighted() (int, bool) {
	if m.state.Highlighted < 0 {
		return -1, false
	}
	return m.state.Highlighted, true
}

// Open opens the menu with nothing highlighted. Opening an open menu keeps
// its highlight.
func (m *Menu) Open() {
	if m.state.Open {
		return
	}
	m.state = State{Open: true, Highlighted: -1}
}

// Close closes the menu and clears the highlight. Valid from any state.
func (m *Menu) Close() {
	m.state = Closed
}

// Toggle handles a trigger activation.
func (m *Menu) Toggle() {
	if m.state.Open {
		m.Close()
		return
	}
	m.Open()
}

// Highlight moves the highlight to the action at index.
func (m *Menu) Highlight(index int) error {
	if err := m.checkAction(index); err != nil {
		return err
	}
	m.state.Highlighted = index
	return nil
}

// ClearHighlight removes the highlight without closing.
func (m *Menu) ClearHighlight() error {
	if !m.state.Open {
		return ErrClosed
	}
	m.state.Highlighted = -1
	return nil
}

// HighlightNext moves the highlight to the next action, wrapping around.
// With nothing highlighted it selects the first action.
func (m *Menu) HighlightNext() error {
	return m.step(1)
}

// HighlightPrev moves the highlight to the previous action, wrapping
// around. With nothing highlighted it selects the last action.
func (m *Menu) HighlightPrev() error {
	return m.step(-1)
}

// HighlightFirst highlights the first action.
func (m *Menu) HighlightFirst() error {
	if !m.state.Open {
		return ErrClosed
	}
	i := m.seek(-1, 1)
	if i < 0 {
		return ErrNoActions
	}
	m.state.Highlighted = i
	return nil
}

// HighlightLast highlights the last action.
func (m *Menu) HighlightLast() error {
	if !m.state.Open {
		return ErrClosed
	}
	i := m.seek(len(m.items), -1)
	if i < 0 {
		return ErrNoActions
	}
	m.state.Highlighted = i
	return nil
}

// Activate runs the action at index and closes the menu. OnSelect runs
// first, then navigation to Href when a navigator is configured.
func (m *Menu) Activate(index int) (Item, error) {
	if err := m.checkAction(index); err != nil {
		return Item{}, err
	}

	item := m.items[index]
	if item.OnSelect != nil {
		item.OnSelect()
	}
	if item.Href != "" && m.navigate != nil {
		m.navigate(item.Href)
	}
	m.Close()
	return item, nil
}

// ActivateHighlighted activates the highlighted action.
func (m *Menu) ActivateHighlighted() (Item, error) {
	if !m.state.Open {
		return Item{}, ErrClosed
	}
	i, ok := m.Highlighted()
	if !ok {
		return Item{}, ErrNothingHighlighted
	}
	return m.Activate(i)
}

func (m *Menu) checkAction(index int) error {
	if !m.state.Open {
		return ErrClosed
	}
	if index < 0 || index >= len(m.items) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, index, len(m.items))
	}
	if m.items[index].separator {
		return fmt.Errorf("%w: %d", ErrSeparator, index)
	}
	return nil
}

func (m *Menu) step(dir int) error {
	if !m.state.Open {
		return ErrClosed
	}

	from := m.state.Highlighted
	if from < 0 {
		if dir > 0 {
			from = -1
		} else {
			from = len(m.items)
		}
	}

	i := m.seek(from, dir)
	if i < 0 {
		// Ran off the end; wrap around.
		if dir > 0 {
			i = m.seek(-1, dir)
		} else {
			i = m.seek(len(m.items), dir)
		}
	}
	if i < 0 {
		return ErrNoActions
	}
	m.state.Highlighted = i
	return nil
}

// seek returns the first action strictly after from in direction dir, or -1.
func (m *Menu) seek(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.items); i += dir {
		if !m.items[i].separator {
			return i
		}
	}
	return -1
}
