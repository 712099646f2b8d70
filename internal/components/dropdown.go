package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nigellippett2/nrml/internal/menu"
)

const (
	menuItemClass        = "block px-4 py-2 text-sm transition-colors"
	menuItemIdleClass    = "text-gray-700 dark:text-gray-300 hover:bg-gray-50 dark:hover:bg-gray-800"
	menuItemFocusedClass = "bg-gray-100 dark:bg-gray-800 text-gray-900 dark:text-gray-50"
)

// DropdownMenu renders a disclosure menu from its current state. The
// trigger children are wrapped in the toggle button; /static/js/dropdown.js
// drives the same states in the browser.
func DropdownMenu(id string, m *menu.Menu, trigger ...g.Node) g.Node {
	state := m.State()
	listID := id + "-items"

	return Div(
		ID(id),
		Class("relative inline-block text-left"),
		g.Attr("data-dropdown"),
		Button(
			Type("button"),
			Class("inline-flex items-center gap-2"),
			g.Attr("data-dropdown-trigger"),
			g.Attr("aria-haspopup", "menu"),
			g.Attr("aria-expanded", strconv.FormatBool(state.Open)),
			g.Attr("aria-controls", listID),
			g.Group(trigger),
		),
		Div(
			ID(listID),
			Class("absolute right-0 z-10 mt-2 w-56 origin-top-right rounded-lg bg-white dark:bg-gray-900 "+
				"border border-gray-200 dark:border-gray-800 shadow-lg ring-1 ring-black ring-opacity-5 focus:outline-none"),
			g.Attr("role", "menu"),
			g.Attr("data-dropdown-items"),
			g.If(!state.Open, g.Attr("hidden")),
			Div(
				Class("py-1"),
				g.Group(dropdownItems(m.Items(), state)),
			),
		),
	)
}

func dropdownItems(items []menu.Item, state menu.State) []g.Node {
	nodes := make([]g.Node, 0, len(items))
	for i, item := range items {
		if item.IsSeparator() {
			nodes = append(nodes, Div(
				Class("my-1 h-px bg-gray-200 dark:bg-gray-800"),
				g.Attr("role", "separator"),
			))
			continue
		}

		href := item.Href
		if href == "" {
			href = "#"
		}
		focused := state.Highlighted == i
		stateClass := menuItemIdleClass
		if focused {
			stateClass = menuItemFocusedClass
		}

		nodes = append(nodes, A(
			Href(href),
			Class(menuItemClass+" "+stateClass),
			g.Attr("role", "menuitem"),
			g.Attr("tabindex", "-1"),
			g.Attr("data-index", strconv.Itoa(i)),
			g.If(focused, g.Attr("data-focus", "true")),
			g.Text(item.Label),
		))
	}
	return nodes
}
