package variant

import (
	"strconv"
	"strings"
)

// Color is a palette token such as "primary-500", "white" or "transparent".
type Color string

// Transparent means no fill or no visible border.
const Transparent Color = "transparent"

// Colors is the color treatment of a control in one scheme.
type Colors struct {
	Fill   Color
	Text   Color
	Border Color
	Hover  Color
	Active Color
}

// Spacing holds the size-derived attributes.
//
// PaddingX, PaddingY and FontSize are Tailwind scale steps. CellsX and
// CellsY are the terminal equivalents in character cells.
type Spacing struct {
	PaddingX string
	PaddingY string
	FontSize string
	CellsX   int
	CellsY   int
}

// Bundle is the resolved attribute set for one role and size.
type Bundle struct {
	Role        Role
	Size        Size
	BorderWidth int
	Light       Colors
	Dark        Colors
	Spacing     Spacing
}

// Scheme selects the color set for a color-scheme context. Any value other
// than SchemeDark yields the light set.
func (b Bundle) Scheme(s Scheme) Colors {
	if s == SchemeDark {
		return b.Dark
	}
	return b.Light
}

// Base classes shared by every button regardless of role or size.
const baseClasses = "inline-flex items-center justify-center font-semibold rounded-lg transition-colors " +
	"focus:outline-none focus:ring-2 focus:ring-primary-500 focus:ring-offset-2 " +
	"disabled:opacity-50 disabled:cursor-not-allowed"

// Classes renders the bundle as a Tailwind class attribute.
func (b Bundle) Classes() string {
	parts := []string{baseClasses}
	if b.BorderWidth > 0 {
		parts = append(parts, borderWidthClass(b.BorderWidth))
	}
	parts = append(parts, colorClasses("", b.Light)...)
	parts = append(parts, colorClasses("dark:", b.Dark)...)
	parts = append(parts,
		"px-"+b.Spacing.PaddingX,
		"py-"+b.Spacing.PaddingY,
		"text-"+b.Spacing.FontSize,
	)
	return strings.Join(parts, " ")
}

func borderWidthClass(width int) string {
	if width == 1 {
		return "border"
	}
	return "border-" + strconv.Itoa(width)
}

func colorClasses(prefix string, c Colors) []string {
	return []string{
		prefix + "bg-" + string(c.Fill),
		prefix + "text-" + string(c.Text),
		prefix + "border-" + string(c.Border),
		prefix + "hover:bg-" + string(c.Hover),
		prefix + "active:bg-" + string(c.Active),
	}
}
