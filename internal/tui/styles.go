package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nigellippett2/nrml/internal/variant"
)

// ButtonStyle renders a resolved bundle as a lipgloss style for one
// scheme. Transparent fills and borders are left unset so the terminal
// background shows through.
func ButtonStyle(b variant.Bundle, scheme variant.Scheme) lipgloss.Style {
	c := b.Scheme(scheme)

	style := lipgloss.NewStyle().
		Bold(true).
		Padding(b.Spacing.CellsY, b.Spacing.CellsX)

	if hex, ok := variant.Hex(c.Fill); ok {
		style = style.Background(lipgloss.Color(hex))
	}
	if hex, ok := variant.Hex(c.Text); ok {
		style = style.Foreground(lipgloss.Color(hex))
	}
	if b.BorderWidth > 0 {
		border := lipgloss.NormalBorder()
		if b.BorderWidth > 1 {
			border = lipgloss.ThickBorder()
		}
		style = style.Border(border)
		if hex, ok := variant.Hex(c.Border); ok {
			style = style.BorderForeground(lipgloss.Color(hex))
		}
	}
	return style
}

type palette struct {
	text      lipgloss.Color
	muted     lipgloss.Color
	accent    lipgloss.Color
	highlight lipgloss.Color
}

func schemePalette(scheme variant.Scheme) palette {
	hex := func(token variant.Color) lipgloss.Color {
		v, _ := variant.Hex(token)
		return lipgloss.Color(v)
	}
	if scheme == variant.SchemeDark {
		return palette{
			text:      hex("gray-100"),
			muted:     hex("gray-400"),
			accent:    hex("primary-300"),
			highlight: hex("gray-700"),
		}
	}
	return palette{
		text:      hex("gray-900"),
		muted:     hex("gray-500"),
		accent:    hex("primary-500"),
		highlight: hex("gray-100"),
	}
}
