package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Stroke paths for the 24x24 outline icon set.
var iconPaths = map[string][]string{
	"settings": {
		"M10.325 4.317c.426-1.756 2.924-1.756 3.35 0a1.724 1.724 0 002.573 1.066c1.543-.94 3.31.826 2.37 2.37a1.724 1.724 0 001.065 2.572c1.756.426 1.756 2.924 0 3.35a1.724 1.724 0 00-1.066 2.573c.94 1.543-.826 3.31-2.37 2.37a1.724 1.724 0 00-2.572 1.065c-.426 1.756-2.924 1.756-3.35 0a1.724 1.724 0 00-2.573-1.066c-1.543.94-3.31-.826-2.37-2.37a1.724 1.724 0 00-1.065-2.572c-1.756-.426-1.756-2.924 0-3.35a1.724 1.724 0 001.066-2.573c-.94-1.543.826-3.31 2.37-2.37.996.608 2.296.07 2.572-1.065z",
		"M15 12a3 3 0 11-6 0 3 3 0 016 0z",
	},
	"check":        {"M5 13l4 4L19 7"},
	"close":        {"M6 18L18 6M6 6l12 12"},
	"warning":      {"M12 9v2m0 4h.01m-6.938 4h13.856c1.54 0 2.502-1.667 1.732-3L13.732 4c-.77-1.333-2.694-1.333-3.464 0L3.34 16c-.77 1.333.192 3 1.732 3z"},
	"info":         {"M13 16h-1v-4h-1m1-4h.01M21 12a9 9 0 11-18 0 9 9 0 0118 0z"},
	"chevron-down": {"M19 9l-7 7-7-7"},
	"home":         {"M3 12l2-2m0 0l7-7 7 7M5 10v10a1 1 0 001 1h3m10-11l2 2m-2-2v10a1 1 0 01-1 1h-3m-6 0a1 1 0 001-1v-4a1 1 0 011-1h2a1 1 0 011 1v4a1 1 0 001 1m-6 0h6"},
	"document":     {"M9 12h6m-6 4h6m2 5H7a2 2 0 01-2-2V5a2 2 0 012-2h5.586a1 1 0 01.707.293l5.414 5.414a1 1 0 01.293.707V19a2 2 0 01-2 2z"},
	"bar-chart":    {"M18 20V10M12 20V4M6 20v-6"},
	"target":       {"M22 12h-4M6 12H2M12 6V2M12 22v-4M20 12a8 8 0 11-16 0 8 8 0 0116 0zM14 12a2 2 0 11-4 0 2 2 0 014 0z"},
	"trend-up":     {"M22 7l-8.5 8.5-5-5L2 17M22 7h-6M22 7v6"},
	"lock":         {"M7 11V7a5 5 0 0110 0v4M5 11h14a2 2 0 012 2v7a2 2 0 01-2 2H5a2 2 0 01-2-2v-7a2 2 0 012-2z"},
	"users":        {"M17 21v-2a4 4 0 00-4-4H5a4 4 0 00-4 4v2M13 7a4 4 0 11-8 0 4 4 0 018 0zM23 21v-2a4 4 0 00-3-3.87M16 3.13a4 4 0 010 7.75"},
	"zap":          {"M13 2L3 14h9l-1 8 10-12h-9l1-8z"},
	"sun":          {"M12 3v1m0 16v1m9-9h-1M4 12H3m15.364 6.364l-.707-.707M6.343 6.343l-.707-.707m12.728 0l-.707.707M6.343 17.657l-.707.707M16 12a4 4 0 11-8 0 4 4 0 018 0z"},
	"moon":         {"M20.354 15.354A9 9 0 018.646 3.646 9.003 9.003 0 0012 21a9.003 9.003 0 008.354-5.646z"},
}

// Icon renders an outline icon. Unknown names render nothing. An empty
// label marks the icon decorative.
func Icon(name, classes, label string) g.Node {
	paths, ok := iconPaths[name]
	if !ok {
		return nil
	}

	return g.El("svg",
		Class(classes),
		g.Attr("fill", "none"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("stroke", "currentColor"),
		g.Attr("data-icon", name),
		g.If(label == "", g.Attr("aria-hidden", "true")),
		g.If(label != "", g.Group([]g.Node{g.Attr("role", "img"), g.Attr("aria-label", label)})),
		g.Group(g.Map(paths, func(d string) g.Node {
			return g.El("path",
				g.Attr("stroke-linecap", "round"),
				g.Attr("stroke-linejoin", "round"),
				g.Attr("stroke-width", "2"),
				g.Attr("d", d),
			)
		})),
	)
}
