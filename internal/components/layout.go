package components

import (
	"sync"

	"github.com/goccy/go-json"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nigellippett2/nrml/internal/variant"
)

const (
	defaultTitle       = "nrml.io - Strategic Initiative Advisory & Management"
	defaultDescription = "Evaluate, prioritize, and execute initiatives with data-driven frameworks."
)

type PageConfig struct {
	Title       string
	Description string
	// BodyClass replaces the default body background.
	BodyClass string
}

// Display sizes referenced by the text-display-* classes.
var displaySizes = map[string]string{
	"display-2xl": "4.5rem",
	"display-xl":  "3.75rem",
	"display-lg":  "3rem",
	"display-md":  "2.25rem",
	"display-sm":  "1.875rem",
	"display-xs":  "1.5rem",
	"md":          "1rem",
}

// themeBootstrap applies the stored or preferred scheme before first paint.
const themeBootstrap = `(function(){try{var t=localStorage.getItem("theme");` +
	`if(t==="dark"||(!t&&window.matchMedia("(prefers-color-scheme: dark)").matches)){` +
	`document.documentElement.classList.add("dark")}}catch(e){}})();`

var tailwindConfig = sync.OnceValue(func() string {
	colors := map[string]map[string]string{}
	for _, scale := range append([]string{"primary", "gray"}, variant.SemanticScales...) {
		colors[scale] = variant.Scale(scale)
	}

	cfg := map[string]any{
		"darkMode": "class",
		"theme": map[string]any{
			"extend": map[string]any{
				"colors":   colors,
				"fontSize": displaySizes,
			},
		},
	}
	b, err := json.Marshal(cfg)
	if err != nil {
		panic(err)
	}
	return "tailwind.config = " + string(b) + ";"
})

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = defaultTitle
	}
	if config.Description == "" {
		config.Description = defaultDescription
	}
	if config.BodyClass == "" {
		config.BodyClass = "bg-white dark:bg-gray-950"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Script(g.Raw(themeBootstrap)),
				Script(Src("https://cdn.tailwindcss.com")),
				Script(g.Raw(tailwindConfig())),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				Class(config.BodyClass+" text-gray-900 dark:text-gray-50 antialiased"),
				g.Group(content),

				Script(Src("/static/js/theme.js"), g.Attr("defer")),
				Script(Src("/static/js/dropdown.js"), g.Attr("defer")),
			),
		),
	})
}
