package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo(mark, word string) g.Node {
	return A(
		Href("/"),
		Class("flex items-center gap-2"),
		Div(
			Class("flex "+mark+" items-center justify-center rounded-lg bg-primary-500 text-white font-bold"),
			g.Text("n"),
		),
		Span(Class(word+" font-bold"), g.Text("nrml.io")),
	)
}

// ThemeToggle flips the dark class on <html>; see /static/js/theme.js.
func ThemeToggle() g.Node {
	return Button(
		Type("button"),
		Class("inline-flex h-10 w-10 items-center justify-center rounded-lg border border-gray-200 dark:border-gray-800 "+
			"text-gray-700 dark:text-gray-300 hover:bg-gray-100 dark:hover:bg-gray-800 transition-colors"),
		g.Attr("data-theme-toggle"),
		g.Attr("aria-label", "Toggle color scheme"),
		Span(Class("dark:hidden"), Icon("moon", "h-5 w-5", "")),
		Span(Class("hidden dark:inline"), Icon("sun", "h-5 w-5", "")),
	)
}

// Tone selects a semantic color scale for alerts and badges.
type Tone string

const (
	ToneNeutral Tone = "gray"
	ToneInfo    Tone = "primary"
	ToneSuccess Tone = "success"
	ToneError   Tone = "error"
	ToneWarning Tone = "warning"
)

var toneIcons = map[Tone]string{
	ToneInfo:    "info",
	ToneSuccess: "check",
	ToneError:   "close",
	ToneWarning: "warning",
}

func Alert(tone Tone, title, body string) g.Node {
	t := string(tone)
	return Div(
		Class("bg-"+t+"-50 dark:bg-"+t+"-900/20 border border-"+t+"-200 dark:border-"+t+"-800 rounded-lg p-4"),
		g.Attr("role", "alert"),
		g.Attr("data-tone", t),
		Div(
			Class("flex items-start gap-3"),
			Icon(toneIcons[tone], "h-5 w-5 text-"+t+"-600 dark:text-"+t+"-400 flex-shrink-0 mt-0.5", ""),
			Div(
				g.If(title != "", P(Class("text-sm font-medium text-"+t+"-700 dark:text-"+t+"-400"), g.Text(title))),
				P(Class("text-sm text-"+t+"-600 dark:text-"+t+"-500 mt-1"), g.Text(body)),
			),
		),
	)
}

func Badge(tone Tone, label string) g.Node {
	t := string(tone)
	classes := "px-2 py-0.5 text-xs font-semibold rounded-full bg-" + t + "-100 dark:bg-" + t + "-900/30 text-" + t + "-700 dark:text-" + t + "-400"
	if tone == ToneNeutral {
		classes = "px-2 py-0.5 text-xs font-semibold rounded-full bg-gray-200 dark:bg-gray-700 text-gray-700 dark:text-gray-300"
	}
	return Span(Class(classes), g.Text(label))
}

func Avatar(initials, size string) g.Node {
	return Div(
		Class(size+" rounded-full bg-primary-500 text-white flex items-center justify-center font-semibold text-sm"),
		g.Text(initials),
	)
}

// SectionHeading is the centered title block above each landing section.
func SectionHeading(title, lead string) g.Node {
	return Div(
		Class("mx-auto max-w-3xl text-center mb-16"),
		H2(Class("text-3xl sm:text-4xl font-bold text-gray-900 dark:text-gray-50 mb-4"), g.Text(title)),
		g.If(lead != "", P(Class("text-lg text-gray-600 dark:text-gray-400"), g.Text(lead))),
	)
}

type Card struct {
	Title       string
	Description string
}

func infoCard(c Card, classes string) g.Node {
	return Div(
		Class(classes),
		H3(Class("font-semibold text-lg text-gray-900 dark:text-gray-50 mb-2"), g.Text(c.Title)),
		P(Class("text-gray-600 dark:text-gray-400 text-sm"), g.Text(c.Description)),
	)
}
