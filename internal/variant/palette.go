package variant

import (
	"sort"
	"strconv"
	"strings"
)

// Shade steps of the brand and neutral scales.
var (
	PrimaryShades  = []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}
	GrayShades     = []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}
	SemanticScales = []string{"success", "error", "warning"}
)

var palette = map[Color]string{
	"white": "#FFFFFF",
	"black": "#000000",

	"primary-50":  "#EEF4FF",
	"primary-100": "#E0EAFF",
	"primary-200": "#C7D7FE",
	"primary-300": "#A4BCFD",
	"primary-400": "#8098F9",
	"primary-500": "#6172F3",
	"primary-600": "#444CE7",
	"primary-700": "#3538CD",
	"primary-800": "#2D31A6",
	"primary-900": "#2D3282",

	"gray-50":  "#F9FAFB",
	"gray-100": "#F2F4F7",
	"gray-200": "#EAECF0",
	"gray-300": "#D0D5DD",
	"gray-400": "#98A2B3",
	"gray-500": "#667085",
	"gray-600": "#475467",
	"gray-700": "#344054",
	"gray-800": "#1D2939",
	"gray-900": "#101828",
	"gray-950": "#0C111D",

	"success-50":  "#ECFDF3",
	"success-100": "#D1FADF",
	"success-200": "#A6F4C5",
	"success-400": "#32D583",
	"success-500": "#12B76A",
	"success-600": "#039855",
	"success-700": "#027A48",
	"success-800": "#05603A",
	"success-900": "#054F31",

	"error-50":  "#FEF3F2",
	"error-100": "#FEE4E2",
	"error-200": "#FECDCA",
	"error-400": "#F97066",
	"error-500": "#F04438",
	"error-600": "#D92D20",
	"error-700": "#B42318",
	"error-800": "#912018",
	"error-900": "#7A271A",

	"warning-50":  "#FFFAEB",
	"warning-100": "#FEF0C7",
	"warning-200": "#FEDF89",
	"warning-400": "#FDB022",
	"warning-500": "#F79009",
	"warning-600": "#DC6803",
	"warning-700": "#B54708",
	"warning-800": "#93370D",
	"warning-900": "#7A2E0E",
}

// Hex returns the hex value of a palette token. Transparent and unknown
// tokens report false.
func Hex(c Color) (string, bool) {
	hex, ok := palette[c]
	return hex, ok
}

// Shade builds the token for a scale step, e.g. Shade("gray", 200).
func Shade(scale string, step int) Color {
	return Color(scale + "-" + strconv.Itoa(step))
}

// Scale returns the hex values of one scale keyed by shade step, in the
// nested shape Tailwind's theme configuration expects.
func Scale(name string) map[string]string {
	out := make(map[string]string)
	prefix := name + "-"
	for token, hex := range palette {
		if step, ok := strings.CutPrefix(string(token), prefix); ok {
			out[step] = hex
		}
	}
	return out
}

// Tokens lists every palette token in sorted order.
func Tokens() []Color {
	out := make([]Color, 0, len(palette))
	for token := range palette {
		out = append(out, token)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Palette returns a copy of the token to hex mapping.
func Palette() map[Color]string {
	out := make(map[Color]string, len(palette))
	for token, hex := range palette {
		out[token] = hex
	}
	return out
}
