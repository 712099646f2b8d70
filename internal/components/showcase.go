package components

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nigellippett2/nrml/internal/menu"
	"github.com/nigellippett2/nrml/internal/variant"
)

// ShowcaseSection is one entry of the gallery table of contents.
type ShowcaseSection struct {
	ID    string
	Title string
}

var ShowcaseSections = []ShowcaseSection{
	{"buttons", "Buttons"},
	{"typography", "Typography"},
	{"forms", "Forms"},
	{"colors", "Colors"},
	{"cards", "Cards"},
	{"navigation", "Navigation"},
	{"icons-badges", "Icons & Badges"},
	{"spacing", "Spacing"},
}

// ShowcaseMenuItems are the demo items of the gallery dropdown.
func ShowcaseMenuItems() []menu.Item {
	return []menu.Item{
		menu.Action("Dashboard", "#"),
		menu.Action("Settings", "#"),
		menu.Separator(),
		menu.Action("Sign Out", "#"),
	}
}

// ShowcasePage renders the design-system gallery. dropdown carries the
// state of the demo menu for this render.
func ShowcasePage(dropdown *menu.Menu) g.Node {
	return Layout(
		PageConfig{
			Title:       "Design System - nrml.io",
			Description: "Component and style showcase",
			BodyClass:   "bg-gray-50 dark:bg-gray-900",
		},
		Header(
			Class("sticky top-0 z-50 bg-white dark:bg-gray-950 border-b border-gray-200 dark:border-gray-800"),
			Div(
				Class("max-w-7xl mx-auto px-6 py-4"),
				Div(
					Class("flex items-center justify-between"),
					Div(
						H1(Class("text-2xl font-bold text-gray-900 dark:text-gray-50"), g.Text("Design System")),
						P(Class("text-sm text-gray-600 dark:text-gray-400"), g.Text("Component & Style Showcase (Development Only)")),
					),
					ThemeToggle(),
				),
			),
		),
		Main(
			Class("max-w-7xl mx-auto px-6 py-12"),
			showcaseNav(),
			buttonsSection(),
			typographySection(),
			formsSection(),
			colorsSection(),
			cardsSection(),
			navigationSection(dropdown),
			iconsSection(),
			spacingSection(),
		),
	)
}

func showcaseNav() g.Node {
	return Nav(
		Class("mb-12 p-6 bg-white dark:bg-gray-950 rounded-lg border border-gray-200 dark:border-gray-800"),
		H2(Class("text-lg font-semibold text-gray-900 dark:text-gray-50 mb-4"), g.Text("Quick Navigation")),
		Div(
			Class("grid grid-cols-2 md:grid-cols-4 gap-4 text-sm"),
			g.Group(g.Map(ShowcaseSections, func(s ShowcaseSection) g.Node {
				return A(Href("#"+s.ID), Class("text-primary-600 dark:text-gray-50 hover:underline"), g.Text(s.Title))
			})),
		),
	)
}

func gallerySection(id, title string, children ...g.Node) g.Node {
	return Section(
		ID(id),
		Class("mb-16 scroll-mt-20"),
		H2(
			Class("text-3xl font-bold text-gray-900 dark:text-gray-50 mb-8 pb-3 border-b border-gray-200 dark:border-gray-800"),
			g.Text(title),
		),
		Div(Class("space-y-8"), g.Group(children)),
	)
}

func subSection(title string, children ...g.Node) g.Node {
	return Div(
		Class("bg-white dark:bg-gray-950 rounded-lg border border-gray-200 dark:border-gray-800 p-6"),
		H3(Class("text-lg font-semibold text-gray-900 dark:text-gray-50 mb-4"), g.Text(title)),
		g.Group(children),
	)
}

func buttonsSection() g.Node {
	const cellClass = "text-left p-3 text-sm font-semibold text-gray-900 dark:text-gray-50"

	header := []g.Node{Th(Class(cellClass), g.Text("Variant"))}
	for _, size := range variant.Sizes() {
		header = append(header, Th(Class(cellClass), g.Text(size.Label())))
	}

	rows := g.Map(variant.Roles(), func(role variant.Role) g.Node {
		cells := []g.Node{Td(Class("p-3 text-sm text-gray-700 dark:text-gray-300 capitalize"), g.Text(string(role)))}
		for _, size := range variant.Sizes() {
			cells = append(cells, Td(Class("p-3"), VariantButton(role, size, g.Text("Button"))))
		}
		return Tr(Class("border-b border-gray-200 dark:border-gray-800"), g.Attr("data-role-row", string(role)), g.Group(cells))
	})

	return gallerySection("buttons", "Buttons",
		subSection("Variants",
			Div(
				Class("flex flex-wrap gap-4"),
				g.Group(g.Map(variant.Roles(), func(role variant.Role) g.Node {
					return VariantButton(role, variant.SizeMedium, g.Text(role.Label()+" Button"))
				})),
			),
		),
		subSection("Sizes",
			Div(
				Class("flex flex-wrap items-center gap-4"),
				g.Group(g.Map(variant.Sizes(), func(size variant.Size) g.Node {
					return VariantButton(variant.RolePrimary, size, g.Text(size.Label()))
				})),
			),
		),
		subSection("States",
			Div(
				Class("flex flex-wrap gap-4"),
				VariantButton(variant.RolePrimary, variant.SizeMedium, g.Text("Default")),
				VariantButton(variant.RolePrimary, variant.SizeMedium, Disabled(), g.Text("Disabled")),
			),
		),
		subSection("All Combinations",
			Div(
				Class("overflow-x-auto"),
				Table(
					Class("w-full border-collapse"),
					THead(Tr(Class("border-b border-gray-200 dark:border-gray-800"), g.Group(header))),
					TBody(g.Group(rows)),
				),
			),
		),
	)
}

type typeSample struct {
	Class string
	Label string
	Text  string
}

func typographySection() g.Node {
	display := []typeSample{
		{"text-display-2xl", "display-2xl (72px)", "Display 2XL"},
		{"text-display-xl", "display-xl (60px)", "Display XL"},
		{"text-display-lg", "display-lg (48px)", "Display LG"},
		{"text-display-md", "display-md (36px)", "Display MD"},
		{"text-display-sm", "display-sm (30px)", "Display SM"},
		{"text-display-xs", "display-xs (24px)", "Display XS"},
	}
	const fox = " - The quick brown fox jumps over the lazy dog"
	body := []typeSample{
		{"text-xl", "text-xl (20px)", "Extra Large Text" + fox},
		{"text-lg", "text-lg (18px)", "Large Text" + fox},
		{"text-md", "text-md (16px - default)", "Medium Text" + fox},
		{"text-sm", "text-sm (14px)", "Small Text" + fox},
		{"text-xs", "text-xs (12px)", "Extra Small Text" + fox},
	}

	sample := func(heading bool) func(typeSample) g.Node {
		return func(s typeSample) g.Node {
			var text g.Node
			if heading {
				text = H1(Class(s.Class+" font-bold text-gray-900 dark:text-gray-50"), g.Text(s.Text))
			} else {
				text = P(Class(s.Class+" text-gray-900 dark:text-gray-50"), g.Text(s.Text))
			}
			return Div(P(Class("text-xs text-gray-500 mb-1"), g.Text(s.Label)), text)
		}
	}

	return gallerySection("typography", "Typography",
		subSection("Display Sizes", Div(Class("space-y-4"), g.Group(g.Map(display, sample(true))))),
		subSection("Body Text Sizes", Div(Class("space-y-4"), g.Group(g.Map(body, sample(false))))),
		subSection("Text Colors",
			Div(
				Class("space-y-3"),
				P(Class("text-gray-900 dark:text-gray-50"), g.Text("Primary Text - Highest emphasis")),
				P(Class("text-gray-700 dark:text-gray-300"), g.Text("Secondary Text - High emphasis")),
				P(Class("text-gray-600 dark:text-gray-400"), g.Text("Tertiary Text - Medium emphasis")),
				P(Class("text-gray-500"), g.Text("Quaternary Text - Low emphasis")),
			),
		),
		subSection("Font Weights",
			Div(
				Class("space-y-2"),
				P(Class("font-normal text-gray-900 dark:text-gray-50"), g.Text("Normal Weight (400)")),
				P(Class("font-medium text-gray-900 dark:text-gray-50"), g.Text("Medium Weight (500)")),
				P(Class("font-semibold text-gray-900 dark:text-gray-50"), g.Text("Semibold Weight (600)")),
				P(Class("font-bold text-gray-900 dark:text-gray-50"), g.Text("Bold Weight (700)")),
			),
		),
	)
}

const (
	fieldClass = "w-full px-3.5 py-2.5 rounded-lg bg-white dark:bg-gray-950 text-gray-900 dark:text-gray-50 " +
		"focus:outline-none focus:ring-2 transition-colors"
	fieldBorder = "border border-gray-300 dark:border-gray-700 placeholder:text-gray-500 focus:ring-primary-500 focus:border-transparent"
	labelClass  = "block text-sm font-medium text-gray-900 dark:text-gray-50 mb-1.5"
)

func field(id, label string, control g.Node, hint g.Node) g.Node {
	return Div(
		g.El("label", g.Attr("for", id), Class(labelClass), g.Text(label)),
		control,
		hint,
	)
}

func formsSection() g.Node {
	checkbox := func(id, label string, extra ...g.Node) g.Node {
		return g.El("label",
			Class("flex items-center gap-2 cursor-pointer"),
			Input(ID(id), Type("checkbox"), Class("h-4 w-4 rounded border-gray-300 text-primary-500 focus:ring-2 focus:ring-primary-500"), g.Group(extra)),
			Span(Class("text-sm text-gray-700 dark:text-gray-300"), g.Text(label)),
		)
	}

	return gallerySection("forms", "Forms",
		subSection("Text Inputs",
			Div(
				Class("max-w-md space-y-4"),
				field("demo-text", "Label", Input(ID("demo-text"), Type("text"), Placeholder("Placeholder text"), Class(fieldClass+" "+fieldBorder)), nil),
				field("demo-email", "Required Field*", Input(ID("demo-email"), Type("email"), Required(), Placeholder("email@example.com"), Class(fieldClass+" "+fieldBorder)), nil),
				field("demo-disabled", "Disabled Input", Input(ID("demo-disabled"), Type("text"), Disabled(), Value("Disabled value"),
					Class("w-full px-3.5 py-2.5 rounded-lg bg-gray-100 dark:bg-gray-900 border border-gray-300 dark:border-gray-700 text-gray-500 cursor-not-allowed")), nil),
			),
		),
		subSection("Select Dropdowns",
			Div(
				Class("max-w-md"),
				field("demo-select", "Select an option", Select(
					ID("demo-select"),
					Class(fieldClass+" "+fieldBorder),
					Option(Value(""), g.Text("Select an option")),
					Option(Value("1"), g.Text("Option 1")),
					Option(Value("2"), g.Text("Option 2")),
					Option(Value("3"), g.Text("Option 3")),
				), nil),
			),
		),
		subSection("Validation States",
			Div(
				Class("max-w-md space-y-4"),
				field("demo-error", "Error State",
					Input(ID("demo-error"), Type("text"), g.Attr("aria-invalid", "true"), Class(fieldClass+" border-2 border-error-500 focus:ring-error-500")),
					P(Class("mt-1.5 text-sm text-error-600 dark:text-error-400"), g.Text("This field is required")),
				),
				field("demo-success", "Success State",
					Input(ID("demo-success"), Type("text"), Class(fieldClass+" border-2 border-success-500 focus:ring-success-500")),
					P(Class("mt-1.5 text-sm text-success-600 dark:text-success-400"), g.Text("Looks good!")),
				),
			),
		),
		subSection("Checkboxes",
			Div(
				Class("space-y-3"),
				checkbox("demo-check-1", "Checkbox option 1"),
				checkbox("demo-check-2", "Checkbox option 2 (checked)", Checked()),
				g.El("label",
					Class("flex items-center gap-2 cursor-not-allowed opacity-50"),
					Input(Type("checkbox"), Disabled(), Class("h-4 w-4 rounded border-gray-300")),
					Span(Class("text-sm text-gray-700 dark:text-gray-300"), g.Text("Checkbox option 3 (disabled)")),
				),
			),
		),
	)
}

// swatch renders one palette token with its hex value.
func swatch(token variant.Color, height string) g.Node {
	hex, _ := variant.Hex(token)
	return Div(
		g.Attr("data-token", string(token)),
		Div(
			Class(height+" rounded-lg border border-gray-200 dark:border-gray-800"),
			g.Attr("style", "background-color:"+hex),
		),
		P(Class("mt-2 text-xs text-center text-gray-600 dark:text-gray-400"), g.Text(string(token))),
		P(Class("text-xs text-center text-gray-400 font-mono"), g.Text(strings.ToLower(hex))),
	)
}

func colorsSection() g.Node {
	semantic := []struct {
		Title string
		Scale string
	}{
		{"Success", "success"},
		{"Error", "error"},
		{"Warning", "warning"},
		{"Info/Brand", "primary"},
	}

	return gallerySection("colors", "Colors",
		subSection("Primary Palette",
			Div(Class("grid grid-cols-5 gap-4"), g.Group(g.Map(variant.PrimaryShades, func(step int) g.Node {
				return swatch(variant.Shade("primary", step), "h-20")
			}))),
		),
		subSection("Semantic Colors",
			Div(Class("grid grid-cols-2 md:grid-cols-4 gap-6"), g.Group(g.Map(semantic, func(s struct {
				Title string
				Scale string
			}) g.Node {
				return Div(
					P(Class("text-sm font-semibold text-gray-900 dark:text-gray-50 mb-3"), g.Text(s.Title)),
					Div(
						Class("space-y-2"),
						Div(Class("h-12 rounded-lg bg-"+s.Scale+"-50 border border-"+s.Scale+"-200")),
						Div(Class("h-12 rounded-lg bg-"+s.Scale+"-500")),
						Div(Class("h-12 rounded-lg bg-"+s.Scale+"-600")),
					),
				)
			}))),
		),
		subSection("Neutral Grays",
			Div(Class("grid grid-cols-5 gap-4"), g.Group(g.Map(variant.GrayShades, func(step int) g.Node {
				return swatch(variant.Shade("gray", step), "h-16")
			}))),
		),
	)
}

func cardsSection() g.Node {
	shadows := []string{"shadow-sm", "shadow-md", "shadow-lg", "shadow-xl"}

	return gallerySection("cards", "Cards & Containers",
		subSection("Basic Card",
			Div(
				Class("bg-white dark:bg-gray-950 rounded-lg border border-gray-200 dark:border-gray-800 p-6"),
				H3(Class("text-lg font-semibold text-gray-900 dark:text-gray-50 mb-2"), g.Text("Card Title")),
				P(Class("text-gray-600 dark:text-gray-400"), g.Text("This is a basic card component with padding, border, and rounded corners.")),
			),
		),
		subSection("Alert Cards",
			Div(
				Class("space-y-4"),
				Alert(ToneSuccess, "Success Alert", "This is a success message with relevant information."),
				Alert(ToneError, "Error Alert", "This is an error message indicating something went wrong."),
				Alert(ToneWarning, "Warning Alert", "This is a warning message to draw attention."),
				Alert(ToneInfo, "Info Alert", "This is an informational message with helpful details."),
			),
		),
		subSection("Shadow Variations",
			Div(Class("grid grid-cols-2 md:grid-cols-4 gap-6"), g.Group(g.Map(shadows, func(s string) g.Node {
				return Div(
					Class("bg-white dark:bg-gray-950 rounded-lg p-6 "+s+" border border-gray-200 dark:border-gray-800"),
					P(Class("text-sm text-center text-gray-700 dark:text-gray-300"), g.Text(s)),
				)
			}))),
		),
	)
}

func navigationSection(dropdown *menu.Menu) g.Node {
	navItem := func(icon, label, classes string, bold bool) g.Node {
		textClass := "text-sm"
		if bold {
			textClass = "text-sm font-semibold"
		}
		return Div(
			Class("flex items-center gap-3 px-4 py-2 rounded-lg "+classes),
			Icon(icon, "h-5 w-5", ""),
			Span(Class(textClass), g.Text(label)),
		)
	}

	return gallerySection("navigation", "Navigation Elements",
		subSection("Dropdown Menu",
			DropdownMenu("demo-menu", dropdown,
				Span(
					Class(ButtonClass(variant.RoleOutline, variant.SizeMedium, "")),
					g.Text("Open Menu"),
					Icon("chevron-down", "h-4 w-4 ml-1", ""),
				),
			),
		),
		subSection("Navigation States",
			Div(
				Class("max-w-md space-y-2"),
				navItem("home", "Active Item", "bg-primary-50 dark:bg-primary-900/20 text-primary-600 dark:text-primary-400", true),
				navItem("settings", "Hover State", "bg-gray-100 dark:bg-gray-800 text-gray-700 dark:text-gray-300", false),
				navItem("document", "Default State", "text-gray-700 dark:text-gray-300", false),
			),
		),
	)
}

func iconsSection() g.Node {
	sizes := []string{"h-4 w-4", "h-5 w-5", "h-6 w-6", "h-8 w-8"}

	return gallerySection("icons-badges", "Icons & Badges",
		subSection("Icon Sizes",
			Div(Class("flex items-end gap-8"), g.Group(g.Map(sizes, func(s string) g.Node {
				return Div(
					Class("text-center"),
					Icon("check", s+" mx-auto text-gray-900 dark:text-gray-50", ""),
					P(Class("mt-2 text-xs text-gray-600 dark:text-gray-400"), g.Text(s)),
				)
			}))),
		),
		subSection("Badges",
			Div(
				Class("flex flex-wrap items-center gap-3"),
				Badge(ToneNeutral, "Default Badge"),
				Badge(ToneInfo, "Primary Badge"),
				Badge(ToneSuccess, "Success Badge"),
				Badge(ToneError, "Error Badge"),
				Badge(ToneWarning, "Warning Badge"),
			),
		),
		subSection("Avatars",
			Div(
				Class("flex items-center gap-4"),
				Avatar("JD", "h-8 w-8"),
				Avatar("AB", "h-10 w-10"),
				Avatar("CD", "h-12 w-12"),
			),
		),
	)
}

func spacingSection() g.Node {
	gaps := []int{2, 3, 4, 6, 8, 12}
	paddings := []int{3, 4, 6, 8}
	px := func(step int) string { return strconv.Itoa(step*4) + "px" }

	return gallerySection("spacing", "Spacing & Layout",
		subSection("Common Spacing Scale",
			Div(Class("space-y-3"), g.Group(g.Map(gaps, func(step int) g.Node {
				class := "gap-" + strconv.Itoa(step)
				block := Div(Class("h-12 w-12 bg-primary-500 rounded"))
				return Div(
					P(Class("text-xs text-gray-500 mb-2"), g.Text(class+" ("+px(step)+")")),
					Div(Class("flex "+class), block, block, block),
				)
			}))),
		),
		subSection("Container Padding",
			Div(Class("space-y-4"), g.Group(g.Map(paddings, func(step int) g.Node {
				class := "p-" + strconv.Itoa(step)
				return Div(
					Class("bg-white dark:bg-gray-950 border border-gray-200 dark:border-gray-800 rounded-lg "+class),
					P(Class("text-sm text-gray-700 dark:text-gray-300"), g.Text(class+" ("+px(step)+")")),
				)
			}))),
		),
	)
}
