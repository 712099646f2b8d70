package components

import (
	"bytes"
	"strings"
	"testing"

	"github.com/antchfx/htmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"

	"github.com/nigellippett2/nrml/internal/menu"
	"github.com/nigellippett2/nrml/internal/variant"
)

func render(t *testing.T, n g.Node) *html.Node {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	doc, err := htmlquery.Parse(&buf)
	require.NoError(t, err)
	return doc
}

func attr(n *html.Node, name string) string {
	return htmlquery.SelectAttr(n, name)
}

func TestVariantButtonUsesResolvedClasses(t *testing.T) {
	doc := render(t, VariantButton(variant.RoleOutline, variant.SizeLarge, g.Text("Go")))

	btn := htmlquery.FindOne(doc, "//button")
	require.NotNil(t, btn)
	assert.Equal(t, "button", attr(btn, "type"))
	assert.Equal(t, "outline", attr(btn, "data-role"))
	assert.Equal(t, "lg", attr(btn, "data-size"))
	assert.Equal(t, variant.MustResolve(variant.RoleOutline, variant.SizeLarge).Classes(), attr(btn, "class"))
	assert.Equal(t, "Go", htmlquery.InnerText(btn))
}

func TestVariantLink(t *testing.T) {
	doc := render(t, VariantLink(variant.RolePrimary, variant.SizeSmall, "#signup", g.Text("Get Started")))

	a := htmlquery.FindOne(doc, "//a")
	require.NotNil(t, a)
	assert.Equal(t, "#signup", attr(a, "href"))
	assert.Contains(t, attr(a, "class"), "px-3")
}

func TestButtonClassExtra(t *testing.T) {
	classes := ButtonClass(variant.RolePrimary, variant.SizeMedium, "w-full")
	assert.True(t, strings.HasSuffix(classes, " w-full"))
}

func TestDropdownMenuClosed(t *testing.T) {
	m := menu.New(ShowcaseMenuItems())
	doc := render(t, DropdownMenu("demo", m, g.Text("Open Menu")))

	trigger := htmlquery.FindOne(doc, "//button[@data-dropdown-trigger]")
	require.NotNil(t, trigger)
	assert.Equal(t, "false", attr(trigger, "aria-expanded"))
	assert.Equal(t, "demo-items", attr(trigger, "aria-controls"))

	list := htmlquery.FindOne(doc, "//*[@id='demo-items']")
	require.NotNil(t, list)
	assert.NotNil(t, htmlquery.FindOne(doc, "//*[@id='demo-items'][@hidden]"))

	items := htmlquery.Find(doc, "//a[@role='menuitem']")
	require.Len(t, items, 3)
	assert.Equal(t, "Dashboard", htmlquery.InnerText(items[0]))
	assert.Equal(t, "3", attr(items[2], "data-index"))
	assert.Len(t, htmlquery.Find(doc, "//*[@role='separator']"), 1)
}

func TestDropdownMenuOpenHighlighted(t *testing.T) {
	m := menu.New(ShowcaseMenuItems())
	m.Open()
	require.NoError(t, m.Highlight(1))

	doc := render(t, DropdownMenu("demo", m, g.Text("Open Menu")))

	trigger := htmlquery.FindOne(doc, "//button[@data-dropdown-trigger]")
	assert.Equal(t, "true", attr(trigger, "aria-expanded"))
	assert.Nil(t, htmlquery.FindOne(doc, "//*[@id='demo-items'][@hidden]"))

	focused := htmlquery.Find(doc, "//a[@data-focus='true']")
	require.Len(t, focused, 1)
	assert.Equal(t, "Settings", htmlquery.InnerText(focused[0]))
	assert.Contains(t, attr(focused[0], "class"), "bg-gray-100")

	// Idle actions still respond to the pointer without JavaScript.
	for _, idle := range htmlquery.Find(doc, "//a[@role='menuitem'][not(@data-focus)]") {
		assert.Contains(t, attr(idle, "class"), "hover:bg-gray-50")
	}
}

func TestLandingPageSections(t *testing.T) {
	doc := render(t, LandingPage(SignupForm{}, 2026))

	for _, id := range []string{"hero", "features", "assessment", "how-it-works", "use-cases", "technology", "faq", "signup"} {
		assert.NotNil(t, htmlquery.FindOne(doc, "//section[@id='"+id+"']"), id)
	}

	assert.Len(t, htmlquery.Find(doc, "//section[@id='features']//h3"), 6)
	assert.Len(t, htmlquery.Find(doc, "//section[@id='assessment']//h3"), 6)
	assert.Len(t, htmlquery.Find(doc, "//section[@id='how-it-works']//h3"), 4)
	assert.Len(t, htmlquery.Find(doc, "//details"), 5)

	h1 := htmlquery.FindOne(doc, "//h1")
	assert.Equal(t, "Strategic Initiative Advisory & Management", htmlquery.InnerText(h1))

	footer := htmlquery.FindOne(doc, "//footer")
	require.NotNil(t, footer)
	assert.Contains(t, htmlquery.InnerText(footer), "© 2026 nrml.io")
}

func TestLandingPageHeadCarriesPalette(t *testing.T) {
	doc := render(t, LandingPage(SignupForm{}, 2026))

	var config string
	for _, s := range htmlquery.Find(doc, "//head/script") {
		if text := htmlquery.InnerText(s); strings.HasPrefix(text, "tailwind.config") {
			config = text
		}
	}
	require.NotEmpty(t, config)
	assert.Contains(t, config, `"darkMode":"class"`)
	assert.Contains(t, config, `"500":"#6172F3"`)
}

func TestSignupForm(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		doc := render(t, Signup(SignupForm{}))

		form := htmlquery.FindOne(doc, "//form")
		require.NotNil(t, form)
		assert.Equal(t, "post", attr(form, "method"))
		assert.Equal(t, "/signup#signup", attr(form, "action"))
		assert.NotNil(t, htmlquery.FindOne(doc, "//input[@name='email'][@required]"))
		assert.Nil(t, htmlquery.FindOne(doc, "//*[@data-signup-notice]"))
	})

	t.Run("thanks", func(t *testing.T) {
		doc := render(t, Signup(SignupForm{Notice: "Thanks! We'll be in touch soon."}))

		notice := htmlquery.FindOne(doc, "//*[@data-signup-notice]")
		require.NotNil(t, notice)
		assert.Equal(t, "✓ Thanks! We'll be in touch soon.", htmlquery.InnerText(notice))
		assert.Empty(t, attr(notice, "data-failed"))
	})

	t.Run("failed keeps input", func(t *testing.T) {
		doc := render(t, Signup(SignupForm{Email: "nope", Notice: "Please enter a valid email address.", Failed: true}))

		input := htmlquery.FindOne(doc, "//input[@name='email']")
		assert.Equal(t, "nope", attr(input, "value"))
		assert.Equal(t, "true", attr(input, "aria-invalid"))

		notice := htmlquery.FindOne(doc, "//*[@data-signup-notice]")
		require.NotNil(t, notice)
		assert.Equal(t, "true", attr(notice, "data-failed"))
		assert.Equal(t, "Please enter a valid email address.", htmlquery.InnerText(notice))
	})
}

func TestShowcasePage(t *testing.T) {
	doc := render(t, ShowcasePage(menu.New(ShowcaseMenuItems())))

	for _, s := range ShowcaseSections {
		assert.NotNil(t, htmlquery.FindOne(doc, "//section[@id='"+s.ID+"']"), s.ID)
		assert.NotNil(t, htmlquery.FindOne(doc, "//nav//a[@href='#"+s.ID+"']"), s.ID)
	}

	rows := htmlquery.Find(doc, "//tr[@data-role-row]")
	require.Len(t, rows, len(variant.Roles()))
	for _, row := range rows {
		assert.Len(t, htmlquery.Find(row, ".//button"), len(variant.Sizes()))
	}

	assert.NotNil(t, htmlquery.FindOne(doc, "//button[@disabled]"))
	assert.Len(t, htmlquery.Find(doc, "//*[@data-token]"), len(variant.PrimaryShades)+len(variant.GrayShades))

	swatch := htmlquery.FindOne(doc, "//*[@data-token='primary-500']")
	require.NotNil(t, swatch)
	assert.Contains(t, htmlquery.InnerText(swatch), "#6172f3")

	assert.Len(t, htmlquery.Find(doc, "//*[@role='alert']"), 4)
	assert.NotNil(t, htmlquery.FindOne(doc, "//*[@data-theme-toggle]"))
	assert.NotNil(t, htmlquery.FindOne(doc, "//*[@id='demo-menu'][@data-dropdown]"))
}

func TestIcon(t *testing.T) {
	doc := render(t, Icon("check", "h-4 w-4", ""))
	svg := htmlquery.FindOne(doc, "//svg")
	require.NotNil(t, svg)
	assert.Equal(t, "true", attr(svg, "aria-hidden"))

	doc = render(t, Icon("check", "h-4 w-4", "Done"))
	svg = htmlquery.FindOne(doc, "//svg")
	assert.Equal(t, "Done", attr(svg, "aria-label"))
	assert.Empty(t, attr(svg, "aria-hidden"))

	assert.Nil(t, Icon("no-such-icon", "", ""))
}

func TestNotFoundPage(t *testing.T) {
	doc := render(t, NotFoundPage())

	assert.Equal(t, "Page not found", htmlquery.InnerText(htmlquery.FindOne(doc, "//h1")))
	assert.NotNil(t, htmlquery.FindOne(doc, "//main//a[@href='/']"))
}

func TestInternalErrorPage(t *testing.T) {
	doc := render(t, InternalErrorPage())

	assert.Equal(t, "500", htmlquery.InnerText(htmlquery.FindOne(doc, "//main/p[1]")))
	assert.Equal(t, "Something went wrong", htmlquery.InnerText(htmlquery.FindOne(doc, "//h1")))
}
