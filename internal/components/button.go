package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nigellippett2/nrml/internal/variant"
)

// ButtonClass returns the class attribute for a role and size, with extra
// classes appended. Role and size are compile-time constants at every call
// site, so resolution failures panic.
func ButtonClass(role variant.Role, size variant.Size, extra string) string {
	classes := variant.MustResolve(role, size).Classes()
	if extra != "" {
		classes += " " + extra
	}
	return classes
}

func variantAttrs(role variant.Role, size variant.Size, extra string) g.Node {
	return g.Group([]g.Node{
		Class(ButtonClass(role, size, extra)),
		g.Attr("data-role", string(role)),
		g.Attr("data-size", string(size)),
	})
}

// VariantButton renders a <button> styled by the variant resolver.
func VariantButton(role variant.Role, size variant.Size, children ...g.Node) g.Node {
	return Button(
		Type("button"),
		variantAttrs(role, size, ""),
		g.Group(children),
	)
}

// VariantSubmit renders a submit button with extra classes.
func VariantSubmit(role variant.Role, size variant.Size, extra string, children ...g.Node) g.Node {
	return Button(
		Type("submit"),
		variantAttrs(role, size, extra),
		g.Group(children),
	)
}

// VariantLink renders an anchor that looks like a button.
func VariantLink(role variant.Role, size variant.Size, href string, children ...g.Node) g.Node {
	return A(
		Href(href),
		variantAttrs(role, size, ""),
		g.Group(children),
	)
}
