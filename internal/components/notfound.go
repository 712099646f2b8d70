package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nigellippett2/nrml/internal/apperror"
	"github.com/nigellippett2/nrml/internal/variant"
)

// ErrorPage renders a full page for a failed HTML request.
func ErrorPage(status int, title, message string) g.Node {
	return Layout(
		PageConfig{Title: title + " - nrml.io"},
		Navbar(),
		Main(
			Class("mx-auto max-w-3xl px-6 py-32 text-center"),
			P(Class("text-sm font-semibold text-primary-600 dark:text-primary-400"), g.Textf("%d", status)),
			H1(Class("mt-4 text-4xl sm:text-5xl font-bold tracking-tight text-gray-900 dark:text-gray-50"), g.Text(title)),
			P(Class("mt-6 text-lg text-gray-600 dark:text-gray-400"), g.Text(message)),
			Div(
				Class("mt-10 flex justify-center gap-4"),
				VariantLink(variant.RolePrimary, variant.SizeMedium, "/", g.Text("Back to home")),
				VariantLink(variant.RoleGhost, variant.SizeMedium, "/#signup", g.Text("Get early access")),
			),
		),
	)
}

func NotFoundPage() g.Node {
	return ErrorPage(apperror.ErrNotFound.HTTPStatus, apperror.ErrNotFound.Message,
		"Sorry, we couldn't find the page you're looking for.")
}

// InternalErrorPage is shown when a request fails unexpectedly.
func InternalErrorPage() g.Node {
	return ErrorPage(apperror.ErrInternal.HTTPStatus, "Something went wrong",
		"An unexpected error occurred. Please try again in a moment.")
}
