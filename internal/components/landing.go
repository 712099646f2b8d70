package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/nigellippett2/nrml/internal/variant"
)

// SignupForm is the state of the signup section for one render.
type SignupForm struct {
	Email string
	// Notice is shown under the form; Failed selects error styling.
	Notice string
	Failed bool
}

// LandingPage composes the full marketing page.
func LandingPage(form SignupForm, year int) g.Node {
	return Layout(
		PageConfig{},
		Navbar(),
		Main(
			Hero(),
			Features(),
			Assessment(),
			Workflow(),
			UseCases(),
			TechStack(),
			FAQ(),
			Signup(form),
		),
		PageFooter(year),
	)
}

func Navbar() g.Node {
	return Nav(
		Class("border-b border-gray-200 dark:border-gray-800 bg-white dark:bg-gray-950"),
		Div(
			Class("mx-auto max-w-7xl px-6 py-4"),
			Div(
				Class("flex items-center justify-between"),
				Logo("h-10 w-10 text-lg", "text-xl text-gray-900 dark:text-gray-50"),
				Div(
					Class("flex items-center gap-4"),
					ThemeToggle(),
					VariantLink(variant.RolePrimary, variant.SizeSmall, "#signup", g.Text("Get Started")),
				),
			),
		),
	)
}

func Hero() g.Node {
	return Section(
		ID("hero"),
		Class("relative overflow-hidden bg-white dark:bg-gray-950"),
		Div(
			Class("mx-auto max-w-7xl px-6 py-16 sm:py-24 lg:py-32"),
			Div(
				Class("text-center"),
				H1(
					Class("text-5xl sm:text-6xl lg:text-7xl font-bold tracking-tight text-gray-900 dark:text-gray-50 mb-6"),
					g.Text("Strategic Initiative Advisory & Management"),
				),
				P(
					Class("text-xl text-gray-600 dark:text-gray-400 mb-8 max-w-3xl mx-auto"),
					g.Text("Evaluate, prioritize, and execute initiatives with data-driven frameworks. Make better strategic decisions for your organization."),
				),
				Div(
					Class("flex flex-col sm:flex-row gap-4 justify-center mb-8"),
					VariantLink(variant.RolePrimary, variant.SizeLarge, "#signup", g.Text("Start Free Trial")),
					VariantLink(variant.RoleOutline, variant.SizeLarge, "#how-it-works", g.Text("View Demo")),
				),
				P(
					Class("text-sm text-gray-500"),
					g.Text("No credit card required • Early access • Cancel anytime"),
				),
			),
		),
	)
}

type Feature struct {
	Icon        string
	Title       string
	Description string
}

func Features() g.Node {
	features := []Feature{
		{"bar-chart", "Initiative Assessment", "Evaluate initiatives across 6 key dimensions with objective scoring methodology."},
		{"target", "Prioritization Framework", "Use weighted scoring to objectively rank and prioritize initiatives for maximum impact."},
		{"trend-up", "Performance Tracking", "Monitor initiative progress, outcomes, and organizational value delivery."},
		{"lock", "Data-Driven Decisions", "Make informed decisions based on comprehensive assessment data and analytics."},
		{"users", "Stakeholder Management", "Manage approvals, ownership, and governance across your organization."},
		{"zap", "Execution Support", "Plan resource allocation, timelines, and sequencing for successful delivery."},
	}

	return Section(
		ID("features"),
		Class("py-20 bg-gray-50 dark:bg-gray-900"),
		Div(
			Class("mx-auto max-w-7xl px-6"),
			SectionHeading("Core Capabilities", "Everything you need to manage initiatives effectively."),
			Div(
				Class("grid md:grid-cols-3 gap-8"),
				g.Group(g.Map(features, func(f Feature) g.Node {
					return Div(
						Class("rounded-lg border border-gray-200 dark:border-gray-800 p-6 bg-white dark:bg-gray-950"),
						Icon(f.Icon, "h-10 w-10 mb-4 text-primary-400", ""),
						H3(Class("font-semibold text-lg text-gray-900 dark:text-gray-50 mb-2"), g.Text(f.Title)),
						P(Class("text-gray-600 dark:text-gray-400 text-sm"), g.Text(f.Description)),
					)
				})),
			),
		),
	)
}

const tileClass = "bg-gray-50 dark:bg-gray-900 rounded-lg p-6 border border-gray-200 dark:border-gray-800"

func Assessment() g.Node {
	dimensions := []Card{
		{"Core Attributes", "Name, service, pain point, and description"},
		{"Strategic Alignment", "Linkage to organizational strategy"},
		{"Outcome Evaluation", "Beneficiary identification and impact measurement"},
		{"Ownership & Governance", "Owner, enabler, and authority approval"},
		{"Capability Assessment", "Resource availability and lag times"},
		{"Cost Evaluation", "Time estimates and cost analysis"},
	}

	return Section(
		ID("assessment"),
		Class("py-20 bg-white dark:bg-gray-950"),
		Div(
			Class("mx-auto max-w-7xl px-6"),
			SectionHeading("Six-Dimension Assessment Model", "Comprehensive evaluation framework for objective initiative assessment."),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-3 gap-6"),
				g.Group(g.Map(dimensions, func(c Card) g.Node { return infoCard(c, tileClass) })),
			),
		),
	)
}

func Workflow() g.Node {
	steps := []Card{
		{"Submit Initiative", "Submit your initiative for assessment."},
		{"Complete Assessment", "Evaluate across six key dimensions."},
		{"Generate Score", "Get objective prioritization score."},
		{"Execute & Track", "Monitor progress and outcomes."},
	}

	nodes := make([]g.Node, 0, len(steps))
	for i, s := range steps {
		nodes = append(nodes, Div(
			Class("text-center"),
			Div(
				Class("mx-auto mb-4 flex h-12 w-12 items-center justify-center rounded-full bg-primary-500 text-white font-bold text-lg"),
				g.Text(strconv.Itoa(i+1)),
			),
			H3(Class("font-semibold text-lg text-gray-900 dark:text-gray-50 mb-2"), g.Text(s.Title)),
			P(Class("text-gray-600 dark:text-gray-400 text-sm"), g.Text(s.Description)),
		))
	}

	return Section(
		ID("how-it-works"),
		Class("py-20 bg-gray-50 dark:bg-gray-900"),
		Div(
			Class("mx-auto max-w-7xl px-6"),
			SectionHeading("How It Works", "Simple, effective process for managing initiatives."),
			Div(Class("grid md:grid-cols-4 gap-8"), g.Group(nodes)),
		),
	)
}

func UseCases() g.Node {
	cases := []Card{
		{"Strategic Planning", "Align initiatives with organizational strategy and long-term goals."},
		{"Digital Transformation", "Assess and prioritize digital transformation initiatives."},
		{"Operational Improvement", "Evaluate process improvement and efficiency initiatives."},
		{"Investment Decisions", "Make data-driven decisions on capital allocation."},
		{"Risk Management", "Identify and prioritize risk mitigation initiatives."},
		{"Change Management", "Plan and track organizational change initiatives."},
	}

	return Section(
		ID("use-cases"),
		Class("py-20 bg-white dark:bg-gray-950"),
		Div(
			Class("mx-auto max-w-7xl px-6"),
			SectionHeading("Built for Every Organization", "From strategy to execution, support every phase of initiative management."),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-3 gap-6"),
				g.Group(g.Map(cases, func(c Card) g.Node { return infoCard(c, tileClass) })),
			),
		),
	)
}

func TechStack() g.Node {
	column := func(title string, items ...string) g.Node {
		return Div(
			H3(Class("font-semibold text-gray-900 dark:text-gray-50 mb-4"), g.Text(title)),
			Ul(
				Class("text-sm text-gray-700 dark:text-gray-300 space-y-2"),
				g.Group(g.Map(items, func(s string) g.Node { return Li(g.Text("✓ " + s)) })),
			),
		)
	}

	return Section(
		ID("technology"),
		Class("py-20 bg-primary-50 dark:bg-primary-900/20 border-y border-primary-200 dark:border-primary-800"),
		Div(
			Class("mx-auto max-w-7xl px-6"),
			Div(
				Class("mx-auto max-w-3xl text-center"),
				H2(Class("text-3xl sm:text-4xl font-bold text-gray-900 dark:text-gray-50 mb-4"), g.Text("Modern Technology Stack")),
				P(Class("text-lg text-gray-700 dark:text-gray-300 mb-8"), g.Text("Built with proven technologies for performance, reliability, and security.")),
				Div(
					Class("grid md:grid-cols-2 gap-8"),
					column("Web", "Server-rendered Go", "Tailwind CSS design tokens", "Works without JavaScript"),
					column("Backend & Data", "Managed PostgreSQL", "Real-time features", "Enterprise security"),
				),
			),
		),
	)
}

type Question struct {
	Q string
	A string
}

func FAQ() g.Node {
	questions := []Question{
		{"How does the assessment framework work?", "The framework evaluates initiatives across six dimensions: core attributes, strategic alignment, outcome evaluation, ownership, capability assessment, and cost evaluation. Each dimension generates scores that feed into an overall priority score."},
		{"Can nrml integrate with existing systems?", "Yes, nrml is built to integrate with your existing tools and systems. We support both REST APIs and real-time data synchronization."},
		{"Is my data secure?", "Absolutely. All data is stored on secure managed infrastructure with enterprise-grade security, encryption, and regular backups."},
		{"How long does implementation take?", "You can get started immediately. Enterprise deployments typically take 2-4 weeks with our team support."},
		{"What support is available?", "We provide comprehensive documentation, onboarding support, and dedicated assistance for enterprise customers."},
	}

	return Section(
		ID("faq"),
		Class("py-20 bg-white dark:bg-gray-950"),
		Div(
			Class("mx-auto max-w-3xl px-6"),
			Div(
				Class("text-center mb-16"),
				H2(Class("text-3xl sm:text-4xl font-bold text-gray-900 dark:text-gray-50 mb-4"), g.Text("Frequently Asked Questions")),
			),
			Div(
				Class("space-y-6"),
				g.Group(g.Map(questions, func(q Question) g.Node {
					return g.El("details",
						Class("group rounded-lg border border-gray-200 dark:border-gray-800 p-6"),
						g.El("summary",
							Class("flex cursor-pointer items-center justify-between font-semibold text-gray-900 dark:text-gray-50"),
							g.Text(q.Q),
							Icon("chevron-down", "h-5 w-5 transition-transform group-open:rotate-180", ""),
						),
						P(Class("mt-4 text-gray-600 dark:text-gray-400"), g.Text(q.A)),
					)
				})),
			),
		),
	)
}

func Signup(form SignupForm) g.Node {
	noticeClass := "mt-3 text-sm text-primary-100"
	if form.Failed {
		noticeClass = "mt-3 text-sm font-medium text-white bg-error-600/80 rounded-lg px-3 py-2"
	}

	return Section(
		ID("signup"),
		Class("py-20 bg-primary-500 text-white"),
		Div(
			Class("mx-auto max-w-4xl px-6 text-center"),
			H2(Class("text-3xl sm:text-4xl font-bold mb-4"), g.Text("Ready to Improve Initiative Management?")),
			P(Class("text-xl mb-8 text-primary-50"), g.Text("Start your free trial today. No credit card required.")),
			g.El("form",
				g.Attr("method", "post"),
				g.Attr("action", "/signup#signup"),
				Class("max-w-md mx-auto mb-6"),
				Div(
					Class("flex flex-col sm:flex-row gap-3"),
					g.El("label", g.Attr("for", "signup-email"), Class("sr-only"), g.Text("Email address")),
					Input(
						ID("signup-email"),
						Type("email"),
						Name("email"),
						Value(form.Email),
						Placeholder("your.email@company.com"),
						g.Attr("autocomplete", "email"),
						Required(),
						Class("flex-1 px-4 py-3 rounded-lg text-gray-900 focus:outline-none focus:ring-2 focus:ring-white"),
						g.If(form.Failed, g.Attr("aria-invalid", "true")),
					),
					Input(Type("hidden"), Name("source"), Value("landing")),
					VariantSubmit(variant.RolePrimary, variant.SizeLarge,
						"bg-white text-primary-500 hover:bg-gray-100 dark:bg-white dark:text-primary-500",
						g.Text("Get Started"),
					),
				),
				g.If(form.Notice != "", P(
					Class(noticeClass),
					g.Attr("role", "status"),
					g.Attr("data-signup-notice"),
					g.If(form.Failed, g.Attr("data-failed", "true")),
					g.If(!form.Failed, g.Text("✓ ")),
					g.Text(form.Notice),
				)),
			),
			P(Class("text-sm text-primary-100"), g.Text("Cancel anytime • Early access • Support available")),
		),
	)
}

func PageFooter(year int) g.Node {
	column := func(title string, links ...string) g.Node {
		return Div(
			H4(Class("font-semibold text-white mb-4"), g.Text(title)),
			Ul(
				Class("space-y-2 text-sm"),
				g.Group(g.Map(links, func(l string) g.Node {
					return Li(A(Href("#"), Class("text-gray-50 hover:text-primary-400 transition-colors"), g.Text(l)))
				})),
			),
		)
	}

	return Footer(
		Class("bg-gray-900 text-gray-50 py-12"),
		Div(
			Class("mx-auto max-w-7xl px-6"),
			Div(
				Class("grid md:grid-cols-3 gap-8 mb-8"),
				Div(
					Div(Class("mb-4"), Logo("h-8 w-8", "text-lg text-white")),
					P(Class("text-sm text-gray-400"), g.Text("Strategic initiative advisory and management platform.")),
				),
				column("Product", "Features", "Documentation", "Security"),
				column("Company", "About", "Blog", "Contact"),
			),
			Div(
				Class("border-t border-gray-800 pt-8 text-center text-sm"),
				P(g.Textf("© %d nrml.io. All rights reserved.", year)),
			),
		),
	)
}
