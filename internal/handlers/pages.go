package handlers

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"time"

	g "maragu.dev/gomponents"

	"github.com/nigellippett2/nrml/internal/apperror"
	"github.com/nigellippett2/nrml/internal/components"
	"github.com/nigellippett2/nrml/internal/logger"
	"github.com/nigellippett2/nrml/internal/menu"
	"github.com/nigellippett2/nrml/internal/metrics"
	"github.com/nigellippett2/nrml/internal/signup"
)

const maxFormBytes = 4 << 10

// Submitter accepts signup form submissions.
type Submitter interface {
	Submit(ctx context.Context, req signup.Request) error
}

// Pages serves the HTML routes.
type Pages struct {
	signup Submitter
	log    *slog.Logger
	now    func() time.Time
}

func NewPages(svc *signup.Service, log *slog.Logger) *Pages {
	return newPages(svc, log)
}

func newPages(s Submitter, log *slog.Logger) *Pages {
	return &Pages{
		signup: s,
		log:    log.With(logger.Scope("pages")),
		now:    time.Now,
	}
}

// Landing serves GET /.
func (p *Pages) Landing(w http.ResponseWriter, r *http.Request) {
	var form components.SignupForm
	if r.URL.Query().Get("signup") == "thanks" {
		form.Notice = signup.MsgThanks
	}
	p.render(w, r, http.StatusOK, "landing", components.LandingPage(form, p.now().Year()))
}

// Signup serves POST /signup. Success redirects back to the landing page so
// a reload does not resubmit; failures re-render the form with a notice.
func (p *Pages) Signup(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		p.signupFailed(w, r, "", apperror.ErrBadRequest.WithMessage(signup.MsgInvalidEmail).WithInternal(err))
		return
	}

	email := r.PostFormValue("email")
	err := p.signup.Submit(r.Context(), signup.Request{
		Email:    email,
		Source:   r.PostFormValue("source"),
		ClientIP: clientIP(r),
	})
	if err != nil {
		p.signupFailed(w, r, email, err)
		return
	}

	http.Redirect(w, r, "/?signup=thanks#signup", http.StatusSeeOther)
}

func (p *Pages) signupFailed(w http.ResponseWriter, r *http.Request, email string, err error) {
	appErr := apperror.As(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		p.log.Error("signup failed", logger.Error(err), slog.Int("status", appErr.HTTPStatus))
	}
	if appErr.HTTPStatus == http.StatusTooManyRequests {
		w.Header().Set("Retry-After", "60")
	}

	form := components.SignupForm{
		Email:  email,
		Notice: appErr.Message,
		Failed: true,
	}
	p.render(w, r, appErr.HTTPStatus, "landing", components.LandingPage(form, p.now().Year()))
}

// Showcase serves GET /styles. ?menu=open renders the demo dropdown open,
// which is also how it works without JavaScript.
func (p *Pages) Showcase(w http.ResponseWriter, r *http.Request) {
	dropdown := menu.New(components.ShowcaseMenuItems())
	if r.URL.Query().Get("menu") == "open" {
		dropdown.Open()
	}
	p.render(w, r, http.StatusOK, "showcase", components.ShowcasePage(dropdown))
}

// NotFound serves every unmatched route.
func (p *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, apperror.ErrNotFound.HTTPStatus, "not_found", components.NotFoundPage())
}

func (p *Pages) render(w http.ResponseWriter, r *http.Request, status int, page string, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	metrics.PageRenders.WithLabelValues(page).Inc()
	if r.Method == http.MethodHead {
		return
	}
	if err := node.Render(w); err != nil {
		p.log.Error("render page", slog.String("page", page), logger.Error(err))
	}
}

// clientIP expects middleware.RealIP to have normalized RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
