package email

import (
	"bytes"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const confirmationSubject = "You're on the nrml.io list"

const confirmationText = `Thanks for signing up for nrml.io.

We're onboarding early teams in small batches and will reach out
personally when your spot opens up.

- The nrml.io team
`

// Confirmation builds the signup confirmation email for one address.
func Confirmation(to string) (SendOptions, error) {
	var buf bytes.Buffer
	if err := confirmationHTML().Render(&buf); err != nil {
		return SendOptions{}, err
	}

	return SendOptions{
		To:      to,
		Subject: confirmationSubject,
		Text:    confirmationText,
		HTML:    buf.String(),
	}, nil
}

func confirmationHTML() g.Node {
	return h.Doctype(
		h.HTML(
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.TitleEl(g.Text(confirmationSubject)),
			),
			h.Body(h.Style("font-family:Inter,Arial,sans-serif;color:#101828;background:#F9FAFB;padding:32px"),
				h.Table(h.Style("max-width:560px;margin:0 auto;background:#FFFFFF;border-radius:12px;padding:32px"),
					h.Tr(h.Td(
						h.H1(h.Style("font-size:24px;margin:0 0 16px"), g.Text("Thanks for signing up")),
						h.P(g.Text("We're onboarding early teams in small batches and will reach out personally when your spot opens up.")),
						h.P(h.Style("color:#475467"), g.Text("In the meantime, reply to this email with the initiative you'd like to assess first.")),
						h.P(h.Style("margin-top:32px;color:#667085"), g.Text("The nrml.io team")),
					)),
				),
			),
		),
	)
}
