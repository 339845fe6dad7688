package accounts

import "context"

// Mailer delivers outbound notification email. Implementations talk SMTP, an
// API, or a queue; the package only ever calls it best-effort.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// MailerFunc adapts a function into a Mailer.
type MailerFunc func(ctx context.Context, to, subject, htmlBody string) error

// Send satisfies the Mailer interface.
func (f MailerFunc) Send(ctx context.Context, to, subject, htmlBody string) error {
	if f == nil {
		return nil
	}
	return f(ctx, to, subject, htmlBody)
}

type noopMailer struct{}

func (noopMailer) Send(context.Context, string, string, string) error {
	return nil
}

func normalizeMailer(m Mailer) Mailer {
	if m == nil {
		return noopMailer{}
	}
	return m
}
