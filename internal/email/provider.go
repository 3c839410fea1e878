package email

import "fmt"

// Provider sends application email. Delivery is best effort; callers
// treat failures as non-fatal side effects.
type Provider interface {
	Send(email *Email) error

	// SendMagicLink sends the sign-in link. The link expires in 15
	// minutes, which the copy states.
	SendMagicLink(to, link string) error

	Close() error
}

func magicLinkEmail(from, to, link string) *Email {
	return &Email{
		From:    from,
		To:      []string{to},
		Subject: "Sign in to ISSAVIE",
		Body:    fmt.Sprintf("Sign in to ISSAVIE:\n\n%s\n\nThis link expires in 15 minutes.", link),
		HTMLBody: fmt.Sprintf(
			`<p>Sign in to ISSAVIE:</p><p><a href="%s">%s</a></p><p>This link expires in 15 minutes.</p>`,
			link, link,
		),
	}
}
