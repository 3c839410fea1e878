package email

import (
	"regexp"

	"issavie_backend/internal/logger"
)

var linkPattern = regexp.MustCompile(`https?://\S+`)

// LogProvider writes mail to the log instead of sending it. Used in
// development and tests, where the magic link in the log is the only
// way in.
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) Send(email *Email) error {
	logger.Info("email (dev)",
		"to", email.To,
		"subject", email.Subject,
		"link", linkPattern.FindString(email.Body),
	)
	return nil
}

func (p *LogProvider) SendMagicLink(to, link string) error {
	return p.Send(magicLinkEmail("", to, link))
}

func (p *LogProvider) Close() error {
	return nil
}
