package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider delivers mail over SMTP via gomail.
type SMTPProvider struct {
	config Config
	dialer *gomail.Dialer
}

func NewSMTPProvider(config Config) (*SMTPProvider, error) {
	if config.Host == "" || config.Port == 0 {
		return nil, fmt.Errorf("smtp host and port required")
	}
	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}, nil
}

func (p *SMTPProvider) from() string {
	if p.config.FromName != "" {
		return fmt.Sprintf("%s <%s>", p.config.FromName, p.config.FromEmail)
	}
	return p.config.FromEmail
}

func (p *SMTPProvider) Send(email *Email) error {
	m := gomail.NewMessage()
	from := email.From
	if from == "" {
		from = p.from()
	}
	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/plain", email.Body)
	if email.HTMLBody != "" {
		m.AddAlternative("text/html", email.HTMLBody)
	}
	return p.dialer.DialAndSend(m)
}

func (p *SMTPProvider) SendMagicLink(to, link string) error {
	return p.Send(magicLinkEmail(p.from(), to, link))
}

func (p *SMTPProvider) Close() error {
	return nil
}
