package email

import "jobboard_backend/internal/logger"

// NoopProvider не отправляет письма, только пишет их в лог.
// Используется, когда SMTP выключен (локальная разработка, тесты).
type NoopProvider struct{}

func (p *NoopProvider) Send(email *Email) error {
	logger.Debug("Email sending disabled, skipping", "to", email.To, "subject", email.Subject)
	return nil
}

func (p *NoopProvider) SendTemplate(to []string, subject string, templateName string, data TemplateData) error {
	logger.Debug("Email sending disabled, skipping", "to", to, "subject", subject, "template", templateName)
	return nil
}

func (p *NoopProvider) Validate() error { return nil }
func (p *NoopProvider) Close() error    { return nil }
