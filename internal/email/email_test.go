package email

import (
	"bytes"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type captureSender struct {
	messages []*gomail.Message
	err      error
}

func (s *captureSender) DialAndSend(m ...*gomail.Message) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, m...)
	return nil
}

func newTestProvider(t *testing.T) (*SMTPProvider, *captureSender) {
	t.Helper()
	tm, err := NewDefaultTemplateManager()
	require.NoError(t, err)

	p := NewSMTPProvider(&SMTPConfig{
		Host:      "smtp.test",
		Port:      587,
		FromEmail: "noreply@jobboard.test",
		FromName:  "Job Board",
	}, tm)
	capture := &captureSender{}
	p.dialer = capture
	return p, capture
}

func render(t *testing.T, m *gomail.Message) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestDefaultTemplates(t *testing.T) {
	tm, err := NewDefaultTemplateManager()
	require.NoError(t, err)
	assert.Contains(t, tm.TemplateNames(), TemplateApplicationStatus)

	html, err := tm.Render(TemplateApplicationStatus, TemplateData{
		"Name":     "Ann",
		"JobTitle": "Go Developer",
		"Company":  "Acme",
		"Status":   "ACCEPTED",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Hello Ann")
	assert.Contains(t, html, "Go Developer")
	assert.Contains(t, html, "ACCEPTED")
}

func TestTemplateManager_EscapesHTML(t *testing.T) {
	tm := NewTemplateManager()
	require.NoError(t, tm.AddTemplate("t", "<p>{{.Name}}</p>"))

	out, err := tm.Render("t", TemplateData{"Name": "<script>"})
	require.NoError(t, err)
	assert.Equal(t, "<p>&lt;script&gt;</p>", out)

	_, err = tm.Render("missing", nil)
	assert.Error(t, err)
}

func TestTemplateManager_LoadTemplates(t *testing.T) {
	fsys := fstest.MapFS{
		"mail/welcome.html": {Data: []byte("Hi {{.Name}}")},
		"mail/readme.txt":   {Data: []byte("ignored")},
	}
	tm := NewTemplateManager()
	require.NoError(t, tm.LoadTemplates(fsys))
	assert.Equal(t, []string{"welcome"}, tm.TemplateNames())
}

func TestSMTPProvider_SendTemplate(t *testing.T) {
	p, capture := newTestProvider(t)

	err := p.SendTemplate([]string{"seeker@example.com"}, "Application status updated", TemplateApplicationStatus, TemplateData{
		"Name":     "Ann",
		"JobTitle": "Go Developer",
		"Company":  "Acme",
		"Status":   "REJECTED",
	})
	require.NoError(t, err)
	require.Len(t, capture.messages, 1)

	m := capture.messages[0]
	assert.Equal(t, []string{"seeker@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Application status updated"}, m.GetHeader("Subject"))
	assert.Contains(t, m.GetHeader("From")[0], "noreply@jobboard.test")
	assert.Contains(t, render(t, m), "text/html")
}

func TestSMTPProvider_Errors(t *testing.T) {
	p, capture := newTestProvider(t)

	assert.Error(t, p.Send(&Email{Subject: "no recipients"}))

	capture.err = errors.New("connection refused")
	err := p.Send(&Email{To: []string{"a@example.com"}, Body: "x"})
	assert.ErrorIs(t, err, capture.err)

	invalid := NewSMTPProvider(&SMTPConfig{Port: 0}, nil)
	assert.Error(t, invalid.Validate())
	assert.Error(t, invalid.SendTemplate([]string{"a@example.com"}, "s", "t", nil))
}

func TestNoopProvider(t *testing.T) {
	var p Provider = &NoopProvider{}
	assert.NoError(t, p.Send(&Email{To: []string{"a@example.com"}}))
	assert.NoError(t, p.SendTemplate(nil, "s", "t", nil))
	assert.NoError(t, p.Validate())
	assert.NoError(t, p.Close())
}
