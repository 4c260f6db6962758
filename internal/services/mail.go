package services

import (
	"errors"
	"fmt"
	"html"
	"net"
	"net/textproto"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"github.com/student-sumit04/AI-powered-meeting-notes-summarizer-and-sharer/internal/config"
	"github.com/student-sumit04/AI-powered-meeting-notes-summarizer-and-sharer/internal/domain"
)

const DefaultSubject = "Meeting Summary"

// MailService delivers summaries over SMTP as HTML email.
type MailService struct {
	host string
	port int
	user string
	pass string
}

func NewMailService(cfg config.Config) *MailService {
	return &MailService{
		host: cfg.EmailHost,
		port: cfg.EmailPort,
		user: cfg.EmailUser,
		pass: cfg.EmailPass,
	}
}

// Configured reports whether SMTP credentials are present.
func (s *MailService) Configured() bool {
	return s.user != "" && s.pass != ""
}

// Verify dials the SMTP server once to confirm the configuration works.
func (s *MailService) Verify() error {
	dialer := gomail.NewDialer(s.host, s.port, s.user, s.pass)
	conn, err := dialer.Dial()
	if err != nil {
		return fmt.Errorf("verify smtp config: %w", err)
	}
	return conn.Close()
}

// Send wraps the summary in the HTML template and delivers it to every
// recipient in one message. No retries; a failure is terminal.
func (s *MailService) Send(summary string, recipients []string, subject string) error {
	if strings.TrimSpace(subject) == "" {
		subject = DefaultSubject
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.user)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", buildEmailBody(summary))

	dialer := gomail.NewDialer(s.host, s.port, s.user, s.pass)
	if err := dialer.DialAndSend(msg); err != nil {
		return mapSendError(err)
	}

	return nil
}

// buildEmailBody renders the fixed HTML template. The summary is escaped so
// user-supplied text cannot inject markup into the email.
func buildEmailBody(summary string) string {
	return fmt.Sprintf(`<h2>Meeting Summary</h2>
<div style="white-space: pre-wrap; font-family: Arial, sans-serif; line-height: 1.6;">%s</div>
<br>
<p><em>This summary was generated using AI Meeting Summarizer.</em></p>`,
		html.EscapeString(summary))
}

// mapSendError sorts SMTP failures into the error taxonomy: negative auth
// replies, connection-level errors, everything else.
func mapSendError(err error) error {
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch protoErr.Code {
		case 530, 534, 535:
			return domain.UpstreamError(domain.KindEmailAuth,
				"Email authentication failed. Please check your email credentials.", err)
		}
	}

	var netErr net.Error
	var opErr *net.OpError
	if errors.As(err, &opErr) || errors.As(err, &netErr) {
		return domain.UpstreamError(domain.KindEmailConnection,
			"Failed to connect to email server. Please try again later.", err)
	}

	return domain.UpstreamError(domain.KindEmailSendFailed, "Failed to send email", err)
}
