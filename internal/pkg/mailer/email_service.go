package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendContactMessage(fromName, fromEmail, subject, body string) error
}

type emailService struct {
	dialer       *gomail.Dialer
	senderEmail  string
	senderName   string
	contactInbox string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName, contactInbox string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:       d,
		senderEmail:  senderEmail,
		senderName:   senderName,
		contactInbox: contactInbox,
	}
}

// SendContactMessage relays a contact form submission to the support inbox.
// The visitor's address goes into Reply-To so support can answer directly.
func (s *emailService) SendContactMessage(fromName, fromEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", s.contactInbox)
	m.SetHeader("Reply-To", m.FormatAddress(fromEmail, fromName))
	m.SetHeader("Subject", fmt.Sprintf("[Contact] %s", subject))

	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New contact form message</h2>
			<p><b>From:</b> %s &lt;%s&gt;</p>
			<p><b>Subject:</b> %s</p>
			<hr/>
			<p>%s</p>
		</div>
	`, fromName, fromEmail, subject, body)

	m.SetBody("text/html", html)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to relay contact message from %s: %v\n", fromEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Contact message relayed from %s\n", fromEmail)
	return nil
}
