package domain

import "net/mail"

// MailMessage is a plain-text email ready to be handed to a mailer.
type MailMessage struct {
	To      []mail.Address
	Subject string
	Text    string
}

// HasRecipients reports whether the message has anyone to go to.
func (m MailMessage) HasRecipients() bool {
	return len(m.To) > 0
}
