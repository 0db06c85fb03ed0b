// Package mailer defines the provider-neutral email message and the Sender
// interface implemented by the mailjet and resend packages.
package mailer

import (
	"context"
	"net/mail"
)

// Address is a mailbox with an optional display name.
type Address struct {
	Email string
	Name  string
}

// String formats the address for a mail header: the bare email, or a quoted
// (RFC 2047 encoded when needed) display name followed by <email>.
func (a Address) String() string {
	if a.Name == "" {
		return a.Email
	}
	return (&mail.Address{Name: a.Name, Address: a.Email}).String()
}

// Message is a fully rendered email ready for a provider.
type Message struct {
	From     Address
	To       []Address
	Bcc      []Address
	ReplyTo  *Address
	Subject  string
	TextPart string
	HTMLPart string
}

// Validate checks the minimum a provider needs to accept the message.
func (m *Message) Validate() error {
	if len(m.To) == 0 || m.To[0].Email == "" {
		return ErrNoRecipient
	}
	if m.Subject == "" {
		return ErrNoSubject
	}
	if m.HTMLPart == "" && m.TextPart == "" {
		return ErrNoContent
	}
	return nil
}

// SentMessage describes one message accepted by the provider.
type SentMessage struct {
	ID     string
	Status string
}

// Result holds the outcome of a successful send.
type Result struct {
	Messages []SentMessage
}

// Sender delivers messages through an email provider.
type Sender interface {
	// Send delivers msg. A nil error always comes with a Result holding at
	// least one sent message.
	Send(ctx context.Context, msg *Message) (*Result, error)

	// Configured reports whether the provider credentials are present.
	Configured() bool

	// Name is the provider name used in logs.
	Name() string
}
