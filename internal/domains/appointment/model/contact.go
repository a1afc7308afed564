package model

import (
	"strings"
)

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// Contact is where a confirmation goes. It is either an EmailContact or a
// PhoneContact; ParseContact is the only place that decides which.
type Contact interface {
	Channel() Channel
	String() string
	contact()
}

type EmailContact struct {
	Address string
}

func (EmailContact) Channel() Channel { return ChannelEmail }
func (e EmailContact) String() string { return e.Address }
func (EmailContact) contact() {}

type PhoneContact struct {
	Number string
}

func (PhoneContact) Channel() Channel { return ChannelSMS }
func (p PhoneContact) String() string { return p.Number }
func (PhoneContact) contact() {}

// ParseContact routes anything containing "@" to email and everything else,
// including the empty string, to SMS.
func ParseContact(raw string) Contact {
	if strings.Contains(raw, "@") {
		return EmailContact{Address: raw}
	}

	return PhoneContact{Number: raw}
}
