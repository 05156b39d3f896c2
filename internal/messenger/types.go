// Package messenger holds the wire format of the Messenger webhook and Send API.
package messenger

import (
	"encoding/json"
	"fmt"
)

// ObjectPage is the only webhook object this service processes.
const ObjectPage = "page"

// WebhookEnvelope is the top-level body of a webhook POST.
type WebhookEnvelope struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

// Entry is one notification batch for a page.
type Entry struct {
	ID        string           `json:"id"`
	Time      int64            `json:"time"`
	Messaging []MessagingEvent `json:"messaging"`
}

// User identifies a sender or recipient. For senders the ID is a PSID.
type User struct {
	ID string `json:"id"`
}

// EventKind tags a MessagingEvent.
type EventKind int

const (
	// EventKindUnknown covers deliveries, reads and anything else not handled here.
	EventKindUnknown EventKind = iota
	EventKindMessage
	EventKindPostback
)

func (k EventKind) String() string {
	switch k {
	case EventKindMessage:
		return "message"
	case EventKindPostback:
		return "postback"
	default:
		return "unknown"
	}
}

// MessagingEvent is a single event of an entry. Exactly one of Message and
// Postback is set, according to Kind.
type MessagingEvent struct {
	Kind      EventKind
	Sender    User
	Recipient User
	Timestamp int64
	Message   *Message
	Postback  *Postback
}

type messagingEventWire struct {
	Sender    User      `json:"sender"`
	Recipient User      `json:"recipient"`
	Timestamp int64     `json:"timestamp"`
	Message   *Message  `json:"message,omitempty"`
	Postback  *Postback `json:"postback,omitempty"`
}

// UnmarshalJSON decodes the event and resolves its kind. A message takes
// precedence over a postback when a payload carries both.
func (e *MessagingEvent) UnmarshalJSON(data []byte) error {
	var wire messagingEventWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("failed to decode messaging event: %w", err)
	}
	*e = MessagingEvent{
		Sender:    wire.Sender,
		Recipient: wire.Recipient,
		Timestamp: wire.Timestamp,
	}
	switch {
	case wire.Message != nil:
		e.Kind = EventKindMessage
		e.Message = wire.Message
	case wire.Postback != nil:
		e.Kind = EventKindPostback
		e.Postback = wire.Postback
	default:
		e.Kind = EventKindUnknown
	}
	return nil
}

// MarshalJSON writes the event back in wire form.
func (e MessagingEvent) MarshalJSON() ([]byte, error) {
	wire := messagingEventWire{
		Sender:    e.Sender,
		Recipient: e.Recipient,
		Timestamp: e.Timestamp,
	}
	switch e.Kind {
	case EventKindMessage:
		wire.Message = e.Message
	case EventKindPostback:
		wire.Postback = e.Postback
	}
	return json.Marshal(wire)
}

// MessageKind tags the content of a Message.
type MessageKind int

const (
	MessageKindEmpty MessageKind = iota
	MessageKindText
	MessageKindAttachment
)

// Message is an inbound message from a user.
type Message struct {
	MID         string       `json:"mid,omitempty"`
	Text        string       `json:"text,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	// IsEcho marks messages sent by the page itself.
	IsEcho bool `json:"is_echo,omitempty"`
}

// Kind resolves the message content. Text wins over attachments.
func (m *Message) Kind() MessageKind {
	switch {
	case m == nil:
		return MessageKindEmpty
	case m.Text != "":
		return MessageKindText
	case len(m.Attachments) > 0:
		return MessageKindAttachment
	default:
		return MessageKindEmpty
	}
}

// Attachment is a media item attached to an inbound message.
type Attachment struct {
	Type    string            `json:"type"`
	Payload AttachmentPayload `json:"payload"`
}

// AttachmentPayload carries the download URL of an attachment.
type AttachmentPayload struct {
	URL string `json:"url,omitempty"`
}

// Postback is a button click carrying the button's payload token.
type Postback struct {
	Title   string `json:"title,omitempty"`
	Payload string `json:"payload"`
}
