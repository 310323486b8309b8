// Package notification describes lifecycle events and the outbox rows that
// carry them to recipients. Delivery is at-least-once: a row stays pending
// until a sender has accepted it.
package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"
)

// Type classifies a notification.
type Type string

const (
	NewRequest   Type = "new_request"
	StatusChange Type = "status_change"
	Assignment   Type = "assignment"
	Completion   Type = "completion"
)

func (t Type) Validate() error {
	switch t {
	case NewRequest, StatusChange, Assignment, Completion:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("notification type", fmt.Errorf("%q is not a known type", string(t)))
	}
}

// DefaultChannels are the channels a notification is queued for.
var DefaultChannels = []string{"database", "mail"}

// Event is what the core reports after a successful state change.
type Event struct {
	Type        Type
	RequestID   kernel.UUID
	RecipientID kernel.UUID
	Message     string
	OccurredAt  time.Time
}

// Notification is one outbox row.
type Notification struct {
	id          kernel.UUID
	recipientID kernel.UUID
	requestID   kernel.UUID
	kind        Type
	message     string
	channels    []string
	sent        bool
	sentAt      *time.Time
	createdAt   time.Time
}

// NewNotification queues ev for its recipient on the default channels.
func NewNotification(ev Event) (*Notification, error) {
	var problems []error
	problems = append(problems, ev.RequestID.Validate(), ev.RecipientID.Validate(), ev.Type.Validate())
	if strings.TrimSpace(ev.Message) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("message"))
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return &Notification{
		id:          kernel.NewUUID(),
		recipientID: ev.RecipientID,
		requestID:   ev.RequestID,
		kind:        ev.Type,
		message:     strings.TrimSpace(ev.Message),
		channels:    append([]string(nil), DefaultChannels...),
		createdAt:   ev.OccurredAt,
	}, nil
}

// Snapshot is the stored form read back by RestoreNotification.
type Snapshot struct {
	ID          kernel.UUID
	RecipientID kernel.UUID
	RequestID   kernel.UUID
	Type        Type
	Message     string
	Channels    []string
	Sent        bool
	SentAt      *time.Time
	CreatedAt   time.Time
}

func RestoreNotification(s Snapshot) (*Notification, error) {
	if err := errors.Join(s.ID.Validate(), s.RecipientID.Validate(), s.RequestID.Validate(), s.Type.Validate()); err != nil {
		return nil, err
	}
	return &Notification{
		id:          s.ID,
		recipientID: s.RecipientID,
		requestID:   s.RequestID,
		kind:        s.Type,
		message:     s.Message,
		channels:    s.Channels,
		sent:        s.Sent,
		sentAt:      s.SentAt,
		createdAt:   s.CreatedAt,
	}, nil
}

func (n *Notification) ID() kernel.UUID          { return n.id }
func (n *Notification) RecipientID() kernel.UUID { return n.recipientID }
func (n *Notification) RequestID() kernel.UUID   { return n.requestID }
func (n *Notification) Type() Type               { return n.kind }
func (n *Notification) Message() string          { return n.message }
func (n *Notification) Channels() []string       { return n.channels }
func (n *Notification) Sent() bool               { return n.sent }
func (n *Notification) SentAt() *time.Time       { return n.sentAt }
func (n *Notification) CreatedAt() time.Time     { return n.createdAt }

// MarkSent records delivery. Marking twice keeps the first timestamp.
func (n *Notification) MarkSent(now time.Time) {
	if n.sent {
		return
	}
	n.sent = true
	n.sentAt = &now
}
