// Package adapter holds outbound integrations with external services.
//
// The only integration today is the Telegram notifier that forwards new
// contact messages to the admin chat. Delivery is best-effort: a failed
// notification is logged by the caller and never fails the originating
// HTTP request.
package adapter

import (
	"context"

	"github.com/MKhiriev/portfolio-cms/models"
)

// ContactNotifier delivers an admin notification for a newly created
// contact message.
type ContactNotifier interface {
	// NotifyContact sends the notification for contact.
	// A nil return means the message was delivered and the caller may
	// flip the contact's telegramSent flag.
	NotifyContact(ctx context.Context, contact models.Contact) error
}
