package models

import "time"

// Contact is a message submitted through the public contact form.
// The inbox is append-only: message content is never edited after
// creation, only the IsRead/TelegramSent flags flip, and once true
// nothing sets them back to false.
type Contact struct {
	ID string `json:"id" bson:"_id"`

	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Subject string `json:"subject" bson:"subject"`
	Message string `json:"message" bson:"message"`

	// IsRead marks the message as seen in the admin inbox.
	IsRead bool `json:"isRead" bson:"isRead"`

	// TelegramSent marks that the notification for this message was
	// delivered to the admin Telegram chat.
	TelegramSent bool `json:"telegramSent" bson:"telegramSent"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// InsertContact is the payload accepted by POST /api/contacts.
// IsRead and TelegramSent are forced to false at creation regardless of
// any such fields present in the request body.
type InsertContact struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Subject string `json:"subject" bson:"subject"`
	Message string `json:"message" bson:"message"`
}
