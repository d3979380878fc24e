package adapter

import "errors"

var (
	// ErrNotConfigured is returned by NewTelegramNotifier when the bot
	// token or chat id is missing. The caller runs without notifications.
	ErrNotConfigured = errors.New("telegram notifier is not configured")

	// ErrDeliveryFailed is returned when the Bot API rejects or fails
	// the sendMessage call.
	ErrDeliveryFailed = errors.New("telegram delivery failed")
)
