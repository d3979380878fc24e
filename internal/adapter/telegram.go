package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/portfolio-cms/internal/config"
	"github.com/MKhiriev/portfolio-cms/internal/logger"
	"github.com/MKhiriev/portfolio-cms/models"
)

const telegramAPIBase = "https://api.telegram.org"

// telegramNotifier is the Bot API implementation of [ContactNotifier].
// It posts a plain-text summary of the contact message to the configured
// admin chat via the sendMessage method.
type telegramNotifier struct {
	client *resty.Client
	chatID string

	logger *logger.Logger
}

// NewTelegramNotifier constructs a [ContactNotifier] from cfg.
//
// Returns ErrNotConfigured when the bot token or chat id is empty;
// the caller is expected to treat that as "notifications disabled"
// rather than a startup failure.
func NewTelegramNotifier(cfg config.Telegram, log *logger.Logger) (ContactNotifier, error) {
	if cfg.BotToken == "" || cfg.ChatID == "" {
		return nil, ErrNotConfigured
	}

	client := resty.New().
		SetBaseURL(fmt.Sprintf("%s/bot%s", telegramAPIBase, cfg.BotToken)).
		SetTimeout(cfg.RequestTimeout)

	log.Info().Str("chat_id", cfg.ChatID).Msg("telegram notifier created")

	return &telegramNotifier{
		client: client,
		chatID: cfg.ChatID,
		logger: log,
	}, nil
}

// telegramAPIResponse is the envelope every Bot API method responds with.
type telegramAPIResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// NotifyContact implements [ContactNotifier]. It POSTs sendMessage with
// the formatted contact summary and maps any transport or API-level
// failure to ErrDeliveryFailed.
func (t *telegramNotifier) NotifyContact(ctx context.Context, contact models.Contact) error {
	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"chat_id": t.chatID,
			"text":    formatContactMessage(contact),
		}).
		Post("/sendMessage")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	var apiResp telegramAPIResponse
	if err := json.Unmarshal(resp.Body(), &apiResp); err != nil {
		return fmt.Errorf("%w: decoding response: %w", ErrDeliveryFailed, err)
	}
	if !apiResp.OK {
		return fmt.Errorf("%w: http %d: %s", ErrDeliveryFailed, resp.StatusCode(), apiResp.Description)
	}

	return nil
}

func formatContactMessage(contact models.Contact) string {
	var b strings.Builder

	b.WriteString("New contact message\n")
	fmt.Fprintf(&b, "From: %s <%s>\n", contact.Name, contact.Email)
	fmt.Fprintf(&b, "Subject: %s\n\n", contact.Subject)
	b.WriteString(contact.Message)

	return b.String()
}
