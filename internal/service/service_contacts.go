package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/portfolio-cms/internal/adapter"
	"github.com/MKhiriev/portfolio-cms/internal/logger"
	"github.com/MKhiriev/portfolio-cms/internal/store"
	"github.com/MKhiriev/portfolio-cms/internal/validators"
	"github.com/MKhiriev/portfolio-cms/models"
)

// contactService is the concrete implementation of ContactService.
type contactService struct {
	contactRepository store.ContactRepository
	notifier          adapter.ContactNotifier

	validator validators.Validator
	logger    *logger.Logger
}

// NewContactService constructs a ContactService. notifier may be nil when
// Telegram delivery is not configured; submissions are still accepted and
// stored with telegramSent left false.
func NewContactService(
	contactRepository store.ContactRepository,
	notifier adapter.ContactNotifier,
	validator validators.Validator,
	logger *logger.Logger,
) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		notifier:          notifier,
		validator:         validator,
		logger:            logger,
	}
}

func (c *contactService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	contacts, err := c.contactRepository.ListContacts(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("contact list failed")
		return nil, fmt.Errorf("contact list failed: %w", err)
	}

	return contacts, nil
}

// SubmitContact implements [ContactService].
//
// The message is persisted first; notification failure never rolls the
// record back or fails the request. The telegramSent flag is flipped only
// after the notifier reports successful delivery.
func (c *contactService) SubmitContact(ctx context.Context, insert models.InsertContact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, insert); err != nil {
		log.Debug().Err(err).Msg("invalid contact payload")
		return models.Contact{}, err
	}

	contact, err := c.contactRepository.CreateContact(ctx, insert)
	if err != nil {
		log.Err(err).Msg("contact creation failed")
		return models.Contact{}, fmt.Errorf("contact creation failed: %w", err)
	}

	if c.notifier == nil {
		return contact, nil
	}

	if err := c.notifier.NotifyContact(ctx, contact); err != nil {
		log.Warn().Err(err).Str("contact_id", contact.ID).Msg("telegram notification failed")
		return contact, nil
	}

	sent, err := c.contactRepository.MarkTelegramSent(ctx, contact.ID)
	if err != nil {
		// Delivery already happened; report the record as stored.
		log.Warn().Err(err).Str("contact_id", contact.ID).Msg("marking telegramSent failed")
		return contact, nil
	}

	return sent, nil
}

func (c *contactService) MarkContactRead(ctx context.Context, id string) (models.Contact, error) {
	contact, err := c.contactRepository.MarkContactRead(ctx, id)
	if err != nil {
		return models.Contact{}, err
	}

	return contact, nil
}
