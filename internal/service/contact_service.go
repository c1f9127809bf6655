package service

import (
	"context"
	"fmt"

	apperrors "vespera/internal/errors"
	"vespera/internal/model"
	"vespera/internal/repository"
)

// ContactService stores contact form submissions.
type ContactService interface {
	Submit(ctx context.Context, name, email, message string) error
}

type contactService struct {
	contacts repository.ContactRepository
}

// NewContactService creates a new contact service.
func NewContactService(contacts repository.ContactRepository) ContactService {
	return &contactService{contacts: contacts}
}

// Submit validates presence of the form fields and persists the message.
func (s *contactService) Submit(ctx context.Context, name, email, message string) error {
	if name == "" || email == "" || message == "" {
		return apperrors.ErrMissingFields
	}

	msg := &model.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := s.contacts.Create(ctx, msg); err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}
	return nil
}
