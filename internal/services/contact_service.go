package services

import (
	"context"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/rafabene/loja-backend/internal/domain/entities"
	"github.com/rafabene/loja-backend/internal/domain/errors"
	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/domain/repositories"
	"github.com/rafabene/loja-backend/internal/domain/valueobjects"
)

// ContactService contém a lógica da caixa de mensagens de contato
type ContactService struct {
	contactRepo repositories.ContactRepository
	events      ports.EventPublisher
	logger      ports.Logger
	limits      repositories.PageLimits
	policy      *bluemonday.Policy
}

// NewContactService cria um novo ContactService
func NewContactService(
	contactRepo repositories.ContactRepository,
	events ports.EventPublisher,
	logger ports.Logger,
	limits repositories.PageLimits,
) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		events:      events,
		logger:      logger,
		limits:      limits,
		policy:      bluemonday.StrictPolicy(),
	}
}

// ContactInput representa uma mensagem enviada pelo site
type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// CreateMessage grava a mensagem sem marcação HTML, ainda não respondida
func (s *ContactService) CreateMessage(ctx context.Context, input ContactInput) (*entities.ContactMessage, error) {
	message := &entities.ContactMessage{
		Name:    s.sanitize(input.Name),
		Message: s.sanitize(input.Message),
		SentAt:  time.Now().UTC(),
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		verr := errors.NewValidationError("email", err)
		if message.Name == "" {
			verr.Add("nome", errors.ErrRequiredField)
		}
		if message.Message == "" {
			verr.Add("mensagem", errors.ErrRequiredField)
		}
		return nil, verr
	}
	message.Email = email

	if err := message.Validate(); err != nil {
		return nil, err
	}

	if err := s.contactRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	s.logger.Info("contact message received", "message_id", message.ID, "email", message.Email.String())
	publishEvent(ctx, s.events, s.logger, ports.EventContactCreated, map[string]any{
		"id":    message.ID,
		"nome":  message.Name,
		"email": message.Email.String(),
	})

	return message, nil
}

// ListMessages lista mensagens com filtro opcional de respondida
func (s *ContactService) ListMessages(ctx context.Context, filters repositories.MessageFilters) (*Page[*entities.ContactMessage], error) {
	filters.ListQuery = filters.ListQuery.Normalize(s.limits)

	result, err := s.contactRepo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	return newPage(result, filters.ListQuery), nil
}

// GetMessage busca uma mensagem por ID
func (s *ContactService) GetMessage(ctx context.Context, id string) (*entities.ContactMessage, error) {
	message, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, errors.ErrMessageNotFound
	}
	return message, nil
}

// MarkResolved altera o estado de respondida
func (s *ContactService) MarkResolved(ctx context.Context, id string, resolved bool) (*entities.ContactMessage, error) {
	updated, err := s.contactRepo.SetResolved(ctx, id, resolved)
	if err != nil {
		return nil, err
	}
	if !updated {
		s.logger.Warn("update of nonexistent message", "message_id", id)
		return nil, errors.ErrMessageNotFound
	}

	s.logger.Info("message marked", "message_id", id, "resolved", resolved)
	return s.GetMessage(ctx, id)
}

// DeleteMessage remove uma mensagem
func (s *ContactService) DeleteMessage(ctx context.Context, id string) error {
	deleted, err := s.contactRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		s.logger.Warn("delete of nonexistent message", "message_id", id)
		return errors.ErrMessageNotFound
	}

	s.logger.Info("message deleted", "message_id", id)
	return nil
}

// sanitize remove as tags; o texto volta sem entidades porque a resposta é JSON
func (s *ContactService) sanitize(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
}
