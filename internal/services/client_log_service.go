package services

import (
	"context"
	"time"

	"github.com/rafabene/loja-backend/internal/domain/entities"
	"github.com/rafabene/loja-backend/internal/domain/errors"
	"github.com/rafabene/loja-backend/internal/domain/ports"
)

// MaxClientLogEntries limita o lote aceito em uma requisição
const MaxClientLogEntries = 500

// ClientLogEntry é uma linha de log enviada pelo frontend
type ClientLogEntry struct {
	Timestamp time.Time
	Origin    string
	Message   string
}

// ClientLogService grava no log do servidor os logs enviados pelo frontend
type ClientLogService struct {
	logger ports.Logger
}

// NewClientLogService cria um novo ClientLogService
func NewClientLogService(logger ports.Logger) *ClientLogService {
	return &ClientLogService{logger: logger.With("source", "client")}
}

// Record grava as entradas e retorna quantas foram aceitas
func (s *ClientLogService) Record(_ context.Context, user *entities.User, entries []ClientLogEntry) (int, error) {
	if len(entries) == 0 {
		return 0, errors.NewValidationError("logs", errors.ErrRequiredField)
	}
	if len(entries) > MaxClientLogEntries {
		return 0, errors.NewValidationError("logs", errors.ErrTooManyLogEntries)
	}

	email := "desconhecido"
	if user != nil {
		email = user.Email.String()
	}

	for _, entry := range entries {
		s.logger.Info(entry.Message,
			"user", email,
			"origin", entry.Origin,
			"client_timestamp", entry.Timestamp,
		)
	}

	return len(entries), nil
}
