package entities

import (
	"strings"
	"time"

	"github.com/rafabene/loja-backend/internal/domain/errors"
	"github.com/rafabene/loja-backend/internal/domain/valueobjects"
)

// ContactMessage é uma mensagem enviada pelo formulário de contato
type ContactMessage struct {
	ID       string
	Name     string
	Email    valueobjects.Email
	Message  string
	SentAt   time.Time
	Resolved bool
}

// Validate exige nome, email e texto
func (m *ContactMessage) Validate() error {
	verr := &errors.ValidationError{}

	if strings.TrimSpace(m.Name) == "" {
		verr.Add("nome", errors.ErrRequiredField)
	}
	if m.Email.String() == "" {
		verr.Add("email", errors.ErrInvalidEmail)
	}
	if strings.TrimSpace(m.Message) == "" {
		verr.Add("mensagem", errors.ErrRequiredField)
	}

	return verr.OrNil()
}
