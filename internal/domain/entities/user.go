package entities

import (
	"strings"
	"time"

	"github.com/rafabene/loja-backend/internal/domain/errors"
	"github.com/rafabene/loja-backend/internal/domain/valueobjects"
)

// MinPasswordLength é o tamanho mínimo de senha aceito no cadastro
const MinPasswordLength = 6

// User representa um usuário do sistema
type User struct {
	ID           string
	Email        valueobjects.Email
	Name         string
	PasswordHash string
	Phone        string
	CPF          valueobjects.CPF
	IsAdmin      bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// RecordLogin marca o instante do último login bem-sucedido
func (u *User) RecordLogin(at time.Time) {
	u.LastLoginAt = &at
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	verr := &errors.ValidationError{}

	if strings.TrimSpace(u.Name) == "" {
		verr.Add("nome", errors.ErrRequiredField)
	}
	if u.Email.String() == "" {
		verr.Add("email", errors.ErrInvalidEmail)
	}
	if strings.TrimSpace(u.Phone) == "" {
		verr.Add("telefone", errors.ErrRequiredField)
	}
	if u.CPF.String() == "" {
		verr.Add("cpf", errors.ErrInvalidCPF)
	}

	return verr.OrNil()
}
