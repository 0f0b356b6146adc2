package valueobjects

import (
	"strings"
	"unicode/utf8"

	"github.com/rafabene/loja-backend/internal/domain/errors"
)

// CPFLength é o tamanho exigido do documento
const CPFLength = 11

// CPF é o documento nacional do cliente; único entre usuários
type CPF struct {
	value string
}

// NewCPF valida apenas o tamanho, sem dígitos verificadores
func NewCPF(cpf string) (CPF, error) {
	cpf = strings.TrimSpace(cpf)

	if utf8.RuneCountInString(cpf) != CPFLength {
		return CPF{}, errors.ErrInvalidCPF
	}

	return CPF{value: cpf}, nil
}

// String retorna o valor do CPF
func (c CPF) String() string {
	return c.value
}
