package errors

import (
	"errors"
	"strings"
)

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound          = errors.New("error.user_not_found")
	ErrUserAlreadyExists     = errors.New("error.user_already_exists")
	ErrInvalidCredentials    = errors.New("error.invalid_credentials")
	ErrNoToken               = errors.New("error.no_token")
	ErrInvalidToken          = errors.New("error.invalid_token")
	ErrForbidden             = errors.New("error.forbidden")
	ErrProductNotFound       = errors.New("error.product_not_found")
	ErrProductNotInCart      = errors.New("error.product_not_in_cart")
	ErrEmptyCart             = errors.New("error.empty_cart")
	ErrCartAlreadyCheckedOut = errors.New("error.cart_already_checked_out")
	ErrMessageNotFound       = errors.New("error.message_not_found")
	ErrOrderNotFound         = errors.New("error.order_not_found")
	ErrRateLimited           = errors.New("error.rate_limited")
)

// Domain errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrValidation        = errors.New("error.validation")
	ErrRequiredField     = errors.New("error.required_field")
	ErrInvalidEmail      = errors.New("error.invalid_email")
	ErrInvalidCPF        = errors.New("error.invalid_cpf")
	ErrPasswordTooShort  = errors.New("error.password_too_short")
	ErrInvalidPrice      = errors.New("error.invalid_price")
	ErrPricePrecision    = errors.New("error.price_precision")
	ErrPriceTooHigh      = errors.New("error.price_too_high")
	ErrInvalidQuantity   = errors.New("error.invalid_quantity")
	ErrQuantityTooHigh   = errors.New("error.quantity_too_high")
	ErrInvalidSortKey    = errors.New("error.invalid_sort_key")
	ErrInvalidStatus     = errors.New("error.invalid_status")
	ErrTooManyLogEntries = errors.New("error.too_many_log_entries")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
	ProblemTypeRateLimited  = "/problems/rate-limited"
)

// FieldError associa um erro de domínio ao campo que o causou
type FieldError struct {
	Field string
	Err   error
}

// ValidationError agrega as falhas de validação de uma operação.
// errors.Is funciona tanto com ErrValidation quanto com o erro de cada campo.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError cria um ValidationError com um único campo
func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Err: err}}}
}

// Add registra mais uma falha de campo
func (e *ValidationError) Add(field string, err error) {
	e.Fields = append(e.Fields, FieldError{Field: field, Err: err})
}

// OrNil retorna nil quando nenhum campo falhou
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Err.Error()
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Fields)+1)
	errs = append(errs, ErrValidation)
	for _, f := range e.Fields {
		errs = append(errs, f.Err)
	}
	return errs
}
