package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rafabene/loja-backend/internal/domain/errors"
)

// MaxPrice é o limite exclusivo da coluna NUMERIC(12,2)
var MaxPrice = decimal.New(1, 10)

// Product representa um item do catálogo
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Description string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate garante campos obrigatórios e um preço que a coluna guarda sem arredondar
func (p *Product) Validate() error {
	verr := &errors.ValidationError{}

	if strings.TrimSpace(p.Name) == "" {
		verr.Add("nome", errors.ErrRequiredField)
	}
	switch {
	case !p.Price.IsPositive():
		verr.Add("preco", errors.ErrInvalidPrice)
	case !p.Price.Equal(p.Price.Round(2)):
		verr.Add("preco", errors.ErrPricePrecision)
	case p.Price.GreaterThanOrEqual(MaxPrice):
		verr.Add("preco", errors.ErrPriceTooHigh)
	}
	if strings.TrimSpace(p.Description) == "" {
		verr.Add("descricao", errors.ErrRequiredField)
	}
	if strings.TrimSpace(p.ImageURL) == "" {
		verr.Add("imagem", errors.ErrRequiredField)
	}

	return verr.OrNil()
}
