package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rafabene/loja-backend/internal/domain/entities"
	"github.com/rafabene/loja-backend/internal/services"
)

func init() {
	// preços saem como número JSON, como o frontend espera
	decimal.MarshalJSONWithoutQuotes = true
}

// CreateProductRequest representa um novo produto
type CreateProductRequest struct {
	Nome      string          `json:"nome" binding:"required,max=200"`
	Preco     decimal.Decimal `json:"preco"`
	Descricao string          `json:"descricao" binding:"required"`
	Imagem    string          `json:"imagem" binding:"required,max=500"`
}

// ToInput converte a requisição para o formato do serviço
func (r CreateProductRequest) ToInput() services.CreateProductInput {
	return services.CreateProductInput{
		Name:        r.Nome,
		Price:       r.Preco,
		Description: r.Descricao,
		ImageURL:    r.Imagem,
	}
}

// UpdateProductRequest representa uma edição parcial
type UpdateProductRequest struct {
	Nome      *string          `json:"nome" binding:"omitempty,max=200"`
	Preco     *decimal.Decimal `json:"preco"`
	Descricao *string          `json:"descricao"`
	Imagem    *string          `json:"imagem" binding:"omitempty,max=500"`
}

// ToInput converte a requisição para o formato do serviço
func (r UpdateProductRequest) ToInput() services.UpdateProductInput {
	return services.UpdateProductInput{
		Name:        r.Nome,
		Price:       r.Preco,
		Description: r.Descricao,
		ImageURL:    r.Imagem,
	}
}

// ProductResponse representa um produto do catálogo
type ProductResponse struct {
	ID          string          `json:"id"`
	Nome        string          `json:"nome"`
	Preco       decimal.Decimal `json:"preco" swaggertype:"number"`
	Descricao   string          `json:"descricao"`
	Imagem      string          `json:"imagem"`
	DataCriacao time.Time       `json:"dataCriacao"`
}

// ProductListResponse é uma página do catálogo
type ProductListResponse struct {
	Produtos     []ProductResponse `json:"produtos"`
	TotalPaginas int               `json:"totalPaginas"`
	PaginaAtual  int               `json:"paginaAtual"`
	Total        int64             `json:"total"`
}

// ToProductResponse converte uma entidade Product
func ToProductResponse(product *entities.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Nome:        product.Name,
		Preco:       product.Price,
		Descricao:   product.Description,
		Imagem:      product.ImageURL,
		DataCriacao: product.CreatedAt,
	}
}

// ToProductListResponse monta a página do catálogo
func ToProductListResponse(page *services.Page[*entities.Product]) ProductListResponse {
	produtos := make([]ProductResponse, len(page.Items))
	for i, p := range page.Items {
		produtos[i] = ToProductResponse(p)
	}

	return ProductListResponse{
		Produtos:     produtos,
		TotalPaginas: page.TotalPages,
		PaginaAtual:  page.CurrentPage,
		Total:        page.Total,
	}
}
