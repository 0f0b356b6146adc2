package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rafabene/loja-backend/internal/domain/entities"
	"github.com/rafabene/loja-backend/internal/domain/errors"
	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/domain/repositories"
)

// ProductService contém a lógica de negócio do catálogo
type ProductService struct {
	productRepo repositories.ProductRepository
	logger      ports.Logger
	limits      repositories.PageLimits
}

// NewProductService cria um novo ProductService
func NewProductService(productRepo repositories.ProductRepository, logger ports.Logger, limits repositories.PageLimits) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
		limits:      limits,
	}
}

// CreateProductInput representa os dados de um novo produto
type CreateProductInput struct {
	Name        string
	Price       decimal.Decimal
	Description string
	ImageURL    string
}

// UpdateProductInput representa uma edição parcial; nil mantém o valor atual
type UpdateProductInput struct {
	Name        *string
	Price       *decimal.Decimal
	Description *string
	ImageURL    *string
}

// ListProducts lista o catálogo com busca pelo nome
func (s *ProductService) ListProducts(ctx context.Context, query repositories.ListQuery) (*Page[*entities.Product], error) {
	query = query.Normalize(s.limits)

	result, err := s.productRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	return newPage(result, query), nil
}

// GetProduct busca um produto por ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*entities.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.ErrProductNotFound
	}
	return product, nil
}

// CreateProduct valida e grava um produto
func (s *ProductService) CreateProduct(ctx context.Context, input CreateProductInput) (*entities.Product, error) {
	product := &entities.Product{
		Name:        strings.TrimSpace(input.Name),
		Price:       input.Price,
		Description: strings.TrimSpace(input.Description),
		ImageURL:    strings.TrimSpace(input.ImageURL),
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product created", "product_id", product.ID, "name", product.Name)
	return product, nil
}

// UpdateProduct aplica uma edição parcial
func (s *ProductService) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*entities.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		s.logger.Warn("update of nonexistent product", "product_id", id)
		return nil, errors.ErrProductNotFound
	}

	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Description != nil {
		product.Description = strings.TrimSpace(*input.Description)
	}
	if input.ImageURL != nil {
		product.ImageURL = strings.TrimSpace(*input.ImageURL)
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product updated", "product_id", product.ID)
	return product, nil
}

// DeleteProduct remove o produto dos carrinhos e do catálogo; pedidos não mudam
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		s.logger.Warn("delete of nonexistent product", "product_id", id)
		return errors.ErrProductNotFound
	}

	s.logger.Info("product deleted", "product_id", id)
	return nil
}
