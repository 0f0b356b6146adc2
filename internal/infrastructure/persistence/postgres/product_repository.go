package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/loja-backend/internal/domain/entities"
	"github.com/rafabene/loja-backend/internal/domain/repositories"
)

var productListSpec = listSpec{
	searchColumns: []string{"name"},
	sortColumns: map[string]string{
		"nome":        "name",
		"preco":       "price",
		"dataCriacao": "created_at",
	},
	defaultSort: "nome",
}

// ProductRepository implementa repositories.ProductRepository
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository cria um novo ProductRepository
func NewProductRepository(db *gorm.DB) repositories.ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	model := toProductModel(product)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	product.ID = model.ID
	product.CreatedAt = model.CreatedAt
	product.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*entities.Product, error) {
	if !validID(id) {
		return nil, nil
	}

	var model ProductModel
	if err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return toProductEntity(&model), nil
}

func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) error {
	model := toProductModel(product)

	return getDB(ctx, r.db).Model(&ProductModel{BaseModel: BaseModel{ID: product.ID}}).Updates(map[string]any{
		"name":        model.Name,
		"price":       model.Price,
		"description": model.Description,
		"image_url":   model.ImageURL,
	}).Error
}

func (r *ProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}

	result := getDB(ctx, r.db).Where("id = ?", id).Delete(&ProductModel{})
	return result.RowsAffected > 0, result.Error
}

func (r *ProductRepository) List(ctx context.Context, query repositories.ListQuery) (*repositories.ListResult[*entities.Product], error) {
	models, total, err := paginate[ProductModel](getDB(ctx, r.db).Model(&ProductModel{}), productListSpec, query)
	if err != nil {
		return nil, err
	}

	products := make([]*entities.Product, len(models))
	for i := range models {
		products[i] = toProductEntity(&models[i])
	}

	return &repositories.ListResult[*entities.Product]{Items: products, Total: total}, nil
}

func toProductModel(product *entities.Product) *ProductModel {
	return &ProductModel{
		BaseModel:   BaseModel{ID: product.ID},
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func toProductEntity(model *ProductModel) *entities.Product {
	return &entities.Product{
		ID:          model.ID,
		Name:        model.Name,
		Price:       model.Price,
		Description: model.Description,
		ImageURL:    model.ImageURL,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
