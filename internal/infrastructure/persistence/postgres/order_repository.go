package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/loja-backend/internal/domain/entities"
	"github.com/rafabene/loja-backend/internal/domain/errors"
	"github.com/rafabene/loja-backend/internal/domain/repositories"
)

var orderListSpec = listSpec{
	sortColumns: map[string]string{
		"dataPedido": "created_at",
		"total":      "total",
		"status":     "status",
	},
	defaultSort: "-dataPedido",
	preloads:    []string{"Items"},
}

// OrderRepository implementa repositories.OrderRepository
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository cria um novo OrderRepository
func NewOrderRepository(db *gorm.DB) repositories.OrderRepository {
	return &OrderRepository{db: db}
}

// Create grava pedido e itens; chave de checkout repetida vira ErrCartAlreadyCheckedOut
func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	model := toOrderModel(order)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return errors.ErrCartAlreadyCheckedOut
		}
		return err
	}

	order.ID = model.ID
	order.CreatedAt = model.CreatedAt
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*entities.Order, error) {
	if !validID(id) {
		return nil, nil
	}

	var model OrderModel
	if err := getDB(ctx, r.db).Preload("Items").Where("id = ?", id).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return toOrderEntity(&model), nil
}

// ListByUser retorna o histórico do usuário, mais recentes primeiro
func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Order, error) {
	var models []OrderModel

	err := getDB(ctx, r.db).Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*entities.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}
	return orders, nil
}

func (r *OrderRepository) List(ctx context.Context, filters repositories.OrderFilters) (*repositories.ListResult[*entities.Order], error) {
	query := getDB(ctx, r.db).Model(&OrderModel{})
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	models, total, err := paginate[OrderModel](query, orderListSpec, filters.ListQuery)
	if err != nil {
		return nil, err
	}

	orders := make([]*entities.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}

	return &repositories.ListResult[*entities.Order]{Items: orders, Total: total}, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	if !validID(id) {
		return false, nil
	}

	result := getDB(ctx, r.db).Model(&OrderModel{}).Where("id = ?", id).Update("status", status)
	return result.RowsAffected > 0, result.Error
}

func toOrderModel(order *entities.Order) *OrderModel {
	items := make([]OrderItemModel, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemModel{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	return &OrderModel{
		BaseModel:   BaseModel{ID: order.ID},
		UserID:      order.UserID,
		Total:       order.Total,
		Status:      order.Status,
		CheckoutKey: order.CheckoutKey,
		CreatedAt:   order.CreatedAt,
		Items:       items,
	}
}

func toOrderEntity(model *OrderModel) *entities.Order {
	items := make([]entities.OrderItem, len(model.Items))
	for i, item := range model.Items {
		items[i] = entities.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	return &entities.Order{
		ID:          model.ID,
		UserID:      model.UserID,
		Items:       items,
		Total:       model.Total,
		Status:      model.Status,
		CheckoutKey: model.CheckoutKey,
		CreatedAt:   model.CreatedAt,
	}
}
