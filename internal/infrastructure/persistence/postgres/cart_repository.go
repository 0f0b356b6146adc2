package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/loja-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/loja-backend/internal/domain/errors"
	"github.com/rafabene/loja-backend/internal/domain/repositories"
)

// CartRepository implementa repositories.CartRepository
type CartRepository struct {
	db *gorm.DB
}

// NewCartRepository cria um novo CartRepository
func NewCartRepository(db *gorm.DB) repositories.CartRepository {
	return &CartRepository{db: db}
}

// GetOrCreate insere o carrinho se não existir; a unicidade de user_id resolve corridas
func (r *CartRepository) GetOrCreate(ctx context.Context, userID string) (*entities.Cart, error) {
	db := getDB(ctx, r.db)

	cart := CartModel{UserID: userID}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Omit(clause.Associations).Create(&cart).Error
	if err != nil {
		return nil, err
	}

	var model CartModel
	if err := db.Where("user_id = ?", userID).First(&model).Error; err != nil {
		return nil, err
	}

	if err := r.loadItems(db, &model); err != nil {
		return nil, err
	}

	return toCartEntity(&model), nil
}

// LockForCheckout usa SELECT ... FOR UPDATE; precisa rodar dentro de uma transação
func (r *CartRepository) LockForCheckout(ctx context.Context, userID string) (*entities.Cart, error) {
	db := getDB(ctx, r.db)

	var model CartModel
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("user_id = ?", userID).First(&model).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.loadItems(db, &model); err != nil {
		return nil, err
	}

	return toCartEntity(&model), nil
}

func (r *CartRepository) loadItems(db *gorm.DB, model *CartModel) error {
	return db.Preload("Product").
		Where("cart_id = ?", model.ID).
		Order("created_at ASC, product_id ASC").
		Find(&model.Items).Error
}

// AddItem soma a quantidade de forma atômica quando o produto já está no carrinho
func (r *CartRepository) AddItem(ctx context.Context, cartID, productID string, quantity int) error {
	if !validID(productID) {
		return domainerrors.ErrProductNotFound
	}

	db := getDB(ctx, r.db)

	item := CartItemModel{CartID: cartID, ProductID: productID, Quantity: quantity}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Set{{
			Column: clause.Column{Name: "quantity"},
			// adições concorrentes somam, mas nunca passam do máximo por produto
			Value: gorm.Expr(
				"CASE WHEN cart_items.quantity + excluded.quantity > ? THEN ? ELSE cart_items.quantity + excluded.quantity END",
				entities.MaxItemQuantity, entities.MaxItemQuantity,
			),
		}},
	}).Omit(clause.Associations).Create(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domainerrors.ErrProductNotFound
		}
		return err
	}

	return r.bumpVersion(db, cartID)
}

func (r *CartRepository) SetQuantity(ctx context.Context, cartID, productID string, quantity int) (bool, error) {
	if !validID(productID) {
		return false, nil
	}

	db := getDB(ctx, r.db)

	result := db.Model(&CartItemModel{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Update("quantity", quantity)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	return true, r.bumpVersion(db, cartID)
}

// RemoveItem é idempotente: remover um produto ausente não é erro
func (r *CartRepository) RemoveItem(ctx context.Context, cartID, productID string) error {
	if !validID(productID) {
		return nil
	}

	db := getDB(ctx, r.db)

	result := db.Where("cart_id = ? AND product_id = ?", cartID, productID).Delete(&CartItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return nil
	}

	return r.bumpVersion(db, cartID)
}

func (r *CartRepository) Clear(ctx context.Context, cartID string) error {
	db := getDB(ctx, r.db)

	if err := db.Where("cart_id = ?", cartID).Delete(&CartItemModel{}).Error; err != nil {
		return err
	}

	return r.bumpVersion(db, cartID)
}

// bumpVersion invalida a chave de checkout do conteúdo anterior
func (r *CartRepository) bumpVersion(db *gorm.DB, cartID string) error {
	return db.Model(&CartModel{}).Where("id = ?", cartID).Updates(map[string]any{
		"version":    gorm.Expr("version + 1"),
		"updated_at": time.Now().UTC(),
	}).Error
}

func toCartEntity(model *CartModel) *entities.Cart {
	items := make([]entities.CartItem, 0, len(model.Items))
	for _, item := range model.Items {
		line := entities.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
		if item.Product != nil {
			line.Product = toProductEntity(item.Product)
		}
		items = append(items, line)
	}

	return &entities.Cart{
		ID:        model.ID,
		UserID:    model.UserID,
		Items:     items,
		Version:   model.Version,
		UpdatedAt: model.UpdatedAt,
	}
}
