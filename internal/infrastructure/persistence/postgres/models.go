package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BaseModel gera o id UUID no lado da aplicação, funcionando também no sqlite
type BaseModel struct {
	ID string `gorm:"type:uuid;primaryKey"`
}

func (m *BaseModel) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// UserModel é o model GORM para usuários
type UserModel struct {
	BaseModel
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string     `gorm:"type:varchar(255);not null;index"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Phone        string     `gorm:"type:varchar(50);not null"`
	CPF          string     `gorm:"column:cpf;type:varchar(11);uniqueIndex;not null"`
	IsAdmin      bool       `gorm:"not null;default:false"`
	CreatedAt    time.Time  `gorm:"autoCreateTime;index"`
	LastLoginAt  *time.Time `gorm:"index"`
}

func (UserModel) TableName() string {
	return "users"
}

// ProductModel é o model GORM para o catálogo
type ProductModel struct {
	BaseModel
	Name        string          `gorm:"type:varchar(255);not null;index"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Description string          `gorm:"type:text;not null"`
	ImageURL    string          `gorm:"column:image_url;type:varchar(1000);not null"`
	CreatedAt   time.Time       `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime"`
}

func (ProductModel) TableName() string {
	return "products"
}

// CartModel tem um único registro por usuário
type CartModel struct {
	BaseModel
	UserID    string          `gorm:"type:uuid;uniqueIndex;not null"`
	Version   int64           `gorm:"not null;default:0"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
	Items     []CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel tem chave composta (cart_id, product_id): uma linha por produto
type CartItemModel struct {
	CartID    string        `gorm:"type:uuid;primaryKey"`
	ProductID string        `gorm:"type:uuid;primaryKey"`
	Quantity  int           `gorm:"not null"`
	CreatedAt time.Time     `gorm:"autoCreateTime"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (CartItemModel) TableName() string {
	return "cart_items"
}

// OrderModel é o retrato de um checkout. checkout_key impede pedido duplicado.
type OrderModel struct {
	BaseModel
	UserID      string           `gorm:"type:uuid;not null;index"`
	Total       decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	Status      string           `gorm:"type:varchar(50);not null;index"`
	CheckoutKey string           `gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt   time.Time        `gorm:"autoCreateTime;index"`
	Items       []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel não referencia products: o pedido sobrevive à exclusão do produto
type OrderItemModel struct {
	OrderID     string          `gorm:"type:uuid;primaryKey"`
	ProductID   string          `gorm:"type:uuid;primaryKey"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}

// ContactMessageModel é o model GORM para mensagens de contato
type ContactMessageModel struct {
	BaseModel
	Name     string    `gorm:"type:varchar(255);not null"`
	Email    string    `gorm:"type:varchar(255);not null"`
	Message  string    `gorm:"type:text;not null"`
	SentAt   time.Time `gorm:"not null;index"`
	Resolved bool      `gorm:"not null;default:false;index"`
}

func (ContactMessageModel) TableName() string {
	return "contact_messages"
}

// Models lista os models na ordem de criação das tabelas
func Models() []any {
	return []any{
		&UserModel{},
		&ProductModel{},
		&CartModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderItemModel{},
		&ContactMessageModel{},
	}
}
