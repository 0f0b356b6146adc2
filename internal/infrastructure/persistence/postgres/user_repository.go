package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/loja-backend/internal/domain/entities"
	"github.com/rafabene/loja-backend/internal/domain/errors"
	"github.com/rafabene/loja-backend/internal/domain/repositories"
	"github.com/rafabene/loja-backend/internal/domain/valueobjects"
)

var userListSpec = listSpec{
	searchColumns: []string{"name", "email"},
	sortColumns: map[string]string{
		"nome":        "name",
		"email":       "email",
		"dataCriacao": "created_at",
		"ultimoLogin": "last_login_at",
		"isAdmin":     "is_admin",
	},
	defaultSort: "nome",
}

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return errors.ErrUserAlreadyExists
		}
		return err
	}

	user.ID = model.ID
	user.CreatedAt = model.CreatedAt
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepository) findOne(ctx context.Context, where string, args ...any) (*entities.User, error) {
	var model UserModel

	if err := getDB(ctx, r.db).Where(where, args...).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

// ExistsByEmailOrCPF faz uma única consulta para os dois campos únicos
func (r *UserRepository) ExistsByEmailOrCPF(ctx context.Context, email, cpf, excludeID string) (bool, error) {
	query := getDB(ctx, r.db).Model(&UserModel{}).Where("(email = ? OR cpf = ?)", email, cpf)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	err := getDB(ctx, r.db).Model(&UserModel{}).Where("id = ?", user.ID).Updates(map[string]any{
		"email":    model.Email,
		"name":     model.Name,
		"phone":    model.Phone,
		"cpf":      model.CPF,
		"is_admin": model.IsAdmin,
	}).Error
	if isUniqueViolation(err) {
		return errors.ErrUserAlreadyExists
	}
	return err
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return getDB(ctx, r.db).Model(&UserModel{}).Where("id = ?", id).Update("last_login_at", at).Error
}

func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}

	result := getDB(ctx, r.db).Where("id = ?", id).Delete(&UserModel{})
	return result.RowsAffected > 0, result.Error
}

func (r *UserRepository) List(ctx context.Context, query repositories.ListQuery) (*repositories.ListResult[*entities.User], error) {
	models, total, err := paginate[UserModel](getDB(ctx, r.db).Model(&UserModel{}), userListSpec, query)
	if err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(models))
	for i := range models {
		user, err := r.toEntity(&models[i])
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return &repositories.ListResult[*entities.User]{Items: users, Total: total}, nil
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	return &UserModel{
		BaseModel:    BaseModel{ID: user.ID},
		Email:        user.Email.String(),
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		Phone:        user.Phone,
		CPF:          user.CPF.String(),
		IsAdmin:      user.IsAdmin,
		CreatedAt:    user.CreatedAt,
		LastLoginAt:  user.LastLoginAt,
	}
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	cpf, err := valueobjects.NewCPF(model.CPF)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:           model.ID,
		Email:        email,
		Name:         model.Name,
		PasswordHash: model.PasswordHash,
		Phone:        model.Phone,
		CPF:          cpf,
		IsAdmin:      model.IsAdmin,
		CreatedAt:    model.CreatedAt,
		LastLoginAt:  model.LastLoginAt,
	}, nil
}
