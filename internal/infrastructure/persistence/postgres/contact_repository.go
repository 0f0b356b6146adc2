package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/loja-backend/internal/domain/entities"
	"github.com/rafabene/loja-backend/internal/domain/repositories"
	"github.com/rafabene/loja-backend/internal/domain/valueobjects"
)

var messageListSpec = listSpec{
	sortColumns: map[string]string{
		"dataEnvio":  "sent_at",
		"nome":       "name",
		"email":      "email",
		"respondida": "resolved",
	},
	defaultSort: "-dataEnvio",
}

// ContactRepository implementa repositories.ContactRepository
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository cria um novo ContactRepository
func NewContactRepository(db *gorm.DB) repositories.ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, message *entities.ContactMessage) error {
	model := &ContactMessageModel{
		BaseModel: BaseModel{ID: message.ID},
		Name:      message.Name,
		Email:     message.Email.String(),
		Message:   message.Message,
		SentAt:    message.SentAt,
		Resolved:  message.Resolved,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	message.ID = model.ID
	return nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id string) (*entities.ContactMessage, error) {
	if !validID(id) {
		return nil, nil
	}

	var model ContactMessageModel
	if err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return toMessageEntity(&model)
}

func (r *ContactRepository) SetResolved(ctx context.Context, id string, resolved bool) (bool, error) {
	if !validID(id) {
		return false, nil
	}

	result := getDB(ctx, r.db).Model(&ContactMessageModel{}).Where("id = ?", id).Update("resolved", resolved)
	return result.RowsAffected > 0, result.Error
}

func (r *ContactRepository) Delete(ctx context.Context, id string) (bool, error) {
	if !validID(id) {
		return false, nil
	}

	result := getDB(ctx, r.db).Where("id = ?", id).Delete(&ContactMessageModel{})
	return result.RowsAffected > 0, result.Error
}

func (r *ContactRepository) List(ctx context.Context, filters repositories.MessageFilters) (*repositories.ListResult[*entities.ContactMessage], error) {
	query := getDB(ctx, r.db).Model(&ContactMessageModel{})
	if filters.Resolved != nil {
		query = query.Where("resolved = ?", *filters.Resolved)
	}

	models, total, err := paginate[ContactMessageModel](query, messageListSpec, filters.ListQuery)
	if err != nil {
		return nil, err
	}

	messages := make([]*entities.ContactMessage, 0, len(models))
	for i := range models {
		message, err := toMessageEntity(&models[i])
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	return &repositories.ListResult[*entities.ContactMessage]{Items: messages, Total: total}, nil
}

func toMessageEntity(model *ContactMessageModel) (*entities.ContactMessage, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.ContactMessage{
		ID:       model.ID,
		Name:     model.Name,
		Email:    email,
		Message:  model.Message,
		SentAt:   model.SentAt,
		Resolved: model.Resolved,
	}, nil
}
