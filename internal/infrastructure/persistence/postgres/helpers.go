package postgres

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// validID evita consultas com ids que o PostgreSQL rejeitaria como uuid
func validID(id string) bool {
	return uuid.Validate(id) == nil
}

// isNotFound indica registro ausente
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isUniqueViolation depende de TranslateError na configuração do GORM
func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
