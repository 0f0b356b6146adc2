package dto

import (
	stderrors "errors"
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rafabene/loja-backend/internal/domain/errors"
	"github.com/rafabene/loja-backend/internal/domain/valueobjects"
)

var registerOnce sync.Once

// RegisterValidators adiciona a tag cpf e faz os erros usarem o nome JSON do campo
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})

		_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
			return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) == valueobjects.CPFLength
		})
	})
}

// BindingErrors traduz falhas de ShouldBind em erros de campo
func BindingErrors(c *gin.Context, err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return []ValidationError{{Field: "body", Message: T(c, "error.invalid_body")}}
	}

	result := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		key := "validation." + fe.Tag()
		if !Has(c, key) {
			key = "validation.invalid"
		}
		result = append(result, ValidationError{
			Field:   fe.Field(),
			Message: T(c, key, map[string]interface{}{"Param": fe.Param()}),
			Tag:     fe.Tag(),
		})
	}
	return result
}

// DomainValidationErrors traduz os campos de um ValidationError do domínio
func DomainValidationErrors(c *gin.Context, verr *errors.ValidationError) []ValidationError {
	result := make([]ValidationError, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		result = append(result, ValidationError{
			Field:   f.Field,
			Message: T(c, f.Err.Error()),
		})
	}
	return result
}

// AbortWithBindingError responde 400 com os campos que falharam no bind
func AbortWithBindingError(c *gin.Context, err error) {
	Abort(c, ValidationErrorResponseI18n(c, BindingErrors(c, err)))
}
