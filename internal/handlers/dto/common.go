package dto

import (
	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/loja-backend/internal/domain/errors"
)

const defaultBaseURL = "http://localhost:5000"

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs).
// Message repete o detalhe para clientes que só leem {message}.
type ErrorResponse struct {
	*problems.DefaultProblem
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// MessageResponse é o corpo das respostas de sucesso sem recurso
type MessageResponse struct {
	Message string `json:"message"`
}

// NewErrorResponse cria uma nova resposta de erro RFC 7807
func NewErrorResponse(c *gin.Context, problemType, title string, status int, detail string) ErrorResponse {
	// Pegar base URL da configuração
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	problem := problems.NewDetailedProblem(status, detail)
	problem.Type = baseURL + problemType
	problem.Title = title
	problem.Instance = c.Request.URL.Path

	return ErrorResponse{DefaultProblem: problem, Message: detail}
}

// NewErrorResponseI18n cria uma resposta de erro usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponse(c, problemType, T(c, titleKey, params...), status, T(c, detailKey, params...))
}

// Abort escreve o problema com o media type application/problem+json e interrompe a cadeia
func Abort(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(response.Status, response)
}

// Helper functions para respostas de erro comuns com i18n

// ValidationErrorResponseI18n cria uma resposta de erro de validação
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		errors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		400,
	)
	response.Errors = validationErrors
	return response
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404 com a mensagem do erro de domínio
func NotFoundErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeNotFound,
		"error.not_found.title",
		detailKey,
		404,
	)
}

// ConflictErrorResponseI18n cria uma resposta de conflito; a loja responde 400
func ConflictErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeConflict,
		"error.conflict.title",
		detailKey,
		400,
		params...,
	)
}

// BadRequestErrorResponseI18n cria uma resposta 400 para regras de negócio
func BadRequestErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeBadRequest,
		"error.bad_request.title",
		detailKey,
		400,
	)
}

// UnauthorizedErrorResponseI18n cria uma resposta de erro 401
func UnauthorizedErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeUnauthorized,
		"error.unauthorized.title",
		detailKey,
		401,
	)
}

// ForbiddenErrorResponseI18n cria uma resposta de erro 403
func ForbiddenErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeForbidden,
		"error.forbidden.title",
		"error.forbidden.detail",
		403,
	)
}

// RateLimitedErrorResponseI18n cria uma resposta de erro 429
func RateLimitedErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeRateLimited,
		"error.rate_limited.title",
		errors.ErrRateLimited.Error(),
		429,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		errors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		500,
	)
}
