package http

import (
	errs "errors"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/loja-backend/internal/domain/errors"
	"github.com/rafabene/loja-backend/internal/domain/ports"
	"github.com/rafabene/loja-backend/internal/handlers/dto"
)

var notFoundErrors = []error{
	errors.ErrUserNotFound,
	errors.ErrProductNotFound,
	errors.ErrProductNotInCart,
	errors.ErrMessageNotFound,
	errors.ErrOrderNotFound,
}

// respondError converte erros de domínio em problem details.
// Erros desconhecidos viram 500 genérico e só o log recebe o detalhe.
func respondError(c *gin.Context, logger ports.Logger, err error) {
	var verr *errors.ValidationError
	if errs.As(err, &verr) {
		dto.Abort(c, dto.ValidationErrorResponseI18n(c, dto.DomainValidationErrors(c, verr)))
		return
	}

	for _, target := range notFoundErrors {
		if errs.Is(err, target) {
			dto.Abort(c, dto.NotFoundErrorResponseI18n(c, target.Error()))
			return
		}
	}

	switch {
	case errs.Is(err, errors.ErrUserAlreadyExists):
		dto.Abort(c, dto.ConflictErrorResponseI18n(c, errors.ErrUserAlreadyExists.Error()))
	case errs.Is(err, errors.ErrCartAlreadyCheckedOut):
		dto.Abort(c, dto.ConflictErrorResponseI18n(c, errors.ErrCartAlreadyCheckedOut.Error()))
	case errs.Is(err, errors.ErrEmptyCart):
		dto.Abort(c, dto.BadRequestErrorResponseI18n(c, errors.ErrEmptyCart.Error()))
	case errs.Is(err, errors.ErrInvalidCredentials):
		dto.Abort(c, dto.BadRequestErrorResponseI18n(c, errors.ErrInvalidCredentials.Error()))
	case errs.Is(err, errors.ErrNoToken):
		dto.Abort(c, dto.UnauthorizedErrorResponseI18n(c, errors.ErrNoToken.Error()))
	case errs.Is(err, errors.ErrInvalidToken):
		dto.Abort(c, dto.UnauthorizedErrorResponseI18n(c, errors.ErrInvalidToken.Error()))
	case errs.Is(err, errors.ErrForbidden):
		dto.Abort(c, dto.ForbiddenErrorResponseI18n(c))
	case errs.Is(err, errors.ErrRateLimited):
		dto.Abort(c, dto.RateLimitedErrorResponseI18n(c))
	default:
		logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		dto.Abort(c, dto.InternalErrorResponseI18n(c))
	}
}
