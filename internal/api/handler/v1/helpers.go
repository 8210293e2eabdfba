package v1

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AkifKA/stock-app-api/internal/api/handler/v1/response"
	"github.com/AkifKA/stock-app-api/internal/api/middleware"
	"github.com/AkifKA/stock-app-api/internal/service"
)

var errMissingUser = errors.New("missing authenticated user")

// notFoundErrs is ordered from the most specific record to the generic
// reference error.
var notFoundErrs = []error{
	service.ErrPurchaseNotFound,
	service.ErrSaleNotFound,
	service.ErrProductNotFound,
	service.ErrCategoryNotFound,
	service.ErrBrandNotFound,
	service.ErrFirmNotFound,
	service.ErrUserNotFound,
}

func getUserIDFromContext(ctx *gin.Context) (uint, *response.Err) {
	userID := ctx.GetUint(middleware.ContextKeyUserID)
	if userID == 0 {
		return 0, response.ErrUnauthorized(errMissingUser)
	}

	return userID, nil
}

func parseIDParam(ctx *gin.Context, name string) (uint, *response.Err) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid %s", name))
	}

	return uint(id), nil
}

// renderServiceErr maps the service error kinds onto HTTP responses. op names
// the failing call for the server log.
func renderServiceErr(ctx *gin.Context, op string, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		response.RenderErr(ctx, response.ErrBadRequest(validationErr))
	case errors.Is(err, service.ErrInvalidQuantity):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidQuantity))
	case errors.Is(err, service.ErrDuplicateName):
		response.RenderErr(ctx, response.ErrConflict(service.ErrDuplicateName))
	case errors.Is(err, service.ErrNotFound):
		response.RenderErr(ctx, response.ErrResourceNotFound(notFoundCause(err)))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", op, err)))
	}
}

func notFoundCause(err error) error {
	for _, target := range notFoundErrs {
		if errors.Is(err, target) {
			return target
		}
	}

	return service.ErrNotFound
}
