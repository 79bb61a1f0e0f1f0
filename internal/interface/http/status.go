package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhub/internal/application"
	"taskhub/internal/domain/apperr"
	"taskhub/internal/domain/repository"
	"taskhub/pkg/response"
)

// writeError maps domain errors onto the API envelope. Anything unrecognized
// becomes a plain 500 so internals never leak.
func writeError(c *gin.Context, err error) {
	var verr *apperr.ValidationError
	if errors.As(err, &verr) {
		response.Error[any](c, http.StatusBadRequest, verr.Message, map[string]string{"kind": string(verr.Kind)})
		return
	}

	var eerr *apperr.AlreadyExistsError
	if errors.As(err, &eerr) {
		response.Error[any](c, http.StatusConflict, "email already registered", nil)
		return
	}

	var aerr *apperr.AuthError
	if errors.As(err, &aerr) {
		if aerr.Kind == apperr.InactiveAccount {
			response.Error[any](c, http.StatusForbidden, aerr.Error(), nil)
			return
		}
		response.Error[any](c, http.StatusUnauthorized, aerr.Error(), nil)
		return
	}

	if errors.Is(err, apperr.ErrInvalidRefreshToken) {
		response.Error[any](c, http.StatusUnauthorized, err.Error(), nil)
		return
	}

	if errors.Is(err, repository.ErrNotFound) {
		response.Error[any](c, http.StatusNotFound, "not found", nil)
		return
	}

	if errors.Is(err, application.ErrAttachmentsDisabled) {
		response.Error[any](c, http.StatusServiceUnavailable, err.Error(), nil)
		return
	}

	response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
}
