// Package handlers adapts typed service methods to chi handler funcs.
// Every adapter resolves the authenticated claims and URL ids, invokes
// the service method, and converts the outcome into the JSON envelope.
// No error escapes uncaught past this boundary.
package handlers

import (
	"errors"
	"net/http"

	apierrors "api/internal/errors"
	h "api/internal/helpers"
	"api/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetFunc produces a response payload from the caller identity and URL ids.
type GetFunc[R any] func(logger *zap.Logger, claims models.UserClaims, ids uuid.UUIDs) (R, error)

// GetWithQueryFunc additionally receives validated query parameters.
type GetWithQueryFunc[Q, R any] func(logger *zap.Logger, claims models.UserClaims, ids uuid.UUIDs, queryParams Q) (R, error)

// UpdateFunc additionally receives a validated request body.
type UpdateFunc[B, R any] func(logger *zap.Logger, claims models.UserClaims, ids uuid.UUIDs, body B) (R, error)

// DeleteFunc performs a deletion identified by URL ids.
type DeleteFunc func(logger *zap.Logger, claims models.UserClaims, ids uuid.UUIDs) error

func resolveRequest(w http.ResponseWriter, r *http.Request) (*zap.Logger, models.UserClaims, uuid.UUIDs, bool) {
	claims, ok := r.Context().Value(models.UserClaimKey{}).(models.UserClaims)
	if !ok {
		h.RespondWithError(w, http.StatusUnauthorized, apierrors.ErrUnauthorized)
		return nil, models.UserClaims{}, nil, false
	}

	ids, ok := h.ParseUUIDs(r)
	if !ok {
		h.RespondWithError(w, http.StatusBadRequest, apierrors.ErrValidationFailed)
		return nil, models.UserClaims{}, nil, false
	}

	logger := zap.L().With(
		zap.String("caller_id", claims.UserID.String()),
		zap.String("path", r.URL.Path),
	)

	return logger, claims, ids, true
}

func respond(w http.ResponseWriter, logger *zap.Logger, data any, err error) {
	if err != nil {
		var apiErr *apierrors.APIError
		if errors.As(err, &apiErr) {
			h.RespondWithError(w, apiErr.Status, apiErr.Code)
			return
		}
		logger.Error("Unhandled service error", zap.Error(err))
		h.RespondWithError(w, http.StatusInternalServerError, apierrors.ErrInternal)
		return
	}
	h.RespondWithJSON(w, http.StatusOK, data)
}

func GetHandler[R any](fn GetFunc[R]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger, claims, ids, ok := resolveRequest(w, r)
		if !ok {
			return
		}
		data, err := fn(logger, claims, ids)
		respond(w, logger, data, err)
	}
}

func GetWithQueryHandler[Q, R any](fn GetWithQueryFunc[Q, R]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger, claims, ids, ok := resolveRequest(w, r)
		if !ok {
			return
		}
		queryParams, _ := r.Context().Value(models.ValidatedQueryKey{}).(Q)
		data, err := fn(logger, claims, ids, queryParams)
		respond(w, logger, data, err)
	}
}

func UpdateHandler[B, R any](fn UpdateFunc[B, R]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger, claims, ids, ok := resolveRequest(w, r)
		if !ok {
			return
		}
		body, found := r.Context().Value(models.ValidatedBodyKey{}).(B)
		if !found {
			h.RespondWithError(w, http.StatusBadRequest, apierrors.ErrValidationFailed)
			return
		}
		data, err := fn(logger, claims, ids, body)
		respond(w, logger, data, err)
	}
}

func DeleteHandler(fn DeleteFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger, claims, ids, ok := resolveRequest(w, r)
		if !ok {
			return
		}
		if err := fn(logger, claims, ids); err != nil {
			respond(w, logger, nil, err)
			return
		}
		h.RespondWithMessage(w, http.StatusOK, "DELETED")
	}
}
