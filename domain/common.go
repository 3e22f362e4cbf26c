package domain

import (
	"errors"
	"github.com/google/uuid"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"

	LocalsUserID    = "user_id"
	LocalsPrincipal = "principal"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedValidation     = "request validation failed"
	MessageFailedProcessRequest = "failed to process request"
	MessageInternalServerError  = "internal server error"
	MessageRouteNotFound        = "route not found"
	MessageSuccessPing          = "pong"
	MessageSuccessHealth        = "service healthy"
	MessageFailedHealth         = "database unreachable"

	ErrParseUUID = errors.New("failed to parse UUID")
)

type (
	// Principal is the authenticated caller. It never carries the password hash.
	Principal struct {
		ID          uuid.UUID `json:"id"`
		Email       string    `json:"email"`
		DisplayName string    `json:"displayName"`
	}

	Pagination struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int64 `json:"totalPages"`
	}

	Response struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Data    any    `json:"data"`
	}
)

func NewPagination(page, limit int, total int64) Pagination {
	var pages int64
	if limit > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: pages}
}
