package http

import (
	"errors"
	"net/http"

	"github.com/resumekit/resumekit/internal/gateway"
	"github.com/resumekit/resumekit/internal/service"
	"github.com/resumekit/resumekit/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusBadRequest,
	service.ErrGoogleOnlyAccount:       http.StatusBadRequest,
	service.ErrInvalidSignature:        http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrDeliveryFailed:          http.StatusInternalServerError,
	service.ErrRegisterOnServer:        http.StatusBadGateway,
	service.ErrLoginOnServer:           http.StatusBadGateway,

	store.ErrEmailAlreadyExists:   http.StatusBadRequest,
	store.ErrNoUserWasFound:       http.StatusNotFound,
	store.ErrResetCodeMismatch:    http.StatusBadRequest,
	store.ErrDownloadLimitReached: http.StatusForbidden,

	gateway.ErrGatewayUnavailable: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
