package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-secure-routes/internal/policy"
	"github.com/MKhiriev/go-secure-routes/internal/routing"
	"github.com/MKhiriev/go-secure-routes/internal/service"
)

var errorStatusMap = map[error]int{
	policy.ErrPolicyViolation: http.StatusBadRequest,

	routing.ErrEmptyRoute:    http.StatusBadRequest,
	routing.ErrInvalidScheme: http.StatusBadRequest,

	service.ErrAnnotationDisabled: http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
