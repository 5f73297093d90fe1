package api

import (
	"errors"
	"net/http"

	"github.com/eaobservatory/jcmt-itc-heterodyne/core"
)

// errorResponse is the JSON body returned for any failed request.
type errorResponse struct {
	Error string `json:"Error"`
	Kind  string `json:"Kind,omitempty"`
}

// httpStatus maps engine errors onto HTTP status codes. Configuration
// and capability problems are the caller's fault (400); physically
// invalid values get 422 so clients can distinguish form errors from
// out-of-range inputs.
func httpStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, core.ErrConfiguration),
		errors.Is(err, core.ErrUnsupportedMode):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrValueRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// errorKind names the error category for machine consumption.
func errorKind(err error) string {
	switch {
	case errors.Is(err, core.ErrConfiguration):
		return "configuration"
	case errors.Is(err, core.ErrValueRange):
		return "value_range"
	case errors.Is(err, core.ErrUnsupportedMode):
		return "unsupported_mode"
	default:
		return "internal"
	}
}
