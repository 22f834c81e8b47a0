package http

import (
	"errors"
	"net/http"

	"schedule-assistant/internal/schedule"
	pkgErrors "schedule-assistant/pkg/errors"
)

var (
	errIDRequired    = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errTimeRange     = pkgErrors.NewHTTPError(http.StatusBadRequest, "end_time must be after start_time")
	errEmptyUpdate   = pkgErrors.NewHTTPError(http.StatusBadRequest, "no fields to update")
	errMalformedBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "malformed request")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Anything unrecognised becomes a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrEventNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, schedule.ErrInvalidEvent),
		errors.Is(err, schedule.ErrInvalidCategory),
		errors.Is(err, schedule.ErrInvalidDay),
		errors.Is(err, schedule.ErrInvalidDuration):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, schedule.ErrNoSlot):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, schedule.ErrCalendarNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
