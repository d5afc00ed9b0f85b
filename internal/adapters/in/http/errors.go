package http

import (
	"errors"
	"net/http"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/cart"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/rider"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps a use-case error onto an HTTP status and writes the
// error body. Unrecognized errors become 500 with a generic message so
// internal details never leak to clients.
func writeError(ctx echo.Context, err error) error {
	status := statusForError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}

func statusForError(err error) int {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}

	var invalid *errs.ValueIsInvalidError
	var required *errs.ValueIsRequiredError
	var outOfRange *errs.ValueIsOutOfRangeError
	if errors.As(err, &invalid) || errors.As(err, &required) || errors.As(err, &outOfRange) {
		return http.StatusBadRequest
	}

	if errors.Is(err, order.ErrActorNotAllowed) {
		return http.StatusForbidden
	}

	// State conflicts: the request was well-formed but lost a race or
	// arrived in the wrong lifecycle state.
	if errors.Is(err, order.ErrInvalidTransition) ||
		errors.Is(err, order.ErrRiderAlreadyAssigned) ||
		errors.Is(err, order.ErrOrderNotReadyForRider) ||
		errors.Is(err, rider.ErrRiderAtCapacity) ||
		errors.Is(err, commands.ErrOrderNotClaimedByRider) {
		return http.StatusConflict
	}

	// Business rejections: valid request, but the domain says no.
	if errors.Is(err, cart.ErrOfferAlreadyApplied) ||
		errors.Is(err, cart.ErrOfferExpired) ||
		errors.Is(err, cart.ErrMinimumOrderNotMet) ||
		errors.Is(err, cart.ErrOfferNotApplicable) ||
		errors.Is(err, commands.ErrItemUnavailable) ||
		errors.Is(err, services.ErrCartIsEmpty) {
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
