package controllers

import (
	"errors"

	"github.com/openfactor/factorhub/lib/responses"
	"github.com/openfactor/factorhub/lib/service"
)

// serviceErrorResponse maps domain errors onto the HTTP error responses.
// Validation failures happen before any write, conflicts leave the existing
// record untouched; everything else is an upstream failure.
func serviceErrorResponse(err error) responses.ErrorResponse {
	switch {
	case errors.Is(err, service.ErrDuplicateRecord):
		return responses.ConflictError
	case errors.Is(err, service.ErrRecordNotFound):
		return responses.NotFoundError
	case errors.Is(err, service.ErrLoginRequired),
		errors.Is(err, service.ErrAmountNotPositive),
		errors.Is(err, service.ErrNegativeUnapprovedValue),
		errors.Is(err, service.ErrInvalidEntryType):
		return responses.BadArgumentsError
	default:
		return responses.GeneralServerError
	}
}
