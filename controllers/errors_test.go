package controllers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/openfactor/factorhub/lib/responses"
	"github.com/openfactor/factorhub/lib/service"
	"github.com/stretchr/testify/assert"
)

func TestServiceErrorResponseMapping(t *testing.T) {
	assert.Equal(t, responses.ConflictError, serviceErrorResponse(service.ErrDuplicateRecord))
	assert.Equal(t, responses.NotFoundError, serviceErrorResponse(service.ErrRecordNotFound))
	assert.Equal(t, responses.BadArgumentsError, serviceErrorResponse(service.ErrLoginRequired))
	assert.Equal(t, responses.BadArgumentsError, serviceErrorResponse(service.ErrAmountNotPositive))
	assert.Equal(t, responses.BadArgumentsError, serviceErrorResponse(service.ErrNegativeUnapprovedValue))
	assert.Equal(t, responses.BadArgumentsError, serviceErrorResponse(service.ErrInvalidEntryType))
	assert.Equal(t, responses.GeneralServerError, serviceErrorResponse(errors.New("db down")))
}

func TestServiceErrorResponseWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("recording cash receipt: %w", service.ErrDuplicateRecord)
	assert.Equal(t, responses.ConflictError, serviceErrorResponse(wrapped))
}
