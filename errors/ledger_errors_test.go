package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedgerErrorRendersJSON(t *testing.T) {
	err := NewError(ErrCodeUnauthorized, ErrMsgUnauthorizedAdd)
	assert.Equal(t, `{"code":"unauthorized","message":"Only registered universities can add certificates"}`, err.Error())
}

func TestLedgerErrorIsMatchesByCode(t *testing.T) {
	err := NewError(ErrCodeUnauthorized, ErrMsgUnauthorizedMine)
	assert.True(t, stderrors.Is(err, ErrUnauthorized))
	assert.False(t, stderrors.Is(err, &LedgerError{Code: "other"}))
	assert.False(t, stderrors.Is(err, stderrors.New("unauthorized")))

	wrapped := fmt.Errorf("mine: %w", err)
	assert.True(t, stderrors.Is(wrapped, ErrUnauthorized))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeUnauthorized, CodeOf(NewError(ErrCodeUnauthorized, ErrMsgUnauthorizedMine)))
	assert.Equal(t, LedgerErrorCode(""), CodeOf(stderrors.New("plain")))
}
