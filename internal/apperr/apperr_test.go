package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("db gone")
	err := Wrap(InternalErrorCode, "failed to load user", cause)

	require.ErrorIs(t, err, cause)
	require.Equal(t, "failed to load user: db gone", err.Error())
}

func TestFromPassesThroughAppError(t *testing.T) {
	original := New(NotFoundCode, "order not found")
	wrapped := fmt.Errorf("handler: %w", original)

	got := From(wrapped)
	require.Equal(t, NotFoundCode, got.Code)
	require.Equal(t, "order not found", got.Message)
}

func TestFromDefaultsToInternal(t *testing.T) {
	got := From(errors.New("boom"))
	require.Equal(t, InternalErrorCode, got.Code)
	// 未知錯誤不把內部訊息洩漏給呼叫端
	require.Equal(t, "internal server error", got.Message)
}

func TestIsCode(t *testing.T) {
	err := New(InvalidStateCode, "cart is empty")
	require.True(t, IsCode(err, InvalidStateCode))
	require.False(t, IsCode(err, NotFoundCode))
	require.False(t, IsCode(errors.New("plain"), InvalidStateCode))
}

func TestHTTPStatusMapping(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, HTTPStatus(BadRequestCode))
	require.Equal(t, http.StatusUnauthorized, HTTPStatus(UnauthenticatedCode))
	require.Equal(t, http.StatusForbidden, HTTPStatus(UnauthorizedCode))
	require.Equal(t, http.StatusNotFound, HTTPStatus(NotFoundCode))
	require.Equal(t, http.StatusConflict, HTTPStatus(InvalidStateCode))
	require.Equal(t, http.StatusInternalServerError, HTTPStatus(Code("unknown")))
}
