package httperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrBusiness("missing_items"), http.StatusBadRequest},
		{ErrUnauthorized("invalid_token"), http.StatusUnauthorized},
		{ErrForbidden("not_room_participant"), http.StatusForbidden},
		{ErrNotFound("order_not_found"), http.StatusNotFound},
		{ErrConflict("email_already_exists"), http.StatusConflict},
		{ErrInvalidTransition("invalid_transition"), http.StatusUnprocessableEntity},
		{errors.New("boom"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", ErrNotFound("room_not_found")), http.StatusNotFound},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Status(tc.err), tc.err.Error())
	}
}

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("create order: %w", ErrBusiness("invalid_quantity"))

	assert.True(t, IsBusiness(err, "invalid_quantity"))
	assert.False(t, IsBusiness(err, "missing_items"))
	assert.False(t, IsBusiness(errors.New("invalid_quantity"), "invalid_quantity"))
}

func TestHandleWritesBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Handle(c, ErrForbidden("not_room_participant"))

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error_code":"not_room_participant","message":"You are not a participant of this room."}`, w.Body.String())

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	Handle(c, errors.New("db down"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
	assert.Len(t, c.Errors, 1)
}

func TestHandleMapsDeadlineToTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Handle(c, fmt.Errorf("list orders: %w", context.DeadlineExceeded))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "request_timeout")
	assert.Len(t, c.Errors, 1)
}
