package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	inner := errors.New("unknown dimension")
	err := NewValidationWrap("batch db group 0", inner)

	assert.Equal(t, "batch db group 0: unknown dimension", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "spec has no algorithms", NewValidation("spec has no algorithms").Error())

	wrapped := fmt.Errorf("load plan: %w", fmt.Errorf("validate: %w", err))
	assert.True(t, IsValidation(wrapped))
	assert.False(t, IsValidation(fmt.Errorf("read: %w", inner)))
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFound("archive", "mk", fs.ErrNotExist)

	assert.Equal(t, "archive mk not found: file does not exist", err.Error())
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.True(t, IsNotFound(fmt.Errorf("stats: %w", err)))
	assert.Equal(t, "archive gv not found", NewNotFound("archive", "gv", nil).Error())
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantError string
	}{
		{name: "validation", err: fmt.Errorf("x: %w", NewValidation("invalid run id")), wantCode: http.StatusBadRequest, wantError: "invalid run id"},
		{name: "not found", err: NewNotFound("archive", "mk", fs.ErrNotExist), wantCode: http.StatusNotFound, wantError: "archive mk not found"},
		{name: "http error", err: echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"), wantCode: http.StatusMethodNotAllowed, wantError: "nope"},
		{name: "internal", err: errors.New("disk on fire"), wantCode: http.StatusInternalServerError, wantError: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			GlobalErrorHandler()(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			var body errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}
