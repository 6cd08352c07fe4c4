package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "docs/internal/delivery/context"
	domainerrors "docs/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":null,"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestError_DropsDetailsForServerAndAuthErrors(t *testing.T) {
	tests := []struct {
		status      int
		wantDetails bool
	}{
		{status: http.StatusBadRequest, wantDetails: true},
		{status: http.StatusUnauthorized, wantDetails: false},
		{status: http.StatusInternalServerError, wantDetails: false},
	}

	for _, tt := range tests {
		c, rec := newContext()
		require.NoError(t, Error(c, tt.status, "CODE", "message", []string{"field"}))

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, tt.wantDetails, body.Error.Details != nil, "status %d", tt.status)
	}
}

func TestHandleAppError(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, HandleAppError(c, errors.Wrap(domainerrors.ErrPasswordMismatch.WrapMessage("mismatch"), "register")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"PASSWORD_MISMATCH"`)

	c, rec = newContext()
	err := HandleAppError(c, errors.New("boom"))
	assert.Error(t, err)
	assert.Equal(t, 0, rec.Body.Len())
}
