package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/freshcart/commerce-service/pkg/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestWriteSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := WriteSuccessResponse(c, "done", map[string]string{"k": "v"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "done", body.Message)
}

func TestWriteCreatedResponse(t *testing.T) {
	c, rec := newTestContext()

	err := WriteCreatedResponse(c, "", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestWriteErrorResponse(t *testing.T) {
	c, rec := newTestContext()

	err := WriteErrorResponse(c, errs.ErrPhoneAlreadyUsed, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, errs.ErrPhoneAlreadyUsed.Error(), body.Message)
}
