package utils_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SergeyBogomolovv/shop-admin/pkg/utils"
)

func TestWriteText(t *testing.T) {
	rr := httptest.NewRecorder()

	require.NoError(t, utils.WriteText(rr, "success", http.StatusOK))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "success", rr.Body.String())
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	require.NoError(t, utils.WriteError(rr, "unauthorized email", http.StatusForbidden))

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"unauthorized email"}`, rr.Body.String())
}
