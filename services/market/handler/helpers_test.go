package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	model "auction-market/internal/models"
	"auction-market/services/market/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	alice = model.Address("0x00000000000000000000000000000000000000a1")
	bob   = model.Address("0x00000000000000000000000000000000000000b0")
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// perform sends body (a raw string or a value to marshal) as principal and decodes the envelope
func perform(t *testing.T, router http.Handler, method, path string, principal model.Address, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	switch v := body.(type) {
	case nil:
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if principal != model.ZeroAddress {
		req.Header.Set(helpers.PrincipalHeader, string(principal))
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}
