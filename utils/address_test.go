package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"auction-market/internal/marketerrors"
	model "auction-market/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Parallel()

	a, b := NewAddress(), NewAddress()
	require.NotEqual(t, a, b)
	for _, addr := range []model.Address{a, b} {
		parsed, err := model.ParseAddress(string(addr))
		require.NoError(t, err)
		require.Equal(t, addr, parsed)
	}
}

func TestContractAddress(t *testing.T) {
	t.Parallel()

	deployer := model.Address("0x00000000000000000000000000000000000000de")
	require.Equal(t, ContractAddress(deployer, 0), ContractAddress(deployer, 0))
	require.NotEqual(t, ContractAddress(deployer, 0), ContractAddress(deployer, 1))
	require.NotEqual(t, ContractAddress(deployer, 0), ContractAddress(NewAddress(), 0))

	_, err := model.ParseAddress(string(ContractAddress(deployer, 7)))
	require.NoError(t, err)
}

func TestSetLevel(t *testing.T) {
	require.NoError(t, SetLevel("debug"))
	require.Error(t, SetLevel("chatty"))
	require.NoError(t, SetLevel("info"))
}

func TestJSONError_RevertReason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantReason string
	}{
		{name: "revert", err: marketerrors.ErrNoBidders, wantReason: "no bidders selected"},
		{name: "plain", err: errors.New("boom")},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			JSONError(c, http.StatusConflict, tc.err, "transaction reverted")

			require.Equal(t, http.StatusConflict, w.Code)
			if tc.wantReason == "" {
				require.NotContains(t, w.Body.String(), `"reason"`)
				return
			}
			require.Contains(t, w.Body.String(), `"reason":"`+tc.wantReason+`"`)
		})
	}
}
