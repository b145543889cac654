package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auction-market/internal/config"
	"auction-market/internal/market"
	model "auction-market/internal/models"
	"auction-market/internal/server"
	"auction-market/services/market/helpers"
	"auction-market/utils"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

// testEnv is a deployed market served through the real router
type testEnv struct {
	router   *gin.Engine
	market   *market.Market
	clock    *clockwork.FakeClock
	deployer model.Address
}

// SetupTestEnv deploys the default genesis on a fake clock and wires the router to it.
func SetupTestEnv(t *testing.T, accounts ...config.Account) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	g := config.DefaultGenesis()
	g.Deployer = utils.NewAddress()
	g.Token.Owner = ""
	g.Crowdsale.Wallet = ""
	g.Accounts = accounts

	clock := clockwork.NewFakeClockAt(epoch)
	m, err := market.Deploy(context.Background(), g, clock)
	require.NoError(t, err)

	return &testEnv{
		router:   server.SetupRouter(m),
		market:   m,
		clock:    clock,
		deployer: g.Deployer,
	}
}

// ExecuteRequestAndParse sends body as principal and returns the decoded envelope.
// On success the data member is unwrapped when it is an object.
func ExecuteRequestAndParse(t *testing.T, router http.Handler, method, url string, principal model.Address, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if principal != model.ZeroAddress {
		req.Header.Set(helpers.PrincipalHeader, string(principal))
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if w.Code < http.StatusBadRequest {
		if data, ok := resp["data"].(map[string]any); ok {
			resp = data
		}
	}
	return resp, w
}

// call asserts the expected status and returns the unwrapped response
func (e *testEnv) call(t *testing.T, wantStatus int, method, url string, principal model.Address, body any) map[string]any {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, e.router, method, url, principal, body)
	require.Equal(t, wantStatus, w.Code, "%s %s: %s", method, url, w.Body.String())
	return resp
}

// register creates an account through the API and returns its user id
func (e *testEnv) register(t *testing.T, name string) (model.Address, int64) {
	t.Helper()
	addr := utils.NewAddress()
	resp := e.call(t, http.StatusCreated, http.MethodPost, "/users", addr, helpers.RegisterUserRequest{Name: name, Category: 1, Class: 1, Code: "01012000"})
	return addr, int64(resp["user_id"].(float64))
}

// fund moves tokens from the deployer and approves them to the auction contract
func (e *testEnv) fund(t *testing.T, addr model.Address, amount uint64) {
	t.Helper()
	e.call(t, http.StatusOK, http.MethodPost, "/tokens/erc20/transfer", e.deployer, helpers.TransferRequest{To: string(addr), Amount: amount})
	e.call(t, http.StatusOK, http.MethodPost, "/tokens/erc20/approve", addr, helpers.ApproveRequest{Spender: string(e.market.Auctions.Address()), Amount: amount})
}

func (e *testEnv) balance(t *testing.T, addr model.Address) uint64 {
	t.Helper()
	resp := e.call(t, http.StatusOK, http.MethodGet, "/tokens/erc20/balances/"+string(addr), model.ZeroAddress, nil)
	return uint64(resp["balance"].(float64))
}

func auctionURL(id int64, action string) string {
	if action == "" {
		return fmt.Sprintf("/auctions/%d", id)
	}
	return fmt.Sprintf("/auctions/%d/%s", id, action)
}
