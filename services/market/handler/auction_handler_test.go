package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"auction-market/internal/marketerrors"
	model "auction-market/internal/models"
	"auction-market/services/market/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

type auctionMocks struct {
	service      *MockAuctionServiceInterface
	certificates *MockCertificateServiceInterface
}

func newAuctionRouter(t *testing.T, setup func(m auctionMocks)) *gin.Engine {
	t.Helper()
	ctrl := gomock.NewController(t)
	mocks := auctionMocks{
		service:      NewMockAuctionServiceInterface(ctrl),
		certificates: NewMockCertificateServiceInterface(ctrl),
	}
	if setup != nil {
		setup(mocks)
	}

	h := NewAuctionHandler(mocks.service, mocks.certificates)
	router := newTestRouter()
	router.POST("/auctions", h.CreateAuctionHandler)
	router.GET("/auctions", h.ListAuctionsHandler)
	router.GET("/auctions/:auction_id", h.GetAuctionHandler)
	router.POST("/auctions/:auction_id/extend", h.ExtendHandler)
	router.POST("/auctions/:auction_id/cancel", h.CancelHandler)
	router.POST("/auctions/:auction_id/apply", h.ApplyHandler)
	router.POST("/auctions/:auction_id/bidders", h.SelectBidderHandler)
	router.POST("/auctions/:auction_id/bidding", h.StartBiddingHandler)
	router.POST("/auctions/:auction_id/bids", h.BidHandler)
	router.POST("/auctions/:auction_id/winner", h.SelectWinnerHandler)
	router.POST("/auctions/:auction_id/withdraw", h.WithdrawHandler)
	router.POST("/auctions/:auction_id/certificate", h.IssueCertificateHandler)
	router.GET("/auctions/:auction_id/certificate", h.GetCertificateHandler)
	return router
}

// Test CreateAuctionHandler
func TestCreateAuctionHandler(t *testing.T) {
	t.Parallel()

	end := time.Date(2024, 1, 1, 9, 1, 0, 0, time.UTC)

	tests := []struct {
		name           string
		principal      model.Address
		requestBody    any
		mockSetup      func(m auctionMocks)
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success",
			principal:   alice,
			requestBody: helpers.CreateAuctionRequest{ApplicationSeconds: 60},
			mockSetup: func(m auctionMocks) {
				m.service.EXPECT().
					CreateAuction(gomock.Any(), alice, time.Minute).
					Return(model.Auction{AuctionID: 100, SellerID: 7, Seller: alice, Status: model.StatusApplication, ApplicationEnd: end}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "auction created successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, 100.0, data["auction_id"])
				require.Equal(t, string(model.StatusApplication), data["status"])
				require.Equal(t, end.Format(time.RFC3339), data["application_end"])
			},
		},
		{
			name:           "missing_principal",
			requestBody:    helpers.CreateAuctionRequest{ApplicationSeconds: 60},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "unauthenticated",
		},
		{
			name:           "malformed_principal",
			principal:      "0x1234",
			requestBody:    helpers.CreateAuctionRequest{ApplicationSeconds: 60},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "unauthenticated",
		},
		{
			name:           "zero_duration",
			principal:      alice,
			requestBody:    helpers.CreateAuctionRequest{},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "negative_duration",
			principal:      alice,
			requestBody:    `{"application_seconds": -5}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "overflowing_duration",
			principal:      alice,
			requestBody:    `{"application_seconds": 18446744074}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
		},
		{
			name:        "longest_duration",
			principal:   alice,
			requestBody: helpers.CreateAuctionRequest{ApplicationSeconds: 9223372036},
			mockSetup: func(m auctionMocks) {
				m.service.EXPECT().
					CreateAuction(gomock.Any(), alice, 9223372036*time.Second).
					Return(model.Auction{AuctionID: 100}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "auction created successfully",
		},
		{
			name:        "unregistered_seller",
			principal:   bob,
			requestBody: helpers.CreateAuctionRequest{ApplicationSeconds: 60},
			mockSetup: func(m auctionMocks) {
				m.service.EXPECT().CreateAuction(gomock.Any(), bob, time.Minute).Return(model.Auction{}, marketerrors.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "user not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router := newAuctionRouter(t, tc.mockSetup)
			status, resp := perform(t, router, http.MethodPost, "/auctions", tc.principal, tc.requestBody)

			require.Equal(t, tc.expectedStatus, status)
			require.Contains(t, resp["message"], tc.expectedMsg)
			if tc.validateData != nil {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test the auction mutations sharing the principal/param/body plumbing
func TestAuctionMutationHandlers(t *testing.T) {
	t.Parallel()

	bidding := model.Auction{AuctionID: 100, Status: model.StatusBidding}

	tests := []struct {
		name           string
		path           string
		principal      model.Address
		requestBody    any
		mockSetup      func(m auctionMocks)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "extend",
			path:        "/auctions/100/extend",
			principal:   alice,
			requestBody: helpers.ExtendAuctionRequest{ExtraSeconds: 30},
			mockSetup: func(m auctionMocks) {
				m.service.EXPECT().ExtendApplicationEnd(gomock.Any(), alice, int64(100), 30*time.Second).Return(model.Auction{AuctionID: 100}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "application end extended",
		},
		{
			name:           "extend_missing_body",
			path:           "/auctions/100/extend",
			principal:      alice,
			requestBody:    `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "extend_overflowing_duration",
			path:           "/auctions/100/extend",
			principal:      alice,
			requestBody:    `{"extra_seconds": 9223372037}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
		},
		{
			name:      "cancel",
			path:      "/auctions/100/cancel",
			principal: alice,
			mockSetup: func(m auctionMocks) {
				m.service.EXPECT().CancelAuction(gomock.Any(), alice, int64(100)).Return(model.Auction{AuctionID: 100, Status: model.StatusCancelled}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auction cancelled",
		},
		{
			name:      "cancel_wrong_state",
			path:      "/auctions/100/cancel",
			principal: alice,
			mockSetup: func(m auctionMocks) {
				m.service.EXPECT().CancelAuction(gomock.Any(), alice, int64(100)).Return(model.Auction{}, fmt.Errorf("auction: cancel: %w", marketerrors.ErrInvalidState))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "transaction reverted",
		},
		{
			name:      "apply",
			path:      "/auctions/100/apply",
			principal: bob,
			mockSetup: func(m auctionMocks) {
				m.service.EXPECT().Apply(gomock.Any(), bob, int64(100)).Return(model.Auction{AuctionID: 100, Applicants: []int64{101}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "application recorded",
		},
		{
			name:           "apply_bad_id",
			path:           "/auctions/abc/apply",
			principal:      bob,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid auction_id",
		},
		{
			name:           "apply_missing_principal",
			path:           "/auctions/100/apply",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "unauthenticated",
		},
		{
			name:        "select_bidder",
			path:        "/auctions/100/bidders",
			principal:   alice,
			requestBody: helpers.SelectUserRequest{UserID: 101},
			mockSetup: func(m auctionMocks) {
				m.service.EXPECT().SelectBidders(gomock.Any(), alice, int64(100), int64(101)).Return(model.Auction{AuctionID: 100}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bidder selected",
		},
		{
			name:        "select_bidder_not_seller",
			path:        "/auctions/100/bidders",
			principal:   bob,
			requestBody: helpers.SelectUserRequest{UserID: 101},
			mockSetup: func(m auctionMocks) {
				m.service.EXPECT().SelectBidders(gomock.Any(), bob, int64(100), int64(101)).Return(model.Auction{}, marketerrors.ErrNotSeller)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "caller not authorized",
		},
		{
			name:        "start_bidding",
			path:        "/auctions/100/bidding",
			principal:   alice,
			requestBody: helpers.StartBiddingRequest{BiddingSeconds: 120},
			mockSetup: func(m auctionMocks) {
				m.service.EXPECT().BiddingStart(gomock.Any(), alice, int64(100), 2*time.Minute).Return(bidding, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bidding started",
		},
		{
			name:           "start_bidding_overflowing_duration",
			path:           "/auctions/100/bidding",
			principal:      alice,
			requestBody:    `{"bidding_seconds": 18446744074}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
		},
		{
			name:        "bid",
			path:        "/auctions/100/bids",
			principal:   bob,
			requestBody: helpers.BidRequest{Amount: 1000},
			mockSetup: func(m auctionMocks) {
				m.service.EXPECT().Bid(gomock.Any(), bob, int64(100), uint64(1000)).Return(bidding, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bid recorded successfully",
		},
		{
			name:           "bid_zero",
			path:           "/auctions/100/bids",
			principal:      bob,
			requestBody:    helpers.BidRequest{},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "bid_negative",
			path:           "/auctions/100/bids",
			principal:      bob,
			requestBody:    `{"amount": -10}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "bid_insufficient_allowance",
			path:        "/auctions/100/bids",
			principal:   bob,
			requestBody: helpers.BidRequest{Amount: 1000},
			mockSetup: func(m auctionMocks) {
				m.service.EXPECT().Bid(gomock.Any(), bob, int64(100), uint64(1000)).Return(model.Auction{}, marketerrors.ErrInsufficientAllowance)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "insufficient funds",
		},
		{
			name:        "bid_not_selected",
			path:        "/auctions/100/bids",
			principal:   bob,
			requestBody: helpers.BidRequest{Amount: 1000},
			mockSetup: func(m auctionMocks) {
				m.service.EXPECT().Bid(gomock.Any(), bob, int64(100), uint64(1000)).Return(model.Auction{}, marketerrors.ErrNotSelectedBidder)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "caller not authorized",
		},
		{
			name:        "select_winner",
			path:        "/auctions/100/winner",
			principal:   alice,
			requestBody: helpers.SelectUserRequest{UserID: 101},
			mockSetup: func(m auctionMocks) {
				m.service.EXPECT().SelectWinner(gomock.Any(), alice, int64(100), int64(101)).Return(model.Auction{AuctionID: 100, WinnerID: 101}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "winner selected",
		},
		{
			name:        "select_winner_no_bid",
			path:        "/auctions/100/winner",
			principal:   alice,
			requestBody: helpers.SelectUserRequest{UserID: 102},
			mockSetup: func(m auctionMocks) {
				m.service.EXPECT().SelectWinner(gomock.Any(), alice, int64(100), int64(102)).Return(model.Auction{}, marketerrors.ErrNoBid)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "transaction reverted",
		},
		{
			name:        "auction_not_found",
			path:        "/auctions/999/apply",
			principal:   bob,
			mockSetup: func(m auctionMocks) {
				m.service.EXPECT().Apply(gomock.Any(), bob, int64(999)).Return(model.Auction{}, marketerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "auction not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router := newAuctionRouter(t, tc.mockSetup)
			status, resp := perform(t, router, http.MethodPost, tc.path, tc.principal, tc.requestBody)

			require.Equal(t, tc.expectedStatus, status)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test WithdrawHandler
func TestWithdrawHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		mockSetup      func(m auctionMocks)
		expectedStatus int
		expectedMsg    string
		expectedAmount float64
	}{
		{
			name: "refund",
			mockSetup: func(m auctionMocks) {
				m.service.EXPECT().WithdrawERC20(gomock.Any(), bob, int64(100)).Return(uint64(100), nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "withdrawal completed",
			expectedAmount: 100,
		},
		{
			name: "already_withdrawn",
			mockSetup: func(m auctionMocks) {
				m.service.EXPECT().WithdrawERC20(gomock.Any(), bob, int64(100)).Return(uint64(0), marketerrors.ErrAlreadyWithdrawn)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "transaction reverted",
		},
		{
			name: "ledger_failure",
			mockSetup: func(m auctionMocks) {
				m.service.EXPECT().WithdrawERC20(gomock.Any(), bob, int64(100)).Return(uint64(0), errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router := newAuctionRouter(t, tc.mockSetup)
			status, resp := perform(t, router, http.MethodPost, "/auctions/100/withdraw", bob, nil)

			require.Equal(t, tc.expectedStatus, status)
			require.Contains(t, resp["message"], tc.expectedMsg)
			if status == http.StatusOK {
				data := resp["data"].(map[string]any)
				require.Equal(t, 100.0, data["auction_id"])
				require.Equal(t, tc.expectedAmount, data["amount"])
			}
		})
	}
}

func TestGetAuctionHandler(t *testing.T) {
	t.Parallel()

	router := newAuctionRouter(t, func(m auctionMocks) {
		m.service.EXPECT().GetAuction(gomock.Any(), int64(100)).Return(model.Auction{AuctionID: 100, Status: model.StatusBiddingScheduled}, nil)
		m.service.EXPECT().GetAuction(gomock.Any(), int64(5)).Return(model.Auction{}, marketerrors.ErrAuctionNotFound)
	})

	status, resp := perform(t, router, http.MethodGet, "/auctions/100", model.ZeroAddress, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "auction retrieved successfully", resp["message"])
	require.Equal(t, string(model.StatusBiddingScheduled), resp["data"].(map[string]any)["status"])

	status, resp = perform(t, router, http.MethodGet, "/auctions/5", model.ZeroAddress, nil)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "auction not found", resp["reason"])
}

func TestListAuctionsHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		auctions []model.Auction
		expected int
	}{
		{name: "empty_is_array", auctions: nil, expected: 0},
		{name: "two", auctions: []model.Auction{{AuctionID: 100}, {AuctionID: 101}}, expected: 2},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router := newAuctionRouter(t, func(m auctionMocks) {
				m.service.EXPECT().ListAuctions(gomock.Any()).Return(tc.auctions, nil)
			})
			status, resp := perform(t, router, http.MethodGet, "/auctions", model.ZeroAddress, nil)
			require.Equal(t, http.StatusOK, status)
			data, ok := resp["data"].([]any)
			require.True(t, ok, "data should be a JSON array")
			require.Len(t, data, tc.expected)
		})
	}
}

// Test certificate issuance and lookup
func TestCertificateHandlers(t *testing.T) {
	t.Parallel()

	cert := model.Certificate{AuctionID: 100, TokenID: 100, WinnerID: 101, Owner: bob}

	router := newAuctionRouter(t, func(m auctionMocks) {
		m.certificates.EXPECT().IssueERC721Token(gomock.Any(), alice, int64(100)).Return(cert, nil)
		m.certificates.EXPECT().IssueERC721Token(gomock.Any(), bob, int64(100)).Return(model.Certificate{}, marketerrors.ErrNotSeller)
		m.certificates.EXPECT().CertificateOf(gomock.Any(), int64(100)).Return(cert, nil)
		m.certificates.EXPECT().CertificateOf(gomock.Any(), int64(101)).Return(model.Certificate{}, marketerrors.ErrCertificateNotFound)
	})

	status, resp := perform(t, router, http.MethodPost, "/auctions/100/certificate", alice, nil)
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "certificate issued successfully", resp["message"])
	require.Equal(t, string(bob), resp["data"].(map[string]any)["owner"])

	status, _ = perform(t, router, http.MethodPost, "/auctions/100/certificate", bob, nil)
	require.Equal(t, http.StatusForbidden, status)

	status, resp = perform(t, router, http.MethodGet, "/auctions/100/certificate", model.ZeroAddress, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 101.0, resp["data"].(map[string]any)["winner_id"])

	status, resp = perform(t, router, http.MethodGet, "/auctions/101/certificate", model.ZeroAddress, nil)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "token not found", resp["message"])
}
