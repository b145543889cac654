package handler

import (
	"context"
	"math"
	"net/http"
	"time"

	"auction-market/internal/marketerrors"
	model "auction-market/internal/models"
	"auction-market/services/market/helpers"
	"auction-market/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	CreateAuction(ctx context.Context, caller model.Address, applicationDuration time.Duration) (model.Auction, error)
	ExtendApplicationEnd(ctx context.Context, caller model.Address, auctionID int64, extra time.Duration) (model.Auction, error)
	CancelAuction(ctx context.Context, caller model.Address, auctionID int64) (model.Auction, error)
	Apply(ctx context.Context, caller model.Address, auctionID int64) (model.Auction, error)
	SelectBidders(ctx context.Context, caller model.Address, auctionID, userID int64) (model.Auction, error)
	BiddingStart(ctx context.Context, caller model.Address, auctionID int64, biddingDuration time.Duration) (model.Auction, error)
	Bid(ctx context.Context, caller model.Address, auctionID int64, amount uint64) (model.Auction, error)
	SelectWinner(ctx context.Context, caller model.Address, auctionID, userID int64) (model.Auction, error)
	WithdrawERC20(ctx context.Context, caller model.Address, auctionID int64) (uint64, error)
	GetAuction(ctx context.Context, auctionID int64) (model.Auction, error)
	ListAuctions(ctx context.Context) ([]model.Auction, error)
}

type CertificateServiceInterface interface {
	IssueERC721Token(ctx context.Context, caller model.Address, auctionID int64) (model.Certificate, error)
	CertificateOf(ctx context.Context, auctionID int64) (model.Certificate, error)
}

type AuctionHandler struct {
	service      AuctionServiceInterface
	certificates CertificateServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface, certificates CertificateServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service, certificates: certificates}
}

// auctionCall is the common shape of a state-changing auction request
type auctionCall func(ctx context.Context, caller model.Address, auctionID int64) (model.Auction, error)

// CreateAuctionHandler handles POST /auctions
func (h *AuctionHandler) CreateAuctionHandler(c *gin.Context) {
	caller, ok := helpers.Principal(c, "CreateAuctionHandler")
	if !ok {
		return
	}
	var (
		req     helpers.CreateAuctionRequest
		auction model.Auction
	)
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateAuctionHandler", err)
		return
	}

	window, err := seconds(req.ApplicationSeconds)
	if err == nil {
		auction, err = h.service.CreateAuction(c.Request.Context(), caller, window)
	}
	if err != nil {
		helpers.RespondError(c, "CreateAuctionHandler", err, map[string]any{"caller": caller})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "auction created successfully")
	helpers.LogSuccess("CreateAuctionHandler", "auction created successfully", map[string]any{
		"auction_id":      auction.AuctionID,
		"seller_id":       auction.SellerID,
		"application_end": auction.ApplicationEnd.Format(time.RFC3339),
	})
}

// ExtendHandler handles POST /auctions/:auction_id/extend
func (h *AuctionHandler) ExtendHandler(c *gin.Context) {
	var req helpers.ExtendAuctionRequest
	h.handle(c, "ExtendHandler", "application end extended", &req, func(ctx context.Context, caller model.Address, id int64) (model.Auction, error) {
		extra, err := seconds(req.ExtraSeconds)
		if err != nil {
			return model.Auction{}, err
		}
		return h.service.ExtendApplicationEnd(ctx, caller, id, extra)
	})
}

// CancelHandler handles POST /auctions/:auction_id/cancel
func (h *AuctionHandler) CancelHandler(c *gin.Context) {
	h.handle(c, "CancelHandler", "auction cancelled", nil, h.service.CancelAuction)
}

// ApplyHandler handles POST /auctions/:auction_id/apply
func (h *AuctionHandler) ApplyHandler(c *gin.Context) {
	h.handle(c, "ApplyHandler", "application recorded", nil, h.service.Apply)
}

// SelectBidderHandler handles POST /auctions/:auction_id/bidders
func (h *AuctionHandler) SelectBidderHandler(c *gin.Context) {
	var req helpers.SelectUserRequest
	h.handle(c, "SelectBidderHandler", "bidder selected", &req, func(ctx context.Context, caller model.Address, id int64) (model.Auction, error) {
		return h.service.SelectBidders(ctx, caller, id, req.UserID)
	})
}

// StartBiddingHandler handles POST /auctions/:auction_id/bidding
func (h *AuctionHandler) StartBiddingHandler(c *gin.Context) {
	var req helpers.StartBiddingRequest
	h.handle(c, "StartBiddingHandler", "bidding started", &req, func(ctx context.Context, caller model.Address, id int64) (model.Auction, error) {
		window, err := seconds(req.BiddingSeconds)
		if err != nil {
			return model.Auction{}, err
		}
		return h.service.BiddingStart(ctx, caller, id, window)
	})
}

// BidHandler handles POST /auctions/:auction_id/bids
func (h *AuctionHandler) BidHandler(c *gin.Context) {
	var req helpers.BidRequest
	h.handle(c, "BidHandler", "bid recorded successfully", &req, func(ctx context.Context, caller model.Address, id int64) (model.Auction, error) {
		return h.service.Bid(ctx, caller, id, req.Amount)
	})
}

// SelectWinnerHandler handles POST /auctions/:auction_id/winner
func (h *AuctionHandler) SelectWinnerHandler(c *gin.Context) {
	var req helpers.SelectUserRequest
	h.handle(c, "SelectWinnerHandler", "winner selected", &req, func(ctx context.Context, caller model.Address, id int64) (model.Auction, error) {
		return h.service.SelectWinner(ctx, caller, id, req.UserID)
	})
}

// handle runs the principal/param/body plumbing shared by auction mutations.
// body is nil for requests that carry no payload.
func (h *AuctionHandler) handle(c *gin.Context, handlerName, message string, body any, call auctionCall) {
	caller, ok := helpers.Principal(c, handlerName)
	if !ok {
		return
	}
	auctionID, ok := helpers.IDParam(c, "auction_id")
	if !ok {
		return
	}
	if body != nil {
		if err := c.ShouldBindJSON(body); err != nil {
			helpers.HandleBindError(c, handlerName, err)
			return
		}
	}

	auction, err := call(c.Request.Context(), caller, auctionID)
	if err != nil {
		helpers.RespondError(c, handlerName, err, map[string]any{"caller": caller, "auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, message)
	helpers.LogSuccess(handlerName, message, map[string]any{
		"auction_id": auctionID,
		"caller":     caller,
		"status":     auction.Status,
	})
}

// WithdrawHandler handles POST /auctions/:auction_id/withdraw
func (h *AuctionHandler) WithdrawHandler(c *gin.Context) {
	caller, ok := helpers.Principal(c, "WithdrawHandler")
	if !ok {
		return
	}
	auctionID, ok := helpers.IDParam(c, "auction_id")
	if !ok {
		return
	}

	amount, err := h.service.WithdrawERC20(c.Request.Context(), caller, auctionID)
	if err != nil {
		helpers.RespondError(c, "WithdrawHandler", err, map[string]any{"caller": caller, "auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.WithdrawResponse{AuctionID: auctionID, Amount: amount}, "withdrawal completed")
	helpers.LogSuccess("WithdrawHandler", "withdrawal completed", map[string]any{
		"auction_id": auctionID,
		"caller":     caller,
		"amount":     amount,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID, ok := helpers.IDParam(c, "auction_id")
	if !ok {
		return
	}
	auction, err := h.service.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, auction, "auction retrieved successfully")
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	auctions, err := h.service.ListAuctions(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "ListAuctionsHandler", err, nil)
		return
	}
	if auctions == nil {
		auctions = []model.Auction{}
	}
	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
}

// IssueCertificateHandler handles POST /auctions/:auction_id/certificate
func (h *AuctionHandler) IssueCertificateHandler(c *gin.Context) {
	caller, ok := helpers.Principal(c, "IssueCertificateHandler")
	if !ok {
		return
	}
	auctionID, ok := helpers.IDParam(c, "auction_id")
	if !ok {
		return
	}

	cert, err := h.certificates.IssueERC721Token(c.Request.Context(), caller, auctionID)
	if err != nil {
		helpers.RespondError(c, "IssueCertificateHandler", err, map[string]any{"caller": caller, "auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, cert, "certificate issued successfully")
	helpers.LogSuccess("IssueCertificateHandler", "certificate issued successfully", map[string]any{
		"auction_id": auctionID,
		"owner":      cert.Owner,
	})
}

// GetCertificateHandler handles GET /auctions/:auction_id/certificate
func (h *AuctionHandler) GetCertificateHandler(c *gin.Context) {
	auctionID, ok := helpers.IDParam(c, "auction_id")
	if !ok {
		return
	}
	cert, err := h.certificates.CertificateOf(c.Request.Context(), auctionID)
	if err != nil {
		helpers.RespondError(c, "GetCertificateHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, cert, "certificate retrieved successfully")
}

// maxSeconds is the longest window a time.Duration can hold
const maxSeconds = math.MaxInt64 / int64(time.Second)

func seconds(n int64) (time.Duration, error) {
	if n <= 0 || n > maxSeconds {
		return 0, marketerrors.ErrInvalidDuration
	}
	return time.Duration(n) * time.Second, nil
}
