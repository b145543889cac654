package handler

import (
	"context"
	"net/http"

	model "auction-market/internal/models"
	"auction-market/services/market/helpers"
	"auction-market/utils"

	"github.com/gin-gonic/gin"
)

type TokenServiceInterface interface {
	TotalSupply(ctx context.Context) (uint64, error)
	BalanceOf(ctx context.Context, account model.Address) (uint64, error)
	Allowance(ctx context.Context, owner, spender model.Address) (uint64, error)
	Transfer(ctx context.Context, caller, to model.Address, amount uint64) error
	Approve(ctx context.Context, caller, spender model.Address, amount uint64) error
	TransferFrom(ctx context.Context, caller, from, to model.Address, amount uint64) error
}

type CollectibleServiceInterface interface {
	Token(ctx context.Context, tokenID int64) (model.Collectible, error)
}

type CrowdsaleServiceInterface interface {
	Receive(ctx context.Context, caller model.Address, payment uint64) (model.Purchase, error)
	BuyTokens(ctx context.Context, caller, beneficiary model.Address, payment uint64) (model.Purchase, error)
}

type TokenHandler struct {
	token        TokenServiceInterface
	collectibles CollectibleServiceInterface
	crowdsale    CrowdsaleServiceInterface
}

func NewTokenHandler(token TokenServiceInterface, collectibles CollectibleServiceInterface, crowdsale CrowdsaleServiceInterface) *TokenHandler {
	return &TokenHandler{token: token, collectibles: collectibles, crowdsale: crowdsale}
}

// BalanceHandler handles GET /tokens/erc20/balances/:address
func (h *TokenHandler) BalanceHandler(c *gin.Context) {
	addr, ok := helpers.AddressParam(c, "address")
	if !ok {
		return
	}
	balance, err := h.token.BalanceOf(c.Request.Context(), addr)
	if err != nil {
		helpers.RespondError(c, "BalanceHandler", err, map[string]any{"address": addr})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.BalanceResponse{Address: string(addr), Balance: balance}, "balance retrieved successfully")
}

// SupplyHandler handles GET /tokens/erc20/supply
func (h *TokenHandler) SupplyHandler(c *gin.Context) {
	supply, err := h.token.TotalSupply(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "SupplyHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"total_supply": supply}, "total supply retrieved successfully")
}

// AllowanceHandler handles GET /tokens/erc20/allowances/:owner/:spender
func (h *TokenHandler) AllowanceHandler(c *gin.Context) {
	owner, ok := helpers.AddressParam(c, "owner")
	if !ok {
		return
	}
	spender, ok := helpers.AddressParam(c, "spender")
	if !ok {
		return
	}
	allowance, err := h.token.Allowance(c.Request.Context(), owner, spender)
	if err != nil {
		helpers.RespondError(c, "AllowanceHandler", err, map[string]any{"owner": owner, "spender": spender})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.AllowanceResponse{
		Owner:     string(owner),
		Spender:   string(spender),
		Allowance: allowance,
	}, "allowance retrieved successfully")
}

// TransferHandler handles POST /tokens/erc20/transfer
func (h *TokenHandler) TransferHandler(c *gin.Context) {
	caller, ok := helpers.Principal(c, "TransferHandler")
	if !ok {
		return
	}
	var req helpers.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "TransferHandler", err)
		return
	}
	to, ok := helpers.ParseAddressField(c, "to", req.To)
	if !ok {
		return
	}

	if err := h.token.Transfer(c.Request.Context(), caller, to, req.Amount); err != nil {
		helpers.RespondError(c, "TransferHandler", err, map[string]any{"from": caller, "to": to, "amount": req.Amount})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "transfer completed")
	helpers.LogSuccess("TransferHandler", "transfer completed", map[string]any{"from": caller, "to": to, "amount": req.Amount})
}

// ApproveHandler handles POST /tokens/erc20/approve
func (h *TokenHandler) ApproveHandler(c *gin.Context) {
	caller, ok := helpers.Principal(c, "ApproveHandler")
	if !ok {
		return
	}
	var req helpers.ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ApproveHandler", err)
		return
	}
	spender, ok := helpers.ParseAddressField(c, "spender", req.Spender)
	if !ok {
		return
	}

	if err := h.token.Approve(c.Request.Context(), caller, spender, req.Amount); err != nil {
		helpers.RespondError(c, "ApproveHandler", err, map[string]any{"owner": caller, "spender": spender})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "approval recorded")
	helpers.LogSuccess("ApproveHandler", "approval recorded", map[string]any{"owner": caller, "spender": spender, "amount": req.Amount})
}

// TransferFromHandler handles POST /tokens/erc20/transfer-from
func (h *TokenHandler) TransferFromHandler(c *gin.Context) {
	caller, ok := helpers.Principal(c, "TransferFromHandler")
	if !ok {
		return
	}
	var req helpers.TransferFromRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "TransferFromHandler", err)
		return
	}
	from, ok := helpers.ParseAddressField(c, "from", req.From)
	if !ok {
		return
	}
	to, ok := helpers.ParseAddressField(c, "to", req.To)
	if !ok {
		return
	}

	if err := h.token.TransferFrom(c.Request.Context(), caller, from, to, req.Amount); err != nil {
		helpers.RespondError(c, "TransferFromHandler", err, map[string]any{"spender": caller, "from": from, "to": to})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "transfer completed")
	helpers.LogSuccess("TransferFromHandler", "transfer completed", map[string]any{
		"spender": caller,
		"from":    from,
		"to":      to,
		"amount":  req.Amount,
	})
}

// CollectibleHandler handles GET /tokens/erc721/:token_id
func (h *TokenHandler) CollectibleHandler(c *gin.Context) {
	tokenID, ok := helpers.IDParam(c, "token_id")
	if !ok {
		return
	}
	collectible, err := h.collectibles.Token(c.Request.Context(), tokenID)
	if err != nil {
		helpers.RespondError(c, "CollectibleHandler", err, map[string]any{"token_id": tokenID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, collectible, "token retrieved successfully")
}

// BuyTokensHandler handles POST /crowdsale/buy
func (h *TokenHandler) BuyTokensHandler(c *gin.Context) {
	caller, ok := helpers.Principal(c, "BuyTokensHandler")
	if !ok {
		return
	}
	var req helpers.BuyTokensRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "BuyTokensHandler", err)
		return
	}

	var (
		purchase model.Purchase
		err      error
	)
	if req.Beneficiary == "" {
		purchase, err = h.crowdsale.Receive(c.Request.Context(), caller, req.Payment)
	} else {
		beneficiary, ok := helpers.ParseAddressField(c, "beneficiary", req.Beneficiary)
		if !ok {
			return
		}
		purchase, err = h.crowdsale.BuyTokens(c.Request.Context(), caller, beneficiary, req.Payment)
	}
	if err != nil {
		helpers.RespondError(c, "BuyTokensHandler", err, map[string]any{"caller": caller, "payment": req.Payment})
		return
	}

	utils.JSONResponse(c, http.StatusOK, purchase, "tokens purchased successfully")
	helpers.LogSuccess("BuyTokensHandler", "tokens purchased successfully", map[string]any{
		"purchaser":   purchase.Purchaser,
		"beneficiary": purchase.Beneficiary,
		"tokens":      purchase.Tokens,
	})
}
