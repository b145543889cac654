package helpers

// Request DTOs
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Category int64  `json:"category"`
	Class    int64  `json:"class"`
	Code     string `json:"code" binding:"required"`
}

type ChangeAddressRequest struct {
	NewAddress string `json:"new_address" binding:"required"`
}

type CreateAuctionRequest struct {
	ApplicationSeconds int64 `json:"application_seconds" binding:"required,gt=0"`
}

type ExtendAuctionRequest struct {
	ExtraSeconds int64 `json:"extra_seconds" binding:"required,gt=0"`
}

type SelectUserRequest struct {
	UserID int64 `json:"user_id" binding:"required,gt=0"`
}

type StartBiddingRequest struct {
	BiddingSeconds int64 `json:"bidding_seconds" binding:"required,gt=0"`
}

type BidRequest struct {
	Amount uint64 `json:"amount" binding:"required,gt=0"`
}

type TransferRequest struct {
	To     string `json:"to" binding:"required"`
	Amount uint64 `json:"amount"`
}

type ApproveRequest struct {
	Spender string `json:"spender" binding:"required"`
	Amount  uint64 `json:"amount"`
}

type TransferFromRequest struct {
	From   string `json:"from" binding:"required"`
	To     string `json:"to" binding:"required"`
	Amount uint64 `json:"amount"`
}

// BuyTokensRequest buys for the beneficiary, or for the caller when it is empty
type BuyTokensRequest struct {
	Beneficiary string `json:"beneficiary"`
	Payment     uint64 `json:"payment" binding:"required,gt=0"`
}

// Response DTOs
type UserIDResponse struct {
	Address string `json:"address"`
	UserID  int64  `json:"user_id"`
}

type WithdrawResponse struct {
	AuctionID int64  `json:"auction_id"`
	Amount    uint64 `json:"amount"`
}

type BalanceResponse struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
}

type AllowanceResponse struct {
	Owner     string `json:"owner"`
	Spender   string `json:"spender"`
	Allowance uint64 `json:"allowance"`
}
