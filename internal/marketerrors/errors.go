package marketerrors

import "errors"

// ErrReverted matches every guard violation raised by a contract
var ErrReverted = errors.New("transaction reverted")

// RevertError is a guard violation carrying the reason string reported to callers
type RevertError struct {
	Reason string
}

func (e *RevertError) Error() string {
	return "revert: " + e.Reason
}

// Is lets errors.Is(err, ErrReverted) recognise any revert
func (e *RevertError) Is(target error) bool {
	return target == ErrReverted
}

// Reason returns the revert reason carried by err, if any
func Reason(err error) (string, bool) {
	var revert *RevertError
	if errors.As(err, &revert) {
		return revert.Reason, true
	}
	return "", false
}

func revert(reason string) *RevertError {
	return &RevertError{Reason: reason}
}

// Lookup errors
var (
	ErrUserNotFound        = revert("user not found")
	ErrAuctionNotFound     = revert("auction not found")
	ErrTokenNotFound       = revert("token not found")
	ErrCertificateNotFound = revert("certificate not found")
)

// Input errors
var (
	ErrInvalidAddress  = revert("invalid address")
	ErrInvalidProfile  = revert("invalid user profile")
	ErrInvalidDuration = revert("duration out of range")
	ErrInvalidAmount   = revert("amount must be positive")
	ErrOverflow        = revert("arithmetic overflow")
)

// Authorization errors
var (
	ErrNotSeller         = revert("caller is not the seller")
	ErrNotSelectedBidder = revert("caller is not a selected bidder")
	ErrNotTokenOwner     = revert("caller does not own the token")
	ErrNotMinter         = revert("caller is not a minter")
	ErrNotContractOwner  = revert("caller is not the contract owner")
)

// State errors
var (
	ErrAlreadyRegistered  = revert("address already registered")
	ErrAddressInUse       = revert("address bound to another user")
	ErrInvalidState       = revert("operation not allowed in current auction state")
	ErrApplicationClosed  = revert("application period has ended")
	ErrApplicationOpen    = revert("application period has not ended")
	ErrBiddingClosed      = revert("bidding period has ended")
	ErrSellerCannotApply  = revert("seller cannot apply to own auction")
	ErrAlreadyApplied     = revert("user already applied")
	ErrNotApplicant       = revert("user did not apply")
	ErrAlreadySelected    = revert("bidder already selected")
	ErrNoBidders          = revert("no bidders selected")
	ErrAlreadyBid         = revert("bidder already placed a bid")
	ErrNoBid              = revert("user has no bid")
	ErrWinnerNotSelected  = revert("winner not selected")
	ErrAlreadyWithdrawn   = revert("already withdrawn")
	ErrNothingToWithdraw  = revert("nothing to withdraw")
	ErrAlreadyIssued      = revert("certificate already issued")
	ErrTokenExists        = revert("token already minted")
	ErrAlreadyInitialized = revert("contract already initialized")
)

// Funds errors
var (
	ErrInsufficientBalance   = revert("insufficient token balance")
	ErrInsufficientAllowance = revert("insufficient allowance")
	ErrInsufficientFunds     = revert("insufficient native balance")
)
