package models

import (
	"encoding/hex"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Address identifies an account or a contract on the ledger
type Address string

// ZeroAddress is the empty address, used as the source of minted tokens
const ZeroAddress Address = ""

// ParseAddress validates a 0x-prefixed 20-byte hex address and lowercases it
func ParseAddress(s string) (Address, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "0x") || len(s) != 42 {
		return ZeroAddress, fmt.Errorf("malformed address %q", s)
	}
	if _, err := hex.DecodeString(s[2:]); err != nil {
		return ZeroAddress, fmt.Errorf("malformed address %q: %w", s, err)
	}
	return Address(s), nil
}

// UserStatus marks whether a registry record is still bound to an address
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusResigned UserStatus = "resigned"
)

// UserProfile holds the mutable attributes of a registered participant
type UserProfile struct {
	Name     string `json:"name"`
	Category int64  `json:"category"`
	Class    int64  `json:"class"`
	Code     string `json:"code"`
}

// User represents a participant registered in the user registry
type User struct {
	UserID       int64       `json:"user_id"`
	Address      Address     `json:"address"`
	Profile      UserProfile `json:"profile"`
	Status       UserStatus  `json:"status"`
	RegisteredAt time.Time   `json:"registered_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// AuctionStatus is the lifecycle phase of an auction
type AuctionStatus string

const (
	StatusApplication      AuctionStatus = "application"
	StatusBiddingScheduled AuctionStatus = "bidding_scheduled"
	StatusBidding          AuctionStatus = "bidding"
	StatusWinnerSelected   AuctionStatus = "winner_selected"
	StatusSettled          AuctionStatus = "settled"
	StatusCancelled        AuctionStatus = "cancelled"
)

// Auction represents one auction run by a seller
type Auction struct {
	AuctionID       int64             `json:"auction_id"`
	SellerID        int64             `json:"seller_id"`
	Seller          Address           `json:"seller"`
	Status          AuctionStatus     `json:"status"`
	ApplicationEnd  time.Time         `json:"application_end"`
	BiddingDuration time.Duration     `json:"bidding_duration"`
	BiddingEnd      time.Time         `json:"bidding_end"`
	Applicants      []int64           `json:"applicants"`
	Bidders         []int64           `json:"bidders"`
	Bids            map[int64]uint64  `json:"bids"`
	BidAccounts     map[int64]Address `json:"bid_accounts"`
	WinnerID        int64             `json:"winner_id,omitempty"`
	Escrow          uint64            `json:"escrow"`
	Withdrawn       map[int64]bool    `json:"withdrawn"`
	CreatedAt       time.Time         `json:"created_at"`
}

// Clone returns a deep copy so stored records never share slices or maps
func (a Auction) Clone() Auction {
	c := a
	c.Applicants = slices.Clone(a.Applicants)
	c.Bidders = slices.Clone(a.Bidders)
	c.Bids = make(map[int64]uint64, len(a.Bids))
	for k, v := range a.Bids {
		c.Bids[k] = v
	}
	c.BidAccounts = make(map[int64]Address, len(a.BidAccounts))
	for k, v := range a.BidAccounts {
		c.BidAccounts[k] = v
	}
	c.Withdrawn = make(map[int64]bool, len(a.Withdrawn))
	for k, v := range a.Withdrawn {
		c.Withdrawn[k] = v
	}
	return c
}

// ParticipantAt returns the seller or bidder whose funds moved through addr
func (a Auction) ParticipantAt(addr Address) (int64, bool) {
	if addr == ZeroAddress {
		return 0, false
	}
	if addr == a.Seller {
		return a.SellerID, true
	}
	for id, account := range a.BidAccounts {
		if account == addr {
			return id, true
		}
	}
	return 0, false
}

// EffectiveStatus resolves time-dependent phases against the ledger time.
// An auction still in application whose window has closed is awaiting bidding.
func (a Auction) EffectiveStatus(now time.Time) AuctionStatus {
	if a.Status == StatusApplication && !now.Before(a.ApplicationEnd) {
		return StatusBiddingScheduled
	}
	return a.Status
}

func (a Auction) IsApplicant(userID int64) bool {
	return slices.Contains(a.Applicants, userID)
}

func (a Auction) IsBidder(userID int64) bool {
	return slices.Contains(a.Bidders, userID)
}

// WinningBid returns the amount bid by the selected winner
func (a Auction) WinningBid() uint64 {
	if a.WinnerID == 0 {
		return 0
	}
	return a.Bids[a.WinnerID]
}

// Settled reports whether the seller and every losing bidder have withdrawn
func (a Auction) Settled() bool {
	if a.WinnerID == 0 || !a.Withdrawn[a.SellerID] {
		return false
	}
	for id := range a.Bids {
		if id != a.WinnerID && !a.Withdrawn[id] {
			return false
		}
	}
	return true
}

// TokenMetadata describes a fungible token contract
type TokenMetadata struct {
	Name     string `json:"name" yaml:"name"`
	Symbol   string `json:"symbol" yaml:"symbol"`
	Decimals uint8  `json:"decimals" yaml:"decimals"`
}

// Collectible is a non-fungible token record
type Collectible struct {
	Collection Address   `json:"collection"`
	TokenID    int64     `json:"token_id"`
	Owner      Address   `json:"owner"`
	URI        string    `json:"uri"`
	MintedAt   time.Time `json:"minted_at"`
}

// Certificate is the non-fungible token issued to an auction winner
type Certificate struct {
	AuctionID int64     `json:"auction_id"`
	TokenID   int64     `json:"token_id"`
	WinnerID  int64     `json:"winner_id"`
	Owner     Address   `json:"owner"`
	IssuedAt  time.Time `json:"issued_at"`
}

// Purchase records a crowdsale token purchase
type Purchase struct {
	Purchaser   Address `json:"purchaser"`
	Beneficiary Address `json:"beneficiary"`
	Payment     uint64  `json:"payment"`
	Tokens      uint64  `json:"tokens"`
}

// Event is an entry in the committed ledger log
type Event struct {
	Sequence  int64          `json:"sequence"`
	TxID      string         `json:"tx_id"`
	Contract  Address        `json:"contract"`
	Name      string         `json:"name"`
	Fields    map[string]any `json:"fields"`
	Timestamp time.Time      `json:"timestamp"`
}
