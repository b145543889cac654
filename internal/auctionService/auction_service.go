package auction

import (
	"context"
	"fmt"
	"time"

	"auction-market/internal/marketerrors"
	model "auction-market/internal/models"
	"auction-market/internal/repository"
)

// Directory resolves participants through the user registry
type Directory interface {
	UserIDTx(tx *repository.Tx, addr model.Address) (int64, error)
	AddressTx(tx *repository.Tx, userID int64) (model.Address, error)
}

// Escrow moves bidding currency in and out of the auction contract
type Escrow interface {
	TransferTx(tx *repository.Tx, from, to model.Address, amount uint64) error
	TransferFromTx(tx *repository.Tx, spender, from, to model.Address, amount uint64) error
}

// AuctionService owns the auction lifecycle
type AuctionService struct {
	ledger  *repository.Ledger
	address model.Address
	users   Directory
	token   Escrow
}

// NewAuctionService creates an auction contract hosted at address
func NewAuctionService(ledger *repository.Ledger, address model.Address, users Directory, token Escrow) *AuctionService {
	return &AuctionService{
		ledger:  ledger,
		address: address,
		users:   users,
		token:   token,
	}
}

// Address returns the contract address, which also holds the escrowed tokens
func (s *AuctionService) Address() model.Address { return s.address }

// CreateAuction opens a new auction whose application window lasts applicationDuration
func (s *AuctionService) CreateAuction(ctx context.Context, caller model.Address, applicationDuration time.Duration) (model.Auction, error) {
	if applicationDuration <= 0 {
		return model.Auction{}, fmt.Errorf("service: create auction: %w", marketerrors.ErrInvalidDuration)
	}

	var created model.Auction
	err := s.ledger.Transact(ctx, func(tx *repository.Tx) error {
		sellerID, err := s.users.UserIDTx(tx, caller)
		if err != nil {
			return err
		}

		now := tx.Now()
		end, err := deadline(now, applicationDuration)
		if err != nil {
			return err
		}
		created = model.Auction{
			AuctionID:      tx.NextSequence(repository.SeqAuction),
			SellerID:       sellerID,
			Seller:         caller,
			Status:         model.StatusApplication,
			ApplicationEnd: end,
			Bids:           make(map[int64]uint64),
			BidAccounts:    make(map[int64]model.Address),
			Withdrawn:      make(map[int64]bool),
			CreatedAt:      now,
		}
		tx.PutAuction(created)
		tx.Emit(s.address, "AuctionCreated", map[string]any{
			"auction_id":      created.AuctionID,
			"seller_id":       sellerID,
			"application_end": created.ApplicationEnd,
		})
		return nil
	})
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: create auction by %s: %w", caller, err)
	}
	return created, nil
}

// ExtendApplicationEnd pushes the application end forward while applications are open
func (s *AuctionService) ExtendApplicationEnd(ctx context.Context, caller model.Address, auctionID int64, extra time.Duration) (model.Auction, error) {
	if extra <= 0 {
		return model.Auction{}, fmt.Errorf("service: extend auction %d: %w", auctionID, marketerrors.ErrInvalidDuration)
	}

	return s.mutate(ctx, "extend", auctionID, func(tx *repository.Tx, a *model.Auction) error {
		if err := s.requireSeller(tx, *a, caller); err != nil {
			return err
		}
		if a.EffectiveStatus(tx.Now()) != model.StatusApplication {
			return s.stateError(tx, *a)
		}
		end, err := deadline(a.ApplicationEnd, extra)
		if err != nil {
			return err
		}
		a.ApplicationEnd = end
		tx.Emit(s.address, "ApplicationExtended", map[string]any{
			"auction_id":      a.AuctionID,
			"application_end": a.ApplicationEnd,
		})
		return nil
	})
}

// CancelAuction ends an auction that has not started bidding
func (s *AuctionService) CancelAuction(ctx context.Context, caller model.Address, auctionID int64) (model.Auction, error) {
	return s.mutate(ctx, "cancel", auctionID, func(tx *repository.Tx, a *model.Auction) error {
		if err := s.requireSeller(tx, *a, caller); err != nil {
			return err
		}
		switch a.EffectiveStatus(tx.Now()) {
		case model.StatusApplication, model.StatusBiddingScheduled:
		default:
			return s.stateError(tx, *a)
		}
		a.Status = model.StatusCancelled
		tx.Emit(s.address, "AuctionCancelled", map[string]any{"auction_id": a.AuctionID})
		return nil
	})
}

// Apply records the caller as an applicant
func (s *AuctionService) Apply(ctx context.Context, caller model.Address, auctionID int64) (model.Auction, error) {
	return s.mutate(ctx, "apply to", auctionID, func(tx *repository.Tx, a *model.Auction) error {
		userID, err := s.users.UserIDTx(tx, caller)
		if err != nil {
			return err
		}
		switch a.EffectiveStatus(tx.Now()) {
		case model.StatusApplication:
		case model.StatusBiddingScheduled:
			return marketerrors.ErrApplicationClosed
		default:
			return s.stateError(tx, *a)
		}
		if userID == a.SellerID {
			return marketerrors.ErrSellerCannotApply
		}
		if a.IsApplicant(userID) {
			return marketerrors.ErrAlreadyApplied
		}
		a.Applicants = append(a.Applicants, userID)
		tx.Emit(s.address, "Applied", map[string]any{"auction_id": a.AuctionID, "user_id": userID})
		return nil
	})
}

// SelectBidders admits an applicant to the bidding roster
func (s *AuctionService) SelectBidders(ctx context.Context, caller model.Address, auctionID, userID int64) (model.Auction, error) {
	return s.mutate(ctx, "select bidder for", auctionID, func(tx *repository.Tx, a *model.Auction) error {
		if err := s.requireSeller(tx, *a, caller); err != nil {
			return err
		}
		switch a.EffectiveStatus(tx.Now()) {
		case model.StatusApplication, model.StatusBiddingScheduled:
		default:
			return s.stateError(tx, *a)
		}
		if !a.IsApplicant(userID) {
			return marketerrors.ErrNotApplicant
		}
		if a.IsBidder(userID) {
			return marketerrors.ErrAlreadySelected
		}
		if _, err := s.users.AddressTx(tx, userID); err != nil {
			return err
		}
		a.Bidders = append(a.Bidders, userID)
		tx.Emit(s.address, "BidderSelected", map[string]any{"auction_id": a.AuctionID, "user_id": userID})
		return nil
	})
}

// BiddingStart opens the bidding window once applications have closed
func (s *AuctionService) BiddingStart(ctx context.Context, caller model.Address, auctionID int64, biddingDuration time.Duration) (model.Auction, error) {
	if biddingDuration <= 0 {
		return model.Auction{}, fmt.Errorf("service: start bidding for auction %d: %w", auctionID, marketerrors.ErrInvalidDuration)
	}

	return s.mutate(ctx, "start bidding for", auctionID, func(tx *repository.Tx, a *model.Auction) error {
		if err := s.requireSeller(tx, *a, caller); err != nil {
			return err
		}
		switch a.EffectiveStatus(tx.Now()) {
		case model.StatusBiddingScheduled:
		case model.StatusApplication:
			return marketerrors.ErrApplicationOpen
		default:
			return s.stateError(tx, *a)
		}
		if len(a.Bidders) == 0 {
			return marketerrors.ErrNoBidders
		}
		end, err := deadline(tx.Now(), biddingDuration)
		if err != nil {
			return err
		}
		a.Status = model.StatusBidding
		a.BiddingDuration = biddingDuration
		a.BiddingEnd = end
		tx.Emit(s.address, "BiddingStarted", map[string]any{
			"auction_id":  a.AuctionID,
			"bidding_end": a.BiddingEnd,
		})
		return nil
	})
}

// Bid escrows amount from the caller, who must be a selected bidder and must
// have approved the auction contract for at least amount
func (s *AuctionService) Bid(ctx context.Context, caller model.Address, auctionID int64, amount uint64) (model.Auction, error) {
	if amount == 0 {
		return model.Auction{}, fmt.Errorf("service: bid on auction %d: %w", auctionID, marketerrors.ErrInvalidAmount)
	}

	return s.mutate(ctx, "bid on", auctionID, func(tx *repository.Tx, a *model.Auction) error {
		if a.EffectiveStatus(tx.Now()) != model.StatusBidding {
			return s.stateError(tx, *a)
		}
		if !tx.Now().Before(a.BiddingEnd) {
			return marketerrors.ErrBiddingClosed
		}
		userID, err := s.users.UserIDTx(tx, caller)
		if err != nil || !a.IsBidder(userID) {
			return marketerrors.ErrNotSelectedBidder
		}
		if _, ok := a.Bids[userID]; ok {
			return marketerrors.ErrAlreadyBid
		}
		if a.Escrow > ^uint64(0)-amount {
			return marketerrors.ErrOverflow
		}
		if err := s.token.TransferFromTx(tx, s.address, caller, s.address, amount); err != nil {
			return err
		}
		a.Bids[userID] = amount
		a.BidAccounts[userID] = caller
		a.Escrow += amount
		tx.Emit(s.address, "BidPlaced", map[string]any{
			"auction_id": a.AuctionID,
			"user_id":    userID,
			"amount":     amount,
		})
		return nil
	})
}

// SelectWinner records the seller's choice among the bidders who placed a bid.
// The seller is free to pick any bid; amounts are not compared.
func (s *AuctionService) SelectWinner(ctx context.Context, caller model.Address, auctionID, userID int64) (model.Auction, error) {
	return s.mutate(ctx, "select winner for", auctionID, func(tx *repository.Tx, a *model.Auction) error {
		if err := s.requireSeller(tx, *a, caller); err != nil {
			return err
		}
		if a.EffectiveStatus(tx.Now()) != model.StatusBidding {
			return s.stateError(tx, *a)
		}
		if _, ok := a.Bids[userID]; !ok {
			return marketerrors.ErrNoBid
		}
		a.WinnerID = userID
		a.Status = model.StatusWinnerSelected
		tx.Emit(s.address, "WinnerSelected", map[string]any{
			"auction_id": a.AuctionID,
			"winner_id":  userID,
			"amount":     a.Bids[userID],
		})
		return nil
	})
}

// WithdrawERC20 releases escrow once a winner is selected: the seller receives
// the winning bid and each losing bidder reclaims their own bid, once.
func (s *AuctionService) WithdrawERC20(ctx context.Context, caller model.Address, auctionID int64) (uint64, error) {
	var amount uint64
	_, err := s.mutate(ctx, "withdraw from", auctionID, func(tx *repository.Tx, a *model.Auction) error {
		switch a.Status {
		case model.StatusWinnerSelected, model.StatusSettled:
		case model.StatusCancelled:
			return s.stateError(tx, *a)
		default:
			return marketerrors.ErrWinnerNotSelected
		}

		userID, err := s.participantID(tx, *a, caller)
		if err != nil {
			return err
		}
		if a.Withdrawn[userID] {
			return marketerrors.ErrAlreadyWithdrawn
		}

		switch bid, placed := a.Bids[userID]; {
		case userID == a.SellerID:
			amount = a.WinningBid()
		case userID == a.WinnerID || !placed:
			return marketerrors.ErrNothingToWithdraw
		default:
			amount = bid
		}

		if err := s.token.TransferTx(tx, s.address, caller, amount); err != nil {
			return err
		}
		a.Escrow -= amount
		a.Withdrawn[userID] = true
		if a.Settled() {
			a.Status = model.StatusSettled
		}
		tx.Emit(s.address, "Withdrawn", map[string]any{
			"auction_id": a.AuctionID,
			"user_id":    userID,
			"amount":     amount,
		})
		return nil
	})
	if err != nil {
		return 0, err
	}
	return amount, nil
}

// GetAuction returns an auction with its status resolved against ledger time
func (s *AuctionService) GetAuction(ctx context.Context, auctionID int64) (model.Auction, error) {
	var auction model.Auction
	err := s.ledger.View(ctx, func(tx *repository.Tx) error {
		a, err := s.AuctionTx(tx, auctionID)
		if err != nil {
			return err
		}
		a.Status = a.EffectiveStatus(tx.Now())
		auction = a
		return nil
	})
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to get auction %d: %w", auctionID, err)
	}
	return auction, nil
}

// ListAuctions returns every auction ordered by id
func (s *AuctionService) ListAuctions(ctx context.Context) ([]model.Auction, error) {
	var auctions []model.Auction
	err := s.ledger.View(ctx, func(tx *repository.Tx) error {
		auctions = tx.Auctions()
		for i := range auctions {
			auctions[i].Status = auctions[i].EffectiveStatus(tx.Now())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, nil
}

// AuctionTx loads an auction inside an open transaction
func (s *AuctionService) AuctionTx(tx *repository.Tx, auctionID int64) (model.Auction, error) {
	a, ok := tx.Auction(auctionID)
	if !ok {
		return model.Auction{}, marketerrors.ErrAuctionNotFound
	}
	return a, nil
}

// mutate loads the auction, applies fn and stores the result in one transaction
func (s *AuctionService) mutate(ctx context.Context, action string, auctionID int64, fn func(tx *repository.Tx, a *model.Auction) error) (model.Auction, error) {
	var updated model.Auction
	err := s.ledger.Transact(ctx, func(tx *repository.Tx) error {
		a, err := s.AuctionTx(tx, auctionID)
		if err != nil {
			return err
		}
		if err := fn(tx, &a); err != nil {
			return err
		}
		tx.PutAuction(a)
		updated = a
		updated.Status = a.EffectiveStatus(tx.Now())
		return nil
	})
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: %s auction %d: %w", action, auctionID, err)
	}
	return updated, nil
}

func (s *AuctionService) requireSeller(tx *repository.Tx, a model.Auction, caller model.Address) error {
	userID, err := s.users.UserIDTx(tx, caller)
	if err != nil || userID != a.SellerID {
		return marketerrors.ErrNotSeller
	}
	return nil
}

// participantID resolves the caller through the registry, falling back to the
// accounts recorded on the auction so a resigned seller or bidder can still settle
func (s *AuctionService) participantID(tx *repository.Tx, a model.Auction, caller model.Address) (int64, error) {
	userID, err := s.users.UserIDTx(tx, caller)
	if err == nil {
		return userID, nil
	}
	if id, ok := a.ParticipantAt(caller); ok {
		return id, nil
	}
	return 0, err
}

// deadline adds d to from and fails once the result stops moving forward
func deadline(from time.Time, d time.Duration) (time.Time, error) {
	end := from.Add(d)
	if !end.After(from) {
		return time.Time{}, marketerrors.ErrOverflow
	}
	return end, nil
}

func (s *AuctionService) stateError(tx *repository.Tx, a model.Auction) error {
	return fmt.Errorf("%w: auction %d is %s", marketerrors.ErrInvalidState, a.AuctionID, a.EffectiveStatus(tx.Now()))
}
