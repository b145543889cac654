package issuer

import (
	"context"
	"fmt"

	"auction-market/internal/marketerrors"
	model "auction-market/internal/models"
	"auction-market/internal/repository"
)

// Directory resolves participants through the user registry
type Directory interface {
	UserIDTx(tx *repository.Tx, addr model.Address) (int64, error)
	AddressTx(tx *repository.Tx, userID int64) (model.Address, error)
}

// AuctionReader loads auctions inside an open transaction
type AuctionReader interface {
	AuctionTx(tx *repository.Tx, auctionID int64) (model.Auction, error)
}

// Minter creates certificate tokens
type Minter interface {
	MintTx(tx *repository.Tx, minter, to model.Address, tokenID int64, uri string) error
}

// Issuer mints one certificate to the winner of each completed auction
type Issuer struct {
	ledger   *repository.Ledger
	address  model.Address
	users    Directory
	auctions AuctionReader
	nft      Minter
}

// NewIssuer creates the issuer contract hosted at address. The address must
// hold the minter role on the certificate collection.
func NewIssuer(ledger *repository.Ledger, address model.Address, users Directory, nft Minter, auctions AuctionReader) *Issuer {
	return &Issuer{
		ledger:   ledger,
		address:  address,
		users:    users,
		auctions: auctions,
		nft:      nft,
	}
}

// Address returns the contract address
func (i *Issuer) Address() model.Address { return i.address }

// IssueERC721Token mints the certificate of auctionID to the winner's current address
func (i *Issuer) IssueERC721Token(ctx context.Context, caller model.Address, auctionID int64) (model.Certificate, error) {
	var cert model.Certificate
	err := i.ledger.Transact(ctx, func(tx *repository.Tx) error {
		a, err := i.auctions.AuctionTx(tx, auctionID)
		if err != nil {
			return err
		}
		callerID, err := i.users.UserIDTx(tx, caller)
		if err != nil {
			// a resigned seller signs from the address the auction was opened with
			callerID, _ = a.ParticipantAt(caller)
		}
		if callerID != a.SellerID {
			return marketerrors.ErrNotSeller
		}
		switch a.Status {
		case model.StatusWinnerSelected, model.StatusSettled:
		default:
			return marketerrors.ErrWinnerNotSelected
		}
		if _, issued := tx.Certificate(auctionID); issued {
			return marketerrors.ErrAlreadyIssued
		}

		winner, err := i.users.AddressTx(tx, a.WinnerID)
		if err != nil {
			return err
		}
		if err := i.nft.MintTx(tx, i.address, winner, auctionID, CertificateURI(auctionID)); err != nil {
			return err
		}

		cert = model.Certificate{
			AuctionID: auctionID,
			TokenID:   auctionID,
			WinnerID:  a.WinnerID,
			Owner:     winner,
			IssuedAt:  tx.Now(),
		}
		tx.PutCertificate(cert)
		tx.Emit(i.address, "CertificateIssued", map[string]any{
			"auction_id": auctionID,
			"winner_id":  a.WinnerID,
			"owner":      winner,
		})
		return nil
	})
	if err != nil {
		return model.Certificate{}, fmt.Errorf("issuer: issue certificate for auction %d: %w", auctionID, err)
	}
	return cert, nil
}

// CertificateOf returns the certificate issued for auctionID
func (i *Issuer) CertificateOf(ctx context.Context, auctionID int64) (model.Certificate, error) {
	var cert model.Certificate
	err := i.ledger.View(ctx, func(tx *repository.Tx) error {
		c, ok := tx.Certificate(auctionID)
		if !ok {
			return marketerrors.ErrCertificateNotFound
		}
		cert = c
		return nil
	})
	if err != nil {
		return model.Certificate{}, fmt.Errorf("issuer: certificate of auction %d: %w", auctionID, err)
	}
	return cert, nil
}

// CertificateURI is the metadata URI recorded on a certificate token
func CertificateURI(auctionID int64) string {
	return fmt.Sprintf("auction://%d/certificate", auctionID)
}
