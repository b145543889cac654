package token

import (
	"context"
	"fmt"

	"auction-market/internal/marketerrors"
	model "auction-market/internal/models"
	"auction-market/internal/repository"
)

// ERC721 is a non-fungible token collection with an allow-list of minters
type ERC721 struct {
	ledger  *repository.Ledger
	address model.Address
	name    string
	symbol  string
}

// NewERC721 creates a non-fungible token contract hosted at address
func NewERC721(ledger *repository.Ledger, address model.Address, name, symbol string) *ERC721 {
	return &ERC721{ledger: ledger, address: address, name: name, symbol: symbol}
}

// Address returns the contract address
func (n *ERC721) Address() model.Address { return n.address }

func (n *ERC721) Name() string   { return n.name }
func (n *ERC721) Symbol() string { return n.symbol }

// Initialize records the contract owner. The owner is also the first minter.
func (n *ERC721) Initialize(ctx context.Context, owner model.Address) error {
	if owner == model.ZeroAddress {
		return fmt.Errorf("erc721: initialize: %w", marketerrors.ErrInvalidAddress)
	}
	err := n.ledger.Transact(ctx, func(tx *repository.Tx) error {
		if _, ok := tx.ContractOwner(n.address); ok {
			return marketerrors.ErrAlreadyInitialized
		}
		tx.SetContractOwner(n.address, owner)
		tx.SetMinter(n.address, owner, true)
		return nil
	})
	if err != nil {
		return fmt.Errorf("erc721: initialize: %w", err)
	}
	return nil
}

// AddMinter lets the contract owner grant the minter role
func (n *ERC721) AddMinter(ctx context.Context, caller, minter model.Address) error {
	if minter == model.ZeroAddress {
		return fmt.Errorf("erc721: add minter: %w", marketerrors.ErrInvalidAddress)
	}
	err := n.ledger.Transact(ctx, func(tx *repository.Tx) error {
		if owner, ok := tx.ContractOwner(n.address); !ok || owner != caller {
			return marketerrors.ErrNotContractOwner
		}
		tx.SetMinter(n.address, minter, true)
		tx.Emit(n.address, "MinterAdded", map[string]any{"account": minter})
		return nil
	})
	if err != nil {
		return fmt.Errorf("erc721: add minter %s: %w", minter, err)
	}
	return nil
}

// Mint creates tokenID owned by to
func (n *ERC721) Mint(ctx context.Context, caller, to model.Address, tokenID int64, uri string) error {
	err := n.ledger.Transact(ctx, func(tx *repository.Tx) error {
		return n.MintTx(tx, caller, to, tokenID, uri)
	})
	if err != nil {
		return fmt.Errorf("erc721: mint %d: %w", tokenID, err)
	}
	return nil
}

// MintTx creates tokenID inside an open transaction
func (n *ERC721) MintTx(tx *repository.Tx, minter, to model.Address, tokenID int64, uri string) error {
	if !tx.IsMinter(n.address, minter) {
		return marketerrors.ErrNotMinter
	}
	if to == model.ZeroAddress {
		return marketerrors.ErrInvalidAddress
	}
	if _, exists := tx.Collectible(n.address, tokenID); exists {
		return marketerrors.ErrTokenExists
	}

	tx.PutCollectible(model.Collectible{
		Collection: n.address,
		TokenID:    tokenID,
		Owner:      to,
		URI:        uri,
		MintedAt:   tx.Now(),
	})
	tx.SetHoldings(n.address, to, tx.Holdings(n.address, to)+1)
	tx.Emit(n.address, "Transfer", map[string]any{"from": model.ZeroAddress, "to": to, "token_id": tokenID})
	return nil
}

// Transfer hands tokenID from the caller to to
func (n *ERC721) Transfer(ctx context.Context, caller, to model.Address, tokenID int64) error {
	if to == model.ZeroAddress {
		return fmt.Errorf("erc721: transfer %d: %w", tokenID, marketerrors.ErrInvalidAddress)
	}
	err := n.ledger.Transact(ctx, func(tx *repository.Tx) error {
		c, ok := tx.Collectible(n.address, tokenID)
		if !ok {
			return marketerrors.ErrTokenNotFound
		}
		if c.Owner != caller {
			return marketerrors.ErrNotTokenOwner
		}
		if to == caller {
			return nil
		}

		tx.SetHoldings(n.address, caller, tx.Holdings(n.address, caller)-1)
		tx.SetHoldings(n.address, to, tx.Holdings(n.address, to)+1)
		c.Owner = to
		tx.PutCollectible(c)
		tx.Emit(n.address, "Transfer", map[string]any{"from": caller, "to": to, "token_id": tokenID})
		return nil
	})
	if err != nil {
		return fmt.Errorf("erc721: transfer %d: %w", tokenID, err)
	}
	return nil
}

// OwnerOf returns the current owner of tokenID
func (n *ERC721) OwnerOf(ctx context.Context, tokenID int64) (model.Address, error) {
	c, err := n.Token(ctx, tokenID)
	if err != nil {
		return model.ZeroAddress, err
	}
	return c.Owner, nil
}

// Token returns the full record of tokenID
func (n *ERC721) Token(ctx context.Context, tokenID int64) (model.Collectible, error) {
	var c model.Collectible
	err := n.ledger.View(ctx, func(tx *repository.Tx) error {
		var ok bool
		c, ok = tx.Collectible(n.address, tokenID)
		if !ok {
			return marketerrors.ErrTokenNotFound
		}
		return nil
	})
	if err != nil {
		return model.Collectible{}, fmt.Errorf("erc721: token %d: %w", tokenID, err)
	}
	return c, nil
}

// BalanceOf returns how many tokens owner holds
func (n *ERC721) BalanceOf(ctx context.Context, owner model.Address) (uint64, error) {
	var count uint64
	err := n.ledger.View(ctx, func(tx *repository.Tx) error {
		count = tx.Holdings(n.address, owner)
		return nil
	})
	return count, err
}

// Exists reports whether tokenID has been minted
func (n *ERC721) Exists(ctx context.Context, tokenID int64) (bool, error) {
	var exists bool
	err := n.ledger.View(ctx, func(tx *repository.Tx) error {
		_, exists = tx.Collectible(n.address, tokenID)
		return nil
	})
	return exists, err
}
