package token

import (
	"context"
	"fmt"
	"math"

	"auction-market/internal/marketerrors"
	model "auction-market/internal/models"
	"auction-market/internal/repository"
)

// ERC20 is a fungible balance and allowance ledger
type ERC20 struct {
	ledger   *repository.Ledger
	address  model.Address
	metadata model.TokenMetadata
}

// NewERC20 creates a fungible token contract hosted at address
func NewERC20(ledger *repository.Ledger, address model.Address, metadata model.TokenMetadata) *ERC20 {
	return &ERC20{ledger: ledger, address: address, metadata: metadata}
}

// Address returns the contract address
func (t *ERC20) Address() model.Address { return t.address }

// Metadata returns name, symbol and decimals
func (t *ERC20) Metadata() model.TokenMetadata { return t.metadata }

// MintInitialSupply credits the whole supply to owner. It can only run once.
func (t *ERC20) MintInitialSupply(ctx context.Context, owner model.Address, supply uint64) error {
	if owner == model.ZeroAddress {
		return fmt.Errorf("erc20: mint supply: %w", marketerrors.ErrInvalidAddress)
	}
	err := t.ledger.Transact(ctx, func(tx *repository.Tx) error {
		if _, ok := tx.Supply(t.address); ok {
			return marketerrors.ErrAlreadyInitialized
		}
		tx.SetSupply(t.address, supply)
		tx.SetBalance(t.address, owner, supply)
		tx.SetContractOwner(t.address, owner)
		tx.Emit(t.address, "Transfer", map[string]any{"from": model.ZeroAddress, "to": owner, "value": supply})
		return nil
	})
	if err != nil {
		return fmt.Errorf("erc20: mint supply: %w", err)
	}
	return nil
}

// TotalSupply returns the number of tokens in existence
func (t *ERC20) TotalSupply(ctx context.Context) (uint64, error) {
	var supply uint64
	err := t.ledger.View(ctx, func(tx *repository.Tx) error {
		supply, _ = tx.Supply(t.address)
		return nil
	})
	return supply, err
}

// BalanceOf returns the balance of account
func (t *ERC20) BalanceOf(ctx context.Context, account model.Address) (uint64, error) {
	var bal uint64
	err := t.ledger.View(ctx, func(tx *repository.Tx) error {
		bal = t.BalanceOfTx(tx, account)
		return nil
	})
	return bal, err
}

// Allowance returns the amount spender may still pull from owner
func (t *ERC20) Allowance(ctx context.Context, owner, spender model.Address) (uint64, error) {
	var allowance uint64
	err := t.ledger.View(ctx, func(tx *repository.Tx) error {
		allowance = tx.Allowance(t.address, owner, spender)
		return nil
	})
	return allowance, err
}

// Transfer moves amount from the caller to to
func (t *ERC20) Transfer(ctx context.Context, caller, to model.Address, amount uint64) error {
	err := t.ledger.Transact(ctx, func(tx *repository.Tx) error {
		return t.TransferTx(tx, caller, to, amount)
	})
	if err != nil {
		return fmt.Errorf("erc20: transfer %d from %s to %s: %w", amount, caller, to, err)
	}
	return nil
}

// Approve sets the amount spender may pull from the caller
func (t *ERC20) Approve(ctx context.Context, caller, spender model.Address, amount uint64) error {
	if spender == model.ZeroAddress {
		return fmt.Errorf("erc20: approve: %w", marketerrors.ErrInvalidAddress)
	}
	err := t.ledger.Transact(ctx, func(tx *repository.Tx) error {
		t.approve(tx, caller, spender, amount)
		return nil
	})
	if err != nil {
		return fmt.Errorf("erc20: approve %s: %w", spender, err)
	}
	return nil
}

// IncreaseAllowance raises the allowance granted to spender
func (t *ERC20) IncreaseAllowance(ctx context.Context, caller, spender model.Address, added uint64) error {
	if spender == model.ZeroAddress {
		return fmt.Errorf("erc20: increase allowance: %w", marketerrors.ErrInvalidAddress)
	}
	err := t.ledger.Transact(ctx, func(tx *repository.Tx) error {
		current := tx.Allowance(t.address, caller, spender)
		if current > math.MaxUint64-added {
			return marketerrors.ErrOverflow
		}
		t.approve(tx, caller, spender, current+added)
		return nil
	})
	if err != nil {
		return fmt.Errorf("erc20: increase allowance of %s: %w", spender, err)
	}
	return nil
}

// DecreaseAllowance lowers the allowance granted to spender, flooring at zero
func (t *ERC20) DecreaseAllowance(ctx context.Context, caller, spender model.Address, subtracted uint64) error {
	if spender == model.ZeroAddress {
		return fmt.Errorf("erc20: decrease allowance: %w", marketerrors.ErrInvalidAddress)
	}
	err := t.ledger.Transact(ctx, func(tx *repository.Tx) error {
		current := tx.Allowance(t.address, caller, spender)
		next := uint64(0)
		if subtracted < current {
			next = current - subtracted
		}
		t.approve(tx, caller, spender, next)
		return nil
	})
	if err != nil {
		return fmt.Errorf("erc20: decrease allowance of %s: %w", spender, err)
	}
	return nil
}

// TransferFrom moves amount from from to to using the caller's allowance
func (t *ERC20) TransferFrom(ctx context.Context, caller, from, to model.Address, amount uint64) error {
	err := t.ledger.Transact(ctx, func(tx *repository.Tx) error {
		return t.TransferFromTx(tx, caller, from, to, amount)
	})
	if err != nil {
		return fmt.Errorf("erc20: transfer %d from %s to %s: %w", amount, from, to, err)
	}
	return nil
}

// BalanceOfTx reads a balance inside an open transaction
func (t *ERC20) BalanceOfTx(tx *repository.Tx, account model.Address) uint64 {
	return tx.Balance(t.address, account)
}

// TransferTx moves tokens inside an open transaction
func (t *ERC20) TransferTx(tx *repository.Tx, from, to model.Address, amount uint64) error {
	if to == model.ZeroAddress {
		return marketerrors.ErrInvalidAddress
	}
	fromBal := tx.Balance(t.address, from)
	if fromBal < amount {
		return marketerrors.ErrInsufficientBalance
	}
	if from != to {
		toBal := tx.Balance(t.address, to)
		if toBal > math.MaxUint64-amount {
			return marketerrors.ErrOverflow
		}
		tx.SetBalance(t.address, from, fromBal-amount)
		tx.SetBalance(t.address, to, toBal+amount)
	}
	tx.Emit(t.address, "Transfer", map[string]any{"from": from, "to": to, "value": amount})
	return nil
}

// TransferFromTx spends spender's allowance on from inside an open transaction
func (t *ERC20) TransferFromTx(tx *repository.Tx, spender, from, to model.Address, amount uint64) error {
	allowance := tx.Allowance(t.address, from, spender)
	if allowance < amount {
		return marketerrors.ErrInsufficientAllowance
	}
	if err := t.TransferTx(tx, from, to, amount); err != nil {
		return err
	}
	tx.SetAllowance(t.address, from, spender, allowance-amount)
	return nil
}

func (t *ERC20) approve(tx *repository.Tx, owner, spender model.Address, amount uint64) {
	tx.SetAllowance(t.address, owner, spender, amount)
	tx.Emit(t.address, "Approval", map[string]any{"owner": owner, "spender": spender, "value": amount})
}
