package crowdsale

import (
	"context"
	"fmt"
	"math"

	"auction-market/internal/marketerrors"
	model "auction-market/internal/models"
	"auction-market/internal/repository"
)

// Vault is the token the crowdsale sells from its own balance
type Vault interface {
	BalanceOfTx(tx *repository.Tx, account model.Address) uint64
	TransferTx(tx *repository.Tx, from, to model.Address, amount uint64) error
}

// Crowdsale sells tokens for native currency at a fixed rate
type Crowdsale struct {
	ledger  *repository.Ledger
	address model.Address
	wallet  model.Address
	rate    uint64
	token   Vault
}

// NewCrowdsale creates a crowdsale hosted at address. Payments are forwarded
// to wallet and each unit of payment buys rate token units.
func NewCrowdsale(ledger *repository.Ledger, address, wallet model.Address, rate uint64, token Vault) *Crowdsale {
	return &Crowdsale{
		ledger:  ledger,
		address: address,
		wallet:  wallet,
		rate:    rate,
		token:   token,
	}
}

// Address returns the contract address, which holds the tokens on sale
func (c *Crowdsale) Address() model.Address { return c.address }

func (c *Crowdsale) Rate() uint64 { return c.rate }

func (c *Crowdsale) Wallet() model.Address { return c.wallet }

// Receive handles a plain payment: the payer is also the beneficiary
func (c *Crowdsale) Receive(ctx context.Context, caller model.Address, payment uint64) (model.Purchase, error) {
	return c.BuyTokens(ctx, caller, caller, payment)
}

// BuyTokens charges payment to the caller and credits tokens to beneficiary
func (c *Crowdsale) BuyTokens(ctx context.Context, caller, beneficiary model.Address, payment uint64) (model.Purchase, error) {
	if beneficiary == model.ZeroAddress {
		return model.Purchase{}, fmt.Errorf("crowdsale: buy tokens: %w", marketerrors.ErrInvalidAddress)
	}
	if payment == 0 {
		return model.Purchase{}, fmt.Errorf("crowdsale: buy tokens: %w", marketerrors.ErrInvalidAmount)
	}
	if c.rate != 0 && payment > math.MaxUint64/c.rate {
		return model.Purchase{}, fmt.Errorf("crowdsale: buy tokens: %w", marketerrors.ErrOverflow)
	}

	purchase := model.Purchase{
		Purchaser:   caller,
		Beneficiary: beneficiary,
		Payment:     payment,
		Tokens:      payment * c.rate,
	}
	err := c.ledger.Transact(ctx, func(tx *repository.Tx) error {
		if c.token.BalanceOfTx(tx, c.address) < purchase.Tokens {
			return marketerrors.ErrInsufficientBalance
		}
		raised := tx.Value(c.raisedKey())
		if raised > math.MaxUint64-payment {
			return marketerrors.ErrOverflow
		}
		if err := tx.TransferNative(caller, c.wallet, payment); err != nil {
			return err
		}
		if err := c.token.TransferTx(tx, c.address, beneficiary, purchase.Tokens); err != nil {
			return err
		}
		tx.SetValue(c.raisedKey(), raised+payment)
		tx.Emit(c.address, "TokenPurchase", map[string]any{
			"purchaser":   caller,
			"beneficiary": beneficiary,
			"value":       payment,
			"amount":      purchase.Tokens,
		})
		return nil
	})
	if err != nil {
		return model.Purchase{}, fmt.Errorf("crowdsale: buy tokens for %s: %w", beneficiary, err)
	}
	return purchase, nil
}

// WeiRaised returns the total native currency collected
func (c *Crowdsale) WeiRaised(ctx context.Context) (uint64, error) {
	var raised uint64
	err := c.ledger.View(ctx, func(tx *repository.Tx) error {
		raised = tx.Value(c.raisedKey())
		return nil
	})
	return raised, err
}

// NativeBalanceOf returns the native-currency balance of account
func (c *Crowdsale) NativeBalanceOf(ctx context.Context, account model.Address) (uint64, error) {
	var bal uint64
	err := c.ledger.View(ctx, func(tx *repository.Tx) error {
		bal = tx.NativeBalance(account)
		return nil
	})
	return bal, err
}

func (c *Crowdsale) raisedKey() string {
	return "crowdsale/" + string(c.address) + "/raised"
}
