package market

import (
	"context"
	"fmt"

	auction "auction-market/internal/auctionService"
	"auction-market/internal/config"
	"auction-market/internal/crowdsale"
	"auction-market/internal/issuer"
	model "auction-market/internal/models"
	"auction-market/internal/registry"
	"auction-market/internal/repository"
	"auction-market/internal/token"
	"auction-market/utils"

	"github.com/jonboulle/clockwork"
)

// Market bundles every contract deployed on one ledger
type Market struct {
	Ledger       *repository.Ledger
	Users        *registry.Registry
	Token        *token.ERC20
	Certificates *token.ERC721
	Auctions     *auction.AuctionService
	Issuer       *issuer.Issuer
	Crowdsale    *crowdsale.Crowdsale
}

// Deploy creates a ledger and deploys the contracts in dependency order:
// registry and tokens, then auction, crowdsale and issuer.
func Deploy(ctx context.Context, genesis config.Genesis, clock clockwork.Clock) (*Market, error) {
	if err := genesis.Validate(); err != nil {
		return nil, err
	}

	ledger := repository.NewLedger(
		repository.WithClock(clock),
		repository.WithSequenceBase(repository.SeqUser, genesis.FirstUserID),
		repository.WithSequenceBase(repository.SeqAuction, genesis.FirstAuctionID),
	)

	var nonce uint64
	next := func() model.Address {
		addr := utils.ContractAddress(genesis.Deployer, nonce)
		nonce++
		return addr
	}

	m := &Market{Ledger: ledger}
	m.Token = token.NewERC20(ledger, next(), genesis.Token.TokenMetadata)
	m.Certificates = token.NewERC721(ledger, next(), genesis.Certificate.Name, genesis.Certificate.Symbol)
	m.Users = registry.NewRegistry(ledger, next())
	m.Auctions = auction.NewAuctionService(ledger, next(), m.Users, m.Token)
	m.Crowdsale = crowdsale.NewCrowdsale(ledger, next(), genesis.Crowdsale.Wallet, genesis.Crowdsale.Rate, m.Token)
	m.Issuer = issuer.NewIssuer(ledger, next(), m.Users, m.Certificates, m.Auctions)

	if err := m.applyGenesis(ctx, genesis); err != nil {
		return nil, fmt.Errorf("market: deploy: %w", err)
	}

	fields := make(map[string]any)
	for name, addr := range m.Contracts() {
		fields[name] = addr
	}
	utils.Info("market deployed", fields)
	return m, nil
}

func (m *Market) applyGenesis(ctx context.Context, g config.Genesis) error {
	if err := m.Token.MintInitialSupply(ctx, g.Token.Owner, g.Token.TotalSupply); err != nil {
		return err
	}
	if err := m.Certificates.Initialize(ctx, g.Deployer); err != nil {
		return err
	}
	if err := m.Certificates.AddMinter(ctx, g.Deployer, m.Issuer.Address()); err != nil {
		return err
	}
	if g.Crowdsale.Funding > 0 {
		if err := m.Token.Transfer(ctx, g.Token.Owner, m.Crowdsale.Address(), g.Crowdsale.Funding); err != nil {
			return err
		}
	}
	return m.Ledger.Transact(ctx, func(tx *repository.Tx) error {
		for _, acct := range g.Accounts {
			tx.SetNativeBalance(acct.Address, acct.NativeBalance)
		}
		return nil
	})
}

// Contracts lists the deployed contract addresses by name
func (m *Market) Contracts() map[string]model.Address {
	return map[string]model.Address{
		"token":        m.Token.Address(),
		"certificates": m.Certificates.Address(),
		"registry":     m.Users.Address(),
		"auction":      m.Auctions.Address(),
		"crowdsale":    m.Crowdsale.Address(),
		"issuer":       m.Issuer.Address(),
	}
}
