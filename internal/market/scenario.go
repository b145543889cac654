package market

import (
	"context"
	"fmt"
	"time"

	"auction-market/internal/config"
	model "auction-market/internal/models"
	"auction-market/utils"

	"github.com/jonboulle/clockwork"
)

// Scenario amounts and windows of the reference end-to-end run
const (
	ScenarioWindow     = 60 * time.Second
	ScenarioWinnerBid  = 1000
	ScenarioLoserBid   = 100
	ScenarioPayment    = 1000
	ScenarioBuyerFunds = 1_000_000
)

// Participants are the accounts taking part in the scenario
type Participants struct {
	Owner     model.Address
	Seller    model.Address
	Winner    model.Address
	Loser1    model.Address
	Loser2    model.Address
	Buyer     model.Address
	Recipient model.Address
}

// NewParticipants generates fresh accounts, with owner as the deployer
func NewParticipants(owner model.Address) Participants {
	return Participants{
		Owner:     owner,
		Seller:    utils.NewAddress(),
		Winner:    utils.NewAddress(),
		Loser1:    utils.NewAddress(),
		Loser2:    utils.NewAddress(),
		Buyer:     utils.NewAddress(),
		Recipient: utils.NewAddress(),
	}
}

// Genesis returns the default genesis with the owner as deployer and a funded buyer
func (p Participants) Genesis() config.Genesis {
	g := config.DefaultGenesis()
	g.Deployer = p.Owner
	g.Token.Owner = p.Owner
	g.Crowdsale.Wallet = p.Owner
	g.Accounts = []config.Account{{Address: p.Buyer, NativeBalance: ScenarioBuyerFunds}}
	return g
}

// ScenarioReport summarizes the balances observed at the end of the run
type ScenarioReport struct {
	AuctionID       int64             `json:"auction_id"`
	WinnerID        int64             `json:"winner_id"`
	SellerProceeds  uint64            `json:"seller_proceeds"`
	LoserRefund     uint64            `json:"loser_refund"`
	Certificate     model.Certificate `json:"certificate"`
	BuyerTokens     uint64            `json:"buyer_tokens"`
	RecipientTokens uint64            `json:"recipient_tokens"`
}

type step struct {
	name string
	run  func() error
}

// RunScenario drives the full auction lifecycle and the crowdsale on m,
// advancing clock instead of waiting for the application window to close.
func RunScenario(ctx context.Context, m *Market, clock *clockwork.FakeClock, p Participants) (ScenarioReport, error) {
	var report ScenarioReport
	var auction model.Auction
	ids := map[model.Address]int64{}
	profiles := []struct {
		addr    model.Address
		profile model.UserProfile
	}{
		{p.Seller, model.UserProfile{Name: "tak", Category: 1, Class: 1, Code: "01012000"}},
		{p.Winner, model.UserProfile{Name: "ted", Category: 2, Class: 2, Code: "01012001"}},
		{p.Loser1, model.UserProfile{Name: "tom", Category: 3, Class: 1, Code: "01012002"}},
		{p.Loser2, model.UserProfile{Name: "tim", Category: 1, Class: 2, Code: "01012003"}},
	}

	steps := []step{
		{"register users", func() error {
			for _, u := range profiles {
				user, err := m.Users.Register(ctx, u.addr, u.profile)
				if err != nil {
					return err
				}
				ids[u.addr] = user.UserID
			}
			return nil
		}},
		{"create auction", func() error {
			var err error
			auction, err = m.Auctions.CreateAuction(ctx, p.Seller, ScenarioWindow)
			report.AuctionID = auction.AuctionID
			return err
		}},
		{"apply", func() error {
			for _, addr := range []model.Address{p.Winner, p.Loser1, p.Loser2} {
				if _, err := m.Auctions.Apply(ctx, addr, auction.AuctionID); err != nil {
					return err
				}
			}
			return nil
		}},
		{"select bidders", func() error {
			for _, addr := range []model.Address{p.Winner, p.Loser1} {
				if _, err := m.Auctions.SelectBidders(ctx, p.Seller, auction.AuctionID, ids[addr]); err != nil {
					return err
				}
			}
			return nil
		}},
		{"start bidding", func() error {
			clock.Advance(ScenarioWindow)
			_, err := m.Auctions.BiddingStart(ctx, p.Seller, auction.AuctionID, ScenarioWindow)
			return err
		}},
		{"fund bidders", func() error {
			for addr, amount := range map[model.Address]uint64{p.Winner: ScenarioWinnerBid, p.Loser1: ScenarioLoserBid} {
				if err := m.Token.Transfer(ctx, p.Owner, addr, amount); err != nil {
					return err
				}
				if err := m.Token.Approve(ctx, addr, m.Auctions.Address(), amount); err != nil {
					return err
				}
			}
			return nil
		}},
		{"bid", func() error {
			if _, err := m.Auctions.Bid(ctx, p.Winner, auction.AuctionID, ScenarioWinnerBid); err != nil {
				return err
			}
			_, err := m.Auctions.Bid(ctx, p.Loser1, auction.AuctionID, ScenarioLoserBid)
			return err
		}},
		{"select winner", func() error {
			report.WinnerID = ids[p.Winner]
			_, err := m.Auctions.SelectWinner(ctx, p.Seller, auction.AuctionID, report.WinnerID)
			return err
		}},
		{"withdraw", func() error {
			var err error
			if report.SellerProceeds, err = m.Auctions.WithdrawERC20(ctx, p.Seller, auction.AuctionID); err != nil {
				return err
			}
			report.LoserRefund, err = m.Auctions.WithdrawERC20(ctx, p.Loser1, auction.AuctionID)
			return err
		}},
		{"issue certificate", func() error {
			var err error
			report.Certificate, err = m.Issuer.IssueERC721Token(ctx, p.Seller, auction.AuctionID)
			return err
		}},
		{"crowdsale", func() error {
			if _, err := m.Crowdsale.Receive(ctx, p.Buyer, ScenarioPayment); err != nil {
				return err
			}
			if _, err := m.Crowdsale.BuyTokens(ctx, p.Buyer, p.Recipient, ScenarioPayment); err != nil {
				return err
			}
			var err error
			if report.BuyerTokens, err = m.Token.BalanceOf(ctx, p.Buyer); err != nil {
				return err
			}
			report.RecipientTokens, err = m.Token.BalanceOf(ctx, p.Recipient)
			return err
		}},
	}

	for _, s := range steps {
		if err := s.run(); err != nil {
			return report, fmt.Errorf("scenario: %s: %w", s.name, err)
		}
		utils.Debug("scenario step done", map[string]any{"step": s.name})
	}
	return report, nil
}
