package perftests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"auction-market/internal/config"
	"auction-market/internal/market"
	model "auction-market/internal/models"
	"auction-market/utils"

	"github.com/jonboulle/clockwork"
)

const (
	window      = time.Minute
	bidderFunds = 1_000
)

// fixture is a deployed market whose auctions are all open for bidding
type fixture struct {
	market   *market.Market
	clock    *clockwork.FakeClock
	deployer model.Address
	auctions []int64
	bidders  [][]model.Address
}

func deploy(tb testing.TB) (*market.Market, *clockwork.FakeClock, model.Address) {
	tb.Helper()
	g := config.DefaultGenesis()
	g.Deployer = utils.NewAddress()
	g.Token.Owner = ""
	g.Crowdsale.Wallet = ""

	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
	m, err := market.Deploy(context.Background(), g, clock)
	if err != nil {
		tb.Fatalf("deploy: %v", err)
	}
	return m, clock, g.Deployer
}

func register(tb testing.TB, m *market.Market, name string) (model.Address, int64) {
	tb.Helper()
	addr := utils.NewAddress()
	user, err := m.Users.Register(context.Background(), addr, model.UserProfile{Name: name, Code: "01012000"})
	if err != nil {
		tb.Fatalf("register %s: %v", name, err)
	}
	return addr, user.UserID
}

// setupBidding opens numAuctions auctions with biddersPer funded, selected bidders each
func setupBidding(tb testing.TB, numAuctions, biddersPer int) *fixture {
	tb.Helper()
	ctx := context.Background()
	m, clock, deployer := deploy(tb)
	f := &fixture{market: m, clock: clock, deployer: deployer}

	seller, _ := register(tb, m, "seller")
	for i := 0; i < numAuctions; i++ {
		a, err := m.Auctions.CreateAuction(ctx, seller, window)
		if err != nil {
			tb.Fatalf("create auction: %v", err)
		}
		var bidders []model.Address
		for j := 0; j < biddersPer; j++ {
			addr, uid := register(tb, m, fmt.Sprintf("bidder_%d_%d", i, j))
			if err := m.Token.Transfer(ctx, deployer, addr, bidderFunds); err != nil {
				tb.Fatalf("fund: %v", err)
			}
			if err := m.Token.Approve(ctx, addr, m.Auctions.Address(), bidderFunds); err != nil {
				tb.Fatalf("approve: %v", err)
			}
			if _, err := m.Auctions.Apply(ctx, addr, a.AuctionID); err != nil {
				tb.Fatalf("apply: %v", err)
			}
			if _, err := m.Auctions.SelectBidders(ctx, seller, a.AuctionID, uid); err != nil {
				tb.Fatalf("select: %v", err)
			}
			bidders = append(bidders, addr)
		}
		f.auctions = append(f.auctions, a.AuctionID)
		f.bidders = append(f.bidders, bidders)
	}

	clock.Advance(window)
	for _, id := range f.auctions {
		if _, err := m.Auctions.BiddingStart(ctx, seller, id, window); err != nil {
			tb.Fatalf("start bidding: %v", err)
		}
	}
	return f
}

// setupAccounts funds numAccounts fresh accounts with amount tokens each
func setupAccounts(tb testing.TB, m *market.Market, deployer model.Address, numAccounts int, amount uint64) []model.Address {
	tb.Helper()
	accounts := make([]model.Address, numAccounts)
	for i := range accounts {
		accounts[i] = utils.NewAddress()
		if err := m.Token.Transfer(context.Background(), deployer, accounts[i], amount); err != nil {
			tb.Fatalf("fund account: %v", err)
		}
	}
	return accounts
}
