package main

import (
	"encoding/json"
	"fmt"

	"auction-market/internal/market"
	"auction-market/utils"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

// simulateCmd runs the reference lifecycle and prints the report
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the reference auction lifecycle on a fake clock",
	RunE:  runSimulate,
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	clock := clockwork.NewFakeClock()

	p := market.NewParticipants(utils.NewAddress())
	genesis := p.Genesis()
	genesis.FirstUserID = cfg.Genesis.FirstUserID
	genesis.FirstAuctionID = cfg.Genesis.FirstAuctionID

	m, err := market.Deploy(ctx, genesis, clock)
	if err != nil {
		return err
	}
	report, err := market.RunScenario(ctx, m, clock, p)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	utils.Info("simulation finished", map[string]any{
		"auction_id":      report.AuctionID,
		"seller_proceeds": report.SellerProceeds,
		"loser_refund":    report.LoserRefund,
	})
	return nil
}
