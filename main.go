package main

import (
	"fmt"
	"os"

	"auction-market/internal/config"
	"auction-market/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var cfg *config.Config

// rootCmd loads configuration shared by every subcommand
var rootCmd = &cobra.Command{
	Use:   "auction-market",
	Short: "Token auction marketplace",
	Long: `Token auction marketplace with a user registry, sealed application
auctions settled in an ERC20 token, marriage certificate NFTs and a crowdsale.

Available subcommands:
  serve    - Deploy the market and serve the HTTP API (default)
  simulate - Run the reference auction lifecycle on a fake clock`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if cmd.Flags().Changed("port") {
			loaded.Port = portFlag
		}
		if err := utils.SetLevel(loaded.LogLevel); err != nil {
			return err
		}
		gin.SetMode(loaded.GinMode)
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&portFlag, "port", "p", "", "listen port (overrides PORT)")
	// serve is the default when no subcommand is given
	rootCmd.RunE = runServe
	rootCmd.AddCommand(serveCmd, simulateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "auction-market: %v\n", err)
		os.Exit(1)
	}
}
