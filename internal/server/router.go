package server

import (
	"auction-market/internal/market"
	handler "auction-market/services/market/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(m *market.Market) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	metrics := NewMetrics()

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(metrics.Middleware)

	userHandler := handler.NewUserHandler(m.Users)
	auctionHandler := handler.NewAuctionHandler(m.Auctions, m.Issuer)
	tokenHandler := handler.NewTokenHandler(m.Token, m.Certificates, m.Crowdsale)
	eventHandler := handler.NewEventHandler(m.Ledger)

	users := router.Group("/users")
	{
		users.POST("", userHandler.RegisterHandler)
		users.PUT("/me", userHandler.UpdateHandler)
		users.POST("/me/address", userHandler.ChangeAddressHandler)
		users.DELETE("/me", userHandler.ResignHandler)
		users.GET("/:user_id", userHandler.GetUserHandler)
	}

	router.GET("/addresses/:address/user", userHandler.LookupUserIDHandler)

	auctions := router.Group("/auctions")
	{
		auctions.POST("", auctionHandler.CreateAuctionHandler)
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:auction_id", auctionHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/extend", auctionHandler.ExtendHandler)
		auctions.POST("/:auction_id/cancel", auctionHandler.CancelHandler)
		auctions.POST("/:auction_id/apply", auctionHandler.ApplyHandler)
		auctions.POST("/:auction_id/bidders", auctionHandler.SelectBidderHandler)
		auctions.POST("/:auction_id/bidding", auctionHandler.StartBiddingHandler)
		auctions.POST("/:auction_id/bids", auctionHandler.BidHandler)
		auctions.POST("/:auction_id/winner", auctionHandler.SelectWinnerHandler)
		auctions.POST("/:auction_id/withdraw", auctionHandler.WithdrawHandler)
		auctions.POST("/:auction_id/certificate", auctionHandler.IssueCertificateHandler)
		auctions.GET("/:auction_id/certificate", auctionHandler.GetCertificateHandler)
	}

	erc20 := router.Group("/tokens/erc20")
	{
		erc20.GET("/supply", tokenHandler.SupplyHandler)
		erc20.GET("/balances/:address", tokenHandler.BalanceHandler)
		erc20.GET("/allowances/:owner/:spender", tokenHandler.AllowanceHandler)
		erc20.POST("/transfer", tokenHandler.TransferHandler)
		erc20.POST("/approve", tokenHandler.ApproveHandler)
		erc20.POST("/transfer-from", tokenHandler.TransferFromHandler)
	}

	router.GET("/tokens/erc721/:token_id", tokenHandler.CollectibleHandler)
	router.POST("/crowdsale/buy", tokenHandler.BuyTokensHandler)
	router.GET("/events", eventHandler.ListEventsHandler)
	router.GET("/metrics", metrics.Handler())

	return router
}
