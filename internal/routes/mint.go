package routes

import (
	"strategymint/internal/handlers"
	"strategymint/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupMintRoutes sets up the mint flow and minted-record reads. The mint
// endpoint is rate limited per IP since each call moves lamports.
func SetupMintRoutes(r *gin.Engine, h *handlers.MintHandler) {
	mintLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: 2,
		Burst:             5,
	})

	nft := r.Group("/strategy-nft")
	{
		nft.POST("/mint", mintLimiter, h.MintStrategyNft)
		nft.GET("", h.ListStrategyNfts)
		nft.GET("/:strategy_id", h.GetStrategyNft)
		nft.GET("/:strategy_id/asset", h.GetStrategyNftAsset)
	}
}
