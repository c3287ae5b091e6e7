package routes

import (
	"strategymint/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupChainRoutes sets up read-only chain lookup routes
func SetupChainRoutes(r *gin.Engine, h *handlers.ChainHandler) {
	chain := r.Group("/chain")
	{
		chain.GET("/tx/:signature", h.GetTransactionStatus)
		chain.GET("/vault-balance", h.GetVaultBalance)
		chain.GET("/token-metadata/:mint", h.GetTokenMetadata)
	}
}
