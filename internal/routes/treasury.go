package routes

import (
	"strategymint/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupTreasuryRoutes sets up all routes related to treasury accounting
func SetupTreasuryRoutes(r *gin.Engine, h *handlers.TreasuryHandler) {
	treasury := r.Group("/treasury")
	{
		treasury.GET("", h.GetTreasuryState)
		treasury.POST("/initialize", h.InitializeTreasury)
		treasury.POST("/profits", h.AddProfits)
		treasury.POST("/distribute", h.DistributeProfits)
		treasury.POST("/emergency-withdraw", h.EmergencyWithdraw)
		treasury.PATCH("/multisig", h.UpdateMultisig)
		treasury.GET("/snapshots", h.ListTreasurySnapshots)
	}
}
