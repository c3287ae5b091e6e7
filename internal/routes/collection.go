package routes

import (
	"strategymint/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupCollectionRoutes sets up all routes related to collection configuration
func SetupCollectionRoutes(r *gin.Engine, h *handlers.CollectionHandler) {
	collection := r.Group("/collection")
	{
		collection.GET("", h.GetCollectionConfig)
		collection.POST("/initialize", h.InitializeCollection)

		// Authority-gated mutators
		collection.PATCH("/mint-price", h.UpdateMintPrice)
		collection.POST("/toggle", h.ToggleMinting)
		collection.POST("/transfer-authority", h.TransferAuthority)
	}
}
