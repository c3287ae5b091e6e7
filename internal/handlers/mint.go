package handlers

import (
	"net/http"
	"strconv"

	"strategymint/internal/ledger"
	"strategymint/internal/models"
	"strategymint/pkg/helius"

	dbconfig "strategymint/pkg/config"

	"github.com/gin-gonic/gin"
)

// MintHandler exposes the mint flow and the minted-record reads.
type MintHandler struct {
	minter *ledger.MintService
	helius *helius.Client
}

func NewMintHandler(minter *ledger.MintService, heliusClient *helius.Client) *MintHandler {
	return &MintHandler{minter: minter, helius: heliusClient}
}

// MintStrategyNftRequest represents the request body for minting a strategy NFT
type MintStrategyNftRequest struct {
	Payer          string `json:"payer" binding:"required"`
	StrategyID     string `json:"strategy_id" binding:"required"`
	GenesHash      string `json:"genes_hash" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Symbol         string `json:"symbol" binding:"required"`
	Uri            string `json:"uri" binding:"required"`
	Archetype      string `json:"archetype"`
	Generation     uint32 `json:"generation"`
	FitnessScore   uint64 `json:"fitness_score"`
	TotalPnl       int64  `json:"total_pnl"`
	WinRate        uint64 `json:"win_rate"`
	TradesExecuted uint32 `json:"trades_executed"`
}

// MintStrategyNft runs the full mint flow for one strategy
func (h *MintHandler) MintStrategyNft(c *gin.Context) {
	var request MintStrategyNftRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	nft, err := h.minter.MintStrategyNft(c.Request.Context(), ledger.MintRequest{
		Payer:          request.Payer,
		StrategyID:     request.StrategyID,
		GenesHash:      request.GenesHash,
		Name:           request.Name,
		Symbol:         request.Symbol,
		Uri:            request.Uri,
		Archetype:      request.Archetype,
		Generation:     request.Generation,
		FitnessScore:   request.FitnessScore,
		TotalPnl:       request.TotalPnl,
		WinRate:        request.WinRate,
		TradesExecuted: request.TradesExecuted,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, nft)
}

// GetStrategyNft returns the minted record for a strategy id
func (h *MintHandler) GetStrategyNft(c *gin.Context) {
	nft, err := h.minter.Strategy(c.Param("strategy_id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, nft)
}

// ListStrategyNfts returns minted records, newest first, with limit/offset paging
func (h *MintHandler) ListStrategyNfts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 500 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offset"})
		return
	}

	query := dbconfig.DB.Model(&models.StrategyNft{})
	if owner := c.Query("owner"); owner != "" {
		query = query.Where("owner = ?", owner)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var nfts []models.StrategyNft
	if err := query.Order("minted_at DESC").Limit(limit).Offset(offset).Find(&nfts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":  total,
		"limit":  limit,
		"offset": offset,
		"items":  nfts,
	})
}

// GetStrategyNftAsset returns the indexed on-chain asset view for a minted strategy
func (h *MintHandler) GetStrategyNftAsset(c *gin.Context) {
	if h.helius == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Asset indexer not configured"})
		return
	}

	nft, err := h.minter.Strategy(c.Param("strategy_id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	asset, err := h.helius.GetAsset(nft.Mint)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	// A strategy mint always carries supply 1; anything else means the
	// indexer and the chain disagree about this mint.
	supply, err := h.helius.GetTokenSupply(nft.Mint)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if supply.Amount != "1" {
		c.JSON(http.StatusConflict, gin.H{
			"error":  "Unexpected supply for strategy mint",
			"supply": supply.Amount,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset, "supply": supply.Amount})
}
