package handlers

import (
	"net/http"

	"strategymint/pkg/solana"

	"github.com/gin-gonic/gin"
)

// ChainHandler exposes read-only chain lookups backing the ops surface.
type ChainHandler struct {
	chain *solana.Client
}

func NewChainHandler(chain *solana.Client) *ChainHandler {
	return &ChainHandler{chain: chain}
}

// GetTransactionStatus reports the confirmation state of a signature
func (h *ChainHandler) GetTransactionStatus(c *gin.Context) {
	status, err := h.chain.TransactionStatus(c.Param("signature"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "status": status})
		return
	}
	c.JSON(http.StatusOK, gin.H{"signature": c.Param("signature"), "status": status})
}

// GetVaultBalance returns the treasury vault's live lamport balance
func (h *ChainHandler) GetVaultBalance(c *gin.Context) {
	address, _, err := h.chain.TreasuryAddress()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	balance, err := h.chain.Balance(address)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"address": address, "lamports": balance})
}

// GetTokenMetadata returns the decoded on-chain metadata for a mint
func (h *ChainHandler) GetTokenMetadata(c *gin.Context) {
	meta, err := h.chain.TokenMetadata(c.Param("mint"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meta)
}
