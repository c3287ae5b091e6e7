package handlers

import (
	"net/http"

	"strategymint/internal/ledger"

	"github.com/gin-gonic/gin"
)

// CollectionHandler exposes collection configuration over HTTP.
type CollectionHandler struct {
	collection *ledger.CollectionService
}

func NewCollectionHandler(collection *ledger.CollectionService) *CollectionHandler {
	return &CollectionHandler{collection: collection}
}

// InitializeCollectionRequest represents the request body for initializing the collection
type InitializeCollectionRequest struct {
	Authority string `json:"authority" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Symbol    string `json:"symbol" binding:"required"`
	Uri       string `json:"uri"`
}

// UpdateMintPriceRequest represents the request body for updating the mint price
type UpdateMintPriceRequest struct {
	Caller            string  `json:"caller" binding:"required"`
	MintPriceLamports *uint64 `json:"mint_price_lamports" binding:"required"`
}

// ToggleMintingRequest represents the request body for pausing or resuming minting
type ToggleMintingRequest struct {
	Caller   string `json:"caller" binding:"required"`
	IsActive *bool  `json:"is_active" binding:"required"`
}

// TransferAuthorityRequest represents the request body for handing over the collection
type TransferAuthorityRequest struct {
	Caller       string `json:"caller" binding:"required"`
	NewAuthority string `json:"new_authority" binding:"required"`
}

// GetCollectionConfig returns the collection configuration
func (h *CollectionHandler) GetCollectionConfig(c *gin.Context) {
	cfg, err := h.collection.Config()
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// InitializeCollection creates the singleton collection configuration
func (h *CollectionHandler) InitializeCollection(c *gin.Context) {
	var request InitializeCollectionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := h.collection.Initialize(request.Authority, request.Name, request.Symbol, request.Uri)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, cfg)
}

// UpdateMintPrice sets a new mint fee
func (h *CollectionHandler) UpdateMintPrice(c *gin.Context) {
	var request UpdateMintPriceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := h.collection.UpdateMintPrice(request.Caller, *request.MintPriceLamports)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// ToggleMinting pauses or resumes minting
func (h *CollectionHandler) ToggleMinting(c *gin.Context) {
	var request ToggleMintingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := h.collection.ToggleMinting(request.Caller, *request.IsActive)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// TransferAuthority hands the collection to a new authority
func (h *CollectionHandler) TransferAuthority(c *gin.Context) {
	var request TransferAuthorityRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := h.collection.TransferAuthority(request.Caller, request.NewAuthority)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cfg)
}
