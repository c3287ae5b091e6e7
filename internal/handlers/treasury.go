package handlers

import (
	"net/http"
	"strconv"

	"strategymint/internal/ledger"
	"strategymint/internal/models"

	dbconfig "strategymint/pkg/config"

	"github.com/gin-gonic/gin"
)

// TreasuryHandler exposes treasury accounting over HTTP.
type TreasuryHandler struct {
	treasury *ledger.TreasuryService
}

func NewTreasuryHandler(treasury *ledger.TreasuryService) *TreasuryHandler {
	return &TreasuryHandler{treasury: treasury}
}

// InitializeTreasuryRequest represents the request body for initializing the treasury
type InitializeTreasuryRequest struct {
	Authority          string `json:"authority" binding:"required"`
	EmergencyAuthority string `json:"emergency_authority" binding:"required"`
	Amount             uint64 `json:"amount"`
}

// AddProfitsRequest represents the request body for depositing profits
type AddProfitsRequest struct {
	Caller string  `json:"caller" binding:"required"`
	Amount *uint64 `json:"amount" binding:"required"`
}

// DistributeProfitsRequest represents the request body for paying a holder their share
type DistributeProfitsRequest struct {
	Caller   string  `json:"caller" binding:"required"`
	Holder   string  `json:"holder" binding:"required"`
	ShareBps *uint16 `json:"share_bps" binding:"required"`
}

// EmergencyWithdrawRequest represents the request body for the multisig withdrawal bypass
type EmergencyWithdrawRequest struct {
	Caller      string  `json:"caller" binding:"required"`
	Destination string  `json:"destination" binding:"required"`
	Amount      *uint64 `json:"amount" binding:"required"`
}

// UpdateMultisigRequest represents the request body for rotating the emergency authority
type UpdateMultisigRequest struct {
	Caller      string `json:"caller" binding:"required"`
	NewMultisig string `json:"new_multisig" binding:"required"`
}

// GetTreasuryState returns the treasury balances and authorities
func (h *TreasuryHandler) GetTreasuryState(c *gin.Context) {
	state, err := h.treasury.State()
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// InitializeTreasury creates the singleton treasury record
func (h *TreasuryHandler) InitializeTreasury(c *gin.Context) {
	var request InitializeTreasuryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.treasury.Initialize(c.Request.Context(), request.Authority, request.EmergencyAuthority, request.Amount)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, state)
}

// AddProfits deposits trading profits into the pool
func (h *TreasuryHandler) AddProfits(c *gin.Context) {
	var request AddProfitsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.treasury.AddProfits(c.Request.Context(), request.Caller, *request.Amount)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// DistributeProfits pays one holder their basis-point share of the pool
func (h *TreasuryHandler) DistributeProfits(c *gin.Context) {
	var request DistributeProfitsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, paid, err := h.treasury.DistributeProfits(c.Request.Context(), request.Caller, request.Holder, *request.ShareBps)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"distributed": paid,
		"state":       state,
	})
}

// EmergencyWithdraw moves funds out under the emergency multisig
func (h *TreasuryHandler) EmergencyWithdraw(c *gin.Context) {
	var request EmergencyWithdrawRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.treasury.WithdrawEmergency(c.Request.Context(), request.Caller, request.Destination, *request.Amount)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// UpdateMultisig rotates the emergency authority
func (h *TreasuryHandler) UpdateMultisig(c *gin.Context) {
	var request UpdateMultisigRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.treasury.UpdateMultisig(request.Caller, request.NewMultisig)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}

// ListTreasurySnapshots returns recorded balance snapshots, newest first
func (h *TreasuryHandler) ListTreasurySnapshots(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 || limit > 1000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	var snapshots []models.TreasurySnapshot
	if err := dbconfig.DB.Order("recorded_at DESC").Limit(limit).Find(&snapshots).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshots)
}
