package models

import (
	"time"
)

// StrategyNft is the durable record written once per minted strategy. Its address
// is derived from the "strategy_nft" seed plus the caller-supplied strategy id, so
// a strategy id can be minted at most once.
type StrategyNft struct {
	ID                uint      `gorm:"primarykey" json:"id"`
	Address           string    `gorm:"size:64;uniqueIndex;not null" json:"address"`
	Mint              string    `gorm:"size:64;not null" json:"mint"`
	StrategyID        string    `gorm:"size:64;uniqueIndex;not null" json:"strategy_id"`
	GenesHash         string    `gorm:"size:64;not null" json:"genes_hash"`
	Owner             string    `gorm:"size:64;not null" json:"owner"`
	MintedAt          int64     `gorm:"not null" json:"minted_at"`
	MintPriceLamports uint64    `gorm:"not null" json:"mint_price_lamports"`
	Archetype         string    `gorm:"size:32" json:"archetype"`
	Generation        uint32    `json:"generation"`
	FitnessScore      uint64    `json:"fitness_score"`
	TotalPnl          int64     `json:"total_pnl"`
	WinRate           uint64    `json:"win_rate"`
	TradesExecuted    uint32    `json:"trades_executed"`
	DerivationNonce   uint8     `gorm:"not null" json:"derivation_nonce"`
	CreatedAt         time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (StrategyNft) TableName() string {
	return "strategy_nft"
}
