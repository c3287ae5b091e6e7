package models

import (
	"time"
)

// CollectionConfig is the singleton minting configuration record. Its address is
// derived from the fixed "collection" seed; the stored nonce reproduces both the
// address and the collection's signing capability.
type CollectionConfig struct {
	ID                uint      `gorm:"primarykey" json:"id"`
	Address           string    `gorm:"size:64;uniqueIndex;not null" json:"address"`
	Authority         string    `gorm:"size:64;not null" json:"authority"`
	TotalMinted       uint64    `gorm:"not null;default:0" json:"total_minted"`
	MintPriceLamports uint64    `gorm:"not null" json:"mint_price_lamports"`
	IsActive          bool      `gorm:"not null;default:true" json:"is_active"`
	DerivationNonce   uint8     `gorm:"not null" json:"derivation_nonce"`
	CreatedAt         time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (CollectionConfig) TableName() string {
	return "collection_config"
}
