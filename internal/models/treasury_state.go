package models

import (
	"time"
)

// TreasuryState is the singleton treasury record. ProfitPool is the sub-balance
// earmarked for distribution and never exceeds TotalBalance. EmergencyAuthority is
// a separate trust root from Authority and only controls the withdrawal bypass.
type TreasuryState struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	Address            string    `gorm:"size:64;uniqueIndex;not null" json:"address"`
	Authority          string    `gorm:"size:64;not null" json:"authority"`
	EmergencyAuthority string    `gorm:"size:64;not null" json:"emergency_authority"`
	TotalBalance       uint64    `gorm:"not null;default:0" json:"total_balance"`
	ProfitPool         uint64    `gorm:"not null;default:0" json:"profit_pool"`
	IsInitialized      bool      `gorm:"not null;default:false" json:"is_initialized"`
	DerivationNonce    uint8     `gorm:"not null" json:"derivation_nonce"`
	CreatedAt          time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (TreasuryState) TableName() string {
	return "treasury_state"
}
