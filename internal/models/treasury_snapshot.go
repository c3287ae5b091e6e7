package models

import (
	"time"
)

// TreasurySnapshot is a periodic point-in-time copy of the treasury balances,
// recorded by the schedule binary.
type TreasurySnapshot struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	TotalBalance uint64    `gorm:"not null" json:"total_balance"`
	ProfitPool   uint64    `gorm:"not null" json:"profit_pool"`
	RecordedAt   time.Time `gorm:"index" json:"recorded_at"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (TreasurySnapshot) TableName() string {
	return "treasury_snapshot"
}
