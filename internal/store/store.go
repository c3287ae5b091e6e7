package store

import (
	"errors"
	"fmt"

	"strategymint/internal/ledger"
	"strategymint/internal/models"

	"gorm.io/gorm"
)

// CollectionStore is the gorm-backed implementation of ledger.CollectionStore.
type CollectionStore struct {
	db *gorm.DB
}

func NewCollectionStore(db *gorm.DB) *CollectionStore {
	return &CollectionStore{db: db}
}

func (s *CollectionStore) CreateConfig(cfg *models.CollectionConfig) error {
	if err := s.db.Create(cfg).Error; err != nil {
		return mapErr(err, "create collection config")
	}
	return nil
}

func (s *CollectionStore) GetConfig() (*models.CollectionConfig, error) {
	var cfg models.CollectionConfig
	if err := s.db.First(&cfg).Error; err != nil {
		return nil, mapErr(err, "load collection config")
	}
	return &cfg, nil
}

func (s *CollectionStore) SaveConfig(cfg *models.CollectionConfig) error {
	if err := s.db.Save(cfg).Error; err != nil {
		return mapErr(err, "save collection config")
	}
	return nil
}

// CreateStrategy commits the new record and the updated config in one database
// transaction. The unique index on strategy_id resolves duplicate-mint races:
// exactly one insert wins.
func (s *CollectionStore) CreateStrategy(rec *models.StrategyNft, cfg *models.CollectionConfig) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rec).Error; err != nil {
			return err
		}
		return tx.Save(cfg).Error
	})
	if err != nil {
		return mapErr(err, "commit strategy record")
	}
	return nil
}

func (s *CollectionStore) GetStrategy(strategyID string) (*models.StrategyNft, error) {
	var rec models.StrategyNft
	if err := s.db.Where("strategy_id = ?", strategyID).First(&rec).Error; err != nil {
		return nil, mapErr(err, "load strategy record")
	}
	return &rec, nil
}

// TreasuryStore is the gorm-backed implementation of ledger.TreasuryStore.
type TreasuryStore struct {
	db *gorm.DB
}

func NewTreasuryStore(db *gorm.DB) *TreasuryStore {
	return &TreasuryStore{db: db}
}

func (s *TreasuryStore) Create(state *models.TreasuryState) error {
	if err := s.db.Create(state).Error; err != nil {
		return mapErr(err, "create treasury state")
	}
	return nil
}

func (s *TreasuryStore) Get() (*models.TreasuryState, error) {
	var state models.TreasuryState
	if err := s.db.First(&state).Error; err != nil {
		return nil, mapErr(err, "load treasury state")
	}
	return &state, nil
}

func (s *TreasuryStore) Save(state *models.TreasuryState) error {
	if err := s.db.Save(state).Error; err != nil {
		return mapErr(err, "save treasury state")
	}
	return nil
}

func mapErr(err error, op string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ledger.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ledger.ErrDuplicateRecord
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
