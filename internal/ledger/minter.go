package ledger

import (
	"context"
	"fmt"
	"time"

	"strategymint/internal/models"
	"strategymint/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Field limits carried over from the on-chain record layout.
const (
	MaxStrategyIDLen = 64
	MaxGenesHashLen  = 64
	MaxArchetypeLen  = 32
)

// MintRequest carries everything a single mint needs. Display metadata is
// caller-supplied and format-unchecked.
type MintRequest struct {
	Payer          string
	StrategyID     string
	GenesHash      string
	Name           string
	Symbol         string
	Uri            string
	Archetype      string
	Generation     uint32
	FitnessScore   uint64
	TotalPnl       int64
	WinRate        uint64
	TradesExecuted uint32
}

// MintService orchestrates a single mint: fee transfer, token-unit creation,
// metadata and master-edition registration, then the atomic record commit. The
// chain steps run in a fixed order and the record is persisted only after every
// external call has succeeded, so a failure anywhere leaves no persisted state.
type MintService struct {
	store    CollectionStore
	chain    ChainClient
	emit     Emitter
	treasury string // fee recipient address
}

func NewMintService(store CollectionStore, chain ChainClient, emit Emitter, treasury string) *MintService {
	return &MintService{store: store, chain: chain, emit: emit, treasury: treasury}
}

// MintStrategyNft mints one strategy NFT for req.Payer. Duplicate strategy ids
// fail before any value moves; the first record stays untouched.
func (s *MintService) MintStrategyNft(ctx context.Context, req MintRequest) (*models.StrategyNft, error) {
	cfg, err := s.store.GetConfig()
	if err == ErrNotFound || cfg == nil {
		return nil, ErrNotInitialized
	}
	if err != nil {
		return nil, fmt.Errorf("load collection config: %w", err)
	}
	if !cfg.IsActive {
		return nil, ErrMintingPaused
	}
	if err := validateStrategyData(req); err != nil {
		return nil, err
	}

	// Duplicate mints race at record creation and exactly one wins; checking
	// up-front just avoids charging the loser a fee.
	if existing, err := s.store.GetStrategy(req.StrategyID); err != nil && err != ErrNotFound {
		return nil, fmt.Errorf("check strategy record: %w", err)
	} else if existing != nil {
		return nil, ErrDuplicateRecord
	}

	recordAddr, recordNonce, err := s.chain.StrategyRecordAddress(req.StrategyID)
	if err != nil {
		return nil, fmt.Errorf("derive strategy record address: %w", err)
	}

	price := cfg.MintPriceLamports
	if _, err := s.chain.Transfer(ctx, req.Payer, s.treasury, price); err != nil {
		return nil, fmt.Errorf("mint fee transfer: %w", err)
	}

	mint, err := s.chain.CreateStrategyMint(ctx, req.Payer, req.Payer, cfg.DerivationNonce)
	if err != nil {
		return nil, fmt.Errorf("create strategy mint: %w", err)
	}

	if err := s.chain.RegisterMetadata(ctx, mint, req.Payer, cfg.DerivationNonce, req.Name, req.Symbol, req.Uri); err != nil {
		return nil, fmt.Errorf("register metadata: %w", err)
	}

	if err := s.chain.CreateMasterEdition(ctx, mint, req.Payer, cfg.DerivationNonce); err != nil {
		return nil, fmt.Errorf("create master edition: %w", err)
	}

	newTotal, err := utils.CheckedAdd(cfg.TotalMinted, 1)
	if err != nil {
		return nil, fmt.Errorf("total minted counter: %w", err)
	}
	cfg.TotalMinted = newTotal

	rec := &models.StrategyNft{
		Address:           recordAddr,
		Mint:              mint,
		StrategyID:        req.StrategyID,
		GenesHash:         req.GenesHash,
		Owner:             req.Payer,
		MintedAt:          time.Now().Unix(),
		MintPriceLamports: price,
		Archetype:         req.Archetype,
		Generation:        req.Generation,
		FitnessScore:      req.FitnessScore,
		TotalPnl:          req.TotalPnl,
		WinRate:           req.WinRate,
		TradesExecuted:    req.TradesExecuted,
		DerivationNonce:   recordNonce,
	}
	if err := s.store.CreateStrategy(rec, cfg); err != nil {
		return nil, err
	}

	s.publish(EventStrategyNftMinted, StrategyNftMintedEvent{
		Mint:           mint,
		Owner:          req.Payer,
		StrategyID:     req.StrategyID,
		GenesHash:      req.GenesHash,
		Archetype:      req.Archetype,
		Generation:     req.Generation,
		FitnessScore:   req.FitnessScore,
		TotalPnl:       req.TotalPnl,
		WinRate:        req.WinRate,
		TradesExecuted: req.TradesExecuted,
		MintPrice:      price,
		Timestamp:      rec.MintedAt,
	})
	return rec, nil
}

// Strategy returns a minted record by strategy id.
func (s *MintService) Strategy(strategyID string) (*models.StrategyNft, error) {
	rec, err := s.store.GetStrategy(strategyID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

func validateStrategyData(req MintRequest) error {
	if req.StrategyID == "" || len(req.StrategyID) > MaxStrategyIDLen {
		return ErrInvalidStrategyData
	}
	if req.GenesHash == "" || len(req.GenesHash) > MaxGenesHashLen {
		return ErrInvalidStrategyData
	}
	if len(req.Archetype) > MaxArchetypeLen {
		return ErrInvalidStrategyData
	}
	return nil
}

func (s *MintService) publish(eventType string, payload interface{}) {
	if err := s.emit.Emit(eventType, payload); err != nil {
		logrus.Warnf("failed to publish %s event: %v", eventType, err)
	}
}
