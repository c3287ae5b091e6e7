package ledger

import (
	"fmt"
	"time"

	"strategymint/internal/models"

	"github.com/sirupsen/logrus"
)

// DefaultMintPriceLamports is the fee charged per mint until the authority
// changes it (0.1 SOL).
const DefaultMintPriceLamports = 100_000_000

// CollectionService owns the minting configuration: single initialization and the
// authority-gated mutators. No price bounds are enforced; that is a deliberate
// minimal-policy choice.
type CollectionService struct {
	store CollectionStore
	chain ChainClient
	emit  Emitter
}

func NewCollectionService(store CollectionStore, chain ChainClient, emit Emitter) *CollectionService {
	return &CollectionService{store: store, chain: chain, emit: emit}
}

// Initialize creates the collection config at its derived address. A second call
// fails with ErrAlreadyInitialized.
func (s *CollectionService) Initialize(caller, name, symbol, uri string) (*models.CollectionConfig, error) {
	existing, err := s.store.GetConfig()
	if err != nil && err != ErrNotFound {
		return nil, fmt.Errorf("load collection config: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyInitialized
	}

	address, nonce, err := s.chain.CollectionAddress()
	if err != nil {
		return nil, fmt.Errorf("derive collection address: %w", err)
	}

	cfg := &models.CollectionConfig{
		Address:           address,
		Authority:         caller,
		TotalMinted:       0,
		MintPriceLamports: DefaultMintPriceLamports,
		IsActive:          true,
		DerivationNonce:   nonce,
	}
	if err := s.store.CreateConfig(cfg); err != nil {
		return nil, err
	}

	s.publish(EventCollectionInitialized, CollectionInitializedEvent{
		Authority: caller,
		Name:      name,
		Symbol:    symbol,
		Timestamp: time.Now().Unix(),
	})
	return cfg, nil
}

// UpdateMintPrice sets a new mint fee. Authority only; no floor or ceiling.
func (s *CollectionService) UpdateMintPrice(caller string, newPrice uint64) (*models.CollectionConfig, error) {
	cfg, err := s.authorized(caller)
	if err != nil {
		return nil, err
	}

	oldPrice := cfg.MintPriceLamports
	cfg.MintPriceLamports = newPrice
	if err := s.store.SaveConfig(cfg); err != nil {
		return nil, err
	}

	s.publish(EventMintPriceUpdated, MintPriceUpdatedEvent{
		OldPrice:  oldPrice,
		NewPrice:  newPrice,
		Timestamp: time.Now().Unix(),
	})
	return cfg, nil
}

// ToggleMinting pauses or resumes minting. Minting fails closed while paused.
func (s *CollectionService) ToggleMinting(caller string, active bool) (*models.CollectionConfig, error) {
	cfg, err := s.authorized(caller)
	if err != nil {
		return nil, err
	}

	wasActive := cfg.IsActive
	cfg.IsActive = active
	if err := s.store.SaveConfig(cfg); err != nil {
		return nil, err
	}

	s.publish(EventMintingToggled, MintingToggledEvent{
		WasActive: wasActive,
		IsActive:  active,
		Timestamp: time.Now().Unix(),
	})
	return cfg, nil
}

// TransferAuthority hands the configuration to a new administrative identity.
func (s *CollectionService) TransferAuthority(caller, newAuthority string) (*models.CollectionConfig, error) {
	cfg, err := s.authorized(caller)
	if err != nil {
		return nil, err
	}

	oldAuthority := cfg.Authority
	cfg.Authority = newAuthority
	if err := s.store.SaveConfig(cfg); err != nil {
		return nil, err
	}

	s.publish(EventAuthorityTransferred, AuthorityTransferredEvent{
		OldAuthority: oldAuthority,
		NewAuthority: newAuthority,
		Timestamp:    time.Now().Unix(),
	})
	return cfg, nil
}

// Config returns the current configuration.
func (s *CollectionService) Config() (*models.CollectionConfig, error) {
	cfg, err := s.store.GetConfig()
	if err == ErrNotFound {
		return nil, ErrNotInitialized
	}
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, ErrNotInitialized
	}
	return cfg, nil
}

func (s *CollectionService) authorized(caller string) (*models.CollectionConfig, error) {
	cfg, err := s.Config()
	if err != nil {
		return nil, err
	}
	if caller != cfg.Authority {
		return nil, ErrUnauthorized
	}
	return cfg, nil
}

func (s *CollectionService) publish(eventType string, payload interface{}) {
	if err := s.emit.Emit(eventType, payload); err != nil {
		logrus.Warnf("failed to publish %s event: %v", eventType, err)
	}
}
