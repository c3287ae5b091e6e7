package ledger

import (
	"context"

	"strategymint/internal/models"
)

// CollectionStore persists the minting configuration and the per-strategy records.
// Implementations must map storage-level duplicate and not-found conditions to
// ErrDuplicateRecord and ErrNotFound.
type CollectionStore interface {
	CreateConfig(cfg *models.CollectionConfig) error
	GetConfig() (*models.CollectionConfig, error)
	SaveConfig(cfg *models.CollectionConfig) error

	// CreateStrategy inserts the record and saves the updated config in one
	// atomic commit.
	CreateStrategy(rec *models.StrategyNft, cfg *models.CollectionConfig) error
	GetStrategy(strategyID string) (*models.StrategyNft, error)
}

// TreasuryStore persists the singleton treasury record.
type TreasuryStore interface {
	Create(state *models.TreasuryState) error
	Get() (*models.TreasuryState, error)
	Save(state *models.TreasuryState) error
}

// ChainClient is the external collaborator for value movement, token-unit
// creation and metadata registration. Derived records never hold a private key;
// their authority is proven by the (label, nonce) pair the client resolves into a
// signing context.
type ChainClient interface {
	// Address derivation for the persistent records.
	CollectionAddress() (string, uint8, error)
	StrategyRecordAddress(strategyID string) (string, uint8, error)
	TreasuryAddress() (string, uint8, error)

	// Transfer moves lamports between caller-designated accounts, signed by the
	// sending account's custody key.
	Transfer(ctx context.Context, from, to string, lamports uint64) (string, error)

	// CreateStrategyMint creates a zero-decimal token-unit with the derived
	// collection capability as authority and mints exactly one unit into the
	// owner's associated holding account.
	CreateStrategyMint(ctx context.Context, payer, owner string, authNonce uint8) (string, error)

	// RegisterMetadata registers display data with the metadata service: 5%
	// resale royalty and a single verified creator, the collection's derived
	// identity, at 100% share.
	RegisterMetadata(ctx context.Context, mint, payer string, authNonce uint8, name, symbol, uri string) error

	// CreateMasterEdition elevates the token-unit to a one-of-one record with an
	// explicit zero max-supply marker.
	CreateMasterEdition(ctx context.Context, mint, payer string, authNonce uint8) error

	// MoveFromVault adjusts balances directly between the treasury vault and the
	// destination under the vault's derived signing authority.
	MoveFromVault(ctx context.Context, vaultNonce uint8, to string, lamports uint64) (string, error)
}

// Emitter publishes a structured notification after a committed transition.
type Emitter interface {
	Emit(eventType string, payload interface{}) error
}
