package solana

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Program identity under which every persistent record's address is derived.
// Acts as the namespace for the derivation, never as a signer.
var LedgerProgramID = solana.MustPublicKeyFromBase58("Xj7XmDEMVEuR958DvaLoreQniqrHQPUUSDuCdpXr8Ck")

// Seeds for derived record addresses.
var (
	SeedCollection  = []byte("collection")
	SeedStrategyNft = []byte("strategy_nft")
	SeedTreasury    = []byte("treasury")
)

// DeriveCollectionConfig returns the canonical collection config address and its
// derivation nonce.
func DeriveCollectionConfig() (solana.PublicKey, uint8, error) {
	addr, bump, err := solana.FindProgramAddress([][]byte{SeedCollection}, LedgerProgramID)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to find collection config address: %w", err)
	}
	return addr, bump, nil
}

// DeriveStrategyRecord returns the record address for a strategy id. One address
// per id, so duplicate mints collide here.
func DeriveStrategyRecord(strategyID string) (solana.PublicKey, uint8, error) {
	addr, bump, err := solana.FindProgramAddress(
		[][]byte{SeedStrategyNft, []byte(strategyID)},
		LedgerProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to find strategy record address: %w", err)
	}
	return addr, bump, nil
}

// DeriveTreasuryVault returns the canonical treasury vault address and nonce.
func DeriveTreasuryVault() (solana.PublicKey, uint8, error) {
	addr, bump, err := solana.FindProgramAddress([][]byte{SeedTreasury}, LedgerProgramID)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to find treasury vault address: %w", err)
	}
	return addr, bump, nil
}

// ProveRecordAddress reconstructs a derived address from its seeds and stored
// nonce. It fails if the nonce does not reproduce a valid address, so a caller
// holding a record can prove the record's derivation without any key material.
func ProveRecordAddress(seeds [][]byte, nonce uint8) (solana.PublicKey, error) {
	full := make([][]byte, 0, len(seeds)+1)
	full = append(full, seeds...)
	full = append(full, []byte{nonce})

	addr, err := solana.CreateProgramAddress(full, LedgerProgramID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid derivation nonce: %w", err)
	}
	return addr, nil
}
