package solana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveCollectionConfig(t *testing.T) {
	addr1, bump1, err := DeriveCollectionConfig()
	require.NoError(t, err)
	assert.False(t, addr1.IsZero())

	// Derivation is deterministic
	addr2, bump2, err := DeriveCollectionConfig()
	require.NoError(t, err)
	assert.Equal(t, addr1, addr2)
	assert.Equal(t, bump1, bump2)
}

func TestDeriveStrategyRecord(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		addr1, bump1, err := DeriveStrategyRecord("momentum-v1")
		require.NoError(t, err)
		addr2, bump2, err := DeriveStrategyRecord("momentum-v1")
		require.NoError(t, err)
		assert.Equal(t, addr1, addr2)
		assert.Equal(t, bump1, bump2)
	})

	t.Run("Distinct IDs Get Distinct Addresses", func(t *testing.T) {
		a, _, err := DeriveStrategyRecord("momentum-v1")
		require.NoError(t, err)
		b, _, err := DeriveStrategyRecord("momentum-v2")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("Distinct From Other Record Kinds", func(t *testing.T) {
		record, _, err := DeriveStrategyRecord("momentum-v1")
		require.NoError(t, err)
		collection, _, err := DeriveCollectionConfig()
		require.NoError(t, err)
		treasury, _, err := DeriveTreasuryVault()
		require.NoError(t, err)
		assert.NotEqual(t, record, collection)
		assert.NotEqual(t, record, treasury)
		assert.NotEqual(t, collection, treasury)
	})
}

func TestProveRecordAddress(t *testing.T) {
	t.Run("Reproduces Derived Address", func(t *testing.T) {
		addr, bump, err := DeriveStrategyRecord("momentum-v1")
		require.NoError(t, err)

		proven, err := ProveRecordAddress([][]byte{SeedStrategyNft, []byte("momentum-v1")}, bump)
		require.NoError(t, err)
		assert.Equal(t, addr, proven)
	})

	t.Run("Wrong Nonce Fails Or Diverges", func(t *testing.T) {
		addr, bump, err := DeriveTreasuryVault()
		require.NoError(t, err)

		proven, err := ProveRecordAddress([][]byte{SeedTreasury}, bump+1)
		if err == nil {
			assert.NotEqual(t, addr, proven)
		}
	})
}
