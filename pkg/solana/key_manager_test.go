package solana

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyManager(t *testing.T) {
	km := NewKeyManager(t.TempDir())

	// Test key pair generation
	t.Run("Generate Key Pair", func(t *testing.T) {
		account, err := km.GenerateKeyPair()
		require.NoError(t, err)
		assert.NotNil(t, account)
		assert.NotEmpty(t, account.PublicKey.ToBase58())
		assert.NotEmpty(t, account.PrivateKey)
		assert.Equal(t, 64, len(account.PrivateKey), "Private key should be 64 bytes")
	})

	// Test encryption and decryption
	t.Run("Encrypt and Decrypt Private Key", func(t *testing.T) {
		account, err := km.GenerateKeyPair()
		require.NoError(t, err)

		password := "test-password"
		encrypted, err := km.EncryptPrivateKey(account.PrivateKey, password)
		require.NoError(t, err)
		assert.NotEmpty(t, encrypted)

		decrypted, err := km.DecryptPrivateKey(encrypted, password)
		require.NoError(t, err)

		// check if the decrypted key is the same as the original key
		assert.True(t, bytes.Equal(account.PrivateKey[:], decrypted), "Decrypted private key should match original")
		assert.Equal(t, len(account.PrivateKey), len(decrypted), "Decrypted key length should match original")
	})

	// Test keystore round trip
	t.Run("Save and Load KeyStore Entry", func(t *testing.T) {
		account, err := km.GenerateKeyPair()
		require.NoError(t, err)

		password := "test-password"
		err = km.SaveKeyStoreEntry(account, password)
		require.NoError(t, err)

		address := account.PublicKey.ToBase58()
		loaded, err := km.LoadKeyStoreEntry(address, password)
		require.NoError(t, err)

		assert.Equal(t, address, loaded.PublicKey.ToBase58())
		assert.True(t, bytes.Equal(account.PrivateKey[:], loaded.PrivateKey[:]), "Loaded private key should match original")
	})

	// Test address derivation
	t.Run("Get Solana Address", func(t *testing.T) {
		account, err := km.GenerateKeyPair()
		require.NoError(t, err)

		address, err := km.GetSolanaAddressFromPrivateKey(account.PrivateKey)
		require.NoError(t, err)
		assert.Equal(t, account.PublicKey.ToBase58(), address)
	})

	// Test error cases
	t.Run("Error Cases", func(t *testing.T) {
		// Test invalid password
		account, err := km.GenerateKeyPair()
		require.NoError(t, err)

		encrypted, err := km.EncryptPrivateKey(account.PrivateKey, "password1")
		require.NoError(t, err)

		_, err = km.DecryptPrivateKey(encrypted, "password2")
		assert.Error(t, err)

		// Test missing entry
		_, err = km.LoadKeyStoreEntry("nonexistent-address", "password1")
		assert.Error(t, err)

		// Test wrong password on a stored entry
		err = km.SaveKeyStoreEntry(account, "password1")
		require.NoError(t, err)
		_, err = km.LoadKeyStoreEntry(account.PublicKey.ToBase58(), "password2")
		assert.Error(t, err)

		// Test invalid private key
		_, err = km.GetSolanaAddressFromPrivateKey([]byte("invalid-key"))
		assert.Error(t, err)
	})

	// Test multiple key generation
	t.Run("Multiple Key Generation", func(t *testing.T) {
		// Generate multiple keys and ensure they are unique
		keys := make(map[string]bool)
		for i := 0; i < 10; i++ {
			account, err := km.GenerateKeyPair()
			require.NoError(t, err)

			address := account.PublicKey.ToBase58()
			assert.False(t, keys[address], "Generated duplicate address")
			keys[address] = true
		}
	})
}
