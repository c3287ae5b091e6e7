package solana

import (
	"crypto/ed25519"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Capability is a signing context for a derived record. The record never holds a
// private key; its authority is proven structurally by reproducing the derived
// address from (label, nonce) and resolving the matching custody key from the
// service root seed. The key material stays inside the capability and is only
// usable through Sign, never exported.
type Capability struct {
	Label   string
	Nonce   uint8
	Address solana.PublicKey
	signer  solana.PrivateKey
}

// Prove builds the signing capability for a derived record. It fails when the
// nonce does not reproduce the record's canonical address, so only code holding
// the matching record (and the service root seed) can obtain the capability.
func Prove(label string, nonce uint8, rootSeed []byte) (*Capability, error) {
	if len(rootSeed) == 0 {
		return nil, errors.New("empty root seed")
	}

	addr, err := ProveRecordAddress([][]byte{[]byte(label)}, nonce)
	if err != nil {
		return nil, fmt.Errorf("prove %s capability: %w", label, err)
	}

	signer := deriveCustodyKey(rootSeed, label, nonce)
	return &Capability{
		Label:   label,
		Nonce:   nonce,
		Address: addr,
		signer:  signer,
	}, nil
}

// Signer returns the public identity of the capability's custody key. This is
// the identity presented to the token and metadata programs.
func (c *Capability) Signer() solana.PublicKey {
	return c.signer.PublicKey()
}

// Sign returns the capability's private key to a transaction signing callback
// when the requested key matches, nil otherwise.
func (c *Capability) Sign(key solana.PublicKey) *solana.PrivateKey {
	if key.Equals(c.signer.PublicKey()) {
		k := c.signer
		return &k
	}
	return nil
}

// deriveCustodyKey derives the ed25519 custody key for a (label, nonce) pair
// from the service root seed. Deterministic, so the same record always resolves
// to the same signing identity.
func deriveCustodyKey(rootSeed []byte, label string, nonce uint8) solana.PrivateKey {
	h := sha256.New()
	h.Write(rootSeed)
	h.Write([]byte(label))
	h.Write([]byte{nonce})
	seed := h.Sum(nil)
	return solana.PrivateKey(ed25519.NewKeyFromSeed(seed))
}
