package solana

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"
	log "github.com/sirupsen/logrus"
)

// SPL mint account layout size.
const mintAccountSize = 82

// Capability labels. Each derived record resolves its signing context from its
// label plus the stored nonce.
const (
	LabelCollection = "collection"
	LabelTreasury   = "treasury"
)

// Client executes the ledger's chain-side steps: lamport transfers, token-unit
// creation and metadata registration. Caller accounts are resolved through the
// keystore; derived records are resolved through capability proofs against the
// service root seed.
type Client struct {
	rpc      *rpc.Client
	rootSeed []byte
	keys     *KeyManager
	password string
}

func NewClient(endpoint string, rootSeed []byte, keys *KeyManager, keystorePassword string) *Client {
	return &Client{
		rpc:      rpc.New(endpoint),
		rootSeed: rootSeed,
		keys:     keys,
		password: keystorePassword,
	}
}

// CollectionAddress returns the collection's derived signing identity and the
// nonce that reproduces it.
func (c *Client) CollectionAddress() (string, uint8, error) {
	_, bump, err := DeriveCollectionConfig()
	if err != nil {
		return "", 0, err
	}
	auth, err := Prove(LabelCollection, bump, c.rootSeed)
	if err != nil {
		return "", 0, err
	}
	return auth.Signer().String(), bump, nil
}

// StrategyRecordAddress returns the derived record address for a strategy id.
func (c *Client) StrategyRecordAddress(strategyID string) (string, uint8, error) {
	addr, bump, err := DeriveStrategyRecord(strategyID)
	if err != nil {
		return "", 0, err
	}
	return addr.String(), bump, nil
}

// TreasuryAddress returns the treasury vault's derived identity and nonce.
func (c *Client) TreasuryAddress() (string, uint8, error) {
	_, bump, err := DeriveTreasuryVault()
	if err != nil {
		return "", 0, err
	}
	auth, err := Prove(LabelTreasury, bump, c.rootSeed)
	if err != nil {
		return "", 0, err
	}
	return auth.Signer().String(), bump, nil
}

// Transfer moves lamports between two accounts, signed by the sender's custody
// key from the keystore.
func (c *Client) Transfer(ctx context.Context, from, to string, lamports uint64) (string, error) {
	fromKey, err := c.custodyKey(from)
	if err != nil {
		return "", err
	}
	toPubkey, err := solana.PublicKeyFromBase58(to)
	if err != nil {
		return "", fmt.Errorf("invalid recipient: %w", err)
	}

	ix := system.NewTransferInstruction(lamports, fromKey.PublicKey(), toPubkey).Build()
	return c.sendTransaction(ctx, fromKey.PublicKey(), []solana.Instruction{ix}, fromKey)
}

// CreateStrategyMint creates a zero-decimal mint with the collection capability
// as mint and freeze authority, creates the owner's associated token account
// and mints exactly one unit into it.
func (c *Client) CreateStrategyMint(ctx context.Context, payer, owner string, authNonce uint8) (string, error) {
	auth, err := Prove(LabelCollection, authNonce, c.rootSeed)
	if err != nil {
		return "", err
	}
	payerKey, err := c.custodyKey(payer)
	if err != nil {
		return "", err
	}
	ownerPubkey, err := solana.PublicKeyFromBase58(owner)
	if err != nil {
		return "", fmt.Errorf("invalid owner: %w", err)
	}

	mintWallet := solana.NewWallet()
	mintPubkey := mintWallet.PublicKey()

	rent, err := c.rpc.GetMinimumBalanceForRentExemption(ctx, mintAccountSize, rpc.CommitmentFinalized)
	if err != nil {
		return "", fmt.Errorf("failed to get rent exemption: %w", err)
	}

	ata, _, err := solana.FindAssociatedTokenAddress(ownerPubkey, mintPubkey)
	if err != nil {
		return "", fmt.Errorf("failed to derive associated token address: %w", err)
	}

	instructions := []solana.Instruction{
		system.NewCreateAccountInstruction(
			rent,
			mintAccountSize,
			solana.TokenProgramID,
			payerKey.PublicKey(),
			mintPubkey,
		).Build(),
		token.NewInitializeMintInstruction(
			0, // zero decimal granularity
			auth.Signer(),
			auth.Signer(),
			mintPubkey,
			solana.SysVarRentPubkey,
		).Build(),
		associatedtokenaccount.NewCreateInstruction(
			payerKey.PublicKey(),
			ownerPubkey,
			mintPubkey,
		).Build(),
		token.NewMintToInstruction(
			1,
			mintPubkey,
			ata,
			auth.Signer(),
			nil,
		).Build(),
	}

	_, err = c.sendTransaction(ctx, payerKey.PublicKey(), instructions, payerKey, mintWallet.PrivateKey, auth.signer)
	if err != nil {
		return "", err
	}
	log.Infof("Created strategy mint %s for owner %s", mintPubkey, ownerPubkey)
	return mintPubkey.String(), nil
}

// RegisterMetadata registers the display data with the metadata program: fixed
// 5% royalty and a single verified creator, the collection identity, at 100%.
func (c *Client) RegisterMetadata(ctx context.Context, mint, payer string, authNonce uint8, name, symbol, uri string) error {
	auth, err := Prove(LabelCollection, authNonce, c.rootSeed)
	if err != nil {
		return err
	}
	payerKey, err := c.custodyKey(payer)
	if err != nil {
		return err
	}
	mintPubkey, err := solana.PublicKeyFromBase58(mint)
	if err != nil {
		return fmt.Errorf("invalid mint: %w", err)
	}

	metadata, _, err := GetMetadataPDA(mintPubkey)
	if err != nil {
		return fmt.Errorf("failed to derive metadata address: %w", err)
	}

	creators := []MetadataCreator{
		{Address: auth.Signer(), Verified: true, Share: CreatorFullShare},
	}
	if err := VerifyCreatorShare(creators); err != nil {
		return err
	}

	ix := NewCreateMetadataAccountV3Instruction(
		metadata,
		mintPubkey,
		auth.Signer(),
		payerKey.PublicKey(),
		auth.Signer(),
		name,
		symbol,
		uri,
		creators,
	)
	_, err = c.sendTransaction(ctx, payerKey.PublicKey(), []solana.Instruction{ix}, payerKey, auth.signer)
	return err
}

// CreateMasterEdition elevates the mint to a one-of-one with Some(0) max supply.
func (c *Client) CreateMasterEdition(ctx context.Context, mint, payer string, authNonce uint8) error {
	auth, err := Prove(LabelCollection, authNonce, c.rootSeed)
	if err != nil {
		return err
	}
	payerKey, err := c.custodyKey(payer)
	if err != nil {
		return err
	}
	mintPubkey, err := solana.PublicKeyFromBase58(mint)
	if err != nil {
		return fmt.Errorf("invalid mint: %w", err)
	}

	metadata, _, err := GetMetadataPDA(mintPubkey)
	if err != nil {
		return fmt.Errorf("failed to derive metadata address: %w", err)
	}
	edition, _, err := GetMasterEditionPDA(mintPubkey)
	if err != nil {
		return fmt.Errorf("failed to derive master edition address: %w", err)
	}

	ix := NewCreateMasterEditionV3Instruction(
		edition,
		mintPubkey,
		auth.Signer(),
		auth.Signer(),
		payerKey.PublicKey(),
		metadata,
		0, // one-of-one
	)
	_, err = c.sendTransaction(ctx, payerKey.PublicKey(), []solana.Instruction{ix}, payerKey, auth.signer)
	return err
}

// MoveFromVault moves lamports out of the treasury vault under its derived
// signing authority. Valid only because the vault controls its own held funds.
func (c *Client) MoveFromVault(ctx context.Context, vaultNonce uint8, to string, lamports uint64) (string, error) {
	auth, err := Prove(LabelTreasury, vaultNonce, c.rootSeed)
	if err != nil {
		return "", err
	}
	toPubkey, err := solana.PublicKeyFromBase58(to)
	if err != nil {
		return "", fmt.Errorf("invalid destination: %w", err)
	}

	ix := system.NewTransferInstruction(lamports, auth.Signer(), toPubkey).Build()
	return c.sendTransaction(ctx, auth.Signer(), []solana.Instruction{ix}, auth.signer)
}

// Balance returns the lamport balance of an account.
func (c *Client) Balance(address string) (uint64, error) {
	pubkey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return 0, fmt.Errorf("invalid address: %w", err)
	}
	balance, _, err := GetSolBalance(c.rpc, pubkey)
	return balance, err
}

// TokenMetadata reads the metadata account registered for a mint.
func (c *Client) TokenMetadata(mint string) (*TokenMetadata, error) {
	pubkey, err := solana.PublicKeyFromBase58(mint)
	if err != nil {
		return nil, fmt.Errorf("invalid mint: %w", err)
	}
	return GetTokenMetadata(c.rpc, pubkey)
}

// TransactionStatus reports the confirmation state of a sent transaction.
func (c *Client) TransactionStatus(signature string) (string, error) {
	return CheckTransactionStatus(c.rpc, signature)
}

// custodyKey loads a caller account's private key from the keystore.
func (c *Client) custodyKey(address string) (solana.PrivateKey, error) {
	account, err := c.keys.LoadKeyStoreEntry(address, c.password)
	if err != nil {
		return nil, fmt.Errorf("failed to load custody key for %s: %w", address, err)
	}
	return solana.PrivateKey(account.PrivateKey), nil
}

func (c *Client) sendTransaction(ctx context.Context, payer solana.PublicKey, instructions []solana.Instruction, signers ...solana.PrivateKey) (string, error) {
	bh, err := c.rpc.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return "", fmt.Errorf("failed to get blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(instructions, bh.Value.Blockhash, solana.TransactionPayer(payer))
	if err != nil {
		return "", fmt.Errorf("failed to build transaction: %w", err)
	}

	if _, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		for i := range signers {
			if key.Equals(signers[i].PublicKey()) {
				return &signers[i]
			}
		}
		return nil
	}); err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	sig, err := c.rpc.SendTransaction(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}
	return sig.String(), nil
}
