package ledger

import (
	"context"
	"math"
	"strings"
	"testing"

	"strategymint/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPayer = "PayerPubkey111111111111111111111"

func newMintFixture(t *testing.T) (*MintService, *CollectionService, *fakeCollectionStore, *fakeChain, *recordingEmitter) {
	store := newFakeCollectionStore()
	chain := newFakeChain()
	emit := &recordingEmitter{}
	collection := NewCollectionService(store, chain, emit)
	_, err := collection.Initialize(testAuthority, "Strategies", "STRAT", "https://meta.example/c.json")
	require.NoError(t, err)
	chain.calls = nil
	emit.events = nil

	minter := NewMintService(store, chain, emit, fakeTreasuryAddr)
	return minter, collection, store, chain, emit
}

func mintRequest(strategyID string) MintRequest {
	return MintRequest{
		Payer:          testPayer,
		StrategyID:     strategyID,
		GenesHash:      "2f3a9bc4d1e8f7a6b5c4d3e2f1a0b9c8",
		Name:           "Strategy #1",
		Symbol:         "STRAT",
		Uri:            "https://meta.example/1.json",
		Archetype:      "momentum",
		Generation:     7,
		FitnessScore:   98123,
		TotalPnl:       -4200,
		WinRate:        5600,
		TradesExecuted: 311,
	}
}

func TestMintStrategyNft(t *testing.T) {
	t.Run("Successful Mint", func(t *testing.T) {
		minter, _, store, chain, emit := newMintFixture(t)
		chain.balances[testPayer] = DefaultMintPriceLamports

		rec, err := minter.MintStrategyNft(context.Background(), mintRequest("strat-alpha"))
		require.NoError(t, err)

		assert.Equal(t, "strat-alpha", rec.StrategyID)
		assert.Equal(t, testPayer, rec.Owner)
		assert.Equal(t, uint64(DefaultMintPriceLamports), rec.MintPriceLamports)
		assert.Equal(t, "Mint1", rec.Mint)
		assert.Equal(t, int64(-4200), rec.TotalPnl)
		assert.NotZero(t, rec.MintedAt)

		// Step order is fixed: fee, token-unit, metadata, edition.
		assert.Equal(t, []string{"transfer", "create_mint", "register_metadata", "master_edition"}, chain.calls)

		// Fee landed in the treasury.
		assert.Equal(t, uint64(0), chain.balances[testPayer])
		assert.Equal(t, uint64(DefaultMintPriceLamports), chain.balances[fakeTreasuryAddr])

		assert.Equal(t, uint64(1), store.config.TotalMinted)

		require.Len(t, emit.events, 1)
		assert.Equal(t, EventStrategyNftMinted, emit.last().Type)
		payload := emit.last().Payload.(StrategyNftMintedEvent)
		assert.Equal(t, "strat-alpha", payload.StrategyID)
		assert.Equal(t, uint64(DefaultMintPriceLamports), payload.MintPrice)
	})

	t.Run("Counter Matches Record Count", func(t *testing.T) {
		minter, _, store, _, _ := newMintFixture(t)

		for _, id := range []string{"a", "b", "c"} {
			_, err := minter.MintStrategyNft(context.Background(), mintRequest(id))
			require.NoError(t, err)
		}
		assert.Equal(t, uint64(3), store.config.TotalMinted)
		assert.Len(t, store.strategies, 3)
	})

	t.Run("Paused Fails Closed", func(t *testing.T) {
		minter, collection, store, chain, emit := newMintFixture(t)
		_, err := collection.ToggleMinting(testAuthority, false)
		require.NoError(t, err)
		chain.calls = nil
		emit.events = nil

		_, err = minter.MintStrategyNft(context.Background(), mintRequest("strat-paused"))
		assert.ErrorIs(t, err, ErrMintingPaused)

		// No transfer, no token-unit, no record.
		assert.Empty(t, chain.calls)
		assert.Empty(t, store.strategies)
		assert.Equal(t, uint64(0), store.config.TotalMinted)
		assert.Empty(t, emit.events)
	})

	t.Run("Duplicate Strategy ID Fails With First Intact", func(t *testing.T) {
		minter, _, store, chain, _ := newMintFixture(t)

		first, err := minter.MintStrategyNft(context.Background(), mintRequest("strat-dup"))
		require.NoError(t, err)
		callsAfterFirst := len(chain.calls)

		_, err = minter.MintStrategyNft(context.Background(), mintRequest("strat-dup"))
		assert.ErrorIs(t, err, ErrDuplicateRecord)

		// The losing attempt never reached the chain.
		assert.Len(t, chain.calls, callsAfterFirst)
		assert.Equal(t, uint64(1), store.config.TotalMinted)
		stored, err := store.GetStrategy("strat-dup")
		require.NoError(t, err)
		assert.Equal(t, first.Mint, stored.Mint)
	})

	t.Run("Metadata Failure Persists Nothing", func(t *testing.T) {
		minter, _, store, chain, emit := newMintFixture(t)
		chain.failOn = "register_metadata"

		_, err := minter.MintStrategyNft(context.Background(), mintRequest("strat-fail"))
		require.Error(t, err)

		assert.Empty(t, store.strategies)
		assert.Equal(t, uint64(0), store.config.TotalMinted)
		assert.Empty(t, emit.events)
	})

	t.Run("Fee Transfer Failure Aborts Before Token Creation", func(t *testing.T) {
		minter, _, store, chain, _ := newMintFixture(t)
		chain.failOn = "transfer"

		_, err := minter.MintStrategyNft(context.Background(), mintRequest("strat-nofee"))
		require.Error(t, err)
		assert.Equal(t, []string{"transfer"}, chain.calls)
		assert.Empty(t, store.strategies)
	})

	t.Run("Charges Current Price", func(t *testing.T) {
		minter, collection, _, chain, emit := newMintFixture(t)
		_, err := collection.UpdateMintPrice(testAuthority, 42_000)
		require.NoError(t, err)
		emit.events = nil

		rec, err := minter.MintStrategyNft(context.Background(), mintRequest("strat-price"))
		require.NoError(t, err)
		assert.Equal(t, uint64(42_000), rec.MintPriceLamports)
		assert.Equal(t, uint64(42_000), chain.balances[fakeTreasuryAddr])
	})

	t.Run("Counter Overflow Aborts", func(t *testing.T) {
		minter, _, store, _, _ := newMintFixture(t)
		store.config.TotalMinted = math.MaxUint64

		_, err := minter.MintStrategyNft(context.Background(), mintRequest("strat-overflow"))
		assert.ErrorIs(t, err, utils.ErrArithmeticOverflow)
		assert.Empty(t, store.strategies)
		assert.Equal(t, uint64(math.MaxUint64), store.config.TotalMinted)
	})

	t.Run("Not Initialized", func(t *testing.T) {
		minter := NewMintService(newFakeCollectionStore(), newFakeChain(), &recordingEmitter{}, fakeTreasuryAddr)
		_, err := minter.MintStrategyNft(context.Background(), mintRequest("strat-none"))
		assert.ErrorIs(t, err, ErrNotInitialized)
	})
}

func TestMintValidation(t *testing.T) {
	minter, _, store, chain, _ := newMintFixture(t)

	cases := []struct {
		name   string
		mutate func(*MintRequest)
	}{
		{"Empty Strategy ID", func(r *MintRequest) { r.StrategyID = "" }},
		{"Strategy ID Too Long", func(r *MintRequest) { r.StrategyID = strings.Repeat("x", 65) }},
		{"Empty Genes Hash", func(r *MintRequest) { r.GenesHash = "" }},
		{"Genes Hash Too Long", func(r *MintRequest) { r.GenesHash = strings.Repeat("h", 65) }},
		{"Archetype Too Long", func(r *MintRequest) { r.Archetype = strings.Repeat("a", 33) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := mintRequest("strat-valid")
			tc.mutate(&req)

			_, err := minter.MintStrategyNft(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidStrategyData)
			assert.Empty(t, chain.calls)
			assert.Empty(t, store.strategies)
		})
	}
}
