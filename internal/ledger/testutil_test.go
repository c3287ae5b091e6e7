package ledger

import (
	"context"
	"errors"
	"fmt"

	"strategymint/internal/models"
)

// fakeCollectionStore keeps everything in memory and mirrors the store error
// mapping contract.
type fakeCollectionStore struct {
	config     *models.CollectionConfig
	strategies map[string]*models.StrategyNft
}

func newFakeCollectionStore() *fakeCollectionStore {
	return &fakeCollectionStore{strategies: make(map[string]*models.StrategyNft)}
}

func (f *fakeCollectionStore) CreateConfig(cfg *models.CollectionConfig) error {
	if f.config != nil {
		return ErrDuplicateRecord
	}
	c := *cfg
	f.config = &c
	return nil
}

func (f *fakeCollectionStore) GetConfig() (*models.CollectionConfig, error) {
	if f.config == nil {
		return nil, ErrNotFound
	}
	c := *f.config
	return &c, nil
}

func (f *fakeCollectionStore) SaveConfig(cfg *models.CollectionConfig) error {
	c := *cfg
	f.config = &c
	return nil
}

func (f *fakeCollectionStore) CreateStrategy(rec *models.StrategyNft, cfg *models.CollectionConfig) error {
	if _, ok := f.strategies[rec.StrategyID]; ok {
		return ErrDuplicateRecord
	}
	r := *rec
	f.strategies[rec.StrategyID] = &r
	c := *cfg
	f.config = &c
	return nil
}

func (f *fakeCollectionStore) GetStrategy(strategyID string) (*models.StrategyNft, error) {
	rec, ok := f.strategies[strategyID]
	if !ok {
		return nil, ErrNotFound
	}
	r := *rec
	return &r, nil
}

type fakeTreasuryStore struct {
	state *models.TreasuryState
}

func (f *fakeTreasuryStore) Create(state *models.TreasuryState) error {
	if f.state != nil {
		return ErrDuplicateRecord
	}
	s := *state
	f.state = &s
	return nil
}

func (f *fakeTreasuryStore) Get() (*models.TreasuryState, error) {
	if f.state == nil {
		return nil, ErrNotFound
	}
	s := *f.state
	return &s, nil
}

func (f *fakeTreasuryStore) Save(state *models.TreasuryState) error {
	s := *state
	f.state = &s
	return nil
}

// fakeChain records every collaborator call and tracks lamport balances so tests
// can assert that failed transitions moved no value. failOn aborts the named
// step, mimicking an external failure.
type fakeChain struct {
	balances    map[string]uint64
	mintCounter int
	calls       []string
	failOn      string
}

func newFakeChain() *fakeChain {
	return &fakeChain{balances: make(map[string]uint64)}
}

const (
	fakeCollectionAddr = "CollectionConfig1111111111111111"
	fakeTreasuryAddr   = "TreasuryVault1111111111111111111"
)

func (f *fakeChain) CollectionAddress() (string, uint8, error) {
	return fakeCollectionAddr, 254, nil
}

func (f *fakeChain) StrategyRecordAddress(strategyID string) (string, uint8, error) {
	return "strategy-record-" + strategyID, 253, nil
}

func (f *fakeChain) TreasuryAddress() (string, uint8, error) {
	return fakeTreasuryAddr, 252, nil
}

func (f *fakeChain) step(name string) error {
	f.calls = append(f.calls, name)
	if f.failOn == name {
		return errors.New(name + " failed")
	}
	return nil
}

func (f *fakeChain) Transfer(ctx context.Context, from, to string, lamports uint64) (string, error) {
	if err := f.step("transfer"); err != nil {
		return "", err
	}
	f.balances[from] -= lamports
	f.balances[to] += lamports
	return "sig-transfer", nil
}

func (f *fakeChain) CreateStrategyMint(ctx context.Context, payer, owner string, authNonce uint8) (string, error) {
	if err := f.step("create_mint"); err != nil {
		return "", err
	}
	f.mintCounter++
	return fmt.Sprintf("Mint%d", f.mintCounter), nil
}

func (f *fakeChain) RegisterMetadata(ctx context.Context, mint, payer string, authNonce uint8, name, symbol, uri string) error {
	return f.step("register_metadata")
}

func (f *fakeChain) CreateMasterEdition(ctx context.Context, mint, payer string, authNonce uint8) error {
	return f.step("master_edition")
}

func (f *fakeChain) MoveFromVault(ctx context.Context, vaultNonce uint8, to string, lamports uint64) (string, error) {
	if err := f.step("move_from_vault"); err != nil {
		return "", err
	}
	f.balances[fakeTreasuryAddr] -= lamports
	f.balances[to] += lamports
	return "sig-vault-move", nil
}

type emittedEvent struct {
	Type    string
	Payload interface{}
}

type recordingEmitter struct {
	events []emittedEvent
}

func (r *recordingEmitter) Emit(eventType string, payload interface{}) error {
	r.events = append(r.events, emittedEvent{Type: eventType, Payload: payload})
	return nil
}

func (r *recordingEmitter) last() emittedEvent {
	return r.events[len(r.events)-1]
}
