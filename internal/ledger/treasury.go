package ledger

import (
	"context"
	"fmt"
	"time"

	"strategymint/internal/models"
	"strategymint/pkg/utils"

	"github.com/sirupsen/logrus"
)

// TreasuryService owns the pooled balance and the profit-pool sub-balance. The
// normal authority runs deposits and distributions; the emergency authority is a
// separate trust root that only controls the withdrawal bypass and its own
// rotation.
type TreasuryService struct {
	store TreasuryStore
	chain ChainClient
	emit  Emitter
}

func NewTreasuryService(store TreasuryStore, chain ChainClient, emit Emitter) *TreasuryService {
	return &TreasuryService{store: store, chain: chain, emit: emit}
}

// Initialize creates the treasury record once and, when amount > 0, funds the
// vault from the caller.
func (s *TreasuryService) Initialize(ctx context.Context, caller, emergencyAuthority string, amount uint64) (*models.TreasuryState, error) {
	existing, err := s.store.Get()
	if err != nil && err != ErrNotFound {
		return nil, fmt.Errorf("load treasury state: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyInitialized
	}

	address, nonce, err := s.chain.TreasuryAddress()
	if err != nil {
		return nil, fmt.Errorf("derive treasury address: %w", err)
	}

	if amount > 0 {
		if _, err := s.chain.Transfer(ctx, caller, address, amount); err != nil {
			return nil, fmt.Errorf("initial deposit: %w", err)
		}
	}

	state := &models.TreasuryState{
		Address:            address,
		Authority:          caller,
		EmergencyAuthority: emergencyAuthority,
		TotalBalance:       amount,
		ProfitPool:         0,
		IsInitialized:      true,
		DerivationNonce:    nonce,
	}
	if err := s.store.Create(state); err != nil {
		return nil, err
	}

	s.publish(EventTreasuryInitialized, TreasuryInitializedEvent{
		Authority:          caller,
		EmergencyAuthority: emergencyAuthority,
		InitialAmount:      amount,
		Timestamp:          time.Now().Unix(),
	})
	return state, nil
}

// AddProfits transfers amount from the authority into the vault and credits both
// the total balance and the profit pool.
func (s *TreasuryService) AddProfits(ctx context.Context, caller string, amount uint64) (*models.TreasuryState, error) {
	state, err := s.initialized()
	if err != nil {
		return nil, err
	}
	if amount == 0 {
		return nil, ErrInvalidAmount
	}
	if caller != state.Authority {
		return nil, ErrUnauthorized
	}

	newTotal, err := utils.CheckedAdd(state.TotalBalance, amount)
	if err != nil {
		return nil, fmt.Errorf("total balance: %w", err)
	}
	newPool, err := utils.CheckedAdd(state.ProfitPool, amount)
	if err != nil {
		return nil, fmt.Errorf("profit pool: %w", err)
	}

	if _, err := s.chain.Transfer(ctx, caller, state.Address, amount); err != nil {
		return nil, fmt.Errorf("profit deposit: %w", err)
	}

	state.TotalBalance = newTotal
	state.ProfitPool = newPool
	if err := s.store.Save(state); err != nil {
		return nil, err
	}

	s.publish(EventProfitsAdded, ProfitsAddedEvent{
		Amount:        amount,
		NewTotal:      state.TotalBalance,
		NewProfitPool: state.ProfitPool,
		Timestamp:     time.Now().Unix(),
	})
	return state, nil
}

// DistributeProfits pays floor(profit_pool * shareBps / 10000) from the vault to
// the holder under the vault's derived signing authority and debits both
// balances.
func (s *TreasuryService) DistributeProfits(ctx context.Context, caller, holder string, shareBps uint16) (*models.TreasuryState, uint64, error) {
	state, err := s.initialized()
	if err != nil {
		return nil, 0, err
	}
	if caller != state.Authority {
		return nil, 0, ErrUnauthorized
	}
	if state.ProfitPool == 0 {
		return nil, 0, ErrNoProfits
	}
	if shareBps == 0 || shareBps > utils.BpsDenominator {
		return nil, 0, ErrInvalidShare
	}

	distribution, err := utils.ShareOf(state.ProfitPool, shareBps)
	if err != nil {
		return nil, 0, fmt.Errorf("share computation: %w", err)
	}
	if distribution == 0 {
		return nil, 0, ErrInvalidAmount
	}
	// Structurally guaranteed by the formula; re-checked anyway.
	if distribution > state.ProfitPool {
		return nil, 0, ErrInsufficientFunds
	}

	newPool, err := utils.CheckedSub(state.ProfitPool, distribution)
	if err != nil {
		return nil, 0, fmt.Errorf("profit pool: %w", err)
	}
	newTotal, err := utils.CheckedSub(state.TotalBalance, distribution)
	if err != nil {
		return nil, 0, fmt.Errorf("total balance: %w", err)
	}

	if _, err := s.chain.MoveFromVault(ctx, state.DerivationNonce, holder, distribution); err != nil {
		return nil, 0, fmt.Errorf("distribution transfer: %w", err)
	}

	state.ProfitPool = newPool
	state.TotalBalance = newTotal
	if err := s.store.Save(state); err != nil {
		return nil, 0, err
	}

	s.publish(EventProfitsDistributed, ProfitsDistributedEvent{
		Holder:        holder,
		Amount:        distribution,
		ShareBps:      shareBps,
		RemainingPool: state.ProfitPool,
		Timestamp:     time.Now().Unix(),
	})
	return state, distribution, nil
}

// WithdrawEmergency moves funds from the vault to an arbitrary destination. Only
// the emergency authority may call it; it bypasses the normal authority entirely.
func (s *TreasuryService) WithdrawEmergency(ctx context.Context, caller, destination string, amount uint64) (*models.TreasuryState, error) {
	state, err := s.initialized()
	if err != nil {
		return nil, err
	}
	if caller != state.EmergencyAuthority {
		return nil, ErrUnauthorized
	}
	if amount == 0 || amount > state.TotalBalance {
		return nil, ErrInsufficientFunds
	}

	newTotal, err := utils.CheckedSub(state.TotalBalance, amount)
	if err != nil {
		return nil, fmt.Errorf("total balance: %w", err)
	}

	if _, err := s.chain.MoveFromVault(ctx, state.DerivationNonce, destination, amount); err != nil {
		return nil, fmt.Errorf("emergency transfer: %w", err)
	}

	state.TotalBalance = newTotal
	// The withdrawal ignores the pool split, so keep the pool within the new
	// total to preserve profit_pool <= total_balance.
	if state.ProfitPool > state.TotalBalance {
		state.ProfitPool = state.TotalBalance
	}
	if err := s.store.Save(state); err != nil {
		return nil, err
	}

	s.publish(EventEmergencyWithdrawal, EmergencyWithdrawalEvent{
		Multisig:    caller,
		Destination: destination,
		Amount:      amount,
		Remaining:   state.TotalBalance,
		Timestamp:   time.Now().Unix(),
	})
	return state, nil
}

// UpdateMultisig rotates the emergency authority. Only the current emergency
// authority may rotate it.
func (s *TreasuryService) UpdateMultisig(caller, newMultisig string) (*models.TreasuryState, error) {
	state, err := s.initialized()
	if err != nil {
		return nil, err
	}
	if caller != state.EmergencyAuthority {
		return nil, ErrUnauthorized
	}

	oldMultisig := state.EmergencyAuthority
	state.EmergencyAuthority = newMultisig
	if err := s.store.Save(state); err != nil {
		return nil, err
	}

	s.publish(EventMultisigUpdated, MultisigUpdatedEvent{
		OldMultisig: oldMultisig,
		NewMultisig: newMultisig,
		Timestamp:   time.Now().Unix(),
	})
	return state, nil
}

// State returns the current treasury record.
func (s *TreasuryService) State() (*models.TreasuryState, error) {
	return s.initialized()
}

func (s *TreasuryService) initialized() (*models.TreasuryState, error) {
	state, err := s.store.Get()
	if err == ErrNotFound {
		return nil, ErrNotInitialized
	}
	if err != nil {
		return nil, err
	}
	if state == nil || !state.IsInitialized {
		return nil, ErrNotInitialized
	}
	return state, nil
}

func (s *TreasuryService) publish(eventType string, payload interface{}) {
	if err := s.emit.Emit(eventType, payload); err != nil {
		logrus.Warnf("failed to publish %s event: %v", eventType, err)
	}
}
