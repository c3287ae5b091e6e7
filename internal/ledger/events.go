package ledger

// Event types on the notification surface. Consumed by off-core indexers; the
// payloads carry the pre/post state relevant to observers.
const (
	EventCollectionInitialized = "collection_initialized"
	EventStrategyNftMinted     = "strategy_nft_minted"
	EventMintPriceUpdated      = "mint_price_updated"
	EventMintingToggled        = "minting_toggled"
	EventAuthorityTransferred  = "authority_transferred"
	EventTreasuryInitialized   = "treasury_initialized"
	EventProfitsAdded          = "profits_added"
	EventProfitsDistributed    = "profits_distributed"
	EventEmergencyWithdrawal   = "emergency_withdrawal"
	EventMultisigUpdated       = "multisig_updated"
)

type CollectionInitializedEvent struct {
	Authority string `json:"authority"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Timestamp int64  `json:"timestamp"`
}

type StrategyNftMintedEvent struct {
	Mint           string `json:"mint"`
	Owner          string `json:"owner"`
	StrategyID     string `json:"strategy_id"`
	GenesHash      string `json:"genes_hash"`
	Archetype      string `json:"archetype"`
	Generation     uint32 `json:"generation"`
	FitnessScore   uint64 `json:"fitness_score"`
	TotalPnl       int64  `json:"total_pnl"`
	WinRate        uint64 `json:"win_rate"`
	TradesExecuted uint32 `json:"trades_executed"`
	MintPrice      uint64 `json:"mint_price"`
	Timestamp      int64  `json:"timestamp"`
}

type MintPriceUpdatedEvent struct {
	OldPrice  uint64 `json:"old_price"`
	NewPrice  uint64 `json:"new_price"`
	Timestamp int64  `json:"timestamp"`
}

type MintingToggledEvent struct {
	WasActive bool  `json:"was_active"`
	IsActive  bool  `json:"is_active"`
	Timestamp int64 `json:"timestamp"`
}

type AuthorityTransferredEvent struct {
	OldAuthority string `json:"old_authority"`
	NewAuthority string `json:"new_authority"`
	Timestamp    int64  `json:"timestamp"`
}

type TreasuryInitializedEvent struct {
	Authority          string `json:"authority"`
	EmergencyAuthority string `json:"emergency_authority"`
	InitialAmount      uint64 `json:"initial_amount"`
	Timestamp          int64  `json:"timestamp"`
}

type ProfitsAddedEvent struct {
	Amount        uint64 `json:"amount"`
	NewTotal      uint64 `json:"new_total"`
	NewProfitPool uint64 `json:"new_profit_pool"`
	Timestamp     int64  `json:"timestamp"`
}

type ProfitsDistributedEvent struct {
	Holder        string `json:"holder"`
	Amount        uint64 `json:"amount"`
	ShareBps      uint16 `json:"share_bps"`
	RemainingPool uint64 `json:"remaining_pool"`
	Timestamp     int64  `json:"timestamp"`
}

type EmergencyWithdrawalEvent struct {
	Multisig    string `json:"multisig"`
	Destination string `json:"destination"`
	Amount      uint64 `json:"amount"`
	Remaining   uint64 `json:"remaining"`
	Timestamp   int64  `json:"timestamp"`
}

type MultisigUpdatedEvent struct {
	OldMultisig string `json:"old_multisig"`
	NewMultisig string `json:"new_multisig"`
	Timestamp   int64  `json:"timestamp"`
}
