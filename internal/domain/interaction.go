package domain

// TokenInteraction represents a single wallet-token purchase event.
// Records are produced by the ingestion collaborator and are immutable
// once created; the scoring core never modifies a stored record.
type TokenInteraction struct {
	WalletAddress string  `json:"wallet_address"` // actor
	TokenMint     string  `json:"token_mint"`     // traded asset
	BlockTime     uint64  `json:"block_time"`     // Unix timestamp in seconds
	SolAmount     float64 `json:"sol_amount"`     // purchase size in SOL, non-negative
	IsEarlyEntry  bool    `json:"is_early_entry"` // set by the entry classifier
}
