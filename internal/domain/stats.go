package domain

// WalletStats is the aggregate behavior profile of one wallet.
// Produced exactly once per wallet per aggregation run and treated as an
// immutable value afterward.
//
// Invariants: EarlyEntryCount <= InteractionCount, all numeric fields are
// non-negative, WinrateProxy is in [0, 1]. An empty Address is the explicit
// "no data" sentinel returned for empty input.
type WalletStats struct {
	Address          string  `json:"address"`
	TotalVolumeSOL   float64 `json:"total_volume_sol"`
	InteractionCount uint64  `json:"interaction_count"`
	AverageEntrySize float64 `json:"average_entry_size"`
	EarlyEntryCount  uint64  `json:"early_entry_count"`

	// WinrateProxy is a heuristic stand-in for realized profitability,
	// derived from the early-entry ratio rather than actual P&L.
	WinrateProxy float64 `json:"winrate_proxy"`
}
