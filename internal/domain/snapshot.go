package domain

// WalletScoreSnapshot is the persisted scoring output for one wallet from
// one pipeline run. It flattens the wallet's aggregate stats together with
// every score the engine produced so downstream consumers (alerting, UI,
// analytics queries) need a single row per wallet.
type WalletScoreSnapshot struct {
	Address          string  `json:"address"`
	TotalVolumeSOL   float64 `json:"total_volume_sol"`
	InteractionCount uint64  `json:"interaction_count"`
	AverageEntrySize float64 `json:"average_entry_size"`
	EarlyEntryCount  uint64  `json:"early_entry_count"`
	WinrateProxy     float64 `json:"winrate_proxy"`

	WhaleScore        int     `json:"whale_score"`        // fixed-weight formula, [0,100]
	WeightedScore     int     `json:"weighted_score"`     // configurable-weight formula, [0,100]
	InsiderConfidence int     `json:"insider_confidence"` // [0,100]
	PatternDetected   bool    `json:"pattern_detected"`
	ConsistencyScore  float64 `json:"consistency_score"` // [0,100]
	Consistent        bool    `json:"consistent"`

	// ClusterID is the wallet's position in the deterministic cluster
	// ordering of the run that produced this snapshot.
	ClusterID int `json:"cluster_id"`

	ComputedAt int64 `json:"computed_at"` // Unix timestamp in seconds
}
