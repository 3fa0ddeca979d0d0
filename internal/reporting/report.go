package reporting

import "time"

// Report represents the whale radar report structure.
type Report struct {
	// Metadata
	GeneratedAt time.Time

	// Summary
	Summary Summary

	// Wallet scores (sorted by whale_score DESC, address ASC)
	WalletScores []WalletScoreRow

	// Behavior clusters (sorted by cluster_id)
	Clusters []ClusterRow

	// Data Quality
	DataQuality DataQualitySection
}

// Summary contains headline numbers for the report.
type Summary struct {
	WalletsScored     int
	PatternsDetected  int
	ConsistentWallets int
	TopWallet         string
	TopWhaleScore     int
}

// WalletScoreRow represents one row in the wallet scores table.
type WalletScoreRow struct {
	Address           string
	TotalVolumeSOL    float64
	InteractionCount  uint64
	AverageEntrySize  float64
	EarlyEntryCount   uint64
	WinrateProxy      float64
	WhaleScore        int
	WeightedScore     int
	InsiderConfidence int
	PatternDetected   bool
	ConsistencyScore  float64
	Consistent        bool
	ClusterID         int
}

// ClusterRow represents one behavior cluster.
type ClusterRow struct {
	ClusterID int
	Size      int
	Members   []string
}

// DataQualitySection contains integrity errors collected during the run.
type DataQualitySection struct {
	IntegrityErrors []string
	AllChecksPassed bool
}
