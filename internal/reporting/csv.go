package reporting

import (
	"fmt"
	"strings"
)

// RenderCSV renders wallet score rows as CSV string.
func RenderCSV(rows []WalletScoreRow) string {
	var sb strings.Builder

	// Header
	sb.WriteString("address,whale_score,weighted_score,insider_confidence,pattern_detected,")
	sb.WriteString("consistency_score,consistent,cluster_id,")
	sb.WriteString("total_volume_sol,interaction_count,average_entry_size,early_entry_count,winrate_proxy\n")

	// Rows
	for _, w := range rows {
		sb.WriteString(fmt.Sprintf("%s,%d,%d,%d,%t,%.6f,%t,%d,%.6f,%d,%.6f,%d,%.6f\n",
			w.Address,
			w.WhaleScore,
			w.WeightedScore,
			w.InsiderConfidence,
			w.PatternDetected,
			w.ConsistencyScore,
			w.Consistent,
			w.ClusterID,
			w.TotalVolumeSOL,
			w.InteractionCount,
			w.AverageEntrySize,
			w.EarlyEntryCount,
			w.WinrateProxy,
		))
	}

	return sb.String()
}
