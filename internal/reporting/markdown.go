package reporting

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown renders report as Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Whale Radar Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))

	// Summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Wallets Scored | %d |\n", r.Summary.WalletsScored))
	sb.WriteString(fmt.Sprintf("| Patterns Detected | %d |\n", r.Summary.PatternsDetected))
	sb.WriteString(fmt.Sprintf("| Consistent Wallets | %d |\n", r.Summary.ConsistentWallets))
	sb.WriteString(fmt.Sprintf("| Top Wallet | %s |\n", r.Summary.TopWallet))
	sb.WriteString(fmt.Sprintf("| Top Whale Score | %d |\n", r.Summary.TopWhaleScore))
	sb.WriteString("\n")

	// Wallet scores
	sb.WriteString("## Wallet Scores\n\n")
	if len(r.WalletScores) > 0 {
		sb.WriteString("| Wallet | Whale | Weighted | Insider | Pattern | Consistency | Consistent | Cluster | Volume (SOL) | Interactions | Early | Winrate |\n")
		sb.WriteString("|--------|-------|----------|---------|---------|-------------|------------|---------|--------------|--------------|-------|--------|\n")
		for _, w := range r.WalletScores {
			sb.WriteString(fmt.Sprintf("| %s | %d | %d | %d | %s | %.2f | %s | %d | %.4f | %d | %d | %.4f |\n",
				w.Address, w.WhaleScore, w.WeightedScore, w.InsiderConfidence,
				yesNo(w.PatternDetected), w.ConsistencyScore, yesNo(w.Consistent),
				w.ClusterID, w.TotalVolumeSOL, w.InteractionCount, w.EarlyEntryCount, w.WinrateProxy))
		}
	} else {
		sb.WriteString("No wallets scored.\n")
	}
	sb.WriteString("\n")

	// Clusters
	sb.WriteString("## Behavior Clusters\n\n")
	if len(r.Clusters) > 0 {
		sb.WriteString("| Cluster | Size | Members |\n")
		sb.WriteString("|---------|------|--------|\n")
		for _, c := range r.Clusters {
			sb.WriteString(fmt.Sprintf("| %d | %d | %s |\n",
				c.ClusterID, c.Size, strings.Join(c.Members, ", ")))
		}
	} else {
		sb.WriteString("No clusters formed.\n")
	}
	sb.WriteString("\n")

	// Data Quality
	sb.WriteString("## Data Quality\n\n")
	if len(r.DataQuality.IntegrityErrors) > 0 {
		for _, err := range r.DataQuality.IntegrityErrors {
			sb.WriteString(fmt.Sprintf("- %s\n", err))
		}
	} else {
		sb.WriteString("No integrity errors.\n")
	}
	sb.WriteString("\n")

	return sb.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
