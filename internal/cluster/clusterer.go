// Package cluster groups wallets with comparable behavior profiles.
package cluster

import (
	"sort"

	"github.com/Harry-maxy/whale-radar-ai/internal/domain"
)

// Clusterer partitions wallets into behavior clusters with a greedy
// single-pass star partition: every unassigned wallet opens a cluster and
// pulls in all remaining unassigned wallets whose similarity to the seed
// reaches the threshold. Candidates are compared against the seed only,
// never against other members, so each wallet lands in exactly one cluster.
//
// This is a threshold heuristic, not a clustering algorithm with
// convergence guarantees.
type Clusterer struct {
	// SimilarityThreshold is the minimum pairwise similarity to the
	// cluster seed required for membership. Values above 1.0 make every
	// wallet its own cluster.
	SimilarityThreshold float64
}

// Cluster partitions the stats map into clusters of wallet addresses.
// Wallets are visited in lexical address order, outer and inner scans both,
// so the output is deterministic: clusters appear in seed order and members
// in address order after the seed.
func (c Clusterer) Cluster(statsByAddress map[string]domain.WalletStats) [][]string {
	addresses := make([]string, 0, len(statsByAddress))
	for address := range statsByAddress {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)

	assigned := make(map[string]bool, len(addresses))
	var clusters [][]string

	for _, seed := range addresses {
		if assigned[seed] {
			continue
		}

		members := []string{seed}
		assigned[seed] = true
		seedStats := statsByAddress[seed]

		for _, candidate := range addresses {
			if assigned[candidate] {
				continue
			}
			if Similarity(seedStats, statsByAddress[candidate]) >= c.SimilarityThreshold {
				members = append(members, candidate)
				assigned[candidate] = true
			}
		}

		clusters = append(clusters, members)
	}

	return clusters
}
