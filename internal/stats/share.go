// Package stats aggregates resolution results into per-archetype meta
// statistics.
package stats

import (
	"sort"

	"github.com/ptcgmeta/tracker/internal/archetype"
)

// ArchetypeShare summarizes one archetype's presence in a batch of
// resolved placements.
type ArchetypeShare struct {
	Archetype     string  `json:"archetype"`
	Count         int     `json:"count"`
	Share         float64 `json:"share"` // percent of all placements
	Tier          int     `json:"tier"`
	AvgConfidence float64 `json:"avg_confidence"`
}

// Shares aggregates resolutions into meta shares, sorted by share
// descending (ties broken by name) so the output reads as a tier list.
func Shares(results []archetype.Resolution) []ArchetypeShare {
	if len(results) == 0 {
		return nil
	}

	counts := make(map[string]int)
	confidence := make(map[string]float64)
	for _, res := range results {
		counts[res.Archetype]++
		confidence[res.Archetype] += res.Confidence
	}

	total := float64(len(results))
	shares := make([]ArchetypeShare, 0, len(counts))
	for name, count := range counts {
		share := float64(count) / total * 100
		shares = append(shares, ArchetypeShare{
			Archetype:     name,
			Count:         count,
			Share:         share,
			Tier:          tierFor(share),
			AvgConfidence: confidence[name] / float64(count),
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Share != shares[j].Share {
			return shares[i].Share > shares[j].Share
		}
		return shares[i].Archetype < shares[j].Archetype
	})

	return shares
}

// tierFor buckets a meta-share percentage into tiers 1-4.
func tierFor(share float64) int {
	switch {
	case share >= 5.0:
		return 1
	case share >= 2.0:
		return 2
	case share >= 0.5:
		return 3
	default:
		return 4
	}
}
