// Package cooccur computes cross-gene mutation co-occurrence statistics
// over a genome collection.
package cooccur

import (
	"fmt"
	"sort"

	"github.com/amrwatch/analyzer/internal/classify"
)

// Granularity selects what a pair member is.
type Granularity string

const (
	// GranularityMutation pairs gene:label members (gyrA:S83L).
	GranularityMutation Granularity = "mutation"
	// GranularityGene pairs gene names only.
	GranularityGene Granularity = "gene"
)

// DenominatorMode selects the support denominator.
type DenominatorMode string

const (
	// DenominatorEither divides by the genomes carrying either member.
	DenominatorEither DenominatorMode = "either"
	// DenominatorTotal divides by all genomes analyzed.
	DenominatorTotal DenominatorMode = "total"
)

// Config controls pair formation and support filtering.
type Config struct {
	MinSupport  float64         `yaml:"min_support" json:"min_support"`
	Granularity Granularity     `yaml:"granularity" json:"granularity"`
	Denominator DenominatorMode `yaml:"denominator" json:"denominator"`
}

// DefaultConfig returns the standard aggregation settings.
func DefaultConfig() Config {
	return Config{
		MinSupport:  0,
		Granularity: GranularityMutation,
		Denominator: DenominatorEither,
	}
}

func applyDefaults(cfg Config) Config {
	def := DefaultConfig()
	if cfg.Granularity == "" {
		cfg.Granularity = def.Granularity
	}
	if cfg.Denominator == "" {
		cfg.Denominator = def.Denominator
	}
	return cfg
}

// Pair is an unordered member pair stored in canonical order (A < B), so
// insertion order never affects identity.
type Pair struct {
	A string
	B string
}

// NewPair canonicalizes the member order.
func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// Stat is the count and support fraction for one pair.
type Stat struct {
	Count   int     `json:"count"`
	Support float64 `json:"support"`
}

// Summary maps canonical pairs to their statistics over the analyzed
// collection. Immutable once Analyze returns.
type Summary struct {
	TotalGenomes int
	Pairs        map[Pair]Stat
}

// Analyze groups classified mutations by genome, counts every unordered
// pair of distinct members appearing together in a genome, computes
// support and drops pairs below MinSupport. Counting is commutative, so
// the result is deterministic regardless of input order. Cost is
// O(genomes × k²) for k members per genome, which stays acceptable since
// k is tens, not thousands, in practice.
func Analyze(calls []classify.Result, cfg Config) *Summary {
	cfg = applyDefaults(cfg)

	// Distinct members per genome.
	byGenome := make(map[string]map[string]bool)
	for _, call := range calls {
		member := memberKey(call, cfg.Granularity)
		set, ok := byGenome[call.GenomeID]
		if !ok {
			set = make(map[string]bool)
			byGenome[call.GenomeID] = set
		}
		set[member] = true
	}

	counts := make(map[Pair]int)
	memberGenomes := make(map[string]int)
	for _, set := range byGenome {
		members := make([]string, 0, len(set))
		for m := range set {
			members = append(members, m)
		}
		sort.Strings(members)
		for _, m := range members {
			memberGenomes[m]++
		}
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				counts[NewPair(members[i], members[j])]++
			}
		}
	}

	total := len(byGenome)
	pairs := make(map[Pair]Stat, len(counts))
	for pair, count := range counts {
		denom := total
		if cfg.Denominator == DenominatorEither {
			// |genomes(A) ∪ genomes(B)| by inclusion-exclusion.
			denom = memberGenomes[pair.A] + memberGenomes[pair.B] - count
		}
		support := 0.0
		if denom > 0 {
			support = float64(count) / float64(denom)
		}
		if support < cfg.MinSupport {
			continue
		}
		pairs[pair] = Stat{Count: count, Support: support}
	}

	return &Summary{TotalGenomes: total, Pairs: pairs}
}

func memberKey(call classify.Result, g Granularity) string {
	if g == GranularityGene {
		return call.Gene
	}
	return fmt.Sprintf("%s:%s", call.Gene, call.Label)
}
