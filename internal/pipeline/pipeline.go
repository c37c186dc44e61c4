// Package pipeline fans per-(genome, gene) variant calling out across
// workers and fans results back in for co-occurrence analysis.
package pipeline

import (
	"context"
	"log"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/amrwatch/analyzer/internal/align"
	"github.com/amrwatch/analyzer/internal/classify"
	"github.com/amrwatch/analyzer/internal/cooccur"
	"github.com/amrwatch/analyzer/internal/refdir"
	"github.com/amrwatch/analyzer/internal/seq"
	"github.com/amrwatch/analyzer/internal/variant"
)

// Config controls the fan-out.
type Config struct {
	Workers   int
	Alignment align.Config
}

// Run aligns, detects and classifies every query against its gene's
// reference and returns all classified calls.
//
// Each (genome, gene) unit is independent: per-unit failures (missing
// reference, alignment error) are logged with stage context and skipped,
// never aborting the batch. The one error Run itself returns is context
// cancellation. Output ordering is stable: genome, then gene, then
// position.
func Run(
	ctx context.Context,
	cfg Config,
	queries []seq.Sequence,
	refs refdir.References,
	clf *classify.Classifier,
) ([]classify.Result, error) {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	jobs := make(chan seq.Sequence)

	var (
		mu  sync.Mutex
		all []classify.Result
	)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		g.Go(func() error {
			for query := range jobs {
				calls := processOne(ctx, cfg, query, refs, clf)
				if len(calls) == 0 {
					continue
				}
				mu.Lock()
				all = append(all, calls...)
				mu.Unlock()
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(jobs)
		for _, q := range queries {
			select {
			case jobs <- q:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].GenomeID != all[j].GenomeID {
			return all[i].GenomeID < all[j].GenomeID
		}
		if all[i].Gene != all[j].Gene {
			return all[i].Gene < all[j].Gene
		}
		return all[i].Position < all[j].Position
	})
	return all, nil
}

// processOne runs align→detect→classify for a single query. Alignment and
// detection failures degrade to an empty call list for this unit only.
func processOne(
	ctx context.Context,
	cfg Config,
	query seq.Sequence,
	refs refdir.References,
	clf *classify.Classifier,
) []classify.Result {
	ref, ok := refs.Get(query.Gene)
	if !ok {
		log.Printf("pipeline %s/%s: no reference for gene, skipping", query.GenomeID, query.Gene)
		return nil
	}

	pair, err := align.Global(ref, query, cfg.Alignment)
	if err != nil {
		log.Printf("pipeline %s/%s: alignment stage: %v", query.GenomeID, query.Gene, err)
		return nil
	}

	muts, err := variant.Detect(pair, query.Gene, query.GenomeID)
	if err != nil {
		// Length mismatch here means an aligner bug, not bad data; keep
		// the batch alive but make the violation loud.
		log.Printf("pipeline %s/%s: detection stage invariant violation: %v", query.GenomeID, query.Gene, err)
		return nil
	}

	calls := make([]classify.Result, 0, len(muts))
	for _, m := range muts {
		calls = append(calls, clf.Classify(ctx, m))
	}
	return calls
}

// Summarize runs co-occurrence analysis over a completed batch. Kept
// separate from Run because aggregation must see every genome's calls:
// the natural fan-in boundary.
func Summarize(calls []classify.Result, cfg cooccur.Config) *cooccur.Summary {
	return cooccur.Analyze(calls, cfg)
}
