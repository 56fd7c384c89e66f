package ranking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/fmuoria/job-match-agent/internal/embedding"
	"github.com/fmuoria/job-match-agent/internal/models"
)

// ErrBatchSizeMismatch indicates the embedding provider broke its batch
// contract by returning a different number of vectors than inputs.
var ErrBatchSizeMismatch = errors.New("embedding batch size does not match job count")

// unscoredSimilarity is assigned to jobs whose embedding text is blank and
// therefore have no vector. It is the minimum of the cosine range, so such
// jobs sort last and never displace a real match.
const unscoredSimilarity = -1.0

// Rank scores jobs against a resume embedding and returns the topN best
// matches, highest similarity first.
//
// All job texts go to the provider in a single batch call, so one ranking
// operation costs exactly one provider round-trip. Input jobs are never
// mutated; scored copies are returned. Ties keep their input order (the
// sort is stable). An empty job list returns an empty result without
// touching the provider.
func Rank(ctx context.Context, resumeVec []float64, jobs []models.Job, topN int, provider embedding.Provider) ([]models.Job, error) {
	if len(jobs) == 0 {
		log.Printf("No jobs to rank")
		return []models.Job{}, nil
	}

	texts := make([]string, len(jobs))
	for i, job := range jobs {
		texts[i] = job.EmbeddingText()
	}

	vecs, err := provider.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed jobs: %w", err)
	}
	if len(vecs) != len(jobs) {
		return nil, fmt.Errorf("%w: %d vectors for %d jobs", ErrBatchSizeMismatch, len(vecs), len(jobs))
	}

	scored := make([]models.Job, len(jobs))
	for i, job := range jobs {
		scored[i] = job.Clone()
		scored[i].Scored = true

		if vecs[i] == nil {
			log.Printf("Job %d (%q) has no embeddable text, ranking it last", i, job.Title)
			scored[i].SimilarityScore = unscoredSimilarity
			continue
		}

		score, err := Cosine(resumeVec, vecs[i])
		if err != nil {
			return nil, fmt.Errorf("failed to score job %d (%q): %w", i, job.Title, err)
		}
		scored[i].SimilarityScore = score
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].SimilarityScore > scored[j].SimilarityScore
	})

	if topN < 0 {
		topN = 0
	}
	if topN > len(scored) {
		topN = len(scored)
	}
	return scored[:topN], nil
}
