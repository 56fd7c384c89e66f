package agent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/fmuoria/job-match-agent/internal/config"
	"github.com/fmuoria/job-match-agent/internal/embedding"
	"github.com/fmuoria/job-match-agent/internal/export"
	"github.com/fmuoria/job-match-agent/internal/fetch"
	"github.com/fmuoria/job-match-agent/internal/ingestion"
	"github.com/fmuoria/job-match-agent/internal/models"
	"github.com/fmuoria/job-match-agent/internal/parser"
	"github.com/fmuoria/job-match-agent/internal/ranking"
	"github.com/fmuoria/job-match-agent/internal/store"
)

// ProgressCallback is called to report progress during processing
type ProgressCallback func(current, total int, message string)

// JobFetcher retrieves job postings from a remote source.
type JobFetcher interface {
	FetchJobs(ctx context.Context, query, location string, maxJobs int) ([]models.Job, error)
}

// MatchAgent orchestrates the resume-to-job matching pipeline: extract
// resume text, parse sections, embed, fetch or load jobs, rank, persist.
type MatchAgent struct {
	cfg        *config.Config
	provider   embedding.Provider
	fetcher    JobFetcher
	report     models.MatchReport
	hasReport  bool
	mu         sync.RWMutex
	progressCb ProgressCallback
}

// NewMatchAgent creates an agent from configuration: the embedding provider
// is constructed once here and reused for every call.
func NewMatchAgent(ctx context.Context, cfg *config.Config) (*MatchAgent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	provider, err := newProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}

	a := &MatchAgent{cfg: cfg, provider: provider}
	if cfg.JSearchAPIKey != "" {
		a.fetcher = fetch.NewClient(cfg.JSearchAPIKey, cfg.JobsFile)
	}
	return a, nil
}

// newProvider builds the configured embedding provider.
func newProvider(ctx context.Context, cfg *config.Config) (embedding.Provider, error) {
	switch cfg.EmbeddingProvider {
	case config.ProviderOpenAI:
		return embedding.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.EmbeddingModel)
	case config.ProviderGoogle:
		return embedding.NewGoogleProvider(ctx, cfg.GeminiAPIKey, cfg.EmbeddingModel)
	case config.ProviderHash:
		return embedding.NewHashProvider(0), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider: %q", cfg.EmbeddingProvider)
	}
}

// SetProgressCallback sets the progress callback function
func (a *MatchAgent) SetProgressCallback(cb ProgressCallback) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.progressCb = cb
}

// reportProgress calls the progress callback if set
func (a *MatchAgent) reportProgress(current, total int, message string) {
	a.mu.RLock()
	cb := a.progressCb
	a.mu.RUnlock()

	if cb != nil {
		cb(current, total, message)
	}
}

// Run executes the full matching pipeline for one resume. Empty stages
// (zero jobs fetched, nothing to rank) warn and continue with an empty
// report; extraction failures and embedding contract violations abort.
func (a *MatchAgent) Run(ctx context.Context, resumePath string) (models.MatchReport, error) {
	a.reportProgress(0, 100, "Extracting resume text...")

	resumeText, err := ingestion.ExtractText(resumePath)
	if err != nil {
		return models.MatchReport{}, fmt.Errorf("failed to extract resume text: %w", err)
	}
	if ingestion.IsBinaryData(resumeText) {
		return models.MatchReport{}, fmt.Errorf("%s looks like binary data, not resume text", resumePath)
	}

	a.reportProgress(10, 100, "Parsing resume sections...")

	sections := parser.ParseSections(resumeText)
	if len(sections) == 0 {
		log.Printf("No recognizable sections found in %s", resumePath)
	}
	if a.cfg.ParsedResumeFile != "" {
		if err := parser.WriteSections(sections, a.cfg.ParsedResumeFile); err != nil {
			log.Printf("Failed to save parsed resume: %v", err)
		}
	}

	a.reportProgress(20, 100, "Embedding resume...")

	resumeVec, err := a.provider.Embed(ctx, resumeText)
	if err != nil {
		return models.MatchReport{}, fmt.Errorf("failed to embed resume: %w", err)
	}
	if resumeVec == nil {
		return models.MatchReport{}, errors.New("resume contains no embeddable text")
	}

	a.reportProgress(35, 100, "Collecting job postings...")

	jobs, err := a.collectJobs(ctx)
	if err != nil {
		return models.MatchReport{}, err
	}

	a.reportProgress(60, 100, fmt.Sprintf("Ranking %d jobs...", len(jobs)))

	ranked, err := ranking.Rank(ctx, resumeVec, jobs, a.cfg.TopN, a.provider)
	if err != nil {
		return models.MatchReport{}, fmt.Errorf("ranking failed: %w", err)
	}

	a.reportProgress(85, 100, "Saving results...")

	if err := store.SaveJobs(ranked, a.cfg.RankedFile); err != nil {
		return models.MatchReport{}, fmt.Errorf("failed to save ranked jobs: %w", err)
	}

	report := models.NewMatchReport(a.cfg.Query, a.cfg.Location, resumePath, len(jobs), ranked)

	if a.cfg.ExcelReportFile != "" {
		if err := export.ExportToExcel(report, a.cfg.ExcelReportFile); err != nil {
			return models.MatchReport{}, fmt.Errorf("failed to export Excel report: %w", err)
		}
	}

	a.mu.Lock()
	a.report = report
	a.hasReport = true
	a.mu.Unlock()

	a.reportProgress(100, 100, "Matching complete!")

	return report, nil
}

// collectJobs fetches postings from the remote API when a fetcher is
// configured, falling back to the local jobs file otherwise. The fetch
// collaborator persists its own results; nothing is re-saved here.
func (a *MatchAgent) collectJobs(ctx context.Context) ([]models.Job, error) {
	if a.fetcher != nil {
		jobs, err := a.fetcher.FetchJobs(ctx, a.cfg.Query, a.cfg.Location, a.cfg.MaxJobs)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch jobs: %w", err)
		}
		if len(jobs) > 0 {
			return jobs, nil
		}
		log.Printf("Remote fetch returned no jobs, trying %s", a.cfg.JobsFile)
	}

	jobs, err := store.LoadJobs(a.cfg.JobsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}
	return jobs, nil
}

// Report returns the last completed run's report (thread-safe).
func (a *MatchAgent) Report() (models.MatchReport, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if !a.hasReport {
		return models.MatchReport{}, errors.New("no report available, run the pipeline first")
	}
	return a.report, nil
}

// Close cleans up provider resources, if any.
func (a *MatchAgent) Close() error {
	if closer, ok := a.provider.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
