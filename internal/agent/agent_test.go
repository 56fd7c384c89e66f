package agent

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fmuoria/job-match-agent/internal/config"
	"github.com/fmuoria/job-match-agent/internal/embedding"
	"github.com/fmuoria/job-match-agent/internal/models"
	"github.com/fmuoria/job-match-agent/internal/store"
)

type stubFetcher struct {
	jobs  []models.Job
	err   error
	calls int
}

func (s *stubFetcher) FetchJobs(_ context.Context, query, location string, maxJobs int) ([]models.Job, error) {
	s.calls++
	return s.jobs, s.err
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	tmpDir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.JobsFile = filepath.Join(tmpDir, "jobs.csv")
	cfg.RankedFile = filepath.Join(tmpDir, "ranked.csv")
	cfg.ParsedResumeFile = filepath.Join(tmpDir, "parsed_resume.txt")
	cfg.TopN = 5
	return cfg
}

func writeResume(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write resume: %v", err)
	}
	return path
}

const resumeText = `EXPERIENCE
Built data pipelines at Acme

SKILLS
Python, Go, SQL
`

func TestRunFullPipeline(t *testing.T) {
	cfg := testConfig(t)
	fetcher := &stubFetcher{jobs: []models.Job{
		{Title: "Data Engineer", Company: "Acme", Description: "data pipelines python"},
		{Title: "Florist", Company: "Petals", Description: "arranging flowers"},
	}}

	a := &MatchAgent{cfg: cfg, provider: embedding.NewHashProvider(0), fetcher: fetcher}

	report, err := a.Run(context.Background(), writeResume(t, resumeText))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(report.Jobs) != 2 {
		t.Fatalf("Expected 2 ranked jobs, got %d", len(report.Jobs))
	}
	if report.Jobs[0].Title != "Data Engineer" {
		t.Errorf("Expected the overlapping job to rank first, got %q", report.Jobs[0].Title)
	}
	if fetcher.calls != 1 {
		t.Errorf("Expected one fetch call, got %d", fetcher.calls)
	}

	// Ranked results are persisted as CSV.
	saved, err := store.LoadJobs(cfg.RankedFile)
	if err != nil {
		t.Fatalf("Failed to load ranked CSV: %v", err)
	}
	if len(saved) != 2 || !saved[0].Scored {
		t.Errorf("Expected scored jobs in ranked CSV, got %+v", saved)
	}

	// Parsed sections are written for reporting.
	if _, err := os.Stat(cfg.ParsedResumeFile); err != nil {
		t.Errorf("Expected parsed resume file: %v", err)
	}
}

func TestRunFallsBackToJobsFile(t *testing.T) {
	cfg := testConfig(t)

	if err := store.SaveJobs([]models.Job{
		{Title: "Stored Job", Company: "Acme", Description: "python data"},
	}, cfg.JobsFile); err != nil {
		t.Fatalf("Failed to seed jobs file: %v", err)
	}

	fetcher := &stubFetcher{} // remote returns nothing
	a := &MatchAgent{cfg: cfg, provider: embedding.NewHashProvider(0), fetcher: fetcher}

	report, err := a.Run(context.Background(), writeResume(t, resumeText))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(report.Jobs) != 1 || report.Jobs[0].Title != "Stored Job" {
		t.Errorf("Expected fallback to stored jobs, got %+v", report.Jobs)
	}
}

func TestRunWithNoJobsWarnsNotFails(t *testing.T) {
	cfg := testConfig(t)
	a := &MatchAgent{cfg: cfg, provider: embedding.NewHashProvider(0)}

	report, err := a.Run(context.Background(), writeResume(t, resumeText))
	if err != nil {
		t.Fatalf("Expected empty pipeline to warn, not fail: %v", err)
	}

	if len(report.Jobs) != 0 {
		t.Errorf("Expected empty report, got %d jobs", len(report.Jobs))
	}
}

func TestRunFetchErrorAborts(t *testing.T) {
	cfg := testConfig(t)
	fetcher := &stubFetcher{err: errors.New("network down")}
	a := &MatchAgent{cfg: cfg, provider: embedding.NewHashProvider(0), fetcher: fetcher}

	if _, err := a.Run(context.Background(), writeResume(t, resumeText)); err == nil {
		t.Error("Expected fetch failure to propagate")
	}
}

func TestRunEmptyResumeAborts(t *testing.T) {
	cfg := testConfig(t)
	a := &MatchAgent{cfg: cfg, provider: embedding.NewHashProvider(0)}

	if _, err := a.Run(context.Background(), writeResume(t, "   \n  ")); err == nil {
		t.Error("Expected error for a resume with no embeddable text")
	}
}

func TestReportBeforeRun(t *testing.T) {
	a := &MatchAgent{cfg: testConfig(t), provider: embedding.NewHashProvider(0)}

	if _, err := a.Report(); err == nil {
		t.Error("Expected error when no run has completed")
	}
}

func TestNewMatchAgentRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.EmbeddingProvider = "quantum"

	if _, err := NewMatchAgent(context.Background(), cfg); err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestNewMatchAgentHashProvider(t *testing.T) {
	cfg := testConfig(t)

	a, err := NewMatchAgent(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewMatchAgent failed: %v", err)
	}
	defer a.Close()

	if a.provider.ModelInfo() != "hash-fnv32a" {
		t.Errorf("Expected hash provider, got %s", a.provider.ModelInfo())
	}
	if a.fetcher != nil {
		t.Error("Expected no fetcher without a JSearch API key")
	}
}
