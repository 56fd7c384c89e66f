// Package store persists job records as CSV files. It is a thin tabular
// adapter: a missing, empty or malformed file loads as zero jobs rather
// than an error, and saving always overwrites (last write wins).
package store

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/fmuoria/job-match-agent/internal/models"
)

// Fixed columns, in output order. Any other column round-trips through
// Job.Extra.
var knownColumns = []string{"title", "company", "publisher", "employment_type", "description", "location"}

const scoreColumn = "similarity_score"

// LoadJobs reads jobs from a CSV file. A missing or zero-length file and
// any structural read failure all yield an empty slice and a nil error;
// the condition is logged, not raised.
func LoadJobs(path string) ([]models.Job, error) {
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		log.Printf("%s missing or empty", path)
		return []models.Job{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		log.Printf("Error reading %s: %v", path, err)
		return []models.Job{}, nil
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		log.Printf("Error reading %s: %v", path, err)
		return []models.Job{}, nil
	}
	if len(records) < 2 {
		return []models.Job{}, nil
	}

	header := records[0]
	jobs := make([]models.Job, 0, len(records)-1)
	for _, record := range records[1:] {
		var job models.Job
		for i, col := range header {
			if i >= len(record) {
				break
			}
			value := record[i]
			switch col {
			case "title":
				job.Title = value
			case "company":
				job.Company = value
			case "publisher":
				job.Publisher = value
			case "employment_type":
				job.EmploymentType = value
			case "description":
				job.Description = value
			case "location":
				job.Location = value
			case scoreColumn:
				score, err := strconv.ParseFloat(value, 64)
				if err != nil {
					continue
				}
				job.SimilarityScore = score
				job.Scored = true
			default:
				if job.Extra == nil {
					job.Extra = make(map[string]string)
				}
				job.Extra[col] = value
			}
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}

// SaveJobs writes jobs to a CSV file, overwriting any existing file. The
// header is the fixed job columns plus the sorted union of Extra keys, with
// similarity_score appended when any job carries a score. An empty slice is
// a warning no-op, not an error.
func SaveJobs(jobs []models.Job, path string) error {
	if len(jobs) == 0 {
		log.Printf("No jobs to save to %s", path)
		return nil
	}

	extraSet := make(map[string]bool)
	scored := false
	for _, job := range jobs {
		for k := range job.Extra {
			extraSet[k] = true
		}
		if job.Scored {
			scored = true
		}
	}
	extraColumns := make([]string, 0, len(extraSet))
	for k := range extraSet {
		extraColumns = append(extraColumns, k)
	}
	sort.Strings(extraColumns)

	header := append(append([]string{}, knownColumns...), extraColumns...)
	if scored {
		header = append(header, scoreColumn)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, job := range jobs {
		record := []string{job.Title, job.Company, job.Publisher, job.EmploymentType, job.Description, job.Location}
		for _, col := range extraColumns {
			record = append(record, job.Extra[col])
		}
		if scored {
			record = append(record, strconv.FormatFloat(job.SimilarityScore, 'f', -1, 64))
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write job row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	log.Printf("Saved %d jobs to %s", len(jobs), path)
	return nil
}
