package models

import "time"

// Job represents a single job posting to be matched against a resume.
// Extra carries source-specific fields that are not interpreted by the
// matching pipeline; they travel through load, rank and save untouched.
type Job struct {
	Title           string            `json:"title"`
	Company         string            `json:"company"`
	Publisher       string            `json:"publisher"`
	EmploymentType  string            `json:"employment_type"`
	Description     string            `json:"description"`
	Location        string            `json:"location"`
	Extra           map[string]string `json:"extra,omitempty"`
	SimilarityScore float64           `json:"similarity_score"`
	Scored          bool              `json:"-"`
}

// EmbeddingText builds the text used to embed this job. The field order is
// fixed; missing fields contribute an empty string, never an error.
func (j Job) EmbeddingText() string {
	return j.Title + " " + j.Company + " " + j.Description
}

// Clone returns a copy of the job with its own Extra map, so that scoring
// one copy never mutates the original.
func (j Job) Clone() Job {
	out := j
	if j.Extra != nil {
		out.Extra = make(map[string]string, len(j.Extra))
		for k, v := range j.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

// MatchReport is the result of one end-to-end matching run.
type MatchReport struct {
	Query        string `json:"query"`
	Location     string `json:"location"`
	ResumePath   string `json:"resume_path"`
	TotalFetched int    `json:"total_fetched"`
	Jobs         []Job  `json:"jobs"`
	Timestamp    string `json:"timestamp"`
}

// NewMatchReport builds a report with the timestamp set to now.
func NewMatchReport(query, location, resumePath string, totalFetched int, jobs []Job) MatchReport {
	return MatchReport{
		Query:        query,
		Location:     location,
		ResumePath:   resumePath,
		TotalFetched: totalFetched,
		Jobs:         jobs,
		Timestamp:    time.Now().Format(time.RFC3339),
	}
}
