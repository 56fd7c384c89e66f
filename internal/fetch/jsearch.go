// Package fetch retrieves job postings from the JSearch API on RapidAPI.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fmuoria/job-match-agent/internal/models"
	"github.com/fmuoria/job-match-agent/internal/store"
)

const (
	defaultHost = "jsearch.p.rapidapi.com"
	// DefaultJobsFile is where freshly fetched jobs are persisted.
	DefaultJobsFile = "jsearch_jobs_data.csv"
)

// SaveFunc persists fetched jobs. It matches store.SaveJobs.
type SaveFunc func(jobs []models.Job, path string) error

// Client fetches jobs from the JSearch search endpoint, paging through
// results. On a successful fetch it persists the result set itself, so
// downstream ranking never has to.
type Client struct {
	apiKey   string
	host     string
	baseURL  string
	client   *http.Client
	save     SaveFunc
	savePath string
}

// NewClient creates a JSearch client with the given RapidAPI key. Fetched
// jobs are persisted to savePath; an empty savePath uses DefaultJobsFile.
func NewClient(apiKey, savePath string) *Client {
	if savePath == "" {
		savePath = DefaultJobsFile
	}
	return &Client{
		apiKey:   apiKey,
		host:     defaultHost,
		baseURL:  "https://" + defaultHost + "/search",
		client:   &http.Client{Timeout: 30 * time.Second},
		save:     store.SaveJobs,
		savePath: savePath,
	}
}

// jsearchJob maps one posting from the JSearch response envelope.
type jsearchJob struct {
	JobTitle          string `json:"job_title"`
	EmployerName      string `json:"employer_name"`
	JobPublisher      string `json:"job_publisher"`
	JobEmploymentType string `json:"job_employment_type"`
	JobDescription    string `json:"job_description"`
	JobCity           string `json:"job_city"`
	JobCountry        string `json:"job_country"`
}

// jsearchResponse is the top-level JSearch search envelope.
type jsearchResponse struct {
	Data []jsearchJob `json:"data"`
}

// FetchJobs pages through JSearch results until maxJobs postings are
// collected, a page comes back empty, or the API stops responding with
// success. The two stop conditions end pagination without an error; the
// jobs collected so far are still returned and, when non-empty, persisted.
func (c *Client) FetchJobs(ctx context.Context, query, location string, maxJobs int) ([]models.Job, error) {
	var jobs []models.Job

	for page := 1; len(jobs) < maxJobs; page++ {
		data, err := c.fetchPage(ctx, query, location, page)
		if err != nil {
			log.Printf("API request failed: %v", err)
			break
		}
		if len(data) == 0 {
			log.Printf("No more jobs returned from API")
			break
		}

		for _, j := range data {
			jobs = append(jobs, models.Job{
				Title:          j.JobTitle,
				Company:        j.EmployerName,
				Publisher:      j.JobPublisher,
				EmploymentType: j.JobEmploymentType,
				Description:    j.JobDescription,
				Location:       j.JobCity + ", " + j.JobCountry,
			})
		}
	}

	if len(jobs) > maxJobs {
		jobs = jobs[:maxJobs]
	}

	if len(jobs) == 0 {
		log.Printf("No jobs fetched from API")
		return jobs, nil
	}

	if err := c.save(jobs, c.savePath); err != nil {
		return nil, fmt.Errorf("failed to persist fetched jobs: %w", err)
	}
	return jobs, nil
}

// fetchPage requests a single result page.
func (c *Client) fetchPage(ctx context.Context, query, location string, page int) ([]jsearchJob, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("location", location)
	params.Set("num_pages", "1")
	params.Set("page", strconv.Itoa(page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.host)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code %d", resp.StatusCode)
	}

	var envelope jsearchResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return envelope.Data, nil
}
