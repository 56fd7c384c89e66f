package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fmuoria/job-match-agent/internal/fetch"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch job postings from the JSearch API",
	Long:  "Fetch job postings matching the configured query and save them to the jobs CSV.",
	RunE:  runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	if globalConfig.JSearchAPIKey == "" {
		return errors.New("JSEARCH_API_KEY is not set (environment, .env, or config file)")
	}

	client := fetch.NewClient(globalConfig.JSearchAPIKey, globalConfig.JobsFile)
	jobs, err := client.FetchJobs(cmd.Context(), globalConfig.Query, globalConfig.Location, globalConfig.MaxJobs)
	if err != nil {
		return err
	}

	if len(jobs) == 0 {
		fmt.Println("No jobs fetched.")
		return nil
	}

	fmt.Printf("Fetched %d jobs for %q in %q\n", len(jobs), globalConfig.Query, globalConfig.Location)
	return nil
}
