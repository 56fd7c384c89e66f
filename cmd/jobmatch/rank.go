package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fmuoria/job-match-agent/internal/agent"
)

var rankCmd = &cobra.Command{
	Use:   "rank <resume>",
	Short: "Rank previously fetched jobs against a resume",
	Long:  "Rank the jobs in the jobs CSV against the resume without calling the search API.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRank,
}

func runRank(cmd *cobra.Command, args []string) error {
	// Drop the search key so the agent skips the remote fetch and ranks
	// whatever the jobs file holds.
	cfg := *globalConfig
	cfg.JSearchAPIKey = ""

	a, err := agent.NewMatchAgent(cmd.Context(), &cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	report, err := a.Run(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if len(report.Jobs) == 0 {
		fmt.Printf("No jobs to rank (is %s populated?).\n", cfg.JobsFile)
		return nil
	}

	for i, job := range report.Jobs {
		fmt.Printf("%2d. %s at %s -> %.4f\n", i+1, job.Title, job.Company, job.SimilarityScore)
	}
	return nil
}
