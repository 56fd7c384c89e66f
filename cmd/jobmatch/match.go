package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fmuoria/job-match-agent/internal/agent"
)

var matchCmd = &cobra.Command{
	Use:   "match <resume>",
	Short: "Run the full matching pipeline",
	Long: `Extract and parse the resume, fetch jobs from the JSearch API (or load
them from the jobs CSV when no API key is configured), rank them by
similarity, and save the results.`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func runMatch(cmd *cobra.Command, args []string) error {
	a, err := agent.NewMatchAgent(cmd.Context(), globalConfig)
	if err != nil {
		return err
	}
	defer a.Close()

	a.SetProgressCallback(func(current, total int, message string) {
		fmt.Printf("[%3d%%] %s\n", current*100/total, message)
	})

	report, err := a.Run(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if len(report.Jobs) == 0 {
		fmt.Println("No matching jobs found.")
		return nil
	}

	fmt.Println("\nTop Matching Jobs:")
	for _, job := range report.Jobs {
		fmt.Printf("%s at %s (%s) -> Similarity: %.4f\n", job.Title, job.Company, job.Location, job.SimilarityScore)
	}
	fmt.Printf("\nSaved %d ranked jobs to %s\n", len(report.Jobs), globalConfig.RankedFile)
	return nil
}
