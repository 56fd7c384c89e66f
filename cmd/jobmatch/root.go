package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fmuoria/job-match-agent/internal/config"
)

var globalConfig *config.Config

var (
	flagConfigPath string
	flagQuery      string
	flagLocation   string
	flagMaxJobs    int
	flagTopN       int
	flagProvider   string
	flagModel      string
	flagJobsFile   string
	flagRankedFile string
	flagExcelFile  string
)

var rootCmd = &cobra.Command{
	Use:   "jobmatch",
	Short: "Match a resume against job postings by semantic similarity",
	Long: `jobmatch extracts text from a resume, splits it into sections,
embeds it, and ranks job postings (fetched from the JSearch API or loaded
from a CSV file) by cosine similarity to the resume.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}

		// .env is optional; API keys may come from the real environment.
		_ = godotenv.Load()

		var cfg *config.Config
		var err error
		if flagConfigPath != "" {
			cfg, err = config.LoadFrom(flagConfigPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		applyFlags(cmd, cfg)
		cfg.FillFromEnv()
		globalConfig = cfg
		return nil
	},
}

// applyFlags overrides config fields with explicitly set command flags.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("query") {
		cfg.Query = flagQuery
	}
	if flags.Changed("location") {
		cfg.Location = flagLocation
	}
	if flags.Changed("max-jobs") {
		cfg.MaxJobs = flagMaxJobs
	}
	if flags.Changed("top-n") {
		cfg.TopN = flagTopN
	}
	if flags.Changed("provider") {
		cfg.EmbeddingProvider = flagProvider
	}
	if flags.Changed("model") {
		cfg.EmbeddingModel = flagModel
	}
	if flags.Changed("jobs-file") {
		cfg.JobsFile = flagJobsFile
	}
	if flags.Changed("ranked-file") {
		cfg.RankedFile = flagRankedFile
	}
	if flags.Changed("excel") {
		cfg.ExcelReportFile = flagExcelFile
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfigPath, "config", "", "path to config file")
	pf.StringVar(&flagQuery, "query", "data scientist", "job search query")
	pf.StringVar(&flagLocation, "location", "New York", "job search location")
	pf.IntVar(&flagMaxJobs, "max-jobs", 50, "maximum number of jobs to fetch")
	pf.IntVar(&flagTopN, "top-n", 50, "number of top matches to keep")
	pf.StringVar(&flagProvider, "provider", "hash", "embedding provider (openai, google, hash)")
	pf.StringVar(&flagModel, "model", "", "embedding model name")
	pf.StringVar(&flagJobsFile, "jobs-file", "jsearch_jobs_data.csv", "CSV file for fetched jobs")
	pf.StringVar(&flagRankedFile, "ranked-file", "ranked_jobs.csv", "CSV file for ranked results")
	pf.StringVar(&flagExcelFile, "excel", "", "also export an Excel report to this path")

	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(rankCmd)
}
