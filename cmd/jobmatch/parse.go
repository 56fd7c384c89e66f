package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fmuoria/job-match-agent/internal/ingestion"
	"github.com/fmuoria/job-match-agent/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <resume>",
	Short: "Parse a resume into sections",
	Long:  "Extract resume text and print its detected sections, saving them to the parsed resume file.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	text, err := ingestion.ExtractText(args[0])
	if err != nil {
		return err
	}

	sections := parser.ParseSections(text)
	if len(sections) == 0 {
		fmt.Println("No recognizable sections found.")
		return nil
	}

	for _, name := range parser.SectionNames {
		content, ok := sections[name]
		if !ok {
			continue
		}
		fmt.Printf("===== %s =====\n%s\n\n", strings.ToUpper(name), content)
	}

	if globalConfig.ParsedResumeFile != "" {
		if err := parser.WriteSections(sections, globalConfig.ParsedResumeFile); err != nil {
			return err
		}
		fmt.Printf("Saved parsed resume to %s\n", globalConfig.ParsedResumeFile)
	}
	return nil
}
