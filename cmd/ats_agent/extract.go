package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/ats-optimizer/internal/extraction"
)

var extractJobPath string

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a categorized requirement profile from a job posting",
	Long:  "Extract harvests technical skills, soft skills, certifications, keywords, and the experience requirement from a job posting text file. No API key needed.",
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractJobPath, "job", "", "Path to job posting text file (required)")
	_ = extractCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	jobText, err := readJobText(extractJobPath)
	if err != nil {
		return err
	}

	extractor := extraction.NewExtractor(nil)
	profile := extractor.Extract(jobText)
	return printJSON(profile)
}
