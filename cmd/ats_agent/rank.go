package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var rankResumePath string

var rankCmd = &cobra.Command{
	Use:   "rank <job-file> [job-file...]",
	Short: "Rank several job postings by fit for one resume",
	Long:  "Rank scores one resume against several job posting files concurrently and lists them best fit first.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRank,
}

func init() {
	rankCmd.Flags().StringVar(&rankResumePath, "resume", "", "Path to resume JSON file (required)")
	_ = rankCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	resume, err := loadResume(rankResumePath)
	if err != nil {
		return err
	}

	jobTexts := make([]string, len(args))
	for i, path := range args {
		text, err := readJobText(path)
		if err != nil {
			return err
		}
		jobTexts[i] = text
	}

	eng, cleanup, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ranks, err := eng.RankTargets(ctx, resume, jobTexts)
	if err != nil {
		return err
	}

	for i, rank := range ranks {
		marker := " "
		if rank.Result.PassesThreshold {
			marker = "*"
		}
		fmt.Printf("%2d. %s %-40s overall=%.1f keyword=%.1f semantic=%.1f\n",
			i+1, marker, args[rank.Index], rank.Result.Overall, rank.Result.Keyword, rank.Result.Semantic)
	}
	return nil
}
