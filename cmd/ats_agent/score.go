package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-optimizer/internal/scoring"
)

var (
	scoreResumePath string
	scoreJobPath    string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job posting",
	Long:  "Score computes the weighted compatibility breakdown (keyword, semantic, experience, skills coverage, formatting) of a resume against a job posting.",
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreResumePath, "resume", "", "Path to resume JSON file (required)")
	scoreCmd.Flags().StringVar(&scoreJobPath, "job", "", "Path to job posting text file (required)")
	_ = scoreCmd.MarkFlagRequired("resume")
	_ = scoreCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	resume, err := loadResume(scoreResumePath)
	if err != nil {
		return err
	}
	jobText, err := readJobText(scoreJobPath)
	if err != nil {
		return err
	}

	eng, cleanup, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := eng.ScoreDocument(ctx, resume, jobText)
	if err != nil {
		return err
	}

	if err := printJSON(result); err != nil {
		return err
	}
	if !result.PassesThreshold {
		cmd.Printf("Overall %.1f is below the %.0f screening threshold\n", result.Overall, scoring.PassThreshold)
	}
	return nil
}
