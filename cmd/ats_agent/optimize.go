package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/ats-optimizer/internal/engine"
	"github.com/jonathan/ats-optimizer/internal/types"
)

// Item actions offered during the interactive walk.
const (
	actionRewrite = "Rewrite (enter replacement text)"
	actionSkip    = "Skip this item"
	actionQuit    = "Quit session"
)

var (
	optimizeResumePath string
	optimizeJobPath    string
	optimizeOutPath    string
	optimizeNumOptions int
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Run an interactive optimization session",
	Long: "Optimize scores the resume, builds a prioritized worklist of improvement items, and walks " +
		"through them one at a time. For each item it prints the generation request (styles and target " +
		"keywords) for an external text generator; paste the chosen rewrite to apply it.",
	RunE: runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVar(&optimizeResumePath, "resume", "", "Path to resume JSON file (required)")
	optimizeCmd.Flags().StringVar(&optimizeJobPath, "job", "", "Path to job posting text file (required)")
	optimizeCmd.Flags().StringVar(&optimizeOutPath, "out", "", "Path to write the updated resume (default: overwrite input)")
	optimizeCmd.Flags().IntVar(&optimizeNumOptions, "options", 3, "Rewrite options requested per item")
	_ = optimizeCmd.MarkFlagRequired("resume")
	_ = optimizeCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := mustLogger()

	resume, err := loadResume(optimizeResumePath)
	if err != nil {
		return err
	}
	jobText, err := readJobText(optimizeJobPath)
	if err != nil {
		return err
	}

	eng, cleanup, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	sess, err := eng.StartSession(ctx, resume, jobText)
	if err != nil {
		return err
	}

	fmt.Printf("Current score: %.1f  Potential: %.1f  Items: %d\n\n",
		sess.CurrentScore, sess.PotentialScore, len(sess.Items))

	applied := 0
walk:
	for {
		item, err := eng.GetNextItem(sess.ID, false)
		if err != nil {
			return err
		}
		if item == nil {
			fmt.Println("Session complete.")
			break
		}

		printItem(item)

		action := promptui.Select{
			Label: "Action",
			Items: []string{actionRewrite, actionSkip, actionQuit},
		}
		_, choice, err := action.Run()
		if err != nil {
			return err
		}

		switch choice {
		case actionQuit:
			fmt.Println("Leaving session; progress so far is kept in the document.")
			break walk
		case actionSkip:
			if _, err := eng.GetNextItem(sess.ID, true); err != nil {
				return err
			}
			continue
		}

		if err := rewriteItem(eng, resume, jobText, item); err != nil {
			log.Warn("rewrite not applied", zap.Error(err))
			continue
		}
		applied++
		if err := eng.CompleteCurrentItem(sess.ID); err != nil {
			return err
		}
	}

	if applied > 0 {
		result, err := eng.ScoreDocument(ctx, resume, jobText)
		if err != nil {
			return err
		}
		fmt.Printf("\nScore after %d rewrites: %.1f (was %.1f)\n", applied, result.Overall, sess.CurrentScore)
	}

	outPath := optimizeOutPath
	if outPath == "" {
		outPath = optimizeResumePath
	}
	return writeResume(resume, outPath)
}

// rewriteItem records the generation request for the item, shows it, and
// applies whatever replacement text the user pastes back.
func rewriteItem(eng *engine.Engine, resume *types.Resume, jobText string, item *types.OptimizationItem) error {
	var optionID string

	switch item.Type {
	case types.ItemBullet:
		req := eng.GenerateBulletOptions(item.CurrentText, item.TargetKeywords, "", item.Index, *item.SubIndex, optimizeNumOptions)
		optionID = req.OptionID
		fmt.Println("Generation request (hand to your text generator):")
		for _, opt := range req.Options {
			fmt.Printf("  [%s] %s; work in: %s\n", opt.Style, opt.Instruction, strings.Join(opt.KeywordsAdded, ", "))
		}
	case types.ItemSummary:
		req := eng.GenerateSummaryOptions(resume, jobText, optimizeNumOptions)
		optionID = req.OptionID
		fmt.Println("Generation request (hand to your text generator):")
		for _, instruction := range req.Instructions {
			fmt.Printf("  - %s\n", instruction)
		}
	default:
		return fmt.Errorf("no rewrite flow for item type %s", item.Type)
	}

	text, err := (&promptui.Prompt{Label: "Replacement text (empty to cancel)"}).Run()
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("empty replacement")
	}
	return eng.ApplySelection(resume, optionID, text)
}

func printItem(item *types.OptimizationItem) {
	location := fmt.Sprintf("%s[%d]", item.Section, item.Index)
	if item.SubIndex != nil {
		location = fmt.Sprintf("%s.highlights[%d]", location, *item.SubIndex)
	}
	fmt.Printf("--- %s item at %s (priority %s, impact %.1f)\n", item.Type, location, item.Priority, item.ImpactScore)
	if item.CurrentText != "" {
		fmt.Printf("Current: %s\n", item.CurrentText)
	} else {
		fmt.Println("Current: (empty)")
	}
	if len(item.TargetKeywords) > 0 {
		fmt.Printf("Missing keywords: %s\n", strings.Join(item.TargetKeywords, ", "))
	}
}
