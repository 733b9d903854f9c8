// Package main provides the entry point for the ats-optimizer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgPath   string
	debugFlag bool
	jsonFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "ats_agent",
	Short: "ATS optimization engine CLI",
	Long:  "ats_agent scores structured resumes against job postings and drives guided, multi-round optimization sessions.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Verbose/debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "JSON log encoding")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
