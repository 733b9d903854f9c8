package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/ats-optimizer/internal/config"
	"github.com/jonathan/ats-optimizer/internal/engine"
	"github.com/jonathan/ats-optimizer/internal/llm"
	"github.com/jonathan/ats-optimizer/internal/logger"
	"github.com/jonathan/ats-optimizer/internal/schemas"
	"github.com/jonathan/ats-optimizer/internal/semantic"
	"github.com/jonathan/ats-optimizer/internal/store"
	"github.com/jonathan/ats-optimizer/internal/types"
)

// loadConfig merges the optional config file with environment variables.
func loadConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if cfgPath != "" {
		loaded, err := config.LoadConfig(cfgPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	if debugFlag {
		cfg.Debug = true
	}
	if jsonFlag {
		cfg.JSONLog = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildEngine assembles the full engine: logger, embedding-backed similarity,
// and a Postgres store when a database URL is configured (in-memory
// otherwise). The returned cleanup releases the embedding client and pool.
func buildEngine(ctx context.Context, cfg *config.Config) (*engine.Engine, func(), error) {
	log, err := logger.New(cfg.JSONLog, cfg.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	if cfg.APIKey == "" {
		return nil, nil, fmt.Errorf("GEMINI_API_KEY is required for scoring (set it in the environment, .env, or config file)")
	}

	llmCfg := llm.DefaultConfig()
	if cfg.EmbeddingModel != "" {
		llmCfg.EmbeddingModel = cfg.EmbeddingModel
	}
	client, err := llm.NewClient(ctx, llmCfg, cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create embedding client: %w", err)
	}

	var docs store.DocumentStore
	var closeStore func()
	if cfg.DatabaseURL != "" {
		pg, err := store.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		docs = pg
		closeStore = pg.Close
		log.Debug("using postgres document store")
	} else {
		docs = store.NewMemoryStore()
		closeStore = func() {}
		log.Debug("using in-memory document store")
	}

	eng := engine.New(semantic.NewEmbeddingSimilarity(client), docs, log)
	cleanup := func() {
		_ = client.Close()
		closeStore()
		_ = log.Sync()
	}
	return eng, cleanup, nil
}

// loadResume reads, schema-validates, and decodes a resume document.
func loadResume(path string) (*types.Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}
	if err := schemas.ValidateResumeJSON(data); err != nil {
		return nil, err
	}

	var resume types.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	if err := resume.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resume: %w", err)
	}
	return &resume, nil
}

// readJobText reads the posting text file.
func readJobText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job posting file %s: %w", path, err)
	}
	return string(data), nil
}

// printJSON writes pretty JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// writeResume saves the updated document to a file.
func writeResume(resume *types.Resume, path string) error {
	data, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write resume file %s: %w", path, err)
	}
	return nil
}

// must is a helper for loggers created before config parsing.
func mustLogger() *zap.Logger {
	log, err := logger.New(jsonFlag, debugFlag)
	if err != nil {
		return zap.NewNop()
	}
	return log
}
