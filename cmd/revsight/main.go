// Copyright 2025 Revsight Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/urfave/cli/v2"

	"github.com/revsight/revsight"
	"github.com/revsight/revsight/ai"
	"github.com/revsight/revsight/blob/s3"
	"github.com/revsight/revsight/embed"
	"github.com/revsight/revsight/enrich"
	"github.com/revsight/revsight/ingest"
	"github.com/revsight/revsight/insights"
)

func main() {
	app := &cli.App{
		Name:  "revsight",
		Usage: "Review enrichment and retrieval pipeline",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Usage:  "Normalize raw review exports and load them into the store",
				Action: ingestCommand,
				Flags: joinFlags(dbFlags(), []cli.Flag{
					&cli.StringFlag{
						Name:     "path",
						Aliases:  []string{"p"},
						Usage:    "Raw export file or directory of files",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "location",
						Usage: "Location ID override for every ingested review",
					},
					&cli.StringFlag{
						Name:  "anchor",
						Usage: "Anchor date for relative timestamps (YYYY-MM-DD)",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of files to normalize concurrently",
						Value: 4,
					},
				}),
			},
			{
				Name:   "enrich",
				Usage:  "Annotate unenriched reviews with sentiment, topics, and entities",
				Action: enrichCommand,
				Flags: joinFlags(dbFlags(), chatFlags(), []cli.Flag{
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of reviews sent to the model per request",
						Value: enrich.DefaultBatchSize,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N reviews",
						Value: 20,
					},
				}),
			},
			{
				Name:   "embed",
				Usage:  "Backfill embeddings for reviews that have none",
				Action: embedCommand,
				Flags: joinFlags(dbFlags(), embeddingFlags(), []cli.Flag{
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of reviews to embed in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N reviews",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed embedding calls",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				}),
			},
			{
				Name:   "insights",
				Usage:  "Show or compute aggregated insights for a location and window",
				Action: insightsCommand,
				Flags: joinFlags(dbFlags(), chatFlags(), []cli.Flag{
					&cli.StringFlag{
						Name:     "location",
						Usage:    "Location ID to summarize",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "window",
						Usage: "Time window, YYYY-MM or \"all\"",
						Value: insights.WindowAll,
					},
					&cli.BoolFlag{
						Name:  "regenerate",
						Usage: "Recompute even when a cached insight exists",
					},
				}),
			},
			{
				Name:      "ask",
				Usage:     "Answer a free-text question grounded in stored reviews",
				ArgsUsage: "<question>",
				Action:    askCommand,
				Flags: joinFlags(dbFlags(), chatFlags(), embeddingFlags(), []cli.Flag{
					&cli.StringFlag{
						Name:  "location",
						Usage: "Location ID for recency context",
					},
					&cli.BoolFlag{
						Name:  "semantic",
						Usage: "Use embedding search instead of recent reviews for context",
					},
				}),
			},
			{
				Name:   "pull",
				Usage:  "Download raw review exports from an S3 bucket",
				Action: pullCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "bucket",
						Usage:    "S3 bucket holding raw exports",
						EnvVars:  []string{"REVSIGHT_BUCKET"},
						Required: true,
					},
					&cli.StringFlag{
						Name:  "prefix",
						Usage: "Key prefix to download",
						Value: "raw/",
					},
					&cli.StringFlag{
						Name:     "dest",
						Usage:    "Local directory to write downloaded files",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			EnvVars:  []string{"REVSIGHT_DB"},
			Required: true,
		},
		&cli.StringFlag{
			Name:    "token",
			Usage:   "API token for the model services",
			EnvVars: []string{"REVSIGHT_TOKEN"},
		},
	}
}

func chatFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "chat-host",
			Usage:   "Chat completion service host URL",
			EnvVars: []string{"REVSIGHT_CHAT_HOST"},
		},
		&cli.StringFlag{
			Name:    "chat-model",
			Usage:   "Chat completion model name",
			EnvVars: []string{"REVSIGHT_CHAT_MODEL"},
		},
	}
}

func embeddingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "embedding-host",
			Usage:   "Embedding service host URL",
			EnvVars: []string{"REVSIGHT_EMBEDDING_HOST"},
		},
		&cli.StringFlag{
			Name:    "embedding-model",
			Usage:   "Embedding model name",
			EnvVars: []string{"REVSIGHT_EMBEDDING_MODEL"},
		},
	}
}

func joinFlags(groups ...[]cli.Flag) []cli.Flag {
	var flags []cli.Flag
	for _, group := range groups {
		flags = append(flags, group...)
	}
	return flags
}

func aiConfigFromFlags(c *cli.Context) *ai.Config {
	opts := []ai.ConfigOption{}
	if host := c.String("chat-host"); host != "" {
		opts = append(opts, ai.WithChatHost(host))
	}
	if host := c.String("embedding-host"); host != "" {
		opts = append(opts, ai.WithEmbeddingHost(host))
	}
	if model := c.String("chat-model"); model != "" {
		opts = append(opts, ai.WithChatModel(model))
	}
	if model := c.String("embedding-model"); model != "" {
		opts = append(opts, ai.WithEmbeddingModel(model))
	}
	if token := c.String("token"); token != "" {
		opts = append(opts, ai.WithToken(token))
	}
	return ai.NewConfig(opts...)
}

func openDatabase(c *cli.Context) (*revsight.Database, error) {
	aiConfig := aiConfigFromFlags(c)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}
	db, err := revsight.NewDatabase(c.String("db"), revsight.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	// Resolve files first so flag errors surface before the DB is touched
	path := c.String("path")
	files, err := collectFiles(path)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .json files found under %s", path)
	}

	var anchor time.Time
	if raw := c.String("anchor"); raw != "" {
		anchor, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return fmt.Errorf("invalid anchor date %q: %w", raw, err)
		}
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	normalizer := db.NewNormalizer()
	repo := db.ReviewRepository()

	pool, err := ants.NewPool(c.Int("workers"))
	if err != nil {
		return fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		parsed    int
		inserted  int
		fileFails int
	)

	for _, file := range files {
		file := file
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			raw, err := os.ReadFile(file)
			if err != nil {
				slog.Warn("failed to read export file", "file", file, "err", err)
				mu.Lock()
				fileFails++
				mu.Unlock()
				return
			}

			reviews, err := normalizer.Normalize(raw, ingest.Options{
				LocationHint: c.String("location"),
				Filename:     filepath.Base(file),
				Anchor:       anchor,
			})
			if err != nil {
				slog.Warn("failed to normalize export file", "file", file, "err", err)
				mu.Lock()
				fileFails++
				mu.Unlock()
				return
			}

			added, err := repo.PutReviews(ctx, reviews...)
			if err != nil {
				slog.Warn("failed to store reviews", "file", file, "err", err)
				mu.Lock()
				fileFails++
				mu.Unlock()
				return
			}

			mu.Lock()
			parsed += len(reviews)
			inserted += added
			mu.Unlock()
		}); err != nil {
			wg.Done()
			return fmt.Errorf("failed to submit ingest task: %w", err)
		}
	}
	wg.Wait()

	fmt.Fprintf(os.Stderr, "Files: %d (%d failed)\n", len(files), fileFails)
	fmt.Fprintf(os.Stderr, "Reviews parsed: %d\n", parsed)
	fmt.Fprintf(os.Stderr, "Reviews inserted: %d\n", inserted)
	return nil
}

func collectFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".json") {
			files = append(files, filepath.Join(path, entry.Name()))
		}
	}
	return files, nil
}

func enrichCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	config := &enrich.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
	}

	processor, err := db.NewEnrichmentProcessor(config, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to create enrichment processor: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Chat host: %s\n", c.String("chat-host"))
	fmt.Fprintf(os.Stderr, "Chat model: %s\n", c.String("chat-model"))
	fmt.Fprintln(os.Stderr)

	result, err := processor.Run(ctx)
	if err != nil {
		return fmt.Errorf("enrichment failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Candidates: %d\n", result.Candidates)
	fmt.Fprintf(os.Stderr, "Enriched: %d\n", result.Enriched)
	fmt.Fprintf(os.Stderr, "Failed batches: %d\n", result.FailedBatches)
	return nil
}

func embedCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	config := &embed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	backfiller, err := db.NewBackfiller(config, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to create backfiller: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if err := backfiller.Run(ctx); err != nil {
		return fmt.Errorf("embedding backfill failed: %w", err)
	}
	return nil
}

func insightsCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	generator, err := db.NewInsightsGenerator()
	if err != nil {
		return fmt.Errorf("failed to create insights generator: %w", err)
	}

	location := c.String("location")
	window := c.String("window")

	insight, err := generator.Cached(ctx, location, window)
	if err != nil {
		return fmt.Errorf("failed to read cached insight: %w", err)
	}
	if insight == nil || c.Bool("regenerate") {
		insight, err = generator.Compute(ctx, location, window)
		if err != nil {
			return fmt.Errorf("failed to compute insight: %w", err)
		}
	}

	out, err := json.MarshalIndent(insight, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render insight: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func askCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a question is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	responder, err := db.NewResponder()
	if err != nil {
		return fmt.Errorf("failed to create responder: %w", err)
	}

	response, err := responder.Answer(ctx, query, c.String("location"), c.Bool("semantic"))
	if err != nil {
		return fmt.Errorf("failed to answer question: %w", err)
	}

	fmt.Println(response.Answer)
	if len(response.Citations) > 0 {
		fmt.Println()
		fmt.Printf("Sources (%d reviews considered):\n", response.ReviewCount)
		for _, citation := range response.Citations {
			fmt.Printf("  [%s] %s\n", citation.ReviewID, citation.Text)
		}
	}
	return nil
}

func pullCommand(c *cli.Context) error {
	ctx := context.Background()

	dest := c.String("dest")
	if err := os.MkdirAll(dest, 0755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	store, err := s3.NewStore(ctx, c.String("bucket"))
	if err != nil {
		return fmt.Errorf("failed to open bucket: %w", err)
	}

	keys, err := store.List(ctx, c.String("prefix"))
	if err != nil {
		return fmt.Errorf("failed to list bucket: %w", err)
	}

	for _, key := range keys {
		data, err := store.Download(ctx, key)
		if err != nil {
			return fmt.Errorf("failed to download %s: %w", key, err)
		}
		target := filepath.Join(dest, filepath.Base(key))
		if err := os.WriteFile(target, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
	}

	fmt.Fprintf(os.Stderr, "Downloaded %d files to %s\n", len(keys), dest)
	return nil
}

func setup(c *cli.Context) error {
	// A missing .env file is fine; flags and real env vars still apply
	_ = godotenv.Load()

	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
