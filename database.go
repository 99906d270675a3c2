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

package revsight

import (
	"io"
	"log/slog"

	"github.com/revsight/revsight/ai"
	"github.com/revsight/revsight/ai/openai"
	"github.com/revsight/revsight/answer"
	"github.com/revsight/revsight/embed"
	"github.com/revsight/revsight/enrich"
	"github.com/revsight/revsight/ingest"
	"github.com/revsight/revsight/insights"
	"github.com/revsight/revsight/storage"
	"github.com/revsight/revsight/storage/badger"
)

type Database struct {
	backend     *badger.Backend
	reviewRepo  storage.ReviewRepository
	insightRepo storage.InsightRepository
	provider    ai.AIProvider
	logger      *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
}

// WithAIConfig sets the configuration used to build the default AI provider.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = config
	}
}

// WithProvider supplies a fully constructed AI provider, bypassing the
// default OpenAI-compatible one.
func WithProvider(provider ai.AIProvider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}
	// Open backend
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	// Create review repository
	reviewRepo, err := badger.NewReviewRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create insight repository
	insightRepo := badger.NewInsightRepository(backend)

	// Create AI provider with configured settings unless one was injected
	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			insightRepo.Close()
			reviewRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Database{
		backend:     backend,
		reviewRepo:  reviewRepo,
		insightRepo: insightRepo,
		provider:    provider,
		logger:      slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	// Close AI provider first
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	// Close repositories
	if err := db.insightRepo.Close(); err != nil {
		db.logger.Error("error closing insight repository", "err", err)
		return err
	}
	if err := db.reviewRepo.Close(); err != nil {
		db.logger.Error("error closing review repository", "err", err)
		return err
	}

	// Close backend
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) ReviewRepository() storage.ReviewRepository {
	return db.reviewRepo
}

func (db *Database) InsightRepository() storage.InsightRepository {
	return db.insightRepo
}

func (db *Database) NewNormalizer(opts ...ingest.NormalizerOption) *ingest.Normalizer {
	return ingest.NewNormalizer(opts...)
}

func (db *Database) NewEnrichmentProcessor(config *enrich.Config, progressWriter io.Writer) (*enrich.Processor, error) {
	return enrich.NewProcessor(db.reviewRepo, db.provider.Annotator(), config, progressWriter)
}

func (db *Database) NewEmbeddingIndex(opts ...embed.Option) (*embed.Index, error) {
	return embed.NewIndex(db.reviewRepo, db.provider.Embedder(), opts...)
}

func (db *Database) NewBackfiller(config *embed.Config, progressWriter io.Writer) (*embed.Backfiller, error) {
	return embed.NewBackfiller(db.reviewRepo, db.provider.Embedder(), config, progressWriter)
}

func (db *Database) NewInsightsGenerator(opts ...insights.Option) (*insights.Generator, error) {
	return insights.NewGenerator(db.reviewRepo, db.insightRepo, db.provider.Generator(), opts...)
}

func (db *Database) NewResponder(opts ...answer.Option) (*answer.Responder, error) {
	index, err := db.NewEmbeddingIndex()
	if err != nil {
		return nil, err
	}
	return answer.NewResponder(db.reviewRepo, index, db.provider.Generator(), opts...)
}
