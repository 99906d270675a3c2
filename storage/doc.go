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


// Package storage provides the storage abstraction layer for revsight.
//
// This package defines repository interfaces that decouple storage
// implementation from business logic, allowing different storage backends
// (BadgerDB, in-memory, etc.) to be used interchangeably.
//
// # Architecture
//
// The storage layer follows the Repository pattern:
//
//   - ReviewRepository: reviews, enrichments, embeddings, and vector search
//   - InsightRepository: cached insights keyed by (location, window)
//
// The store is the only durable state in the system; every other component
// holds request-scoped data only. Key semantics the interfaces guarantee:
//
//   - Review insertion is idempotent by ReviewID (duplicates are no-ops)
//   - Enrichment and embedding upserts replace the record wholesale;
//     last-writer-wins is acceptable because there are no partial merges
//   - Embedding dimensionality is fixed store-wide; a mismatch is rejected
//     with ErrDimensionMismatch rather than silently tolerated
//   - Absent records surface as ErrNotFound, never as corrupted reads
//
// # Thread Safety
//
// All repository implementations must be thread-safe and support concurrent
// access from multiple goroutines; each upsert is atomic at single-record
// granularity.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation and timeout
// support. Pass context.Background() for operations without specific timeout
// requirements.
package storage
