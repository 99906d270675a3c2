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


// Package embed maintains the review embedding index.
//
// The Index embeds review text through the configured embedding service and
// retrieves reviews by cosine similarity: an exhaustive, brute-force scan
// over every stored vector, sorted descending and truncated to k. Sub-linear
// retrieval is explicitly out of scope at the data volumes this system
// targets (thousands of reviews).
//
// All vectors are normalized to unit length before storage. The store
// enforces constant dimensionality; a vector of mismatched length is a
// fatal configuration error surfaced as storage.ErrDimensionMismatch.
//
// The Backfiller catches up reviews that were ingested before embedding was
// enabled (or whose embedding batch previously failed), in batches with
// exponential-backoff retry and progress reporting.
package embed
