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


// Package ingest normalizes heterogeneous raw review sources into canonical
// core.Review records.
//
// Two payload shapes are supported and detected from their structure:
//
//   - Structured-scrape: a JSON export nesting review objects under "data".
//     The location id comes from an explicit hint or a filename token of
//     the form <location>_<dd>_<mm>_<yyyy>; the same token supplies the
//     scrape date used to resolve relative date expressions ("3 days ago",
//     "a week ago") into absolute timestamps.
//
//   - Social-thread: discussion posts grouped under channels, each with a
//     title, vote count and raw comment strings. Each comment of at least
//     20 characters becomes one review with a deterministic id derived from
//     the post title hash and the comment position, a rating estimated
//     from keyword tiers, and the sentinel location "ALL".
//
// A malformed record is skipped with a diagnostic; it never aborts the
// remaining records in the payload. Unknown payload shapes are rejected
// with ErrUnknownPayload.
package ingest
