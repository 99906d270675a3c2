// Package insights computes and memoizes analytical summaries of reviews
// for a (location, window) key.
//
// A window is either a calendar month "YYYY-MM" or "all" for the full
// history. Compute aggregates topic frequency, sentiment-weighted driver
// rankings, representative quotes and anomaly flags across the window's
// enriched reviews, asks the language model for a narrative summary of
// those aggregates, and overwrites the cached entry. Cached only reads;
// reuse-vs-recompute is the caller's policy, and cached entries never
// auto-expire.
package insights
