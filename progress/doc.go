// Package progress provides a thread-safe progress reporter for
// long-running pipeline stages such as enrichment and embedding backfill.
//
// A Tracker writes single-line carriage-return progress updates to the
// configured writer every reportInterval items, and a final line with a
// trailing newline when Finish is called.
package progress
