// Package enrich runs the batch annotation stage of the pipeline.
//
// The Processor partitions unenriched reviews into fixed-size batches
// (default 20) and issues exactly one annotation call per batch, amortizing
// remote-call cost. Failure isolation is batch-granular: when a remote call
// fails, or the response does not cover exactly the requested review IDs,
// that batch writes zero rows and the run continues with the next batch.
// A crash or failure leaves affected reviews unenriched, so re-running the
// processor is always safe and only touches reviews still missing an
// enrichment.
package enrich
