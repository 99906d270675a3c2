// Package answer implements the retrieval-augmented responder.
//
// Each question triggers exactly one language-model call. The context block
// caps every review at 300 characters and holds at most 5 reviews for
// semantic retrieval or 10 for recency retrieval; citations are the first
// 3 context reviews truncated to 150 characters. Semantic retrieval is
// global and does not apply the location filter; recency retrieval scopes
// to the requested location.
package answer
