// Package pipeline runs a whole playlist through the resolver.
//
// Queries are processed strictly in playlist order, one fully resolved before
// the next begins, because interactive prompts are presented to a single
// human serially. The runner accumulates per-query results and aggregate
// counters into a Report; a per-run session identifier ties every log record
// of one conversion together.
//
// The error taxonomy separates the one fatal class (an unusable music root or
// input file, which relaxing thresholds cannot fix) from everything else,
// which degrades to per-query or per-subtree skips.
package pipeline
