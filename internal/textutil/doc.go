// Package textutil provides text canonicalization and string similarity for
// playlist matching.
//
// The primary use cases are:
//   - Normalizing human-entered and filesystem-derived strings into a
//     comparable form (diacritic folding, annotation stripping, punctuation
//     collapse)
//   - Computing a bounded [0,1] similarity ratio between two strings
//   - Sanitizing playlist names for safe filesystem use
//
// Normalization is deterministic and idempotent; the similarity ratio is
// based on the longest common subsequence of the normalized strings.
package textutil
