// Package match ranks scan candidates against a playlist query.
//
// Each candidate is scored on three similarity dimensions (artist directory,
// artist parsed from the filename, title parsed from the filename) blended
// into one combined score, with a small bonus for lossless files. Candidates
// failing any per-dimension threshold are dropped; survivors are ordered
// deterministically.
package match
