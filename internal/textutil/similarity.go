package textutil

import (
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// Similarity returns a [0,1] similarity between the normalized forms of a
// and b. 1.0 means the normalized strings are identical; 0.0 means they share
// no character subsequence.
func Similarity(a, b string) float64 {
	return Ratio(Normalize(a), Normalize(b))
}

// Ratio computes the similarity between two already-normalized strings as
// 2*LCS(a,b) / (len(a)+len(b)) over runes. Callers on the scan hot path
// normalize the query once and use Ratio directly so each comparison only
// pays for normalizing the filesystem side.
func Ratio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	if la == 0 || lb == 0 {
		return 0.0
	}
	common := edlib.LCS(a, b)
	if common <= 0 {
		return 0.0
	}
	return 2.0 * float64(common) / float64(la+lb)
}
