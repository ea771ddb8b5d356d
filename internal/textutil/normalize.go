package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// digraphReplacer maps letters whose accent carries phonetic weight to their
// digraph spelling instead of the bare base letter. Stripping the umlaut from
// "Motörhead" must yield "motoerhead", not "motorhead", or unrelated words
// that share a base letter start matching each other. Symbol-vs-word
// mismatches ("&" against "and") are folded here as well.
var digraphReplacer = strings.NewReplacer(
	"ä", "ae", "Ä", "ae",
	"ö", "oe", "Ö", "oe",
	"ü", "ue", "Ü", "ue",
	"ß", "ss",
	"&", " and ",
	"+", " and ",
)

// annotationPatterns strip bracketed release metadata that depresses title
// similarity without naming a different song: remaster/reissue tags, mix and
// edit variants, bare years, and live/acoustic suffixes. A playlist entry
// annotated "(Live)" should still find the studio recording.
var annotationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s*\([^)]*remaster[^)]*\)`),
	regexp.MustCompile(`(?i)\s*\([^)]*remix[^)]*\)`),
	regexp.MustCompile(`(?i)\s*\([^)]*\bedit\b[^)]*\)`),
	regexp.MustCompile(`(?i)\s*\([^)]*version[^)]*\)`),
	regexp.MustCompile(`(?i)\s*\([^)]*\bmix\b[^)]*\)`),
	regexp.MustCompile(`(?i)\s*\([^)]*\blive\b[^)]*\)`),
	regexp.MustCompile(`(?i)\s*\([^)]*unplugged[^)]*\)`),
	regexp.MustCompile(`(?i)\s*\([^)]*acoustic[^)]*\)`),
	regexp.MustCompile(`(?i)\s*\([^)]*\d{4}[^)]*\)`),
	regexp.MustCompile(`(?i)\s*\[[^\]]*remaster[^\]]*\]`),
	regexp.MustCompile(`(?i)\s*\[[^\]]*\d{4}[^\]]*\]`),
}

// separatorPattern collapses runs of whitespace, punctuation, and symbols
// into single spaces.
var separatorPattern = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// markStripper decomposes characters and drops combining marks, so the
// diacritics not covered by the digraph map compare equal to their base
// letter ("é" and "e").
var markStripper = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes a string for comparison. It never fails: input that
// cannot be transformed is carried through best-effort. The result is stable
// under repeated application.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	// Compose first so precomposed and decomposed inputs hit the digraph
	// map the same way.
	text = norm.NFC.String(text)
	text = digraphReplacer.Replace(text)

	for _, pattern := range annotationPatterns {
		text = pattern.ReplaceAllString(text, "")
	}

	if stripped, _, err := transform.String(markStripper, text); err == nil {
		text = stripped
	}

	text = strings.ToLower(text)
	text = separatorPattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
