// Package library enumerates match candidates from a hierarchically
// organized music collection.
//
// The scanner reads only the top-level artist directories of the root and
// prunes every subtree whose directory name is too dissimilar to the query
// artist before descending. On large collections this turns per-query work
// from "every file in the library" into "every file under plausible artists",
// which is the dominant performance lever of the whole matcher.
//
// Metadata is derived from filenames alone (track number, optional artist
// segment, title, extension, live-indicator substrings); the scanner never
// opens audio files.
package library
